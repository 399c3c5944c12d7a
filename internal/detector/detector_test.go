package detector_test

import (
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// Shared fixtures for detector tests.

const (
	testGameID = "401713556"
	homeTeamID = "2294"
	awayTeamID = "2641"
)

func testGame() models.GameState {
	return models.GameState{
		GameID:       testGameID,
		HomeTeamID:   homeTeamID,
		AwayTeamID:   awayTeamID,
		HomeTeamName: "Iowa Hawkeyes",
		AwayTeamName: "Texas Tech Red Raiders",
	}
}

// scoringPlay builds a scoring play attributed to a team. Cumulative scores
// are irrelevant to the run detector, so they are left zero.
func scoringPlay(seq int64, period int, teamID string, points int) models.Play {
	return models.Play{
		GameID:       testGameID,
		Sequence:     seq,
		Period:       period,
		TeamID:       teamID,
		ScoringPlay:  true,
		PointsScored: points,
		Text:         "made Layup.",
		PlayType:     "made shot",
	}
}

// neutralPlay builds a non-scoring play.
func neutralPlay(seq int64, period int) models.Play {
	return models.Play{
		GameID:   testGameID,
		Sequence: seq,
		Period:   period,
		Text:     "Defensive Rebound.",
		PlayType: "rebound",
	}
}

// scoreboardPlay builds a play carrying only cumulative scores, for the
// momentum detector.
func scoreboardPlay(seq int64, period, homeScore, awayScore int) models.Play {
	return models.Play{
		GameID:    testGameID,
		Sequence:  seq,
		Period:    period,
		HomeScore: homeScore,
		AwayScore: awayScore,
	}
}

// shotPlay builds a made or missed field goal (or free throw) by a player,
// for the hot streak detector.
func shotPlay(seq int64, period int, playerID, playerName, text, playType string, scoring bool, points int) models.Play {
	return models.Play{
		GameID:       testGameID,
		Sequence:     seq,
		Period:       period,
		TeamID:       homeTeamID,
		PlayerID:     playerID,
		PlayerName:   playerName,
		Text:         text,
		PlayType:     playType,
		ScoringPlay:  scoring,
		PointsScored: points,
	}
}
