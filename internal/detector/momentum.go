package detector

import (
	"context"
	"fmt"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/contracts"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// MomentumShiftDetector finds "came back from N down to take the lead"
// moments. It tracks the largest deficit the trailing side has faced since
// the last lead change and fires only on a true change of the leading
// team, never on every basket.
type MomentumShiftDetector struct {
	config contracts.DetectorConfig
}

// NewMomentumShiftDetector creates a momentum shift detector.
func NewMomentumShiftDetector(config contracts.DetectorConfig) *MomentumShiftDetector {
	return &MomentumShiftDetector{config: config}
}

// Type implements PatternDetector.
func (d *MomentumShiftDetector) Type() models.PatternType {
	return models.PatternMomentumShift
}

const (
	leaderHome = "home"
	leaderAway = "away"
	leaderTied = "tied"
)

// Detect implements PatternDetector. Plays must be in sequence order.
func (d *MomentumShiftDetector) Detect(ctx context.Context, game models.GameState, plays []models.Play) ([]models.Pattern, error) {
	var shifts []models.Pattern

	// previousLeader is the last side that actually led; ties do not
	// update it, so a comeback that passes through a tie still registers
	// as one lead change with the full overcome deficit.
	previousLeader := ""
	maxDeficit := 0

	for _, play := range plays {
		margin := play.HomeScore - play.AwayScore

		currentLeader := leaderTied
		if margin > 0 {
			currentLeader = leaderHome
		} else if margin < 0 {
			currentLeader = leaderAway
		}

		if currentLeader == leaderTied {
			continue
		}

		// The lead change is judged against the deficit accumulated before
		// this play, so the go-ahead basket's own margin never counts as a
		// deficit that was overcome.
		if previousLeader != "" && currentLeader != previousLeader {
			if maxDeficit >= d.config.MinMomentumDeficit() {
				shifts = append(shifts, d.shift(game, play, currentLeader, maxDeficit))
			}
			maxDeficit = 0
		}

		if abs(margin) > maxDeficit {
			maxDeficit = abs(margin)
		}

		previousLeader = currentLeader
	}

	return shifts, nil
}

func (d *MomentumShiftDetector) shift(game models.GameState, play models.Play, leader string, deficit int) models.Pattern {
	teamID := game.AwayTeamID
	if leader == leaderHome {
		teamID = game.HomeTeamID
	}

	return models.Pattern{
		GameID:          game.GameID,
		Type:            models.PatternMomentumShift,
		TeamID:          teamID,
		IsHomeTeam:      leader == leaderHome,
		Period:          play.Period,
		PreviousDeficit: deficit,
		NewScore:        fmt.Sprintf("%d-%d", play.HomeScore, play.AwayScore),
		Description: fmt.Sprintf("%s storms back from %d down to take the lead",
			game.TeamName(teamID), deficit),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
