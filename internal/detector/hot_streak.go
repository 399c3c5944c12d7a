package detector

import (
	"context"
	"fmt"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/contracts"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// HotStreakDetector tracks consecutive made field goals per player. A miss
// resets the player's counter; free throws neither extend nor break a
// streak.
type HotStreakDetector struct {
	config     contracts.DetectorConfig
	classifier contracts.PlayClassifier
}

// NewHotStreakDetector creates a hot streak detector.
func NewHotStreakDetector(config contracts.DetectorConfig, classifier contracts.PlayClassifier) *HotStreakDetector {
	return &HotStreakDetector{config: config, classifier: classifier}
}

// Type implements PatternDetector.
func (d *HotStreakDetector) Type() models.PatternType {
	return models.PatternHotStreak
}

type streakState struct {
	count      int
	playerName string
	teamID     string
	period     int
}

// Detect implements PatternDetector. Plays must be in sequence order.
func (d *HotStreakDetector) Detect(ctx context.Context, game models.GameState, plays []models.Play) ([]models.Pattern, error) {
	streaks := make(map[string]*streakState)
	var candidates []models.Pattern

	for _, play := range plays {
		if play.PlayerID == "" {
			continue
		}

		switch d.classifier.Classify(play) {
		case models.CategoryMadeShot:
			streak, ok := streaks[play.PlayerID]
			if !ok {
				streak = &streakState{
					playerName: d.classifier.PlayerName(play),
					teamID:     play.TeamID,
				}
				streaks[play.PlayerID] = streak
			}
			if streak.playerName == "" {
				streak.playerName = d.classifier.PlayerName(play)
			}

			streak.count++
			streak.period = play.Period

			if streak.count >= d.config.MinStreakLength() {
				candidates = append(candidates, d.candidate(game, play.PlayerID, streak))
			}

		case models.CategoryMissedShot:
			delete(streaks, play.PlayerID)
		}
	}

	// Keep only the longest streak reached per player: a 5-make streak
	// supersedes its own 3- and 4-make triggers.
	best := make(map[string]models.Pattern)
	var order []string
	for _, candidate := range candidates {
		existing, ok := best[candidate.PlayerID]
		if !ok {
			order = append(order, candidate.PlayerID)
		}
		if !ok || candidate.ConsecutiveMakes > existing.ConsecutiveMakes {
			best[candidate.PlayerID] = candidate
		}
	}

	patterns := make([]models.Pattern, 0, len(best))
	for _, playerID := range order {
		patterns = append(patterns, best[playerID])
	}
	return patterns, nil
}

func (d *HotStreakDetector) candidate(game models.GameState, playerID string, streak *streakState) models.Pattern {
	name := streak.playerName
	if name == "" {
		name = "Unknown"
	}

	return models.Pattern{
		GameID:           game.GameID,
		Type:             models.PatternHotStreak,
		TeamID:           streak.teamID,
		IsHomeTeam:       game.IsHomeTeam(streak.teamID),
		Period:           streak.period,
		PlayerID:         playerID,
		PlayerName:       name,
		ConsecutiveMakes: streak.count,
		Description:      fmt.Sprintf("%s on fire - %d straight made shots!", name, streak.count),
	}
}
