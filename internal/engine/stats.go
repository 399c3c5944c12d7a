package engine

import (
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/contracts"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// ComputeStatDelta derives a player's stat contribution from one play.
// Rules, first match per category:
//
//  1. A scoring play adds its points. A made three also counts as a made
//     and attempted field goal and three; any other non-free-throw make
//     counts as a made and attempted field goal. Free throws that score
//     add only points.
//  2. A missed or blocked attempt (not a free throw) counts as a field goal
//     attempt, plus a three attempt when it was from deep.
//  3. A foul on the play adds a foul, independent of the above.
func ComputeStatDelta(classifier contracts.PlayClassifier, play models.Play) models.StatDelta {
	var delta models.StatDelta

	category := classifier.Classify(play)

	if play.ScoringPlay && play.PointsScored > 0 {
		delta.Points = play.PointsScored

		if classifier.IsThreePointAttempt(play) {
			delta.FGMade = 1
			delta.FGAttempted = 1
			delta.ThreeMade = 1
			delta.ThreeAttempted = 1
		} else if category != models.CategoryFreeThrow {
			delta.FGMade = 1
			delta.FGAttempted = 1
		}
	} else if category == models.CategoryMissedShot {
		delta.FGAttempted = 1
		if classifier.IsThreePointAttempt(play) {
			delta.ThreeAttempted = 1
		}
	}

	if classifier.IsFoul(play) {
		delta.Fouls = 1
	}

	return delta
}
