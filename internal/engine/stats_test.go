package engine_test

import (
	"testing"

	"github.com/KenjaminButton/aws-courtvision-ai/internal/engine"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
	"github.com/KenjaminButton/aws-courtvision-ai/sports/basketball"
)

func TestComputeStatDelta(t *testing.T) {
	classifier := basketball.NewClassifier()

	tests := []struct {
		name string
		play models.Play
		want models.StatDelta
	}{
		{
			name: "made two",
			play: models.Play{Text: "Hannah Stuelke made Layup.", PlayType: "made shot", ScoringPlay: true, PointsScored: 2},
			want: models.StatDelta{Points: 2, FGMade: 1, FGAttempted: 1},
		},
		{
			name: "made three",
			play: models.Play{Text: "Lucy Olsen made Three Point Jumper.", PlayType: "made shot", ScoringPlay: true, PointsScored: 3},
			want: models.StatDelta{Points: 3, FGMade: 1, FGAttempted: 1, ThreeMade: 1, ThreeAttempted: 1},
		},
		{
			name: "made free throw scores points only",
			play: models.Play{Text: "Kylie Feuerbach made Free Throw 1 of 2.", PlayType: "free throw", ScoringPlay: true, PointsScored: 1},
			want: models.StatDelta{Points: 1},
		},
		{
			name: "missed two",
			play: models.Play{Text: "Lucy Olsen missed Jumper.", PlayType: "missed shot"},
			want: models.StatDelta{FGAttempted: 1},
		},
		{
			name: "missed three",
			play: models.Play{Text: "Sydney Affolter missed Three Point Jumper.", PlayType: "missed shot"},
			want: models.StatDelta{FGAttempted: 1, ThreeAttempted: 1},
		},
		{
			name: "missed free throw is a no-op",
			play: models.Play{Text: "Kylie Feuerbach missed Free Throw 2 of 2.", PlayType: "free throw"},
			want: models.StatDelta{},
		},
		{
			name: "foul",
			play: models.Play{Text: "Foul on Taylor McCabe.", PlayType: "personal foul"},
			want: models.StatDelta{Fouls: 1},
		},
		{
			name: "turnover is a no-op",
			play: models.Play{Text: "Hannah Stuelke Turnover.", PlayType: "turnover"},
			want: models.StatDelta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.ComputeStatDelta(classifier, tt.play)
			if got != tt.want {
				t.Errorf("ComputeStatDelta() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Ledger increments commute: any application order of a delta set lands on
// the same totals.
func TestStatDeltas_OrderIndependent(t *testing.T) {
	deltas := []models.StatDelta{
		{Points: 2, FGMade: 1, FGAttempted: 1},
		{Points: 3, FGMade: 1, FGAttempted: 1, ThreeMade: 1, ThreeAttempted: 1},
		{FGAttempted: 1},
		{Points: 1},
		{Fouls: 1},
	}

	apply := func(order []int) models.StatDelta {
		var total models.StatDelta
		for _, i := range order {
			d := deltas[i]
			total.Points += d.Points
			total.FGMade += d.FGMade
			total.FGAttempted += d.FGAttempted
			total.ThreeMade += d.ThreeMade
			total.ThreeAttempted += d.ThreeAttempted
			total.Fouls += d.Fouls
		}
		return total
	}

	forward := apply([]int{0, 1, 2, 3, 4})
	reversed := apply([]int{4, 3, 2, 1, 0})
	shuffled := apply([]int{2, 4, 0, 3, 1})

	if forward != reversed || forward != shuffled {
		t.Errorf("delta application is order dependent: %+v vs %+v vs %+v", forward, reversed, shuffled)
	}

	want := models.StatDelta{Points: 6, FGMade: 2, FGAttempted: 3, ThreeMade: 1, ThreeAttempted: 1, Fouls: 1}
	if forward != want {
		t.Errorf("totals = %+v, want %+v", forward, want)
	}
	if forward.FGMade > forward.FGAttempted {
		t.Errorf("fg_made %d > fg_attempted %d", forward.FGMade, forward.FGAttempted)
	}
	if forward.ThreeMade > forward.ThreeAttempted || forward.ThreeAttempted > forward.FGAttempted {
		t.Errorf("three-point invariant violated: %+v", forward)
	}
}
