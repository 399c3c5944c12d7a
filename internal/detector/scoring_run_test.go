package detector_test

import (
	"context"
	"testing"

	"github.com/KenjaminButton/aws-courtvision-ai/internal/detector"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
	"github.com/KenjaminButton/aws-courtvision-ai/sports/basketball"
)

func newRunDetector() *detector.ScoringRunDetector {
	return detector.NewScoringRunDetector(basketball.NewConfig())
}

// A 10-1 home burst inside the first 25 plays of a 30-play period must
// surface as exactly one 25-play-window run.
func TestScoringRunDetector_DetectsBurst(t *testing.T) {
	var plays []models.Play
	for seq := int64(1); seq <= 30; seq++ {
		switch seq {
		case 2, 6, 10, 14, 18:
			plays = append(plays, scoringPlay(seq, 1, homeTeamID, 2))
		case 12:
			plays = append(plays, scoringPlay(seq, 1, awayTeamID, 1))
		default:
			plays = append(plays, neutralPlay(seq, 1))
		}
	}

	runs, err := newRunDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}

	run := runs[0]
	if run.Type != models.PatternScoringRun {
		t.Errorf("Type = %s, want %s", run.Type, models.PatternScoringRun)
	}
	if run.TeamID != homeTeamID || !run.IsHomeTeam {
		t.Errorf("run attributed to team %s (home=%v), want home team %s", run.TeamID, run.IsHomeTeam, homeTeamID)
	}
	if run.PointsFor != 10 || run.PointsAgainst != 1 {
		t.Errorf("run = %d-%d, want 10-1", run.PointsFor, run.PointsAgainst)
	}
	if run.WindowSize != 25 {
		t.Errorf("WindowSize = %d, want 25", run.WindowSize)
	}
	if run.Period != 1 {
		t.Errorf("Period = %d, want 1", run.Period)
	}
	if run.StartSequence != 1 || run.EndSequence != 25 {
		t.Errorf("window = [%d, %d], want [1, 25]", run.StartSequence, run.EndSequence)
	}
}

// Overlapping qualifying windows for the same team and period must collapse
// to the single candidate with the most points scored.
func TestScoringRunDetector_DeduplicatesOverlappingWindows(t *testing.T) {
	// 40 plays: home scores 2 on every even play up to 30 (15 baskets),
	// away never scores. Dozens of 25-play windows qualify.
	var plays []models.Play
	for seq := int64(1); seq <= 40; seq++ {
		if seq <= 30 && seq%2 == 0 {
			plays = append(plays, scoringPlay(seq, 1, homeTeamID, 2))
		} else {
			plays = append(plays, neutralPlay(seq, 1))
		}
	}

	runs, err := newRunDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1 after dedup", len(runs))
	}

	// A 25-play window fits at most 13 baskets (26 points); the 40-play
	// dominance window covers all 15 for 30.
	if runs[0].PointsFor != 30 {
		t.Errorf("PointsFor = %d, want 30 (the biggest window wins)", runs[0].PointsFor)
	}
}

// Periods shorter than the minimum play count are never scanned.
func TestScoringRunDetector_SkipsShortPeriods(t *testing.T) {
	var plays []models.Play
	for seq := int64(1); seq <= 20; seq++ {
		plays = append(plays, scoringPlay(seq, 1, homeTeamID, 3))
	}

	runs, err := newRunDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs from a 20-play period, want 0", len(runs))
	}
}

// Runs never straddle a quarter break: scoring split across two periods
// that would qualify combined must not be reported.
func TestScoringRunDetector_PeriodScoped(t *testing.T) {
	var plays []models.Play
	seq := int64(1)
	// 5 points at the end of Q1, 5 more at the start of Q2, quiet otherwise.
	for ; seq <= 24; seq++ {
		plays = append(plays, neutralPlay(seq, 1))
	}
	plays = append(plays, scoringPlay(seq, 1, homeTeamID, 2))
	seq++
	for ; seq <= 26; seq++ {
		plays = append(plays, scoringPlay(seq, 1, homeTeamID, 3))
	}
	plays = append(plays, scoringPlay(seq, 2, homeTeamID, 3))
	seq++
	plays = append(plays, scoringPlay(seq, 2, homeTeamID, 2))
	seq++
	for ; seq <= 52; seq++ {
		plays = append(plays, neutralPlay(seq, 2))
	}

	runs, err := newRunDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, run := range runs {
		if run.PointsFor > 5 {
			t.Errorf("run of %d points spans periods: %+v", run.PointsFor, run)
		}
	}
}

// Without known team identities the detector has nothing to attribute
// points to and must stay silent.
func TestScoringRunDetector_RequiresTeamIdentity(t *testing.T) {
	var plays []models.Play
	for seq := int64(1); seq <= 30; seq++ {
		plays = append(plays, scoringPlay(seq, 1, homeTeamID, 2))
	}

	game := testGame()
	game.HomeTeamID = ""
	game.AwayTeamID = ""

	runs, err := newRunDetector().Detect(context.Background(), game, plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs without team identity, want 0", len(runs))
	}
}
