package detector_test

import (
	"context"
	"testing"

	"github.com/KenjaminButton/aws-courtvision-ai/internal/detector"
	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
	"github.com/KenjaminButton/aws-courtvision-ai/sports/basketball"
)

func newStreakDetector() *detector.HotStreakDetector {
	return detector.NewHotStreakDetector(basketball.NewConfig(), basketball.NewClassifier())
}

func madeFG(seq int64, playerID, name string) models.Play {
	return shotPlay(seq, 1, playerID, name, name+" made Layup.", "made shot", true, 2)
}

func missedFG(seq int64, playerID, name string) models.Play {
	return shotPlay(seq, 1, playerID, name, name+" missed Jumper.", "missed shot", false, 0)
}

func madeFT(seq int64, playerID, name string) models.Play {
	return shotPlay(seq, 1, playerID, name, name+" made Free Throw 1 of 2.", "free throw", true, 1)
}

// Five consecutive makes yield exactly one streak record of length five.
func TestHotStreakDetector_LongestStreakWins(t *testing.T) {
	var plays []models.Play
	for seq := int64(1); seq <= 5; seq++ {
		plays = append(plays, madeFG(seq, "p1", "Hannah Stuelke"))
	}

	streaks, err := newStreakDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(streaks) != 1 {
		t.Fatalf("got %d streaks, want 1", len(streaks))
	}

	streak := streaks[0]
	if streak.ConsecutiveMakes != 5 {
		t.Errorf("ConsecutiveMakes = %d, want 5", streak.ConsecutiveMakes)
	}
	if streak.PlayerID != "p1" || streak.PlayerName != "Hannah Stuelke" {
		t.Errorf("player = %s/%s, want p1/Hannah Stuelke", streak.PlayerID, streak.PlayerName)
	}
}

// A miss resets the counter: two separate 3-make streaks are two separate
// candidates, not one 6-make streak, and dedup keeps one record per player.
func TestHotStreakDetector_MissResetsStreak(t *testing.T) {
	var plays []models.Play
	for seq := int64(1); seq <= 3; seq++ {
		plays = append(plays, madeFG(seq, "p1", "Lucy Olsen"))
	}
	plays = append(plays, missedFG(4, "p1", "Lucy Olsen"))
	for seq := int64(5); seq <= 7; seq++ {
		plays = append(plays, madeFG(seq, "p1", "Lucy Olsen"))
	}

	streaks, err := newStreakDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(streaks) != 1 {
		t.Fatalf("got %d streaks, want 1", len(streaks))
	}
	if streaks[0].ConsecutiveMakes != 3 {
		t.Errorf("ConsecutiveMakes = %d, want 3 (never a combined 6)", streaks[0].ConsecutiveMakes)
	}
}

// Free throws neither extend nor break a streak.
func TestHotStreakDetector_FreeThrowsIgnored(t *testing.T) {
	plays := []models.Play{
		madeFG(1, "p1", "Hannah Stuelke"),
		madeFG(2, "p1", "Hannah Stuelke"),
		madeFT(3, "p1", "Hannah Stuelke"),
		shotPlay(4, 1, "p1", "Hannah Stuelke", "Hannah Stuelke missed Free Throw 2 of 2.", "free throw", false, 0),
		madeFG(5, "p1", "Hannah Stuelke"),
	}

	streaks, err := newStreakDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(streaks) != 1 {
		t.Fatalf("got %d streaks, want 1", len(streaks))
	}
	if streaks[0].ConsecutiveMakes != 3 {
		t.Errorf("ConsecutiveMakes = %d, want 3 (free throws ignored)", streaks[0].ConsecutiveMakes)
	}
}

// Two makes never qualify.
func TestHotStreakDetector_BelowThreshold(t *testing.T) {
	plays := []models.Play{
		madeFG(1, "p1", "Hannah Stuelke"),
		madeFG(2, "p1", "Hannah Stuelke"),
	}

	streaks, err := newStreakDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(streaks) != 0 {
		t.Errorf("got %d streaks from 2 makes, want 0", len(streaks))
	}
}

// Streaks are tracked per player; interleaved makes do not mix.
func TestHotStreakDetector_PerPlayer(t *testing.T) {
	var plays []models.Play
	seq := int64(1)
	for i := 0; i < 3; i++ {
		plays = append(plays, madeFG(seq, "p1", "Hannah Stuelke"))
		seq++
		plays = append(plays, madeFG(seq, "p2", "Lucy Olsen"))
		seq++
	}
	plays = append(plays, madeFG(seq, "p2", "Lucy Olsen"))

	streaks, err := newStreakDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(streaks) != 2 {
		t.Fatalf("got %d streaks, want 2", len(streaks))
	}

	byPlayer := make(map[string]int)
	for _, streak := range streaks {
		byPlayer[streak.PlayerID] = streak.ConsecutiveMakes
	}
	if byPlayer["p1"] != 3 {
		t.Errorf("p1 streak = %d, want 3", byPlayer["p1"])
	}
	if byPlayer["p2"] != 4 {
		t.Errorf("p2 streak = %d, want 4", byPlayer["p2"])
	}
}

// Player names missing from the feed are recovered from the play text.
func TestHotStreakDetector_NameFromText(t *testing.T) {
	var plays []models.Play
	for seq := int64(1); seq <= 3; seq++ {
		plays = append(plays, shotPlay(seq, 1, "p9", "", "Sydney Affolter made Three Point Jumper.", "made shot", true, 3))
	}

	streaks, err := newStreakDetector().Detect(context.Background(), testGame(), plays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(streaks) != 1 {
		t.Fatalf("got %d streaks, want 1", len(streaks))
	}
	if streaks[0].PlayerName != "Sydney Affolter" {
		t.Errorf("PlayerName = %q, want extracted %q", streaks[0].PlayerName, "Sydney Affolter")
	}
}
