package models

import (
	"fmt"
	"time"
)

// PatternType identifies the kind of detected pattern.
type PatternType string

const (
	PatternScoringRun    PatternType = "scoring_run"
	PatternHotStreak     PatternType = "hot_streak"
	PatternMomentumShift PatternType = "momentum_shift"
)

// Pattern is an immutable detection result consumed by the narrative and
// analytics layers. One struct carries all three variants; the fields in
// use depend on Type.
type Pattern struct {
	GameID      string      `json:"gameId"`
	Type        PatternType `json:"patternType"`
	TeamID      string      `json:"teamId"`
	IsHomeTeam  bool        `json:"isHomeTeam"`
	Description string      `json:"description"`
	Period      int         `json:"period"`
	DetectedAt  time.Time   `json:"detectedAt"`

	// Scoring run fields
	PointsFor     int   `json:"pointsFor,omitempty"`
	PointsAgainst int   `json:"pointsAgainst,omitempty"`
	WindowSize    int   `json:"windowSize,omitempty"`
	StartSequence int64 `json:"startSequence,omitempty"`
	EndSequence   int64 `json:"endSequence,omitempty"`

	// Hot streak fields
	PlayerID         string `json:"playerId,omitempty"`
	PlayerName       string `json:"playerName,omitempty"`
	ConsecutiveMakes int    `json:"consecutiveMakes,omitempty"`

	// Momentum shift fields
	PreviousDeficit int    `json:"previousDeficit,omitempty"`
	NewScore        string `json:"newScore,omitempty"`
}

// Key returns the pattern's natural identity within its game and type.
// Two detector runs over the same play history produce the same keys, which
// is what makes pattern storage idempotent.
func (p Pattern) Key() string {
	switch p.Type {
	case PatternScoringRun:
		return fmt.Sprintf("run|%d|%s|%d-%d|w%d|%d-%d",
			p.Period, p.TeamID, p.PointsFor, p.PointsAgainst, p.WindowSize, p.StartSequence, p.EndSequence)
	case PatternHotStreak:
		return fmt.Sprintf("streak|%s|%d", p.PlayerID, p.ConsecutiveMakes)
	case PatternMomentumShift:
		return fmt.Sprintf("shift|%s|%d|%s|%d", p.TeamID, p.PreviousDeficit, p.NewScore, p.Period)
	default:
		return fmt.Sprintf("%s|%s|%d", p.Type, p.TeamID, p.Period)
	}
}
