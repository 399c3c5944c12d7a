package models

import (
	"fmt"
	"time"
)

// Play is a single play-by-play event from the feed. Plays are immutable
// facts: sequence is unique and strictly increasing within a game, and the
// home/away scores are cumulative post-play totals.
type Play struct {
	GameID       string    `json:"gameId"`
	Sequence     int64     `json:"sequence"`
	Period       int       `json:"period"`
	Clock        string    `json:"clock"`
	TeamID       string    `json:"teamId"`
	PlayerID     string    `json:"playerId,omitempty"`
	PlayerName   string    `json:"playerName,omitempty"`
	Text         string    `json:"text"`
	PlayType     string    `json:"playType"`
	ScoringPlay  bool      `json:"scoringPlay"`
	PointsScored int       `json:"pointsScored"`
	HomeScore    int       `json:"homeScore"`
	AwayScore    int       `json:"awayScore"`
	Timestamp    time.Time `json:"timestamp"`
}

// Validate checks the fields required to process a play at all.
func (p Play) Validate() error {
	if p.GameID == "" {
		return fmt.Errorf("play missing gameId")
	}
	if p.Sequence <= 0 {
		return fmt.Errorf("play %s has invalid sequence %d", p.GameID, p.Sequence)
	}
	if p.Period <= 0 {
		return fmt.Errorf("play %s#%d has invalid period %d", p.GameID, p.Sequence, p.Period)
	}
	return nil
}

// PlayCategory is the enumerated result of play classification. The
// classification itself (substring matching on the feed's free text) lives
// in the sports packages so it can be swapped for a structured upstream
// field without touching detector logic.
type PlayCategory string

const (
	CategoryMadeShot   PlayCategory = "made_shot"
	CategoryMissedShot PlayCategory = "missed_shot"
	CategoryFreeThrow  PlayCategory = "free_throw"
	CategoryFoul       PlayCategory = "foul"
	CategoryOther      PlayCategory = "other"
)
