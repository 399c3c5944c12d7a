package models

import "time"

// PlayerGameStats is the per-player-per-game stat ledger. It is only ever
// mutated by atomic increments, never overwritten wholesale, so replays of
// distinct plays commute.
type PlayerGameStats struct {
	PlayerID       string    `json:"playerId"`
	GameID         string    `json:"gameId"`
	PlayerName     string    `json:"playerName"`
	TeamName       string    `json:"teamName"`
	Points         int       `json:"points"`
	FGMade         int       `json:"fgMade"`
	FGAttempted    int       `json:"fgAttempted"`
	ThreeMade      int       `json:"threeMade"`
	ThreeAttempted int       `json:"threeAttempted"`
	Fouls          int       `json:"fouls"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// StatDelta is the per-play contribution to a player's ledger.
type StatDelta struct {
	Points         int `json:"points"`
	FGMade         int `json:"fgMade"`
	FGAttempted    int `json:"fgAttempted"`
	ThreeMade      int `json:"threeMade"`
	ThreeAttempted int `json:"threeAttempted"`
	Fouls          int `json:"fouls"`
}

// IsZero reports whether the delta carries nothing worth writing.
func (d StatDelta) IsZero() bool {
	return d == StatDelta{}
}
