package models

import (
	"fmt"
	"time"
)

// GameState is the authoritative current state of one game. Score, period
// and clock are overwritten by every processed play (last-writer-wins in
// sequence order); team identities arrive with game metadata or are
// inferred from the first scoring plays.
type GameState struct {
	GameID       string    `json:"gameId"`
	HomeTeamID   string    `json:"homeTeamId"`
	AwayTeamID   string    `json:"awayTeamId"`
	HomeTeamName string    `json:"homeTeamName"`
	AwayTeamName string    `json:"awayTeamName"`
	HomeScore    int       `json:"homeScore"`
	AwayScore    int       `json:"awayScore"`
	Period       int       `json:"period"`
	Clock        string    `json:"clock"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// IsHomeTeam reports whether teamID is the home side.
func (g GameState) IsHomeTeam(teamID string) bool {
	return teamID != "" && teamID == g.HomeTeamID
}

// TeamName resolves a team id to a display name. Falls back to the raw id,
// then "Unknown" - an unresolved name is a non-fatal condition.
func (g GameState) TeamName(teamID string) string {
	switch teamID {
	case "":
		return "Unknown"
	case g.HomeTeamID:
		if g.HomeTeamName != "" {
			return g.HomeTeamName
		}
	case g.AwayTeamID:
		if g.AwayTeamName != "" {
			return g.AwayTeamName
		}
	}
	return teamID
}

// PeriodLabel returns the display label for a period (Q1..Q4, then OT1+).
func PeriodLabel(period int) string {
	if period > 4 {
		return fmt.Sprintf("OT%d", period-4)
	}
	return fmt.Sprintf("Q%d", period)
}
