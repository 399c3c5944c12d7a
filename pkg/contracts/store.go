package contracts

import (
	"context"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// PlayStore is the durable play audit log. The play row doubles as the
// dedup record: RecordPlay is the single atomic check-and-write that makes
// the pipeline tolerant of at-least-once delivery.
type PlayStore interface {
	// RecordPlay durably records a play if and only if no play with the
	// same (game, sequence) exists. Returns false when the play was
	// already recorded.
	RecordPlay(ctx context.Context, play models.Play) (bool, error)

	// ListPlays returns all recorded plays of a game in sequence order.
	ListPlays(ctx context.Context, gameID string) ([]models.Play, error)
}

// GameStateStore owns the per-game current-state record.
type GameStateStore interface {
	// UpsertGameState overwrites the game's score/clock fields with the
	// play's values, creating the record on first play.
	UpsertGameState(ctx context.Context, play models.Play) error

	// SetGameTeams fills in home/away team identities if they are not
	// already known. Later calls never overwrite earlier ones.
	SetGameTeams(ctx context.Context, gameID, homeTeamID, awayTeamID string) error

	// UpsertGameMeta applies game metadata (team ids and names).
	UpsertGameMeta(ctx context.Context, state models.GameState) error

	// GetGameState returns the current state of a game, or nil if the game
	// has never been seen.
	GetGameState(ctx context.Context, gameID string) (*models.GameState, error)
}

// StatStore is the per-player-per-game stat ledger. Writes are atomic
// increments so concurrent deltas for one player commute.
type StatStore interface {
	// AddPlayerStats atomically adds a delta to a player's game ledger,
	// creating it on first write.
	AddPlayerStats(ctx context.Context, playerID, gameID, playerName, teamName string, delta models.StatDelta) error

	// GetPlayerStats returns all player ledgers for a game.
	GetPlayerStats(ctx context.Context, gameID string) ([]models.PlayerGameStats, error)
}

// PatternStore holds detected patterns keyed by (game, type, index).
type PatternStore interface {
	// ReplacePatterns idempotently stores the detected pattern set for one
	// (game, type). If the set is unchanged it writes nothing. Returns the
	// patterns that were not present before this call.
	ReplacePatterns(ctx context.Context, gameID string, patternType models.PatternType, patterns []models.Pattern) ([]models.Pattern, error)

	// ListPatterns returns stored patterns for a game, optionally filtered
	// by type (empty type means all).
	ListPatterns(ctx context.Context, gameID string, patternType models.PatternType) ([]models.Pattern, error)
}

// Store is the full durable-store surface the processing engine needs.
type Store interface {
	PlayStore
	GameStateStore
	StatStore
	PatternStore
}

// StateCache is the hot-path cache of live game state read by the push
// layer and score displays. Best effort: cache errors never fail an event.
type StateCache interface {
	WriteGameState(ctx context.Context, state models.GameState) error
}

// PatternPublisher fans newly detected patterns out to downstream
// consumers.
type PatternPublisher interface {
	Publish(ctx context.Context, pattern models.Pattern) error
}
