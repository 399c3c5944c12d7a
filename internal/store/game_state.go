package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// UpsertGameState overwrites the game's score/clock fields with the play's
// values. No arithmetic - the feed's scores are cumulative, so last writer
// in sequence order wins.
func (s *Store) UpsertGameState(ctx context.Context, play models.Play) error {
	query := `
		INSERT INTO game_states (game_id, home_score, away_score, period, clock, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (game_id) DO UPDATE SET
			home_score   = EXCLUDED.home_score,
			away_score   = EXCLUDED.away_score,
			period       = EXCLUDED.period,
			clock        = EXCLUDED.clock,
			last_updated = EXCLUDED.last_updated
	`

	_, err := s.db.ExecContext(ctx, query,
		play.GameID,
		play.HomeScore,
		play.AwayScore,
		play.Period,
		play.Clock,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game state for %s: %w", play.GameID, err)
	}

	return nil
}

// SetGameTeams fills in the home/away team ids if they are not already
// known. Team identity is immutable once set.
func (s *Store) SetGameTeams(ctx context.Context, gameID, homeTeamID, awayTeamID string) error {
	query := `
		UPDATE game_states SET
			home_team_id = CASE WHEN home_team_id = '' THEN $2 ELSE home_team_id END,
			away_team_id = CASE WHEN away_team_id = '' THEN $3 ELSE away_team_id END
		WHERE game_id = $1
	`

	_, err := s.db.ExecContext(ctx, query, gameID, homeTeamID, awayTeamID)
	if err != nil {
		return fmt.Errorf("failed to set teams for %s: %w", gameID, err)
	}

	return nil
}

// UpsertGameMeta applies game metadata: team ids and display names. Score
// and clock fields are left to the play pipeline.
func (s *Store) UpsertGameMeta(ctx context.Context, state models.GameState) error {
	query := `
		INSERT INTO game_states (
			game_id, home_team_id, away_team_id, home_team_name, away_team_name, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (game_id) DO UPDATE SET
			home_team_id   = EXCLUDED.home_team_id,
			away_team_id   = EXCLUDED.away_team_id,
			home_team_name = EXCLUDED.home_team_name,
			away_team_name = EXCLUDED.away_team_name,
			last_updated   = EXCLUDED.last_updated
	`

	_, err := s.db.ExecContext(ctx, query,
		state.GameID,
		state.HomeTeamID,
		state.AwayTeamID,
		state.HomeTeamName,
		state.AwayTeamName,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert game meta for %s: %w", state.GameID, err)
	}

	return nil
}

// GetGameState returns the current state of a game, or nil if the game has
// never been seen.
func (s *Store) GetGameState(ctx context.Context, gameID string) (*models.GameState, error) {
	query := `
		SELECT game_id, home_team_id, away_team_id, home_team_name, away_team_name,
		       home_score, away_score, period, clock, last_updated
		FROM game_states
		WHERE game_id = $1
	`

	var state models.GameState
	err := s.db.QueryRowContext(ctx, query, gameID).Scan(
		&state.GameID,
		&state.HomeTeamID,
		&state.AwayTeamID,
		&state.HomeTeamName,
		&state.AwayTeamName,
		&state.HomeScore,
		&state.AwayScore,
		&state.Period,
		&state.Clock,
		&state.LastUpdated,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query game state for %s: %w", gameID, err)
	}

	return &state, nil
}
