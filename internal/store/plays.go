package store

import (
	"context"
	"fmt"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// RecordPlay durably records a play if no play with the same
// (game_id, sequence) exists yet. The conditional insert is the dedup
// guard: it is one atomic statement, not a read followed by a write, so
// concurrent redelivery of the same play cannot race past it.
func (s *Store) RecordPlay(ctx context.Context, play models.Play) (bool, error) {
	query := `
		INSERT INTO plays (
			game_id, sequence, period, clock, team_id, player_id, player_name,
			play_text, play_type, scoring_play, points_scored,
			home_score, away_score, ts
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (game_id, sequence) DO NOTHING
	`

	result, err := s.db.ExecContext(ctx, query,
		play.GameID,
		play.Sequence,
		play.Period,
		play.Clock,
		play.TeamID,
		play.PlayerID,
		play.PlayerName,
		play.Text,
		play.PlayType,
		play.ScoringPlay,
		play.PointsScored,
		play.HomeScore,
		play.AwayScore,
		play.Timestamp,
	)
	if err != nil {
		return false, fmt.Errorf("failed to record play %s#%d: %w", play.GameID, play.Sequence, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result for play %s#%d: %w", play.GameID, play.Sequence, err)
	}

	return inserted > 0, nil
}

// ListPlays returns all recorded plays of a game in sequence order.
func (s *Store) ListPlays(ctx context.Context, gameID string) ([]models.Play, error) {
	query := `
		SELECT game_id, sequence, period, clock, team_id, player_id, player_name,
		       play_text, play_type, scoring_play, points_scored,
		       home_score, away_score, ts
		FROM plays
		WHERE game_id = $1
		ORDER BY sequence
	`

	rows, err := s.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays for %s: %w", gameID, err)
	}
	defer rows.Close()

	var plays []models.Play
	for rows.Next() {
		var play models.Play
		err := rows.Scan(
			&play.GameID,
			&play.Sequence,
			&play.Period,
			&play.Clock,
			&play.TeamID,
			&play.PlayerID,
			&play.PlayerName,
			&play.Text,
			&play.PlayType,
			&play.ScoringPlay,
			&play.PointsScored,
			&play.HomeScore,
			&play.AwayScore,
			&play.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan play: %w", err)
		}
		plays = append(plays, play)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plays: %w", err)
	}

	return plays, nil
}
