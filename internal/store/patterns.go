package store

import (
	"context"
	"fmt"
	"time"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// ReplacePatterns idempotently stores the detected pattern set for one
// (game, type). The fresh set is compared against what is stored; when
// they match, nothing is written. Otherwise the stored set is replaced in
// one transaction, so a detection run over a longer history supersedes the
// earlier, smaller detections rather than merging with them. Returns the
// patterns that were not present before the call - those are the ones
// worth announcing downstream.
func (s *Store) ReplacePatterns(ctx context.Context, gameID string, patternType models.PatternType, patterns []models.Pattern) ([]models.Pattern, error) {
	existing, err := s.ListPatterns(ctx, gameID, patternType)
	if err != nil {
		return nil, err
	}

	existingKeys := make(map[string]bool, len(existing))
	for _, pattern := range existing {
		existingKeys[pattern.Key()] = true
	}

	var fresh []models.Pattern
	changed := len(patterns) != len(existing)
	for _, pattern := range patterns {
		if !existingKeys[pattern.Key()] {
			fresh = append(fresh, pattern)
			changed = true
		}
	}
	if !changed {
		return nil, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin pattern transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM patterns WHERE game_id = $1 AND pattern_type = $2`,
		gameID, string(patternType),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to clear %s patterns for %s: %w", patternType, gameID, err)
	}

	insertQuery := `
		INSERT INTO patterns (
			game_id, pattern_type, idx, team_id, is_home_team, description, period,
			points_for, points_against, window_size, start_sequence, end_sequence,
			player_id, player_name, consecutive_makes, previous_deficit, new_score,
			detected_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	detectedAt := time.Now().UTC()
	for i, pattern := range patterns {
		_, err = tx.ExecContext(ctx, insertQuery,
			gameID,
			string(patternType),
			i+1,
			pattern.TeamID,
			pattern.IsHomeTeam,
			pattern.Description,
			pattern.Period,
			pattern.PointsFor,
			pattern.PointsAgainst,
			pattern.WindowSize,
			pattern.StartSequence,
			pattern.EndSequence,
			pattern.PlayerID,
			pattern.PlayerName,
			pattern.ConsecutiveMakes,
			pattern.PreviousDeficit,
			pattern.NewScore,
			detectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert %s pattern for %s: %w", patternType, gameID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit %s patterns for %s: %w", patternType, gameID, err)
	}

	return fresh, nil
}

// ListPatterns returns stored patterns for a game in index order,
// optionally filtered by type (empty type means all).
func (s *Store) ListPatterns(ctx context.Context, gameID string, patternType models.PatternType) ([]models.Pattern, error) {
	query := `
		SELECT game_id, pattern_type, team_id, is_home_team, description, period,
		       points_for, points_against, window_size, start_sequence, end_sequence,
		       player_id, player_name, consecutive_makes, previous_deficit, new_score,
		       detected_at
		FROM patterns
		WHERE game_id = $1 AND ($2 = '' OR pattern_type = $2)
		ORDER BY pattern_type, idx
	`

	rows, err := s.db.QueryContext(ctx, query, gameID, string(patternType))
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns for %s: %w", gameID, err)
	}
	defer rows.Close()

	var patterns []models.Pattern
	for rows.Next() {
		var pattern models.Pattern
		var patternTypeStr string
		err := rows.Scan(
			&pattern.GameID,
			&patternTypeStr,
			&pattern.TeamID,
			&pattern.IsHomeTeam,
			&pattern.Description,
			&pattern.Period,
			&pattern.PointsFor,
			&pattern.PointsAgainst,
			&pattern.WindowSize,
			&pattern.StartSequence,
			&pattern.EndSequence,
			&pattern.PlayerID,
			&pattern.PlayerName,
			&pattern.ConsecutiveMakes,
			&pattern.PreviousDeficit,
			&pattern.NewScore,
			&pattern.DetectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pattern: %w", err)
		}
		pattern.Type = models.PatternType(patternTypeStr)
		patterns = append(patterns, pattern)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patterns: %w", err)
	}

	return patterns, nil
}
