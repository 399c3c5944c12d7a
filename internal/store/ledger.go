package store

import (
	"context"
	"fmt"
	"time"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// AddPlayerStats atomically adds a stat delta to a player's game ledger,
// creating it on first write. The increment happens inside one statement -
// never a read-modify-write of the whole record - so deltas from distinct
// plays commute regardless of delivery order.
func (s *Store) AddPlayerStats(ctx context.Context, playerID, gameID, playerName, teamName string, delta models.StatDelta) error {
	query := `
		INSERT INTO player_game_stats (
			player_id, game_id, player_name, team_name,
			points, fg_made, fg_attempted, three_made, three_attempted, fouls,
			last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (player_id, game_id) DO UPDATE SET
			points          = player_game_stats.points + EXCLUDED.points,
			fg_made         = player_game_stats.fg_made + EXCLUDED.fg_made,
			fg_attempted    = player_game_stats.fg_attempted + EXCLUDED.fg_attempted,
			three_made      = player_game_stats.three_made + EXCLUDED.three_made,
			three_attempted = player_game_stats.three_attempted + EXCLUDED.three_attempted,
			fouls           = player_game_stats.fouls + EXCLUDED.fouls,
			player_name     = CASE WHEN EXCLUDED.player_name <> '' THEN EXCLUDED.player_name
			                       ELSE player_game_stats.player_name END,
			team_name       = CASE WHEN EXCLUDED.team_name <> 'Unknown' THEN EXCLUDED.team_name
			                       ELSE player_game_stats.team_name END,
			last_updated    = EXCLUDED.last_updated
	`

	_, err := s.db.ExecContext(ctx, query,
		playerID,
		gameID,
		playerName,
		teamName,
		delta.Points,
		delta.FGMade,
		delta.FGAttempted,
		delta.ThreeMade,
		delta.ThreeAttempted,
		delta.Fouls,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to add stats for player %s in %s: %w", playerID, gameID, err)
	}

	return nil
}

// GetPlayerStats returns all player ledgers for a game, highest scorers
// first.
func (s *Store) GetPlayerStats(ctx context.Context, gameID string) ([]models.PlayerGameStats, error) {
	query := `
		SELECT player_id, game_id, player_name, team_name,
		       points, fg_made, fg_attempted, three_made, three_attempted, fouls,
		       last_updated
		FROM player_game_stats
		WHERE game_id = $1
		ORDER BY points DESC, player_id
	`

	rows, err := s.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query player stats for %s: %w", gameID, err)
	}
	defer rows.Close()

	var stats []models.PlayerGameStats
	for rows.Next() {
		var stat models.PlayerGameStats
		err := rows.Scan(
			&stat.PlayerID,
			&stat.GameID,
			&stat.PlayerName,
			&stat.TeamName,
			&stat.Points,
			&stat.FGMade,
			&stat.FGAttempted,
			&stat.ThreeMade,
			&stat.ThreeAttempted,
			&stat.Fouls,
			&stat.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player stats: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player stats: %w", err)
	}

	return stats, nil
}
