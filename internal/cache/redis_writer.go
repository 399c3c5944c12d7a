package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// LiveGameTTL bounds how long a cached game state survives without a
// refresh. Live games are written on every play, so only an abandoned game
// ever expires.
const LiveGameTTL = 2 * time.Hour

// RedisWriter mirrors the current game state into Redis for the push layer
// and score displays, keeping the hot read path off Postgres.
type RedisWriter struct {
	client *redis.Client
}

// NewRedisWriter creates a new Redis state writer.
func NewRedisWriter(client *redis.Client) *RedisWriter {
	return &RedisWriter{
		client: client,
	}
}

// WriteGameState stores the game state JSON under game:state:{game_id}.
func (w *RedisWriter) WriteGameState(ctx context.Context, state models.GameState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	key := fmt.Sprintf("game:state:%s", state.GameID)
	if err := w.client.Set(ctx, key, stateJSON, LiveGameTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache game state %s: %w", state.GameID, err)
	}

	return nil
}
