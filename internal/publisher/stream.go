package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// StreamPublisher publishes newly detected patterns to Redis Streams for
// the narrative generators and the push layer.
type StreamPublisher struct {
	client *redis.Client
}

// NewStreamPublisher creates a new stream publisher.
func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{
		client: client,
	}
}

// Publish writes a pattern to both the per-game stream and the global
// patterns.detected stream.
func (p *StreamPublisher) Publish(ctx context.Context, pattern models.Pattern) error {
	patternJSON, err := json.Marshal(pattern)
	if err != nil {
		return fmt.Errorf("failed to marshal pattern: %w", err)
	}

	streams := []string{
		fmt.Sprintf("patterns.detected.%s", pattern.GameID),
		"patterns.detected",
	}

	for _, streamKey := range streams {
		_, err = p.client.XAdd(ctx, &redis.XAddArgs{
			Stream: streamKey,
			Values: map[string]interface{}{
				"pattern": string(patternJSON),
			},
		}).Result()

		if err != nil {
			return fmt.Errorf("failed to publish to stream %s: %w", streamKey, err)
		}
	}

	return nil
}
