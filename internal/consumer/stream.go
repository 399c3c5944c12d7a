package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KenjaminButton/aws-courtvision-ai/pkg/models"
)

// StreamConsumer consumes play events from Redis Streams using a consumer
// group. Delivery is at-least-once: the dedup guard downstream makes
// redelivered plays harmless.
type StreamConsumer struct {
	client     *redis.Client
	consumerID string
	groupName  string
}

// Message is one stream entry. Exactly one of Play or Meta is set: the
// ingestion side publishes plays under the "data" field and game metadata
// (team ids/names) under "meta".
type Message struct {
	ID        string
	StreamKey string
	Play      *models.Play
	Meta      *models.GameState
}

// GameID returns the partition key of the message.
func (m Message) GameID() string {
	if m.Play != nil {
		return m.Play.GameID
	}
	if m.Meta != nil {
		return m.Meta.GameID
	}
	return ""
}

// NewStreamConsumer creates a new stream consumer.
func NewStreamConsumer(client *redis.Client, consumerID, groupName string) *StreamConsumer {
	return &StreamConsumer{
		client:     client,
		consumerID: consumerID,
		groupName:  groupName,
	}
}

// ConsumeStream starts consuming from a stream and returns channels for
// messages and errors. Both channels close when the context is cancelled.
func (c *StreamConsumer) ConsumeStream(ctx context.Context, streamKey string) (<-chan Message, <-chan error) {
	messageCh := make(chan Message, 100)
	errorCh := make(chan error, 10)

	// Create consumer group if it doesn't exist
	err := c.client.XGroupCreateMkStream(ctx, streamKey, c.groupName, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		errorCh <- fmt.Errorf("failed to create consumer group: %w", err)
		close(messageCh)
		close(errorCh)
		return messageCh, errorCh
	}

	go func() {
		defer close(messageCh)
		defer close(errorCh)

		for {
			select {
			case <-ctx.Done():
				return
			default:
				streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
					Group:    c.groupName,
					Consumer: c.consumerID,
					Streams:  []string{streamKey, ">"},
					Count:    10,
					Block:    1 * time.Second,
				}).Result()

				if err != nil {
					if err == redis.Nil {
						// No messages, continue
						continue
					}
					if ctx.Err() != nil {
						return
					}
					errorCh <- fmt.Errorf("error reading from stream: %w", err)
					time.Sleep(1 * time.Second)
					continue
				}

				for _, stream := range streams {
					for _, message := range stream.Messages {
						msg, err := c.parseMessage(streamKey, message)
						if err != nil {
							errorCh <- fmt.Errorf("error parsing message %s: %w", message.ID, err)
							// Malformed entries are acked so they do not
							// clog the pending list.
							if ackErr := c.AckMessage(ctx, streamKey, message.ID); ackErr != nil {
								errorCh <- ackErr
							}
							continue
						}

						messageCh <- msg
					}
				}
			}
		}
	}()

	return messageCh, errorCh
}

// parseMessage parses a Redis stream entry into a Message.
func (c *StreamConsumer) parseMessage(streamKey string, xmsg redis.XMessage) (Message, error) {
	if playJSON, ok := xmsg.Values["data"].(string); ok {
		var play models.Play
		if err := json.Unmarshal([]byte(playJSON), &play); err != nil {
			return Message{}, fmt.Errorf("failed to parse play JSON: %w", err)
		}
		return Message{ID: xmsg.ID, StreamKey: streamKey, Play: &play}, nil
	}

	if metaJSON, ok := xmsg.Values["meta"].(string); ok {
		var meta models.GameState
		if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
			return Message{}, fmt.Errorf("failed to parse meta JSON: %w", err)
		}
		return Message{ID: xmsg.ID, StreamKey: streamKey, Meta: &meta}, nil
	}

	return Message{}, fmt.Errorf("missing 'data' or 'meta' field in message")
}

// AckMessage acknowledges a message as processed.
func (c *StreamConsumer) AckMessage(ctx context.Context, streamKey, messageID string) error {
	return c.client.XAck(ctx, streamKey, c.groupName, messageID).Err()
}
