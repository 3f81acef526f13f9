package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"cinesocial/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const AdminEventsChannel = "admin:events"

// RedisPublisher fans admin events out over a redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *logger.Logger
}

func NewRedisPublisher(client *redis.Client, log *logger.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, channel: AdminEventsChannel, logger: log}
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, body).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.channel, err)
	}
	return nil
}

// Close leaves the redis client open; it is shared with other components.
func (p *RedisPublisher) Close() error { return nil }

// Subscribe delivers events from the channel until ctx is done.
func (p *RedisPublisher) Subscribe(ctx context.Context, handler func(Event) error) error {
	sub := p.client.Subscribe(ctx, p.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", p.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				p.logger.Error("Failed to unmarshal event from %s: %v", p.channel, err)
				continue
			}
			if err := handler(event); err != nil {
				p.logger.Error("Handler failed for %s: %v", event.Type, err)
			}
		}
	}
}
