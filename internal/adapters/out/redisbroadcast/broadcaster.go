// Package redisbroadcast pushes admin dashboard events over Redis Pub/Sub.
// Dashboard gateways subscribe to one well-known channel and fan the events
// out to their connected admin sessions.
package redisbroadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"booking/internal/pkg/errs"
)

// Channel is the Pub/Sub channel admin gateways subscribe to.
const Channel = "admin:events"

// envelope is the wire format of one broadcast event.
type envelope struct {
	Event   string    `json:"event"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

// RedisAdminBroadcaster implements ports.AdminBroadcaster over Redis Pub/Sub.
type RedisAdminBroadcaster struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisAdminBroadcaster creates a broadcaster over the given client.
func NewRedisAdminBroadcaster(client *redis.Client, logger *slog.Logger) (*RedisAdminBroadcaster, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &RedisAdminBroadcaster{
		client: client,
		logger: logger.With("component", "redisbroadcast"),
	}, nil
}

// EmitToAdmin publishes one named event. A publish with zero subscribers is
// not an error; nobody is watching the dashboard.
func (b *RedisAdminBroadcaster) EmitToAdmin(ctx context.Context, eventName string, payload any) error {
	if eventName == "" {
		return errs.NewValueIsRequiredError("eventName")
	}

	body, err := json.Marshal(envelope{Event: eventName, Payload: payload, At: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal admin event %q: %w", eventName, err)
	}

	receivers, err := b.client.Publish(ctx, Channel, body).Result()
	if err != nil {
		return fmt.Errorf("publish admin event %q: %w", eventName, err)
	}

	b.logger.Debug("admin event published", "event", eventName, "receivers", receivers)
	return nil
}
