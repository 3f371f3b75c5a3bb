package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"user-status-service/internal/domain"
)

const (
	// ChannelStatusChanged carries StatusEvent payloads for other services that cache presence
	ChannelStatusChanged = "user_status:changed"

	// ChannelUserDeleted is published by the user service when an account is removed
	ChannelUserDeleted = "user:deleted"
)

// EventType names a status change
type EventType string

const (
	EventStatusSet     EventType = "USER_STATUS_SET"
	EventStatusCleared EventType = "USER_STATUS_CLEARED"
)

// StatusEvent is the payload published on ChannelStatusChanged
type StatusEvent struct {
	ID         string             `json:"id"`
	Type       EventType          `json:"type"`
	UserID     string             `json:"userId"`
	Status     *domain.UserStatus `json:"status,omitempty"`
	OccurredAt int64              `json:"occurredAt"`
}

// NewStatusEvent creates a StatusEvent with a fresh event id
func NewStatusEvent(eventType EventType, userID string, status *domain.UserStatus, occurredAt int64) StatusEvent {
	return StatusEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		Status:     status,
		OccurredAt: occurredAt,
	}
}

// Publisher publishes status change events
type Publisher interface {
	Publish(ctx context.Context, event StatusEvent) error
}

// RedisPublisher publishes events through Redis pub/sub
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// NewRedisPublisher creates a RedisPublisher on ChannelStatusChanged
func NewRedisPublisher(client *redis.Client, logger *zap.Logger) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: ChannelStatusChanged,
		logger:  logger,
	}
}

// Publish marshals the event and publishes it
func (p *RedisPublisher) Publish(ctx context.Context, event StatusEvent) error {
	if p.client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}

	p.logger.Debug("Published status event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("user_id", event.UserID),
	)
	return nil
}

// NoopPublisher drops every event. Used when Redis is not configured.
type NoopPublisher struct{}

// Publish does nothing
func (NoopPublisher) Publish(context.Context, StatusEvent) error { return nil }
