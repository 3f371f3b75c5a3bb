package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// StatusRemover removes the status of a user
type StatusRemover interface {
	RemoveUserStatus(ctx context.Context, userID string) (bool, error)
}

// userDeletedPayload is the message the user service publishes on ChannelUserDeleted
type userDeletedPayload struct {
	UserID string `json:"userId"`
}

// UserDeletedSubscriber removes the status of users whose account was deleted
type UserDeletedSubscriber struct {
	client  *redis.Client
	remover StatusRemover
	logger  *zap.Logger
	channel string
	timeout time.Duration
}

// NewUserDeletedSubscriber creates a subscriber on ChannelUserDeleted
func NewUserDeletedSubscriber(client *redis.Client, remover StatusRemover, logger *zap.Logger) *UserDeletedSubscriber {
	return &UserDeletedSubscriber{
		client:  client,
		remover: remover,
		logger:  logger,
		channel: ChannelUserDeleted,
		timeout: 5 * time.Second,
	}
}

// Start subscribes and consumes messages until ctx is cancelled
func (s *UserDeletedSubscriber) Start(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	pubsub := s.client.Subscribe(ctx, s.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}

	s.logger.Info("Subscribed to user deletion events", zap.String("channel", s.channel))

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("User deletion subscriber stopped")
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if err := s.HandleMessage(ctx, msg.Payload); err != nil {
					s.logger.Error("Failed to handle user deletion event",
						zap.String("payload", msg.Payload),
						zap.Error(err),
					)
				}
			}
		}
	}()

	return nil
}

// HandleMessage removes the status of the user named in payload.
// The payload is either {"userId": "..."} or the bare user id.
func (s *UserDeletedSubscriber) HandleMessage(ctx context.Context, payload string) error {
	userID, err := parseUserDeleted(payload)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	removed, err := s.remover.RemoveUserStatus(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to remove status of deleted user %q: %w", userID, err)
	}

	s.logger.Info("Handled user deletion",
		zap.String("user_id", userID),
		zap.Bool("status_removed", removed),
	)
	return nil
}

func parseUserDeleted(payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", fmt.Errorf("empty user deletion payload")
	}

	if strings.HasPrefix(payload, "{") {
		var msg userDeletedPayload
		if err := json.Unmarshal([]byte(payload), &msg); err != nil {
			return "", fmt.Errorf("invalid user deletion payload: %w", err)
		}
		if msg.UserID == "" {
			return "", fmt.Errorf("user deletion payload has no userId")
		}
		return msg.UserID, nil
	}

	return payload, nil
}
