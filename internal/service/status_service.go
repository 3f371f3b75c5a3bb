package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"user-status-service/internal/clock"
	"user-status-service/internal/domain"
	"user-status-service/internal/emoji"
	"user-status-service/internal/events"
	"user-status-service/internal/metrics"
	"user-status-service/internal/repository"
)

// maxUpsertAttempts bounds the insert/update round trips of one SetStatus call
const maxUpsertAttempts = 3

// StatusService defines the interface for user status business logic
type StatusService interface {
	FindAll(ctx context.Context, limit, offset *int) ([]*domain.UserStatus, error)
	FindByUserID(ctx context.Context, userID string) (*domain.UserStatus, error)
	SetStatus(ctx context.Context, userID, statusType string, statusIcon, message *string, clearAt *int64) (*domain.UserStatus, error)
	RemoveUserStatus(ctx context.Context, userID string) (bool, error)
	ClearExpired(ctx context.Context) (int64, error)
}

// statusServiceImpl is the implementation of StatusService
type statusServiceImpl struct {
	repo      repository.StatusRepository
	clock     clock.Clock
	emoji     emoji.Validator
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewStatusService creates a new instance of StatusService
func NewStatusService(
	repo repository.StatusRepository,
	clk clock.Clock,
	validator emoji.Validator,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) StatusService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &statusServiceImpl{
		repo:      repo,
		clock:     clk,
		emoji:     validator,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// FindAll lists stored statuses
func (s *statusServiceImpl) FindAll(ctx context.Context, limit, offset *int) ([]*domain.UserStatus, error) {
	statuses, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list user statuses: %w", err)
	}
	return statuses, nil
}

// FindByUserID returns the status of a user or domain.ErrStatusNotFound
func (s *statusServiceImpl) FindByUserID(ctx context.Context, userID string) (*domain.UserStatus, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// SetStatus validates the input and creates or overwrites the user's status
func (s *statusServiceImpl) SetStatus(
	ctx context.Context,
	userID, statusType string,
	statusIcon, message *string,
	clearAt *int64,
) (*domain.UserStatus, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, s.reject(domain.NewValidationError(
			domain.ErrInvalidUserID, "userId", userID, "User ID must not be empty",
		))
	}

	current, err := s.loadOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.validate(statusType, statusIcon, message, clearAt, now); err != nil {
		return nil, s.reject(err)
	}

	next := current.Apply(domain.StatusType(statusType), statusIcon, message, clearAt, now)

	saved, created, err := s.upsert(ctx, next)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordStatusSet(created)
	}
	s.logger.Debug("User status set",
		zap.String("user_id", saved.UserID),
		zap.Uint("status_id", saved.ID),
		zap.String("status_type", string(saved.StatusType)),
		zap.Bool("created", created),
	)

	snapshot := *saved
	s.publish(ctx, events.NewStatusEvent(events.EventStatusSet, saved.UserID, &snapshot, now))

	return saved, nil
}

// RemoveUserStatus deletes the status of a user. It reports false when none existed.
func (s *statusServiceImpl) RemoveUserStatus(ctx context.Context, userID string) (bool, error) {
	current, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrStatusNotFound) {
			return false, nil
		}
		return false, err
	}

	removed, err := s.repo.Delete(ctx, current.ID)
	if err != nil {
		return false, fmt.Errorf("remove status of %q: %w", userID, err)
	}
	if !removed {
		return false, nil
	}

	if s.metrics != nil {
		s.metrics.RecordStatusRemoved()
	}
	s.logger.Debug("User status removed", zap.String("user_id", userID))
	s.publish(ctx, events.NewStatusEvent(events.EventStatusCleared, userID, nil, s.clock.Now()))

	return true, nil
}

// ClearExpired deletes every status whose clearAt is at or before now
func (s *statusServiceImpl) ClearExpired(ctx context.Context) (int64, error) {
	now := s.clock.Now()

	cleared, err := s.repo.ClearOlderThan(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("clear statuses expired at %d: %w", now, err)
	}

	if s.metrics != nil {
		s.metrics.RecordStatusesExpired(cleared)
	}
	return cleared, nil
}

// loadOrNew returns the stored status of userID, or an unsaved record bound to it
func (s *statusServiceImpl) loadOrNew(ctx context.Context, userID string) (domain.UserStatus, error) {
	current, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrStatusNotFound) {
			return domain.UserStatus{UserID: userID}, nil
		}
		return domain.UserStatus{}, err
	}
	return *current, nil
}

// validate runs the checks in a fixed order; the first failure is returned
func (s *statusServiceImpl) validate(statusType string, statusIcon, message *string, clearAt *int64, now int64) error {
	if !domain.StatusType(statusType).IsValid() {
		return domain.NewValidationError(
			domain.ErrInvalidStatusType, "statusType", statusType,
			fmt.Sprintf("Status-type %q is not supported", statusType),
		)
	}

	if statusIcon != nil {
		if !s.emoji.PlatformSupportsEmoji() {
			return domain.NewValidationError(
				domain.ErrInvalidStatusIcon, "statusIcon", *statusIcon,
				"Platform does not support status-icon.",
			)
		}
		if !s.emoji.IsSingleGrapheme(*statusIcon) {
			return domain.NewValidationError(
				domain.ErrInvalidStatusIcon, "statusIcon", *statusIcon,
				"Status-Icon is longer than one character",
			)
		}
	}

	if message != nil && domain.MessageLength(*message) > domain.MaxMessageLength {
		return domain.NewValidationError(
			domain.ErrMessageTooLong, "message", *message,
			fmt.Sprintf("Message is longer than supported length of %d characters", domain.MaxMessageLength),
		)
	}

	if clearAt != nil && *clearAt <= now {
		return domain.NewValidationError(
			domain.ErrInvalidClearAt, "clearAt", fmt.Sprintf("%d", *clearAt),
			"ClearAt is in the past",
		)
	}

	return nil
}

// upsert writes status, inserting when it has no ID and updating otherwise.
// A lost insert race is turned into an update of the winner's row, and an update
// of a row deleted in the meantime is turned back into an insert.
func (s *statusServiceImpl) upsert(ctx context.Context, status domain.UserStatus) (*domain.UserStatus, bool, error) {
	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		if attempt > 1 && s.metrics != nil {
			s.metrics.RecordUpsertRetry()
		}

		if status.IsNew() {
			candidate := status
			err := s.repo.Insert(ctx, &candidate)
			if err == nil {
				return &candidate, true, nil
			}
			if !errors.Is(err, domain.ErrUniqueConstraintViolation) {
				return nil, false, err
			}

			winner, err := s.repo.FindByUserID(ctx, status.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrStatusNotFound) {
					continue
				}
				return nil, false, err
			}
			s.logger.Debug("Concurrent insert detected, updating existing status",
				zap.String("user_id", status.UserID),
				zap.Uint("status_id", winner.ID),
				zap.Int("attempt", attempt),
			)
			status = status.WithID(winner.ID)
			continue
		}

		candidate := status
		err := s.repo.Update(ctx, &candidate)
		if err == nil {
			return &candidate, false, nil
		}
		if !errors.Is(err, domain.ErrStatusNotFound) {
			return nil, false, err
		}
		s.logger.Debug("Status vanished before update, inserting again",
			zap.String("user_id", status.UserID),
			zap.Int("attempt", attempt),
		)
		status = status.WithID(0)
	}

	s.logger.Warn("Giving up on status upsert",
		zap.String("user_id", status.UserID),
		zap.Int("attempts", maxUpsertAttempts),
	)
	return nil, false, fmt.Errorf("set status of %q: %w", status.UserID, domain.ErrStatusConflict)
}

func (s *statusServiceImpl) reject(err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		if s.metrics != nil {
			s.metrics.RecordStatusRejected(vErr.Reason())
		}
		s.logger.Debug("User status rejected",
			zap.String("field", vErr.Field),
			zap.String("reason", vErr.Reason()),
			zap.String("message", vErr.Message),
		)
	}
	return err
}

func (s *statusServiceImpl) publish(ctx context.Context, event events.StatusEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish status event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.String("user_id", event.UserID),
			zap.Error(err),
		)
	}
}
