package service

import (
	"context"
	"sync"

	"user-status-service/internal/domain"
	"user-status-service/internal/events"
)

// MockStatusRepository is a mock implementation of StatusRepository
type MockStatusRepository struct {
	FindAllFunc        func(ctx context.Context, limit, offset *int) ([]*domain.UserStatus, error)
	FindByUserIDFunc   func(ctx context.Context, userID string) (*domain.UserStatus, error)
	InsertFunc         func(ctx context.Context, status *domain.UserStatus) error
	UpdateFunc         func(ctx context.Context, status *domain.UserStatus) error
	DeleteFunc         func(ctx context.Context, id uint) (bool, error)
	ClearOlderThanFunc func(ctx context.Context, timestamp int64) (int64, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *MockStatusRepository) FindAll(ctx context.Context, limit, offset *int) ([]*domain.UserStatus, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockStatusRepository) FindByUserID(ctx context.Context, userID string) (*domain.UserStatus, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.NotFoundError(userID)
}

func (m *MockStatusRepository) Insert(ctx context.Context, status *domain.UserStatus) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, status)
	}
	status.ID = 1
	return nil
}

func (m *MockStatusRepository) Update(ctx context.Context, status *domain.UserStatus) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, status)
	}
	return nil
}

func (m *MockStatusRepository) Delete(ctx context.Context, id uint) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

func (m *MockStatusRepository) ClearOlderThan(ctx context.Context, timestamp int64) (int64, error) {
	if m.ClearOlderThanFunc != nil {
		return m.ClearOlderThanFunc(ctx, timestamp)
	}
	return 0, nil
}

func (m *MockStatusRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockEmojiValidator is a mock implementation of emoji.Validator
type MockEmojiValidator struct {
	Supported            bool
	IsSingleGraphemeFunc func(value string) bool
}

func (m *MockEmojiValidator) PlatformSupportsEmoji() bool {
	return m.Supported
}

func (m *MockEmojiValidator) IsSingleGrapheme(value string) bool {
	if m.IsSingleGraphemeFunc != nil {
		return m.IsSingleGraphemeFunc(value)
	}
	return true
}

// RecordingPublisher keeps every published event
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []events.StatusEvent
	Err    error
}

func (p *RecordingPublisher) Publish(_ context.Context, event events.StatusEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
	return p.Err
}

func (p *RecordingPublisher) Published() []events.StatusEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.StatusEvent(nil), p.Events...)
}
