package handler

import (
	"context"

	"user-status-service/internal/domain"
)

// MockStatusService is a mock implementation of StatusService
type MockStatusService struct {
	FindAllFunc          func(ctx context.Context, limit, offset *int) ([]*domain.UserStatus, error)
	FindByUserIDFunc     func(ctx context.Context, userID string) (*domain.UserStatus, error)
	SetStatusFunc        func(ctx context.Context, userID, statusType string, statusIcon, message *string, clearAt *int64) (*domain.UserStatus, error)
	RemoveUserStatusFunc func(ctx context.Context, userID string) (bool, error)
	ClearExpiredFunc     func(ctx context.Context) (int64, error)
}

func (m *MockStatusService) FindAll(ctx context.Context, limit, offset *int) ([]*domain.UserStatus, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockStatusService) FindByUserID(ctx context.Context, userID string) (*domain.UserStatus, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.NotFoundError(userID)
}

func (m *MockStatusService) SetStatus(ctx context.Context, userID, statusType string, statusIcon, message *string, clearAt *int64) (*domain.UserStatus, error) {
	if m.SetStatusFunc != nil {
		return m.SetStatusFunc(ctx, userID, statusType, statusIcon, message, clearAt)
	}
	return nil, nil
}

func (m *MockStatusService) RemoveUserStatus(ctx context.Context, userID string) (bool, error) {
	if m.RemoveUserStatusFunc != nil {
		return m.RemoveUserStatusFunc(ctx, userID)
	}
	return false, nil
}

func (m *MockStatusService) ClearExpired(ctx context.Context) (int64, error) {
	if m.ClearExpiredFunc != nil {
		return m.ClearExpiredFunc(ctx)
	}
	return 0, nil
}
