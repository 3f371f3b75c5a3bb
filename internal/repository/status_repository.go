package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"user-status-service/internal/domain"
)

// StatusRepository defines the interface for user status data access
type StatusRepository interface {
	FindAll(ctx context.Context, limit, offset *int) ([]*domain.UserStatus, error)
	FindByUserID(ctx context.Context, userID string) (*domain.UserStatus, error)
	Insert(ctx context.Context, status *domain.UserStatus) error
	Update(ctx context.Context, status *domain.UserStatus) error
	Delete(ctx context.Context, id uint) (bool, error)
	ClearOlderThan(ctx context.Context, timestamp int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// statusRepositoryImpl is the GORM implementation of StatusRepository
type statusRepositoryImpl struct {
	db *gorm.DB
}

// NewStatusRepository creates a new instance of StatusRepository
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepositoryImpl{db: db}
}

// FindAll lists statuses ordered by id. limit and offset are applied in SQL when set.
func (r *statusRepositoryImpl) FindAll(ctx context.Context, limit, offset *int) ([]*domain.UserStatus, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if limit != nil {
		query = query.Limit(*limit)
	}
	if offset != nil {
		query = query.Offset(*offset)
	}

	var statuses []*domain.UserStatus
	if err := query.Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// FindByUserID finds the status of a user through the unique user_id index
func (r *statusRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*domain.UserStatus, error) {
	var status domain.UserStatus
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError(userID)
		}
		return nil, err
	}
	return &status, nil
}

// Insert creates a new row and assigns status.ID.
// A second row for the same user fails with domain.ErrUniqueConstraintViolation.
func (r *statusRepositoryImpl) Insert(ctx context.Context, status *domain.UserStatus) error {
	if !status.IsNew() {
		return fmt.Errorf("insert user status %d: identifier already assigned", status.ID)
	}

	if err := r.db.WithContext(ctx).Create(status).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert user status for %q: %w", status.UserID, domain.ErrUniqueConstraintViolation)
		}
		return err
	}
	return nil
}

// Update overwrites every mutable column of an existing row, NULLs included
func (r *statusRepositoryImpl) Update(ctx context.Context, status *domain.UserStatus) error {
	if status.IsNew() {
		return domain.ErrMissingIdentifier
	}

	result := r.db.WithContext(ctx).
		Model(&domain.UserStatus{}).
		Where("id = ?", status.ID).
		Updates(map[string]interface{}{
			"status_type": status.StatusType,
			"status_icon": status.StatusIcon,
			"message":     status.Message,
			"created_at":  status.CreatedAt,
			"clear_at":    status.ClearAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError(status.UserID)
	}
	return nil
}

// Delete removes a row by its identifier and reports whether a row was removed
func (r *statusRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.UserStatus{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ClearOlderThan deletes every row whose clear_at is set and <= timestamp.
// The condition is evaluated by the DELETE itself, so rows refreshed in the meantime survive.
func (r *statusRepositoryImpl) ClearOlderThan(ctx context.Context, timestamp int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("clear_at IS NOT NULL AND clear_at <= ?", timestamp).
		Delete(&domain.UserStatus{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Count returns the number of stored statuses
func (r *statusRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.UserStatus{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// isUniqueViolation detects unique index violations. gorm translates them to
// ErrDuplicatedKey when TranslateError is enabled; the message checks cover
// connections opened without it.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
