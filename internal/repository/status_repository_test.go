package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"user-status-service/internal/domain"
)

func setupStatusTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open database")

	// every connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.UserStatus{}))
	return db
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func insertSampleStatuses(t *testing.T, repo StatusRepository) {
	ctx := context.Background()

	samples := []*domain.UserStatus{
		{UserID: "admin", StatusType: domain.StatusTypeBusy, CreatedAt: 42},
		{UserID: "user1", StatusType: domain.StatusTypeBusy, StatusIcon: strPtr("💩"), Message: strPtr("Do not disturb"), CreatedAt: 1337, ClearAt: int64Ptr(50000)},
		{UserID: "user2", StatusType: domain.StatusTypeUnavailable, StatusIcon: strPtr("🏝"), Message: strPtr("On vacation"), CreatedAt: 10000, ClearAt: int64Ptr(60000)},
	}
	for _, s := range samples {
		require.NoError(t, repo.Insert(ctx, s))
	}
}

func TestStatusRepository_FindAll(t *testing.T) {
	repo := NewStatusRepository(setupStatusTestDB(t))
	ctx := context.Background()
	insertSampleStatuses(t, repo)

	all, err := repo.FindAll(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limit := 2
	limited, err := repo.FindAll(ctx, &limit, nil)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "admin", limited[0].UserID)
	assert.Equal(t, "user1", limited[1].UserID)

	offset := 2
	offsetResults, err := repo.FindAll(ctx, nil, &offset)
	require.NoError(t, err)
	require.Len(t, offsetResults, 1)
	assert.Equal(t, "user2", offsetResults[0].UserID)

	limit, offset = 1, 1
	page, err := repo.FindAll(ctx, &limit, &offset)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "user1", page[0].UserID)
}

func TestStatusRepository_FindByUserID(t *testing.T) {
	repo := NewStatusRepository(setupStatusTestDB(t))
	ctx := context.Background()
	insertSampleStatuses(t, repo)

	admin, err := repo.FindByUserID(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.UserID)
	assert.Equal(t, domain.StatusTypeBusy, admin.StatusType)
	assert.Nil(t, admin.StatusIcon)
	assert.Nil(t, admin.Message)
	assert.Equal(t, int64(42), admin.CreatedAt)
	assert.Nil(t, admin.ClearAt)

	user2, err := repo.FindByUserID(ctx, "user2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTypeUnavailable, user2.StatusType)
	assert.Equal(t, "🏝", *user2.StatusIcon)
	assert.Equal(t, "On vacation", *user2.Message)
	assert.Equal(t, int64(10000), user2.CreatedAt)
	assert.Equal(t, int64(60000), *user2.ClearAt)

	_, err = repo.FindByUserID(ctx, "nobody")
	assert.True(t, errors.Is(err, domain.ErrStatusNotFound))
}

func TestStatusRepository_InsertUserIDUnique(t *testing.T) {
	repo := NewStatusRepository(setupStatusTestDB(t))
	ctx := context.Background()

	first := &domain.UserStatus{UserID: "admin", StatusType: domain.StatusTypeBusy, CreatedAt: 42}
	require.NoError(t, repo.Insert(ctx, first))
	assert.NotZero(t, first.ID)

	second := &domain.UserStatus{UserID: "admin", StatusType: domain.StatusTypeAvailable, CreatedAt: 1337}
	err := repo.Insert(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUniqueConstraintViolation))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStatusRepository_InsertRejectsAssignedID(t *testing.T) {
	repo := NewStatusRepository(setupStatusTestDB(t))

	err := repo.Insert(context.Background(), &domain.UserStatus{ID: 7, UserID: "admin", StatusType: domain.StatusTypeBusy})
	assert.Error(t, err)
}

func TestStatusRepository_UpdateOverwritesNullableColumns(t *testing.T) {
	repo := NewStatusRepository(setupStatusTestDB(t))
	ctx := context.Background()
	insertSampleStatuses(t, repo)

	user1, err := repo.FindByUserID(ctx, "user1")
	require.NoError(t, err)

	next := user1.Apply(domain.StatusTypeAvailable, nil, nil, nil, 2000)
	require.NoError(t, repo.Update(ctx, &next))

	reloaded, err := repo.FindByUserID(ctx, "user1")
	require.NoError(t, err)
	assert.Equal(t, user1.ID, reloaded.ID)
	assert.Equal(t, domain.StatusTypeAvailable, reloaded.StatusType)
	assert.Nil(t, reloaded.StatusIcon)
	assert.Nil(t, reloaded.Message)
	assert.Nil(t, reloaded.ClearAt)
	assert.Equal(t, int64(2000), reloaded.CreatedAt)
}

func TestStatusRepository_UpdateErrors(t *testing.T) {
	repo := NewStatusRepository(setupStatusTestDB(t))
	ctx := context.Background()

	err := repo.Update(ctx, &domain.UserStatus{UserID: "admin", StatusType: domain.StatusTypeBusy})
	assert.True(t, errors.Is(err, domain.ErrMissingIdentifier))

	err = repo.Update(ctx, &domain.UserStatus{ID: 99, UserID: "ghost", StatusType: domain.StatusTypeBusy})
	assert.True(t, errors.Is(err, domain.ErrStatusNotFound))
}

func TestStatusRepository_Delete(t *testing.T) {
	repo := NewStatusRepository(setupStatusTestDB(t))
	ctx := context.Background()
	insertSampleStatuses(t, repo)

	admin, err := repo.FindByUserID(ctx, "admin")
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, admin.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByUserID(ctx, "admin")
	assert.True(t, errors.Is(err, domain.ErrStatusNotFound))
}

func TestStatusRepository_ClearOlderThan(t *testing.T) {
	repo := NewStatusRepository(setupStatusTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &domain.UserStatus{UserID: "a", StatusType: domain.StatusTypeBusy, CreatedAt: 1, ClearAt: int64Ptr(100)}))
	require.NoError(t, repo.Insert(ctx, &domain.UserStatus{UserID: "b", StatusType: domain.StatusTypeBusy, CreatedAt: 1, ClearAt: int64Ptr(200)}))
	require.NoError(t, repo.Insert(ctx, &domain.UserStatus{UserID: "c", StatusType: domain.StatusTypeBusy, CreatedAt: 1}))

	removed, err := repo.ClearOlderThan(ctx, 150)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindByUserID(ctx, "a")
	assert.True(t, errors.Is(err, domain.ErrStatusNotFound))
	_, err = repo.FindByUserID(ctx, "b")
	assert.NoError(t, err)
	_, err = repo.FindByUserID(ctx, "c")
	assert.NoError(t, err)

	// boundary is inclusive
	removed, err = repo.ClearOlderThan(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
