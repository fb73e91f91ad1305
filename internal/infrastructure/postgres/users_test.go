package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qct/user-management/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens an in-memory sqlite database with the production schema.
// TranslateError is on so constraint violations behave as they do against
// postgres.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, Migrate(db))
	return db
}

func newUser(username, email string, active bool) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepo_CreateAssignsID(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	u := newUser("alice", "alice@x.com", true)

	require.NoError(t, repo.Create(context.Background(), u))
	assert.NotZero(t, u.ID)
}

func TestUserRepo_DuplicateEmailConflicts(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@x.com", true)))
	err := repo.Create(ctx, newUser("bob", "alice@x.com", true))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestUserRepo_DuplicateUsernameConflicts(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@x.com", true)))
	err := repo.Create(ctx, newUser("alice", "other@x.com", true))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestUserRepo_InactiveUsersAreInvisible(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	active := newUser("alice", "alice@x.com", true)
	inactive := newUser("bob", "bob@x.com", false)
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	_, err := repo.GetActiveByEmail(ctx, "bob@x.com")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = repo.GetActive(ctx, inactive.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	users, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestUserRepo_GetActiveByEmail(t *testing.T) {
	repo := NewUserRepo(setupDB(t))
	ctx := context.Background()

	u := newUser("alice", "alice@x.com", true)
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetActiveByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
}

func TestUserRepo_DeleteCascadesToNotifications(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepo(db)
	notifications := NewNotificationRepo(db)
	ctx := context.Background()

	u := newUser("alice", "alice@x.com", true)
	require.NoError(t, users.Create(ctx, u))
	n := &domain.Notification{
		UserID:    u.ID,
		Title:     "Hi",
		Message:   "Hello",
		Type:      domain.TypeInfo,
		Priority:  domain.PriorityNormal,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, notifications.Create(ctx, n))

	require.NoError(t, db.Delete(&domain.User{}, u.ID).Error)

	_, err := notifications.Get(ctx, n.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
