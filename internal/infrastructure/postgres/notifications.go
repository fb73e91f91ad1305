package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/qct/user-management/internal/domain"
	"gorm.io/gorm"
)

// recentLimit caps ListRecentByUser. There is no pagination beyond this.
const recentLimit = 50

// NotificationRepo provides typed access to the notifications table.
type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create inserts the notification and fills in its assigned id and created_at.
func (r *NotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// Get returns the notification with the given id, or domain.ErrNotFound.
func (r *NotificationRepo) Get(ctx context.Context, notificationID uint) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.WithContext(ctx).First(&n, notificationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %d: %w", notificationID, domain.ErrNotFound)
		}
		return nil, err
	}
	return &n, nil
}

// ListRecentByUser returns the user's newest notifications, capped at 50,
// ordered by creation time descending.
func (r *NotificationRepo) ListRecentByUser(ctx context.Context, userID uint) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead sets is_read and read_at in a single atomic update. read_at is
// rewritten even when the row was already read.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID uint, readAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ?", notificationID).
		Updates(map[string]interface{}{"is_read": true, "read_at": readAt}).Error
}

// CountUnread counts the user's unread notifications. Served by the
// (user_id, is_read) composite index.
func (r *NotificationRepo) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
