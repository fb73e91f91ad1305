package notification

import (
	"context"
	"log"
	"time"

	"github.com/qct/user-management/internal/domain"
	"github.com/qct/user-management/internal/pkg/metadata"
)

type Service interface {
	Send(ctx context.Context, req domain.SendNotificationRequest) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID uint) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID uint) (*domain.Notification, error)
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

type notificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
	Get(ctx context.Context, notificationID uint) (*domain.Notification, error)
	ListRecentByUser(ctx context.Context, userID uint) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID uint, readAt time.Time) error
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

type service struct {
	repo notificationStore
}

func NewService(repo notificationStore) Service {
	return &service{repo: repo}
}

func (s *service) Send(ctx context.Context, req domain.SendNotificationRequest) (*domain.Notification, error) {
	log.Printf("creating notification for user: %d", req.UserID)

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}
	encoded, err := metadata.Encode(req.Metadata)
	if err != nil {
		return nil, err
	}
	n := &domain.Notification{
		UserID:       req.UserID,
		Title:        req.Title,
		Message:      req.Message,
		Type:         req.Type,
		Priority:     priority,
		IsRead:       false,
		CreatedAt:    time.Now().UTC(),
		MetadataJSON: encoded,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	log.Printf("notification created with id: %d", n.ID)

	n.Metadata = metadata.Decode(n.MetadataJSON)
	return n, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]domain.Notification, error) {
	notifications, err := s.repo.ListRecentByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Decode is tolerant: a row with corrupt stored metadata comes back
	// with nil metadata instead of failing the whole listing.
	for i := range notifications {
		notifications[i].Metadata = metadata.Decode(notifications[i].MetadataJSON)
	}
	return notifications, nil
}

func (s *service) MarkAsRead(ctx context.Context, notificationID uint) (*domain.Notification, error) {
	log.Printf("marking notification as read: %d", notificationID)

	n, err := s.repo.Get(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	// read_at is rewritten on every call, including rows already read.
	readAt := time.Now().UTC()
	if err := s.repo.MarkRead(ctx, n.ID, readAt); err != nil {
		return nil, err
	}
	n.IsRead = true
	n.ReadAt = &readAt
	n.Metadata = metadata.Decode(n.MetadataJSON)
	return n, nil
}

func (s *service) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
