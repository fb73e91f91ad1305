package domain

import "time"

// NotificationType is the closed set of notification categories.
type NotificationType string

const (
	TypeInfo         NotificationType = "info"
	TypeWarning      NotificationType = "warning"
	TypeError        NotificationType = "error"
	TypeSuccess      NotificationType = "success"
	TypeDeviceAlert  NotificationType = "device_alert"
	TypeSystemUpdate NotificationType = "system_update"
)

// NotificationPriority is the closed set of priorities. Empty input defaults
// to PriorityNormal before persistence.
type NotificationPriority string

const (
	PriorityLow      NotificationPriority = "low"
	PriorityNormal   NotificationPriority = "normal"
	PriorityHigh     NotificationPriority = "high"
	PriorityCritical NotificationPriority = "critical"
)

type Notification struct {
	ID        uint                 `json:"id" gorm:"primaryKey"`
	UserID    uint                 `json:"user_id" gorm:"not null;index;index:idx_notifications_user_read,priority:1"`
	Title     string               `json:"title" gorm:"size:200;not null"`
	Message   string               `json:"message" gorm:"size:1000;not null"`
	Type      NotificationType     `json:"type" gorm:"size:20;not null"`
	Priority  NotificationPriority `json:"priority" gorm:"size:20;not null;default:normal"`
	IsRead    bool                 `json:"is_read" gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	CreatedAt time.Time            `json:"created"`
	ReadAt    *time.Time           `json:"read_at,omitempty"`

	// MetadataJSON is the persisted form; Metadata is the decoded view
	// populated on the way out and never stored directly.
	MetadataJSON *string                `json:"-" gorm:"column:metadata_json"`
	Metadata     map[string]interface{} `json:"metadata" gorm:"-"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type SendNotificationRequest struct {
	UserID   uint                   `json:"user_id" validate:"required"`
	Title    string                 `json:"title" validate:"required,max=200"`
	Message  string                 `json:"message" validate:"required,max=1000"`
	Type     NotificationType       `json:"type" validate:"required,oneof=info warning error success device_alert system_update"`
	Priority NotificationPriority   `json:"priority" validate:"omitempty,oneof=low normal high critical"`
	Metadata map[string]interface{} `json:"metadata"`
}
