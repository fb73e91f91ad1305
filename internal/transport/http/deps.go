package http

import (
	"github.com/qct/user-management/internal/infrastructure/postgres"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *postgres.UserRepo
	NotificationRepo *postgres.NotificationRepo
	DeviceRepo       *postgres.DeviceRepo
	MetricRepo       *postgres.MetricRepo
}
