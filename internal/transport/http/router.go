package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/qct/user-management/internal/application/account"
	"github.com/qct/user-management/internal/application/analytics"
	"github.com/qct/user-management/internal/application/device"
	"github.com/qct/user-management/internal/application/notification"
	"github.com/qct/user-management/internal/config"
	"github.com/qct/user-management/internal/transport/http/handler"
	appmiddleware "github.com/qct/user-management/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(appmiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Applied to the credential endpoints only.
	sensitiveRL := appmiddleware.NewSensitiveLimiter()

	accountSvc := account.NewService(deps.UserRepo)
	notifSvc := notification.NewService(deps.NotificationRepo)
	deviceSvc := device.NewService(deps.DeviceRepo)
	analyticsSvc := analytics.NewService(deps.MetricRepo)

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(accountSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	deviceH := handler.NewDeviceHandler(deviceSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/users/register", userH.Register)
		r.With(sensitiveRL.Limit).Post("/users/authenticate", userH.Authenticate)
		r.Get("/users", userH.List)
		r.Get("/users/{id}", userH.Get)

		r.Post("/notifications/send", notifH.Send)
		r.Get("/notifications/user/{id}", notifH.ListForUser)
		r.Put("/notifications/{id}/read", notifH.MarkAsRead)
		r.Get("/notifications/unread/count/{id}", notifH.UnreadCount)

		r.Post("/devices/configure", deviceH.Configure)
		r.Get("/devices/{deviceId}", deviceH.Get)
		r.Get("/devices/oem/{oemId}", deviceH.ListByOEM)
		r.Put("/devices/{deviceId}/status", deviceH.UpdateStatus)

		r.Post("/analytics/metrics", analyticsH.RecordMetric)
		r.Get("/analytics/device/{deviceId}", analyticsH.DeviceMetrics)
		r.Get("/analytics/oem/{oemId}", analyticsH.OEMAnalytics)
		r.Get("/analytics/performance/{deviceId}", analyticsH.PerformanceSummary)
	})

	return r
}
