package handler

import (
	"encoding/json"
	"net/http"

	"github.com/qct/user-management/internal/application/notification"
	"github.com/qct/user-management/internal/domain"
	"github.com/qct/user-management/internal/pkg/validate"
)

// NotificationHandler handles notification endpoints.
type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req domain.SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.svc.Send(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *NotificationHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := uintParam(w, r, "id")
	if !ok {
		return
	}
	notifications, err := h.svc.ListForUser(r.Context(), userID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	notificationID, ok := uintParam(w, r, "id")
	if !ok {
		return
	}
	n, err := h.svc.MarkAsRead(r.Context(), notificationID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := uintParam(w, r, "id")
	if !ok {
		return
	}
	count, err := h.svc.CountUnread(r.Context(), userID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CountEnvelope{Count: count})
}
