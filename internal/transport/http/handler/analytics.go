package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/qct/user-management/internal/application/analytics"
	"github.com/qct/user-management/internal/domain"
	"github.com/qct/user-management/internal/pkg/validate"
)

// AnalyticsHandler handles metric ingestion and analytics endpoints.
type AnalyticsHandler struct {
	svc analytics.Service
}

func NewAnalyticsHandler(svc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) RecordMetric(w http.ResponseWriter, r *http.Request) {
	var req domain.RecordMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.svc.RecordMetric(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *AnalyticsHandler) DeviceMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.svc.DeviceMetrics(r.Context(), chi.URLParam(r, "deviceId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *AnalyticsHandler) OEMAnalytics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.svc.OEMAnalytics(r.Context(), chi.URLParam(r, "oemId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (h *AnalyticsHandler) PerformanceSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.PerformanceSummary(r.Context(), chi.URLParam(r, "deviceId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
