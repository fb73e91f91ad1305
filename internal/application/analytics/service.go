package analytics

import (
	"context"
	"log"
	"time"

	"github.com/qct/user-management/internal/domain"
)

// Performance summaries aggregate CPU usage over the trailing day.
const (
	summaryMetricType = "PERFORMANCE_SUMMARY"
	cpuUsageMetric    = "CPU_USAGE"
	summaryWindow     = 24 * time.Hour
)

type Service interface {
	RecordMetric(ctx context.Context, req domain.RecordMetricRequest) (*domain.DeviceMetric, error)
	DeviceMetrics(ctx context.Context, deviceID string) ([]domain.DeviceMetric, error)
	OEMAnalytics(ctx context.Context, oemID string) ([]domain.DeviceMetric, error)
	PerformanceSummary(ctx context.Context, deviceID string) (*domain.MetricSummary, error)
}

type metricStore interface {
	Create(ctx context.Context, m *domain.DeviceMetric) error
	ListByDevice(ctx context.Context, deviceID string) ([]domain.DeviceMetric, error)
	ListByOEM(ctx context.Context, oemID string) ([]domain.DeviceMetric, error)
	CountSince(ctx context.Context, deviceID string, since time.Time) (int64, error)
	Aggregate(ctx context.Context, deviceID, metricType string) (avg, max, min float64, err error)
}

type service struct {
	repo metricStore
}

func NewService(repo metricStore) Service {
	return &service{repo: repo}
}

func (s *service) RecordMetric(ctx context.Context, req domain.RecordMetricRequest) (*domain.DeviceMetric, error) {
	log.Printf("recording metric %s for device %s", req.MetricType, req.DeviceID)

	m := &domain.DeviceMetric{
		DeviceID:    req.DeviceID,
		MetricType:  req.MetricType,
		Value:       *req.Value,
		Unit:        req.Unit,
		Description: req.Description,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) DeviceMetrics(ctx context.Context, deviceID string) ([]domain.DeviceMetric, error) {
	return s.repo.ListByDevice(ctx, deviceID)
}

func (s *service) OEMAnalytics(ctx context.Context, oemID string) ([]domain.DeviceMetric, error) {
	return s.repo.ListByOEM(ctx, oemID)
}

// PerformanceSummary aggregates a device's CPU usage readings. A device with
// no metrics in the window gets an empty summary, not an error.
func (s *service) PerformanceSummary(ctx context.Context, deviceID string) (*domain.MetricSummary, error) {
	log.Printf("calculating performance summary for device: %s", deviceID)

	now := time.Now().UTC()
	count, err := s.repo.CountSince(ctx, deviceID, now.Add(-summaryWindow))
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return &domain.MetricSummary{
			DeviceID:   deviceID,
			MetricType: summaryMetricType,
		}, nil
	}

	avg, max, min, err := s.repo.Aggregate(ctx, deviceID, cpuUsageMetric)
	if err != nil {
		return nil, err
	}
	return &domain.MetricSummary{
		DeviceID:     deviceID,
		MetricType:   summaryMetricType,
		AverageValue: avg,
		MaxValue:     max,
		MinValue:     min,
		TotalCount:   count,
		Timestamp:    &now,
	}, nil
}
