package postgres

import (
	"context"
	"time"

	"github.com/qct/user-management/internal/domain"
	"gorm.io/gorm"
)

// MetricRepo provides typed access to the device_metrics table.
type MetricRepo struct {
	db *gorm.DB
}

func NewMetricRepo(db *gorm.DB) *MetricRepo {
	return &MetricRepo{db: db}
}

// Create inserts the metric and fills in its assigned id.
func (r *MetricRepo) Create(ctx context.Context, m *domain.DeviceMetric) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByDevice returns a device's metrics, newest first.
func (r *MetricRepo) ListByDevice(ctx context.Context, deviceID string) ([]domain.DeviceMetric, error) {
	var metrics []domain.DeviceMetric
	err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("timestamp DESC").
		Find(&metrics).Error
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

// ListByOEM returns metrics across every device the OEM has registered,
// newest first. Membership is resolved through the devices table.
func (r *MetricRepo) ListByOEM(ctx context.Context, oemID string) ([]domain.DeviceMetric, error) {
	sub := r.db.Model(&domain.Device{}).Select("device_id").Where("oem_id = ?", oemID)
	var metrics []domain.DeviceMetric
	err := r.db.WithContext(ctx).
		Where("device_id IN (?)", sub).
		Order("timestamp DESC").
		Find(&metrics).Error
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

// CountSince counts a device's metrics recorded at or after the given time.
func (r *MetricRepo) CountSince(ctx context.Context, deviceID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.DeviceMetric{}).
		Where("device_id = ? AND timestamp >= ?", deviceID, since).
		Count(&count).Error
	return count, err
}

// Aggregate returns avg/max/min over every reading of one metric type for a
// device. All three come back zero when no readings exist.
func (r *MetricRepo) Aggregate(ctx context.Context, deviceID, metricType string) (avg, max, min float64, err error) {
	var row struct {
		Avg *float64
		Max *float64
		Min *float64
	}
	err = r.db.WithContext(ctx).
		Model(&domain.DeviceMetric{}).
		Select("AVG(value) AS avg, MAX(value) AS max, MIN(value) AS min").
		Where("device_id = ? AND metric_type = ?", deviceID, metricType).
		Scan(&row).Error
	if err != nil {
		return 0, 0, 0, err
	}
	if row.Avg != nil {
		avg = *row.Avg
	}
	if row.Max != nil {
		max = *row.Max
	}
	if row.Min != nil {
		min = *row.Min
	}
	return avg, max, min, nil
}
