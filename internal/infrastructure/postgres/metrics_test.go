package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/qct/user-management/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetric(deviceID, metricType string, value float64, at time.Time) *domain.DeviceMetric {
	return &domain.DeviceMetric{
		DeviceID:   deviceID,
		MetricType: metricType,
		Value:      value,
		Timestamp:  at,
	}
}

func TestMetricRepo_CreateAssignsID(t *testing.T) {
	repo := NewMetricRepo(setupDB(t))
	m := newMetric("sensor-001", "CPU_USAGE", 42.5, time.Now().UTC())

	require.NoError(t, repo.Create(context.Background(), m))
	assert.NotZero(t, m.ID)
}

func TestMetricRepo_ListByDeviceNewestFirst(t *testing.T) {
	repo := NewMetricRepo(setupDB(t))
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "CPU_USAGE", 10, base)))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "CPU_USAGE", 20, base.Add(time.Minute))))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-002", "CPU_USAGE", 99, base)))

	metrics, err := repo.ListByDevice(ctx, "sensor-001")
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, 20.0, metrics[0].Value)
	assert.Equal(t, 10.0, metrics[1].Value)
}

func TestMetricRepo_ListByOEMResolvesDeviceMembership(t *testing.T) {
	db := setupDB(t)
	devices := NewDeviceRepo(db)
	repo := NewMetricRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, devices.Create(ctx, newDevice("sensor-001", "oem-9")))
	require.NoError(t, devices.Create(ctx, newDevice("sensor-002", "oem-other")))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "CPU_USAGE", 10, now)))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-002", "CPU_USAGE", 20, now)))
	// Metrics for a device no OEM has registered are invisible here.
	require.NoError(t, repo.Create(ctx, newMetric("sensor-999", "CPU_USAGE", 30, now)))

	metrics, err := repo.ListByOEM(ctx, "oem-9")
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "sensor-001", metrics[0].DeviceID)
}

func TestMetricRepo_CountSinceWindow(t *testing.T) {
	repo := NewMetricRepo(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "CPU_USAGE", 10, now.Add(-25*time.Hour))))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "CPU_USAGE", 20, now.Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "MEMORY_USAGE", 30, now)))

	count, err := repo.CountSince(ctx, "sensor-001", now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMetricRepo_Aggregate(t *testing.T) {
	repo := NewMetricRepo(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "CPU_USAGE", 10, now)))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "CPU_USAGE", 50, now)))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "CPU_USAGE", 90, now)))
	// Other types and other devices are excluded from the aggregates.
	require.NoError(t, repo.Create(ctx, newMetric("sensor-001", "MEMORY_USAGE", 999, now)))
	require.NoError(t, repo.Create(ctx, newMetric("sensor-002", "CPU_USAGE", 999, now)))

	avg, max, min, err := repo.Aggregate(ctx, "sensor-001", "CPU_USAGE")
	require.NoError(t, err)
	assert.Equal(t, 50.0, avg)
	assert.Equal(t, 90.0, max)
	assert.Equal(t, 10.0, min)
}

func TestMetricRepo_AggregateEmptyIsZero(t *testing.T) {
	repo := NewMetricRepo(setupDB(t))

	avg, max, min, err := repo.Aggregate(context.Background(), "sensor-001", "CPU_USAGE")
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.Zero(t, max)
	assert.Zero(t, min)
}
