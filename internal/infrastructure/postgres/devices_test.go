package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qct/user-management/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDevice(deviceID, oemID string) *domain.Device {
	now := time.Now().UTC()
	return &domain.Device{
		DeviceID:   deviceID,
		OEMID:      oemID,
		DeviceType: "temperature",
		Status:     domain.DeviceStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestDeviceRepo_CreateAssignsID(t *testing.T) {
	repo := NewDeviceRepo(setupDB(t))
	d := newDevice("sensor-001", "oem-9")

	require.NoError(t, repo.Create(context.Background(), d))
	assert.NotZero(t, d.ID)
}

func TestDeviceRepo_DuplicateDeviceIDConflicts(t *testing.T) {
	repo := NewDeviceRepo(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newDevice("sensor-001", "oem-9")))
	err := repo.Create(ctx, newDevice("sensor-001", "oem-other"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestDeviceRepo_GetByDeviceID(t *testing.T) {
	repo := NewDeviceRepo(setupDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newDevice("sensor-001", "oem-9")))

	got, err := repo.GetByDeviceID(ctx, "sensor-001")
	require.NoError(t, err)
	assert.Equal(t, "oem-9", got.OEMID)

	_, err = repo.GetByDeviceID(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeviceRepo_ListByOEM(t *testing.T) {
	repo := NewDeviceRepo(setupDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newDevice("sensor-001", "oem-9")))
	require.NoError(t, repo.Create(ctx, newDevice("sensor-002", "oem-9")))
	require.NoError(t, repo.Create(ctx, newDevice("sensor-003", "oem-other")))

	devices, err := repo.ListByOEM(ctx, "oem-9")
	require.NoError(t, err)
	require.Len(t, devices, 2)
	for _, d := range devices {
		assert.Equal(t, "oem-9", d.OEMID)
	}
}

func TestDeviceRepo_UpdateStatus(t *testing.T) {
	repo := NewDeviceRepo(setupDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newDevice("sensor-001", "oem-9")))

	require.NoError(t, repo.UpdateStatus(ctx, "sensor-001", "DISABLED"))

	got, err := repo.GetByDeviceID(ctx, "sensor-001")
	require.NoError(t, err)
	assert.Equal(t, "DISABLED", got.Status)
}

func TestDeviceRepo_UpdateStatusNotFound(t *testing.T) {
	repo := NewDeviceRepo(setupDB(t))

	err := repo.UpdateStatus(context.Background(), "ghost", "DISABLED")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
