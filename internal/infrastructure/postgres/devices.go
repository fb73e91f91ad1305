package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/qct/user-management/internal/domain"
	"gorm.io/gorm"
)

// DeviceRepo provides typed access to the devices table.
type DeviceRepo struct {
	db *gorm.DB
}

func NewDeviceRepo(db *gorm.DB) *DeviceRepo {
	return &DeviceRepo{db: db}
}

// Create inserts the device row. A device_id collision returns
// domain.ErrConflict.
func (r *DeviceRepo) Create(ctx context.Context, d *domain.Device) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("device %q already configured: %w", d.DeviceID, domain.ErrConflict)
		}
		return err
	}
	return nil
}

// GetByDeviceID returns the device with the given external id, or
// domain.ErrNotFound.
func (r *DeviceRepo) GetByDeviceID(ctx context.Context, deviceID string) (*domain.Device, error) {
	var d domain.Device
	err := r.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&d).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("device %q: %w", deviceID, domain.ErrNotFound)
		}
		return nil, err
	}
	return &d, nil
}

// ListByOEM returns all devices registered by an OEM.
func (r *DeviceRepo) ListByOEM(ctx context.Context, oemID string) ([]domain.Device, error) {
	var devices []domain.Device
	if err := r.db.WithContext(ctx).Where("oem_id = ?", oemID).Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// UpdateStatus sets the device status. Updating an absent device returns
// domain.ErrNotFound.
func (r *DeviceRepo) UpdateStatus(ctx context.Context, deviceID, status string) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Device{}).
		Where("device_id = ?", deviceID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("device %q: %w", deviceID, domain.ErrNotFound)
	}
	return nil
}
