package device

import (
	"context"
	"log"
	"time"

	"github.com/qct/user-management/internal/domain"
)

type Service interface {
	Configure(ctx context.Context, req domain.ConfigureDeviceRequest) (*domain.Device, error)
	Get(ctx context.Context, deviceID string) (*domain.Device, error)
	ListByOEM(ctx context.Context, oemID string) ([]domain.Device, error)
	UpdateStatus(ctx context.Context, deviceID, status string) (*domain.Device, error)
}

type deviceStore interface {
	Create(ctx context.Context, d *domain.Device) error
	GetByDeviceID(ctx context.Context, deviceID string) (*domain.Device, error)
	ListByOEM(ctx context.Context, oemID string) ([]domain.Device, error)
	UpdateStatus(ctx context.Context, deviceID, status string) error
}

type service struct {
	repo deviceStore
}

func NewService(repo deviceStore) Service {
	return &service{repo: repo}
}

func (s *service) Configure(ctx context.Context, req domain.ConfigureDeviceRequest) (*domain.Device, error) {
	log.Printf("configuring device: %s", req.DeviceID)

	status := domain.DeviceStatusActive
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}
	now := time.Now().UTC()
	d := &domain.Device{
		DeviceID:      req.DeviceID,
		OEMID:         req.OEMID,
		DeviceType:    req.DeviceType,
		Configuration: req.Configuration,
		Firmware:      req.Firmware,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) Get(ctx context.Context, deviceID string) (*domain.Device, error) {
	return s.repo.GetByDeviceID(ctx, deviceID)
}

func (s *service) ListByOEM(ctx context.Context, oemID string) ([]domain.Device, error) {
	return s.repo.ListByOEM(ctx, oemID)
}

func (s *service) UpdateStatus(ctx context.Context, deviceID, status string) (*domain.Device, error) {
	log.Printf("updating device status: %s -> %s", deviceID, status)

	if err := s.repo.UpdateStatus(ctx, deviceID, status); err != nil {
		return nil, err
	}
	return s.repo.GetByDeviceID(ctx, deviceID)
}
