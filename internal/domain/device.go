package domain

import "time"

// Device statuses are free-form OEM-provided strings in practice; ACTIVE is
// the default applied when a configuration request omits one.
const DeviceStatusActive = "ACTIVE"

type Device struct {
	ID            uint      `json:"-" gorm:"primaryKey"`
	DeviceID      string    `json:"device_id" gorm:"size:100;uniqueIndex;not null"`
	OEMID         string    `json:"oem_id" gorm:"column:oem_id;size:100;not null;index"`
	DeviceType    string    `json:"device_type" gorm:"size:100;not null"`
	Configuration *string   `json:"configuration,omitempty" gorm:"type:text"`
	Firmware      *string   `json:"firmware,omitempty" gorm:"size:100"`
	Status        string    `json:"status" gorm:"size:50;not null;default:ACTIVE"`
	CreatedAt     time.Time `json:"created"`
	UpdatedAt     time.Time `json:"updated"`
}

// DeviceMetric is one ingested measurement. Metrics reference devices by
// their external device_id string; there is no FK, so metrics survive
// device reconfiguration and can arrive before the device row does.
type DeviceMetric struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	DeviceID    string    `json:"device_id" gorm:"size:100;not null;index"`
	MetricType  string    `json:"metric_type" gorm:"size:100;not null"`
	Value       float64   `json:"value" gorm:"not null"`
	Unit        *string   `json:"unit,omitempty" gorm:"size:50"`
	Description *string   `json:"description,omitempty" gorm:"size:255"`
	Timestamp   time.Time `json:"timestamp"`
}

// MetricSummary is the aggregated performance view over a device's recent
// metrics. Aggregates cover CPU_USAGE readings; TotalCount covers all
// recent metrics regardless of type.
type MetricSummary struct {
	DeviceID     string     `json:"device_id"`
	MetricType   string     `json:"metric_type"`
	AverageValue float64    `json:"average_value"`
	MaxValue     float64    `json:"max_value"`
	MinValue     float64    `json:"min_value"`
	TotalCount   int64      `json:"total_count"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

type ConfigureDeviceRequest struct {
	DeviceID      string  `json:"device_id" validate:"required,device_id,max=100"`
	OEMID         string  `json:"oem_id" validate:"required,max=100"`
	DeviceType    string  `json:"device_type" validate:"required,max=100"`
	Configuration *string `json:"configuration"`
	Firmware      *string `json:"firmware" validate:"omitempty,max=100"`
	Status        *string `json:"status" validate:"omitempty,max=50"`
}

type RecordMetricRequest struct {
	DeviceID    string   `json:"device_id" validate:"required,device_id,max=100"`
	MetricType  string   `json:"metric_type" validate:"required,max=100"`
	Value       *float64 `json:"value" validate:"required"`
	Unit        *string  `json:"unit" validate:"omitempty,max=50"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
}

type UpdateDeviceStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}
