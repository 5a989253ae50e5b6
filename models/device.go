package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Device is a metering device (smart meter, solar inverter, gas meter)
// registered by an employee.
type Device struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string     `json:"name" gorm:"not null"`
	DeviceType       string     `json:"device_type" gorm:"not null;index"` // electricity_meter, gas_meter, solar
	Model            *string    `json:"model,omitempty"`
	SerialNumber     *string    `json:"serial_number,omitempty"`
	Capacity         *float64   `json:"capacity,omitempty"`
	Efficiency       *float64   `json:"efficiency,omitempty"`
	Location         *string    `json:"location,omitempty"`
	IsActive         bool       `json:"is_active" gorm:"default:true"`
	InstallationDate *time.Time `json:"installation_date,omitempty"`
	LastMaintenance  *time.Time `json:"last_maintenance,omitempty"`
	OwnerID          uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Device) TableName() string {
	return "devices"
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

type DeviceRequest struct {
	Name             string     `json:"name" binding:"required" example:"会議室Aスマートメーター"`
	DeviceType       string     `json:"device_type" binding:"required,oneof=electricity_meter gas_meter solar"`
	Model            *string    `json:"model"`
	SerialNumber     *string    `json:"serial_number"`
	Capacity         *float64   `json:"capacity" binding:"omitempty,min=0"`
	Efficiency       *float64   `json:"efficiency" binding:"omitempty,min=0,max=100"`
	Location         *string    `json:"location"`
	InstallationDate *time.Time `json:"installation_date"`
	LastMaintenance  *time.Time `json:"last_maintenance"`
}

type UpdateDeviceRequest struct {
	Name            *string    `json:"name"`
	Model           *string    `json:"model"`
	SerialNumber    *string    `json:"serial_number"`
	Capacity        *float64   `json:"capacity" binding:"omitempty,min=0"`
	Efficiency      *float64   `json:"efficiency" binding:"omitempty,min=0,max=100"`
	Location        *string    `json:"location"`
	IsActive        *bool      `json:"is_active"`
	LastMaintenance *time.Time `json:"last_maintenance"`
}
