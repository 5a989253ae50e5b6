package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record sources
const (
	RecordSourceManual = "manual"
	RecordSourceBill   = "bill_upload"
	RecordSourceDevice = "device"
)

// EnergyRecord is a single usage reading reported by an employee or device.
// CO2Kg is derived from usage at insert time with the standard emission
// factors so aggregation queries never recompute it.
type EnergyRecord struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Timestamp      time.Time  `json:"timestamp" gorm:"not null;index"`
	ElectricityKwh float64    `json:"electricity_kwh" gorm:"not null;default:0"`
	GasM3          float64    `json:"gas_m3" gorm:"not null;default:0"`
	CO2Kg          float64    `json:"co2_kg" gorm:"not null;default:0"`
	Source         string     `json:"source" gorm:"not null;default:'manual';check:source IN ('manual', 'bill_upload', 'device')"`
	DeviceID       *uuid.UUID `json:"device_id,omitempty" gorm:"type:uuid;index"`
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_energy_user_ts"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime;index:idx_energy_user_ts,sort:desc"`
}

// Emission factors (kg-CO2 per unit), METI published coefficients
const (
	CO2FactorElectricity = 0.441 // per kWh
	CO2FactorGas         = 2.23  // per m³
)

// BeforeCreate hook - auto-generate UUID v7 and derive CO2
func (r *EnergyRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	if r.CO2Kg == 0 {
		r.CO2Kg = r.ElectricityKwh*CO2FactorElectricity + r.GasM3*CO2FactorGas
	}
	return nil
}

func (EnergyRecord) TableName() string {
	return "energy_records"
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

type EnergyRecordRequest struct {
	Timestamp      time.Time  `json:"timestamp" binding:"required"`
	ElectricityKwh float64    `json:"electricity_kwh" binding:"min=0"`
	GasM3          float64    `json:"gas_m3" binding:"min=0"`
	DeviceID       *uuid.UUID `json:"device_id"`
	Source         string     `json:"source" binding:"omitempty,oneof=manual bill_upload device"`
}
