package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Point rule types
const (
	RuleTypePerKg     = "per_kg"     // points per kg of CO2 reduced
	RuleTypeRankBonus = "rank_bonus" // bonus for monthly ranking position
	RuleTypeStreak    = "streak"     // continuous participation bonus
)

// PointRule defines how employees earn points.
// Params holds type-specific tuning, e.g. {"ranks": {"1": 500, "2": 300, "3": 100}}
// for rank_bonus or {"days": 30} for streak.
type PointRule struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Type        string         `json:"type" gorm:"not null;check:type IN ('per_kg', 'rank_bonus', 'streak');index"`
	Value       int            `json:"value" gorm:"not null;check:value >= 0"`
	Params      datatypes.JSON `json:"params" gorm:"type:jsonb;not null;default:'{}'"`
	Active      bool           `json:"active" gorm:"default:true;index"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *PointRule) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (PointRule) TableName() string {
	return "point_rules"
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

type PointRuleRequest struct {
	Name        string         `json:"name" binding:"required" example:"CO2削減ポイント"`
	Description string         `json:"description"`
	Type        string         `json:"type" binding:"required,oneof=per_kg rank_bonus streak"`
	Value       int            `json:"value" binding:"required,min=0" example:"10"`
	Params      datatypes.JSON `json:"params"`
	Active      *bool          `json:"active"`
}

type UpdatePointRuleRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Value       *int            `json:"value" binding:"omitempty,min=0"`
	Params      *datatypes.JSON `json:"params"`
	Active      *bool           `json:"active"`
}
