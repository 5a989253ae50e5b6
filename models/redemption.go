package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Redemption records an exchange of points for a catalog product.
type Redemption struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	PointsSpent int       `json:"points_spent" gorm:"not null;check:points_spent > 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime;index"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ID"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Redemption) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Redemption) TableName() string {
	return "redemptions"
}

// ════════════════════════════════════════════════════════════
// Request / Response Models
// ════════════════════════════════════════════════════════════

type RedeemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type RedemptionResponse struct {
	Success    bool   `json:"success"`
	NewBalance int    `json:"new_balance"`
	Message    string `json:"message,omitempty"`
}
