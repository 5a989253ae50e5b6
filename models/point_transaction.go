package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction types
const (
	PointTypeEarn  = "earn"
	PointTypeSpend = "spend"
)

// PointTransaction is one entry in the append-only points ledger.
// BalanceAfter denormalizes the running balance so history pages
// never need a window query.
type PointTransaction struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:idx_points_user_date,sort:desc"`
	Delta        int       `json:"delta" gorm:"not null"` // positive for earn, negative for spend
	Type         string    `json:"type" gorm:"not null;check:type IN ('earn', 'spend')"`
	Reason       string    `json:"reason" gorm:"not null"`
	BalanceAfter int       `json:"balance_after" gorm:"not null;check:balance_after >= 0"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_points_user_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (t *PointTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}

// ════════════════════════════════════════════════════════════
// Response Models
// ════════════════════════════════════════════════════════════

type PointsBalance struct {
	UserID         uuid.UUID `json:"user_id"`
	CurrentBalance int       `json:"current_balance"`
	LastUpdated    time.Time `json:"last_updated"`
}

// EmployeePoints is one row of the admin points overview
type EmployeePoints struct {
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	Department   string    `json:"department"`
	Balance      int       `json:"balance"`
	TotalEarned  int       `json:"total_earned"`
	TotalSpent   int       `json:"total_spent"`
	LastActivity time.Time `json:"last_activity"`
}
