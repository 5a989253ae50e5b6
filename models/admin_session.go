package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSession tracks an issued admin token (stored as a SHA-256 hash)
type AdminSession struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID        uuid.UUID `json:"admin_id" gorm:"type:uuid;not null;index"`
	TokenHash      string    `json:"-" gorm:"uniqueIndex;not null"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at" gorm:"index"`
	RevokedAt      *time.Time `json:"revoked_at,omitempty"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *AdminSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}
