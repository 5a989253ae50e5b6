// ════════════════════════════════════════════════════════════
// Path: config/migrate.go
// Schema migration on startup
// ════════════════════════════════════════════════════════════

package config

import (
	"log"

	"github.com/GreenDesk-Energy/greendesk-backend/models"
)

// Migrate brings the schema up to date. login_events is written through
// pgx only, so GORM has no model for it and it is created with raw SQL.
func Migrate() {
	err := EnergyGorm.AutoMigrate(
		&models.Admin{},
		&models.AdminSession{},
		&models.ActivityLog{},
		&models.User{},
		&models.Device{},
		&models.EnergyRecord{},
		&models.PointRule{},
		&models.PointTransaction{},
		&models.Product{},
		&models.Redemption{},
		&models.Report{},
	)
	if err != nil {
		log.Fatalf("❌ Failed to migrate schema: %v", err)
	}

	loginEvents := `
		CREATE TABLE IF NOT EXISTS login_events (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			method TEXT NOT NULL,
			logged_in_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			ip_address TEXT,
			user_agent TEXT,
			device_type TEXT,
			browser TEXT,
			os TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_login_events_user ON login_events (user_id, logged_in_at DESC);
	`
	if err := EnergyGorm.Exec(loginEvents).Error; err != nil {
		log.Fatalf("❌ Failed to create login_events: %v", err)
	}

	log.Println("✅ Schema migrated")
}
