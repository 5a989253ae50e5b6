package models

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Resource types recorded by the activity log
const (
	ResourceTypePointRule = "point_rule"
	ResourceTypeProduct   = "product"
	ResourceTypeReport    = "report"
	ResourceTypeUser      = "user"
	ResourceTypeAdmin     = "admin"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActivityLog represents an admin action log entry
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID      `json:"admin_id" gorm:"type:uuid;not null;index:idx_activity_admin_date,sort:desc"`
	AdminEmail   string         `json:"admin_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"`                                             // created_point_rule, deleted_product, generated_report, ...
	ResourceType string         `json:"resource_type" gorm:"not null;index:idx_activity_resource_date,sort:desc"` // point_rule, product, report
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_admin_date,sort:desc;index:idx_activity_resource_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
