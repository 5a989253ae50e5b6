package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Report job statuses
const (
	ReportStatusProcessing = "processing"
	ReportStatusCompleted  = "completed"
	ReportStatusFailed     = "failed"
)

// Report is a persisted report-generation job. The artifact itself lives in
// object storage under ObjectKey; the row carries status for polling clients.
type Report struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title            string         `json:"title" gorm:"not null"`
	Type             string         `json:"type" gorm:"not null;check:type IN ('csr', 'points', 'products', 'users');index"`
	Period           string         `json:"period" gorm:"not null;check:period IN ('monthly', 'quarterly', 'yearly')"`
	StartDate        string         `json:"start_date" gorm:"not null"` // YYYY-MM-DD
	EndDate          string         `json:"end_date" gorm:"not null"`   // YYYY-MM-DD
	Departments      datatypes.JSON `json:"departments" gorm:"type:jsonb;not null;default:'[]'"`
	Format           string         `json:"format" gorm:"not null;check:format IN ('pdf', 'docx', 'csv')"`
	Status           string         `json:"status" gorm:"not null;default:'processing';index"`
	Progress         int            `json:"progress" gorm:"not null;default:0"` // 0-100
	ErrorMessage     string         `json:"error_message,omitempty"`
	ObjectKey        string         `json:"-"`
	FileName         string         `json:"file_name,omitempty"`
	FileSizeBytes    int64          `json:"file_size_bytes,omitempty"`
	GenerationTimeMs int64          `json:"generation_time_ms,omitempty"`
	RequestedBy      uuid.UUID      `json:"requested_by" gorm:"type:uuid;not null;index"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Report) TableName() string {
	return "reports"
}

// ════════════════════════════════════════════════════════════
// Request / Response Models
// ════════════════════════════════════════════════════════════

// GenerateReportRequest mirrors the report configuration form.
// The server rejects start_date > end_date (the dashboard historically
// allowed it and produced garbage periods).
type GenerateReportRequest struct {
	Type        string   `json:"type" binding:"required,oneof=csr points products users"`
	Period      string   `json:"period" binding:"required,oneof=monthly quarterly yearly"`
	StartDate   string   `json:"start_date" binding:"required" example:"2025-01-01"`
	EndDate     string   `json:"end_date" binding:"required" example:"2025-01-31"`
	Departments []string `json:"departments"`
	Format      string   `json:"format" binding:"required,oneof=pdf docx csv"`
}

type GenerateReportResponse struct {
	ReportID  uuid.UUID `json:"report_id"`
	FileURL   string    `json:"file_url"`
	FileName  string    `json:"file_name"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportStatusResponse struct {
	ReportID    uuid.UUID  `json:"report_id"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	Message     string     `json:"message,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ReportPreviewResponse struct {
	Title          string         `json:"title"`
	Period         string         `json:"period"`
	Summary        string         `json:"summary"`
	KeyMetrics     map[string]any `json:"key_metrics"`
	ContentPreview string         `json:"content_preview"`
}
