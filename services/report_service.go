package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/GreenDesk-Energy/greendesk-backend/report"
	"github.com/google/uuid"
)

// historyLimit caps the in-memory recent-generation list
const historyLimit = 50

// terminalTimeout bounds the status write that ends a job
const terminalTimeout = 10 * time.Second

// terminalContext returns a fresh context for writing a job's terminal
// status. It must not share the generation deadline: when a step blows
// the 2 minute budget, the failed/completed write still has to land or
// the row stays processing forever.
func terminalContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), terminalTimeout)
}

// ReportService runs the report export pipeline: it resolves a metrics
// snapshot, encodes it into the requested format, stores the artifact in
// object storage and tracks the job row for polling clients.
type ReportService struct {
	registry *report.Registry
	provider report.MetricsProvider
	history  *report.History
}

// NewReportService creates a report service. The data mode is a
// deployment choice: REPORT_DATA_MODE=demo serves the fixed snapshot,
// anything else aggregates live data.
func NewReportService() *ReportService {
	var provider report.MetricsProvider
	if os.Getenv("REPORT_DATA_MODE") == report.ModeDemo {
		log.Println("[report] using demo metrics provider")
		provider = report.NewDemoProvider()
	} else {
		provider = report.NewLiveProvider(config.EnergyGorm)
	}

	return &ReportService{
		registry: report.DefaultRegistry(),
		provider: provider,
		history:  report.NewHistory(historyLimit),
	}
}

// Registry exposes the encoder registry (used by the preview endpoint
// to list available formats)
func (s *ReportService) Registry() *report.Registry {
	return s.registry
}

// configFromRequest builds a validated pipeline config from the API request
func configFromRequest(req models.GenerateReportRequest) (report.Config, error) {
	cfg := report.Config{
		Type:        report.Type(req.Type),
		Period:      report.Period(req.Period),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Departments: req.Departments,
		Format:      report.Format(req.Format),
	}
	if err := cfg.Validate(); err != nil {
		return report.Config{}, err
	}
	return cfg, nil
}

// Generate validates the request, persists a processing job row and
// launches the generation in the background. The returned report carries
// the job ID the client polls.
func (s *ReportService) Generate(ctx context.Context, adminID uuid.UUID, req models.GenerateReportRequest) (*models.Report, error) {
	cfg, err := configFromRequest(req)
	if err != nil {
		return nil, err
	}

	// Unknown formats fail fast, before a job row exists
	if _, err := s.registry.Encoder(cfg.Format); err != nil {
		return nil, err
	}

	departments, err := json.Marshal(req.Departments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal departments: %w", err)
	}
	if req.Departments == nil {
		departments = []byte("[]")
	}

	job := &models.Report{
		Title:       cfg.Type.Title(),
		Type:        req.Type,
		Period:      req.Period,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Departments: departments,
		Format:      req.Format,
		Status:      models.ReportStatusProcessing,
		Progress:    0,
		RequestedBy: adminID,
	}

	if err := config.EnergyGorm.WithContext(ctx).Create(job).Error; err != nil {
		log.Printf("[report] failed to create job row: %v", err)
		return nil, fmt.Errorf("failed to create report job: %w", err)
	}

	log.Printf("[report] job %s queued: %s/%s/%s", job.ID, req.Type, req.Period, req.Format)

	// The request context dies with the HTTP request; generation runs on
	// its own deadline.
	go s.run(job.ID, cfg)

	return job, nil
}

// run executes one generation job to completion
func (s *ReportService) run(jobID uuid.UUID, cfg report.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	started := time.Now()

	s.setProgress(ctx, jobID, 10)

	data, err := s.provider.Snapshot(ctx, cfg)
	if err != nil {
		s.fail(jobID, fmt.Errorf("metrics snapshot: %w", err))
		return
	}

	s.setProgress(ctx, jobID, 50)

	enc, err := s.registry.Encoder(cfg.Format)
	if err != nil {
		s.fail(jobID, err)
		return
	}

	payload, err := enc.Encode(cfg, data)
	if err != nil {
		s.fail(jobID, fmt.Errorf("%s encoding: %w", enc.Name(), err))
		return
	}

	s.setProgress(ctx, jobID, 80)

	fileName := report.BuildFilename(cfg.Type.Title(), cfg.Period, enc.FileExtension(), time.Now())
	objectKey := fmt.Sprintf("%s/%s", jobID, fileName)

	if err := GetStorageService().PutReport(ctx, objectKey, payload, enc.ContentType()); err != nil {
		s.fail(jobID, err)
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":             models.ReportStatusCompleted,
		"progress":           100,
		"object_key":         objectKey,
		"file_name":          fileName,
		"file_size_bytes":    int64(len(payload)),
		"generation_time_ms": time.Since(started).Milliseconds(),
		"completed_at":       now,
	}
	done, cancelDone := terminalContext()
	defer cancelDone()
	if err := config.EnergyGorm.WithContext(done).
		Model(&models.Report{}).
		Where("id = ?", jobID).
		Updates(updates).Error; err != nil {
		log.Printf("[report] job %s: failed to mark completed: %v", jobID, err)
		return
	}

	s.history.Prepend(report.HistoryItem{
		ID:        jobID.String(),
		Title:     cfg.Type.Title(),
		Type:      string(cfg.Type),
		Period:    string(cfg.Period),
		Format:    string(cfg.Format),
		SizeLabel: report.SizeLabel(int64(len(payload))),
		CreatedAt: now,
	})

	log.Printf("[report] job %s completed: %s (%d bytes in %dms)",
		jobID, fileName, len(payload), time.Since(started).Milliseconds())

	s.notify(done, jobID, cfg, fileName, payload)
}

// notify emails the requesting admin. Best-effort: a missing Resend key
// or a failed lookup never fails the job.
func (s *ReportService) notify(ctx context.Context, jobID uuid.UUID, cfg report.Config, fileName string, payload []byte) {
	client := GetResendClient()
	if client == nil {
		return
	}

	job, err := s.GetReport(ctx, jobID)
	if err != nil {
		log.Printf("[report] job %s: notify lookup failed: %v", jobID, err)
		return
	}

	var admin models.Admin
	if err := config.EnergyGorm.WithContext(ctx).First(&admin, "id = ?", job.RequestedBy).Error; err != nil {
		log.Printf("[report] job %s: admin lookup failed: %v", jobID, err)
		return
	}

	enc, err := s.registry.Encoder(cfg.Format)
	if err != nil {
		return
	}

	if err := client.SendReportReadyEmail(ReportReadyEmailData{
		AdminName:      admin.Name,
		AdminEmail:     admin.Email,
		ReportTitle:    cfg.Type.Title(),
		PeriodLabel:    string(cfg.Period),
		FileName:       fileName,
		SizeLabel:      report.SizeLabel(int64(len(payload))),
		Attachment:     payload,
		AttachmentType: enc.ContentType(),
	}); err != nil {
		log.Printf("[report] job %s: notify email failed: %v", jobID, err)
	}
}

// setProgress best-effort updates the job progress for polling clients
func (s *ReportService) setProgress(ctx context.Context, jobID uuid.UUID, progress int) {
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ? AND status = ?", jobID, models.ReportStatusProcessing).
		Update("progress", progress).Error; err != nil {
		log.Printf("[report] job %s: failed to update progress: %v", jobID, err)
	}
}

// fail marks the job failed with the error message. It runs on its own
// context: the caller's may already be past its deadline.
func (s *ReportService) fail(jobID uuid.UUID, cause error) {
	ctx, cancel := terminalContext()
	defer cancel()

	log.Printf("[report] job %s failed: %v", jobID, cause)
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&models.Report{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":        models.ReportStatusFailed,
			"error_message": cause.Error(),
		}).Error; err != nil {
		log.Printf("[report] job %s: failed to mark failed: %v", jobID, err)
	}
}

// GetReport fetches one job row
func (s *ReportService) GetReport(ctx context.Context, jobID uuid.UUID) (*models.Report, error) {
	var job models.Report
	if err := config.EnergyGorm.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Download returns the stored artifact with its filename and content type.
// Only completed jobs have an artifact.
func (s *ReportService) Download(ctx context.Context, jobID uuid.UUID) ([]byte, string, string, error) {
	job, err := s.GetReport(ctx, jobID)
	if err != nil {
		return nil, "", "", err
	}
	if job.Status != models.ReportStatusCompleted {
		return nil, "", "", fmt.Errorf("report %s is %s, not completed", jobID, job.Status)
	}

	payload, err := GetStorageService().GetReport(ctx, job.ObjectKey)
	if err != nil {
		return nil, "", "", err
	}

	enc, err := s.registry.Encoder(report.Format(job.Format))
	if err != nil {
		return nil, "", "", err
	}
	return payload, job.FileName, enc.ContentType(), nil
}

// Preview resolves the snapshot without encoding or persisting anything
func (s *ReportService) Preview(ctx context.Context, req models.GenerateReportRequest) (*models.ReportPreviewResponse, error) {
	cfg, err := configFromRequest(req)
	if err != nil {
		return nil, err
	}

	data, err := s.provider.Snapshot(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("metrics snapshot: %w", err)
	}

	return &models.ReportPreviewResponse{
		Title:   cfg.Type.Title(),
		Period:  string(cfg.Period),
		Summary: cfg.DateRangeLabel(),
		KeyMetrics: map[string]any{
			"total_co2_reduction":   data.TotalCO2Reduction,
			"total_points_issued":   data.TotalPointsIssued,
			"total_points_redeemed": data.TotalPointsRedeemed,
			"active_users":          data.ActiveUsers,
		},
		ContentPreview: fmt.Sprintf("%s / トップパフォーマー %d名 / 部署 %d件",
			cfg.DateRangeLabel(), len(data.TopPerformers), len(data.DepartmentStats)),
	}, nil
}

// ListReports returns recent job rows, newest first
func (s *ReportService) ListReports(ctx context.Context, limit, offset int) ([]models.Report, int64, error) {
	var total int64
	if err := config.EnergyGorm.WithContext(ctx).Model(&models.Report{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Report
	if err := config.EnergyGorm.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// History returns the session-scoped recent-generation list
func (s *ReportService) History() []report.HistoryItem {
	return s.history.Items()
}

// Global instance
var reportService *ReportService

// GetReportService returns the global report service instance
func GetReportService() *ReportService {
	if reportService == nil {
		reportService = NewReportService()
	}
	return reportService
}
