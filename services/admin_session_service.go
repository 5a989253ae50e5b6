package services

import (
	"context"
	"log"
	"time"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/google/uuid"
)

// AdminSessionService handles admin session operations
type AdminSessionService struct{}

// NewAdminSessionService creates a new session service
func NewAdminSessionService() *AdminSessionService {
	return &AdminSessionService{}
}

// CreateSession creates a new admin session
func (s *AdminSessionService) CreateSession(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	ipAddress string,
	userAgent string,
) (*models.AdminSession, error) {
	tokenHash := GetAuthService().HashToken(token)

	session := &models.AdminSession{
		ID:             uuid.Must(uuid.NewV7()),
		AdminID:        adminID,
		TokenHash:      tokenHash,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      time.Now(),
		LastActivityAt: time.Now(),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
	}

	if err := config.EnergyGorm.WithContext(ctx).Create(session).Error; err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for admin %s", session.ID, adminID)
	return session, nil
}

// TouchSession updates the last activity timestamp for a session
func (s *AdminSessionService) TouchSession(
	ctx context.Context,
	tokenHash string,
) error {
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("last_activity_at", time.Now()).Error; err != nil {
		log.Printf("[session] failed to update session activity: %v", err)
		return err
	}
	return nil
}

// RevokeSessions revokes all active sessions for an admin (logout)
func (s *AdminSessionService) RevokeSessions(
	ctx context.Context,
	adminID uuid.UUID,
) error {
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("admin_id = ? AND revoked_at IS NULL", adminID).
		Update("revoked_at", time.Now()).Error; err != nil {
		log.Printf("[session] failed to revoke sessions: %v", err)
		return err
	}

	log.Printf("[session] revoked sessions for admin %s", adminID)
	return nil
}

// IsSessionValid checks whether a token hash belongs to a live session
func (s *AdminSessionService) IsSessionValid(
	ctx context.Context,
	tokenHash string,
) (bool, error) {
	var count int64
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", tokenHash, time.Now()).
		Count(&count).Error; err != nil {
		log.Printf("[session] failed to check session: %v", err)
		return false, err
	}
	return count > 0, nil
}

// CleanupExpiredSessions removes expired sessions (run periodically)
func (s *AdminSessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	result := config.EnergyGorm.WithContext(ctx).
		Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)",
			time.Now(),
			time.Now().Add(-7*24*time.Hour), // Keep revoked sessions for 7 days
		).
		Delete(&models.AdminSession{})

	if result.Error != nil {
		log.Printf("[session] failed to cleanup expired sessions: %v", result.Error)
		return 0, result.Error
	}

	log.Printf("[session] cleaned up %d expired sessions", result.RowsAffected)
	return result.RowsAffected, nil
}

// CountActiveSessions counts total active sessions across all admins
func (s *AdminSessionService) CountActiveSessions(ctx context.Context) (int64, error) {
	var count int64
	if err := config.EnergyGorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("revoked_at IS NULL AND expires_at > ?", time.Now()).
		Count(&count).Error; err != nil {
		log.Printf("[session] failed to count active sessions: %v", err)
		return 0, err
	}
	return count, nil
}

// Global instance
var adminSessionService *AdminSessionService

// GetAdminSessionService returns the global session service instance
func GetAdminSessionService() *AdminSessionService {
	if adminSessionService == nil {
		adminSessionService = NewAdminSessionService()
	}
	return adminSessionService
}
