// ════════════════════════════════════════════════════════════
// Path: services/points_service.go
// Points ledger - award and spend with denormalized balances
// ════════════════════════════════════════════════════════════

package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
	"github.com/GreenDesk-Energy/greendesk-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInsufficientPoints is returned when a spend would drive the balance negative.
var ErrInsufficientPoints = errors.New("insufficient points balance")

type PointsService struct{}

func NewPointsService() *PointsService {
	return &PointsService{}
}

// Balance returns the current balance from the ledger.
func (s *PointsService) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	var balance int
	err := config.EnergyGorm.WithContext(ctx).
		Model(&models.PointTransaction{}).
		Select("COALESCE(SUM(delta), 0)").
		Where("user_id = ?", userID).
		Scan(&balance).Error
	if err != nil {
		return 0, fmt.Errorf("sum ledger: %w", err)
	}
	return balance, nil
}

// Earn appends an earn transaction inside tx and returns the new balance.
func (s *PointsService) Earn(tx *gorm.DB, userID uuid.UUID, points int, reason string) (int, error) {
	if points <= 0 {
		return 0, fmt.Errorf("earn amount must be positive, got %d", points)
	}
	return s.append(tx, userID, points, models.PointTypeEarn, reason)
}

// Spend appends a spend transaction inside tx and returns the new balance.
// Fails with ErrInsufficientPoints when the balance cannot cover it.
func (s *PointsService) Spend(tx *gorm.DB, userID uuid.UUID, points int, reason string) (int, error) {
	if points <= 0 {
		return 0, fmt.Errorf("spend amount must be positive, got %d", points)
	}
	return s.append(tx, userID, -points, models.PointTypeSpend, reason)
}

func (s *PointsService) append(tx *gorm.DB, userID uuid.UUID, delta int, txType, reason string) (int, error) {
	// Serialize per user: without the row lock, two concurrent spends can
	// both read the same balance and together drive it negative.
	var locked models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", userID).
		First(&locked).Error; err != nil {
		return 0, fmt.Errorf("lock user row: %w", err)
	}

	var balance int
	err := tx.Model(&models.PointTransaction{}).
		Select("COALESCE(SUM(delta), 0)").
		Where("user_id = ?", userID).
		Scan(&balance).Error
	if err != nil {
		return 0, fmt.Errorf("sum ledger: %w", err)
	}

	newBalance := balance + delta
	if newBalance < 0 {
		return 0, ErrInsufficientPoints
	}

	entry := models.PointTransaction{
		UserID:       userID,
		Delta:        delta,
		Type:         txType,
		Reason:       reason,
		BalanceAfter: newBalance,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return 0, fmt.Errorf("append ledger: %w", err)
	}

	return newBalance, nil
}

// AwardForRecord applies active per_kg point rules to a new energy record.
// Reduction is measured against the employee's previous reading; first
// readings and increases award nothing. Best-effort: callers log the error
// and keep the record.
func (s *PointsService) AwardForRecord(ctx context.Context, record *models.EnergyRecord) error {
	var prev models.EnergyRecord
	err := config.EnergyGorm.WithContext(ctx).
		Where("user_id = ? AND timestamp < ?", record.UserID, record.Timestamp).
		Order("timestamp DESC").
		First(&prev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // first reading, no baseline
		}
		return fmt.Errorf("load previous record: %w", err)
	}

	reduction := prev.CO2Kg - record.CO2Kg
	if reduction <= 0 {
		return nil
	}

	var rules []models.PointRule
	if err := config.EnergyGorm.WithContext(ctx).
		Where("type = ? AND active = true", models.RuleTypePerKg).
		Find(&rules).Error; err != nil {
		return fmt.Errorf("load point rules: %w", err)
	}

	for _, rule := range rules {
		points := int(math.Round(reduction * float64(rule.Value)))
		if points <= 0 {
			continue
		}
		err := config.EnergyGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			_, err := s.Earn(tx, record.UserID, points, rule.Name)
			return err
		})
		if err != nil {
			return fmt.Errorf("award rule %s: %w", rule.Name, err)
		}
		log.Printf("[points.award] user=%s rule=%s reduction=%.1fkg points=%d", record.UserID, rule.Name, reduction, points)
	}

	return nil
}

// ════════════════════════════════════════════════════════════
// Global singleton
// ════════════════════════════════════════════════════════════

var (
	pointsService     *PointsService
	pointsServiceOnce sync.Once
)

func GetPointsService() *PointsService {
	pointsServiceOnce.Do(func() {
		pointsService = NewPointsService()
	})
	return pointsService
}
