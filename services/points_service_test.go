package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

// A spend must lock the user row before summing the ledger. Expectations
// are ordered, so this also pins the lock-then-sum sequence that keeps
// two concurrent spends from both passing the balance check.
func TestSpendLocksUserAndRejectsOverdraft(t *testing.T) {
	gdb, mock := newMockGorm(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT "id" FROM "users" WHERE id = .+ FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(delta), 0) FROM "point_transactions" WHERE user_id =`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(300))

	svc := NewPointsService()
	_, err := svc.Spend(gdb, userID, 500, "redeem: eco bottle")
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpendRejectsNonPositiveAmount(t *testing.T) {
	svc := NewPointsService()
	_, err := svc.Spend(nil, uuid.New(), 0, "redeem")
	assert.Error(t, err)

	_, err = svc.Earn(nil, uuid.New(), -5, "award")
	assert.Error(t, err)
}

func TestBalanceSumsLedger(t *testing.T) {
	gdb, mock := newMockGorm(t)
	userID := uuid.New()

	orig := config.EnergyGorm
	config.EnergyGorm = gdb
	defer func() { config.EnergyGorm = orig }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(delta), 0) FROM "point_transactions" WHERE user_id =`)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(320))

	svc := NewPointsService()
	balance, err := svc.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 320, balance)

	assert.NoError(t, mock.ExpectationsWereMet())
}
