package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreenDesk-Energy/greendesk-backend/config"
)

func TestTerminalContextOutlivesJobDeadline(t *testing.T) {
	jobCtx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-jobCtx.Done()
	require.Error(t, jobCtx.Err())

	ctx, cancelTerm := terminalContext()
	defer cancelTerm()

	assert.NoError(t, ctx.Err())
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(terminalTimeout), deadline, time.Second)
}

// A job whose generation budget expired mid-step must still end up in
// the failed state, not stuck at processing.
func TestFailWritesFailedStatus(t *testing.T) {
	gdb, mock := newMockGorm(t)

	orig := config.EnergyGorm
	config.EnergyGorm = gdb
	defer func() { config.EnergyGorm = orig }()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reports" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := &ReportService{}
	svc.fail(uuid.New(), errors.New("metrics snapshot: deadline exceeded"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
