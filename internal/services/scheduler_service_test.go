package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumhotel/hotel-service/internal/constants"
	"github.com/quantumhotel/hotel-service/internal/models"
)

func TestRetireStalePending(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	stale := f.mustCreate(t, f.guest.ID, 1, 3)
	fresh := f.mustCreate(t, f.otherG.ID, 2, 4)

	sched := NewSchedulerService(f.resRepo, f.userRepo, f.notifier, f.publisher, f.staff.ID)
	// Pretend two days passed: the first stay window already started.
	sched.now = func() time.Time { return time.Now().UTC().AddDate(0, 0, 2) }

	sched.RetireStalePending(ctx)

	got, err := f.resRepo.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusRejected, got.Status)
	require.NotNil(t, got.Reason)
	assert.Equal(t, constants.StalePendingReason, *got.Reason)
	require.NotNil(t, got.ProcessedBy)
	assert.Equal(t, f.staff.ID, *got.ProcessedBy)

	untouched, err := f.resRepo.GetByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusPending, untouched.Status)

	assert.Equal(t, 1, f.notifier.countOf("rejected"))

	// Re-running the sweep finds nothing left to do.
	sched.RetireStalePending(ctx)
	assert.Equal(t, 1, f.notifier.countOf("rejected"))
}
