package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantumhotel/hotel-service/internal/models"
	"github.com/quantumhotel/hotel-service/internal/utils"
)

func TestValidateStayRange(t *testing.T) {
	svc := NewAvailabilityService(nil, nil, nil, nil)

	tests := []struct {
		name    string
		fromDay int
		toDay   int
		wantErr bool
	}{
		{"one night starting today", 0, 1, false},
		{"future week", 3, 10, false},
		{"empty range", 2, 2, true},
		{"inverted range", 5, 2, true},
		{"starts yesterday", -1, 3, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ValidateStayRange(day(tc.fromDay), day(tc.toDay))
			if tc.wantErr {
				assert.ErrorIs(t, err, utils.ErrInvalidRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindAvailableCategoriesMatchesCapacityExactly(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	// Second category sleeps 4; a search for 2 must not return it even
	// though it has free units.
	family := &models.AccommodationCategory{ID: uuid.New(), Name: "Family Suite", Capacity: 4, PriceCents: 30000}
	f.catRepo.byID[family.ID] = family
	familyUnit := &models.AccommodationUnit{ID: uuid.New(), CategoryID: family.ID, RoomNumber: 201}
	f.unitRepo.byID[familyUnit.ID] = familyUnit

	availability := NewAvailabilityService(f.catRepo, f.unitRepo, f.resRepo, nil)

	cats, err := availability.FindAvailableCategories(ctx, day(1), day(3), 2)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, f.category.ID, cats[0].ID)

	cats, err = availability.FindAvailableCategories(ctx, day(1), day(3), 3)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestFindAvailableCategoriesExcludesFullyBookedOnes(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	r := f.mustCreate(t, f.guest.ID, 1, 5)
	_, err := f.svc.Confirm(ctx, f.staff.ID, r.ID)
	require.NoError(t, err)

	availability := NewAvailabilityService(f.catRepo, f.unitRepo, f.resRepo, nil)

	cats, err := availability.FindAvailableCategories(ctx, day(2), day(4), 2)
	require.NoError(t, err)
	assert.Empty(t, cats)

	// The window right after checkout is free again.
	cats, err = availability.FindAvailableCategories(ctx, day(5), day(7), 2)
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestFindFreeUnitWalksRoomsInOrder(t *testing.T) {
	f := newFixture(t, 3)
	ctx := context.Background()
	availability := NewAvailabilityService(f.catRepo, f.unitRepo, f.resRepo, nil)

	unit, err := availability.FindFreeUnit(ctx, f.category.ID, day(1), day(4))
	require.NoError(t, err)
	assert.Equal(t, 101, unit.RoomNumber)

	// Occupy room 101; allocation moves to the next room number.
	r := f.mustCreate(t, f.guest.ID, 1, 4)
	_, err = f.svc.Confirm(ctx, f.staff.ID, r.ID)
	require.NoError(t, err)

	unit, err = availability.FindFreeUnit(ctx, f.category.ID, day(1), day(4))
	require.NoError(t, err)
	assert.Equal(t, 102, unit.RoomNumber)
}

func TestFindFreeUnitErrors(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	availability := NewAvailabilityService(f.catRepo, f.unitRepo, f.resRepo, nil)

	_, err := availability.FindFreeUnit(ctx, uuid.New(), day(1), day(3))
	assert.ErrorIs(t, err, utils.ErrNotFound)

	r := f.mustCreate(t, f.guest.ID, 1, 4)
	_, err = f.svc.Confirm(ctx, f.staff.ID, r.ID)
	require.NoError(t, err)

	_, err = availability.FindFreeUnit(ctx, f.category.ID, day(2), day(5))
	assert.ErrorIs(t, err, utils.ErrNoAvailability)
}

func TestHasConflictAsymmetry(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	availability := NewAvailabilityService(f.catRepo, f.unitRepo, f.resRepo, nil)

	pending := f.mustCreate(t, f.guest.ID, 1, 4)

	// Without an exclusion id only CONFIRMED reservations count.
	conflict, err := availability.HasConflict(ctx, pending.UnitID, day(2), day(5), nil)
	require.NoError(t, err)
	assert.False(t, conflict)

	// With one, PENDING siblings count too.
	other := uuid.New()
	conflict, err = availability.HasConflict(ctx, pending.UnitID, day(2), day(5), &other)
	require.NoError(t, err)
	assert.True(t, conflict)

	// Excluding the pending reservation itself removes the conflict.
	conflict, err = availability.HasConflict(ctx, pending.UnitID, day(2), day(5), &pending.ID)
	require.NoError(t, err)
	assert.False(t, conflict)
}
