package commands

import (
	"context"
	"testing"

	"stayrooted/models"
	"stayrooted/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndUpdateBooking(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryBookings()
	booking := &models.Booking{ID: "b-1", Status: models.BookingStatusPending}

	require.NoError(t, NewCreateBookingCommand(booking, repo).Execute(ctx))
	require.NoError(t, NewUpdateBookingStatusCommand(booking, "confirm", repo).Execute(ctx))

	stored, err := repo.FindBooking(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status)

	err = NewUpdateBookingStatusCommand(booking, "confirm", repo).Execute(ctx)
	assert.ErrorIs(t, err, models.ErrAlreadyConfirmed)
}

func TestUpdateStayBookingRejectsFinalState(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryBookings()
	booking := &models.StayBooking{ID: "s-1", Status: models.BookingStatusCompleted}

	require.NoError(t, NewCreateStayBookingCommand(booking, repo).Execute(ctx))

	err := NewUpdateStayBookingStatusCommand(booking, "cancel", repo).Execute(ctx)
	assert.ErrorIs(t, err, models.ErrCancelCompleted)

	stored, err := repo.FindStayBooking(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, stored.Status)
}

func TestUpdateMissingBooking(t *testing.T) {
	booking := &models.Booking{ID: "ghost", Status: models.BookingStatusPending}
	err := NewUpdateBookingStatusCommand(booking, "cancel", store.NewMemoryBookings()).Execute(context.Background())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateFromStaleSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryBookings()
	require.NoError(t, NewCreateBookingCommand(&models.Booking{ID: "b-2", Status: models.BookingStatusConfirmed}, repo).Execute(ctx))

	snapshot, err := repo.BookingsByStatus(ctx, models.BookingStatusConfirmed)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	current, err := repo.FindBooking(ctx, "b-2")
	require.NoError(t, err)
	require.NoError(t, NewUpdateBookingStatusCommand(current, "cancel", repo).Execute(ctx))

	err = NewUpdateBookingStatusCommand(&snapshot[0], "complete", repo).Execute(ctx)
	assert.ErrorIs(t, err, store.ErrStaleStatus)

	stored, err := repo.FindBooking(ctx, "b-2")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)
}
