package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStateTransitions(t *testing.T) {
	tests := []struct {
		from   string
		action string
		want   string
		err    error
	}{
		{BookingStatusPending, "confirm", BookingStatusConfirmed, nil},
		{BookingStatusPending, "cancel", BookingStatusCancelled, nil},
		{BookingStatusPending, "complete", BookingStatusPending, ErrCompletePending},
		{BookingStatusConfirmed, "complete", BookingStatusCompleted, nil},
		{BookingStatusConfirmed, "cancel", BookingStatusCancelled, nil},
		{BookingStatusConfirmed, "confirm", BookingStatusConfirmed, ErrAlreadyConfirmed},
		{BookingStatusCompleted, "cancel", BookingStatusCompleted, ErrCancelCompleted},
		{BookingStatusCancelled, "confirm", BookingStatusCancelled, ErrConfirmCancelled},
		{BookingStatusCancelled, "complete", BookingStatusCancelled, ErrCompleteCancelled},
		{BookingStatusConfirmed, "refund", BookingStatusConfirmed, ErrUnknownBookingAction},
	}

	for _, tt := range tests {
		t.Run(tt.from+"/"+tt.action, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			err := ApplyBookingAction(b, tt.action)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, b.Status)
		})
	}
}

func TestIsTransitionError(t *testing.T) {
	assert.True(t, IsTransitionError(ErrAlreadyCancelled))
	assert.False(t, IsTransitionError(ErrUnknownBookingAction))
	assert.False(t, IsTransitionError(nil))
}
