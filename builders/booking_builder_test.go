package builders

import (
	"testing"
	"time"

	"stayrooted/models"

	"github.com/stretchr/testify/assert"
)

func TestBookingBuilder(t *testing.T) {
	exp := &models.Experience{ID: "2", HostID: "2", Price: 1200}
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	b := NewBookingBuilder().
		ForExperience(exp).
		WithTraveler("t-1").
		WithDate("2024-02-10").
		WithGroupSize(3).
		WithTotalAmount(3600).
		CreatedAt(now).
		Build()

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, "2", b.ExperienceID)
	assert.Equal(t, "2", b.HostID)
	assert.Equal(t, "t-1", b.TravelerID)
	assert.Equal(t, 3600, b.TotalAmount)
	assert.Equal(t, now, b.CreatedAt)
}

func TestStayBookingBuilder(t *testing.T) {
	stay := &models.Stay{ID: "3", HostID: "3"}

	b := NewStayBookingBuilder().
		ForStay(stay).
		WithTraveler("t-1").
		WithDates("2024-02-10", "2024-02-12").
		WithGuests(2).
		WithTotalAmount(8000).
		WithStatus(models.BookingStatusConfirmed).
		Build()

	assert.Equal(t, "3", b.StayID)
	assert.Equal(t, "3", b.HostID)
	assert.Equal(t, "2024-02-12", b.CheckOut)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.NotEqual(t, NewStayBookingBuilder().Build().ID, b.ID)
}
