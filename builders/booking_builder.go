package builders

import (
	"time"

	"stayrooted/models"

	"github.com/google/uuid"
)

// BookingBuilder giúp tạo booking experience theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo builder với id mới và trạng thái pending
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			ID:     uuid.NewString(),
			Status: models.BookingStatusPending,
		},
	}
}

// ForExperience gắn experience và host của nó
func (b *BookingBuilder) ForExperience(exp *models.Experience) *BookingBuilder {
	b.booking.ExperienceID = exp.ID
	b.booking.HostID = exp.HostID
	b.booking.Experience = exp
	return b
}

func (b *BookingBuilder) WithTraveler(travelerID string) *BookingBuilder {
	b.booking.TravelerID = travelerID
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.booking.Date = date
	return b
}

func (b *BookingBuilder) WithGroupSize(size int) *BookingBuilder {
	b.booking.GroupSize = size
	return b
}

func (b *BookingBuilder) WithTotalAmount(total int) *BookingBuilder {
	b.booking.TotalAmount = total
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.booking.Status = status
	return b
}

func (b *BookingBuilder) CreatedAt(t time.Time) *BookingBuilder {
	b.booking.CreatedAt = t
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}

// StayBookingBuilder giúp tạo booking homestay theo từng bước
type StayBookingBuilder struct {
	booking *models.StayBooking
}

func NewStayBookingBuilder() *StayBookingBuilder {
	return &StayBookingBuilder{
		booking: &models.StayBooking{
			ID:     uuid.NewString(),
			Status: models.BookingStatusPending,
		},
	}
}

// ForStay gắn stay và host của nó
func (b *StayBookingBuilder) ForStay(stay *models.Stay) *StayBookingBuilder {
	b.booking.StayID = stay.ID
	b.booking.HostID = stay.HostID
	b.booking.Stay = stay
	return b
}

func (b *StayBookingBuilder) WithTraveler(travelerID string) *StayBookingBuilder {
	b.booking.TravelerID = travelerID
	return b
}

// WithDates thêm ngày check-in và check-out
func (b *StayBookingBuilder) WithDates(checkIn, checkOut string) *StayBookingBuilder {
	b.booking.CheckIn = checkIn
	b.booking.CheckOut = checkOut
	return b
}

func (b *StayBookingBuilder) WithGuests(guests int) *StayBookingBuilder {
	b.booking.Guests = guests
	return b
}

func (b *StayBookingBuilder) WithTotalAmount(total int) *StayBookingBuilder {
	b.booking.TotalAmount = total
	return b
}

func (b *StayBookingBuilder) WithStatus(status string) *StayBookingBuilder {
	b.booking.Status = status
	return b
}

func (b *StayBookingBuilder) CreatedAt(t time.Time) *StayBookingBuilder {
	b.booking.CreatedAt = t
	return b
}

func (b *StayBookingBuilder) Build() *models.StayBooking {
	return b.booking
}
