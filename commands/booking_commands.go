package commands

import (
	"context"

	"stayrooted/models"
	"stayrooted/store"
)

// BookingCommand định nghĩa interface cho các command
type BookingCommand interface {
	Execute(ctx context.Context) error
}

// CreateBookingCommand command để lưu booking experience mới
type CreateBookingCommand struct {
	booking *models.Booking
	repo    store.Bookings
}

func NewCreateBookingCommand(booking *models.Booking, repo store.Bookings) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		repo:    repo,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	return c.repo.CreateBooking(ctx, c.booking)
}

// CreateStayBookingCommand command để lưu booking homestay mới
type CreateStayBookingCommand struct {
	booking *models.StayBooking
	repo    store.Bookings
}

func NewCreateStayBookingCommand(booking *models.StayBooking, repo store.Bookings) *CreateStayBookingCommand {
	return &CreateStayBookingCommand{
		booking: booking,
		repo:    repo,
	}
}

func (c *CreateStayBookingCommand) Execute(ctx context.Context) error {
	return c.repo.CreateStayBooking(ctx, c.booking)
}

// UpdateBookingStatusCommand chạy action qua state machine rồi lưu booking experience
type UpdateBookingStatusCommand struct {
	booking *models.Booking
	action  string
	repo    store.Bookings
}

func NewUpdateBookingStatusCommand(booking *models.Booking, action string, repo store.Bookings) *UpdateBookingStatusCommand {
	return &UpdateBookingStatusCommand{
		booking: booking,
		action:  action,
		repo:    repo,
	}
}

func (c *UpdateBookingStatusCommand) Execute(ctx context.Context) error {
	from := c.booking.Status
	if err := models.ApplyBookingAction(c.booking, c.action); err != nil {
		return err
	}
	return c.repo.SaveBooking(ctx, c.booking, from)
}

// UpdateStayBookingStatusCommand chạy action qua state machine rồi lưu booking homestay
type UpdateStayBookingStatusCommand struct {
	booking *models.StayBooking
	action  string
	repo    store.Bookings
}

func NewUpdateStayBookingStatusCommand(booking *models.StayBooking, action string, repo store.Bookings) *UpdateStayBookingStatusCommand {
	return &UpdateStayBookingStatusCommand{
		booking: booking,
		action:  action,
		repo:    repo,
	}
}

func (c *UpdateStayBookingStatusCommand) Execute(ctx context.Context) error {
	from := c.booking.Status
	if err := models.ApplyBookingAction(c.booking, c.action); err != nil {
		return err
	}
	return c.repo.SaveStayBooking(ctx, c.booking, from)
}
