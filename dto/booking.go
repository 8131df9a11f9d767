package dto

import "stayrooted/models"

type ExperienceBookingInput struct {
	Date      string `json:"date"`
	GroupSize int    `json:"group_size"`
}

type StayBookingInput struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

type ExperienceQuote struct {
	ExperienceID string `json:"experience_id"`
	Date         string `json:"date,omitempty"`
	UnitPrice    int    `json:"unit_price"`
	GroupSize    int    `json:"group_size"`
	TotalPrice   int    `json:"total_price"`
}

type StayQuote struct {
	StayID        string `json:"stay_id"`
	CheckIn       string `json:"check_in,omitempty"`
	CheckOut      string `json:"check_out,omitempty"`
	PricePerNight int    `json:"price_per_night"`
	Nights        int    `json:"nights"`
	Guests        int    `json:"guests"`
	TotalPrice    int    `json:"total_price"`
}

type BookingStatusInput struct {
	Action string `json:"action" binding:"required,oneof=confirm cancel complete"`
}

// BookingsResponse gom booking experience và stay của một traveler
type BookingsResponse struct {
	Experiences []models.Booking     `json:"experiences"`
	Stays       []models.StayBooking `json:"stays"`
}

// BookingStatusResult là kết quả sau khi đổi trạng thái một booking
type BookingStatusResult struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

// StayBookingResult là booking homestay vừa tạo cùng số đêm
type StayBookingResult struct {
	Booking models.StayBooking `json:"booking"`
	Nights  int                `json:"nights"`
}
