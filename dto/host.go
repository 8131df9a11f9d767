package dto

import "stayrooted/models"

// ExperienceForm là form tạo experience của host
type ExperienceForm struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	ShortDescription string `json:"short_description" validate:"required"`
	City             string `json:"city" validate:"required,city"`
	Category         string `json:"category" validate:"required,category"`
	Price            int    `json:"price" validate:"gte=0"`
	Duration         int    `json:"duration" validate:"gte=1"`
	MaxGroupSize     int    `json:"max_group_size" validate:"gte=1"`
}

// StayForm là form tạo homestay của host
type StayForm struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	ShortDescription string `json:"short_description" validate:"required"`
	City             string `json:"city" validate:"required"`
	State            string `json:"state" validate:"required,state"`
	PropertyType     string `json:"property_type" validate:"required,property_type"`
	PricePerNight    int    `json:"price_per_night" validate:"gte=0"`
	MaxGuests        int    `json:"max_guests" validate:"gte=1"`
	Bedrooms         int    `json:"bedrooms" validate:"gte=1"`
	Bathrooms        int    `json:"bathrooms" validate:"gte=1"`
}

type DashboardStats struct {
	TotalExperiences int     `json:"total_experiences"`
	TotalStays       int     `json:"total_stays"`
	TotalBookings    int     `json:"total_bookings"`
	MonthlyEarnings  int     `json:"monthly_earnings"`
	AverageRating    float64 `json:"average_rating"`
}

type RecentBooking struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	ListingID   string `json:"listing_id"`
	Title       string `json:"title"`
	TravelerID  string `json:"traveler_id"`
	TotalAmount int    `json:"total_amount"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}

type DashboardResponse struct {
	Host           models.User         `json:"host"`
	Stats          DashboardStats      `json:"stats"`
	Experiences    []models.Experience `json:"experiences"`
	Stays          []models.Stay       `json:"stays"`
	RecentBookings []RecentBooking     `json:"recent_bookings"`
}

type ProfileResponse struct {
	User              models.User         `json:"user"`
	Bookings          BookingsResponse    `json:"bookings"`
	HostedExperiences []models.Experience `json:"hosted_experiences,omitempty"`
}

type UploadResponse struct {
	URLs []string `json:"urls"`
}
