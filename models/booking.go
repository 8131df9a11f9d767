package models

import (
	"time"
)

// Booking status constants
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking là đặt chỗ cho một experience
type Booking struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ExperienceID string      `json:"experience_id" gorm:"index"`
	TravelerID   string      `json:"traveler_id" gorm:"index"`
	HostID       string      `json:"host_id" gorm:"index"`
	Date         string      `json:"date"`
	GroupSize    int         `json:"group_size"`
	TotalAmount  int         `json:"total_amount"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Experience   *Experience `json:"experience,omitempty" gorm:"foreignKey:ExperienceID"`
}

func (b *Booking) GetStatus() string       { return b.Status }
func (b *Booking) SetStatus(status string) { b.Status = status }

// StayBooking là đặt chỗ cho một homestay
type StayBooking struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StayID      string    `json:"stay_id" gorm:"index"`
	TravelerID  string    `json:"traveler_id" gorm:"index"`
	HostID      string    `json:"host_id" gorm:"index"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Guests      int       `json:"guests"`
	TotalAmount int       `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Stay        *Stay     `json:"stay,omitempty" gorm:"foreignKey:StayID"`
}

func (b *StayBooking) GetStatus() string       { return b.Status }
func (b *StayBooking) SetStatus(status string) { b.Status = status }
