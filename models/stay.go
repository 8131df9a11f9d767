package models

import (
	"time"

	"github.com/lib/pq"
)

type Stay struct {
	ID               string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	City             string         `json:"city"`
	State            string         `json:"state" gorm:"index"`
	Coordinates      Coordinates    `json:"coordinates" gorm:"embedded"`
	PropertyType     string         `json:"property_type" gorm:"index"`
	PricePerNight    int            `json:"price_per_night"`
	MaxGuests        int            `json:"max_guests"`
	Bedrooms         int            `json:"bedrooms"`
	Bathrooms        int            `json:"bathrooms"`
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	Amenities        pq.StringArray `json:"amenities" gorm:"type:text[]"`
	HouseRules       pq.StringArray `json:"house_rules" gorm:"type:text[]"`
	HostID           string         `json:"host_id" gorm:"index"`
	Host             *User          `json:"host,omitempty" gorm:"foreignKey:HostID"`
	Rating           float64        `json:"rating"`
	ReviewsCount     int            `json:"reviews_count"`
	AvailableFrom    string         `json:"available_from"`
	AvailableTo      string         `json:"available_to"`
	CreatedAt        time.Time      `json:"created_at"`
}
