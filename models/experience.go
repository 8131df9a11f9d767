package models

import (
	"time"

	"github.com/lib/pq"
)

type Experience struct {
	ID               string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	City             string         `json:"city" gorm:"index"`
	Coordinates      Coordinates    `json:"coordinates" gorm:"embedded"`
	Category         string         `json:"category" gorm:"index"`
	Price            int            `json:"price"`
	Duration         int            `json:"duration"` // giờ
	MaxGroupSize     int            `json:"max_group_size"`
	Images           pq.StringArray `json:"images" gorm:"type:text[]"`
	HostID           string         `json:"host_id" gorm:"index"`
	Host             *User          `json:"host,omitempty" gorm:"foreignKey:HostID"`
	Rating           float64        `json:"rating"`
	ReviewsCount     int            `json:"reviews_count"`
	CreatedAt        time.Time      `json:"created_at"`
}
