// Package store định nghĩa các backend lưu trữ: catalog, booking và cache key-value.
// Mặc định dùng bộ nhớ trong; STORE=postgres chuyển catalog/booking sang gorm, REDIS_ADDR chuyển cache sang Redis.
package store

import (
	"context"
	"errors"
	"time"

	"stayrooted/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrStaleStatus: trạng thái đã bị đổi bởi request khác kể từ lúc đọc
	ErrStaleStatus = errors.New("booking status changed since it was read")
)

// Catalog là nguồn dữ liệu chỉ đọc của host, experience và stay
type Catalog interface {
	Hosts(ctx context.Context) ([]models.User, error)
	Experiences(ctx context.Context) ([]models.Experience, error)
	Stays(ctx context.Context) ([]models.Stay, error)
}

// Bookings lưu các đặt chỗ experience và stay
type Bookings interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	CreateStayBooking(ctx context.Context, b *models.StayBooking) error
	FindBooking(ctx context.Context, id string) (*models.Booking, error)
	FindStayBooking(ctx context.Context, id string) (*models.StayBooking, error)
	// SaveBooking chỉ ghi khi trạng thái đang lưu vẫn là fromStatus
	SaveBooking(ctx context.Context, b *models.Booking, fromStatus string) error
	SaveStayBooking(ctx context.Context, b *models.StayBooking, fromStatus string) error
	BookingsByTraveler(ctx context.Context, travelerID string) ([]models.Booking, error)
	StayBookingsByTraveler(ctx context.Context, travelerID string) ([]models.StayBooking, error)
	BookingsByHost(ctx context.Context, hostID string) ([]models.Booking, error)
	StayBookingsByHost(ctx context.Context, hostID string) ([]models.StayBooking, error)
	BookingsByStatus(ctx context.Context, status string) ([]models.Booking, error)
	StayBookingsByStatus(ctx context.Context, status string) ([]models.StayBooking, error)
}

// Cache là kho key-value có TTL (session, bộ lọc gần nhất)
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get trả về false nếu key không tồn tại hoặc đã hết hạn
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Delete(ctx context.Context, key string) error
}
