package store

import (
	"context"
	"errors"
	"fmt"

	"stayrooted/data"
	"stayrooted/models"

	"gorm.io/gorm"
)

// GormStore phục vụ catalog và booking từ Postgres (STORE=postgres)
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate tạo bảng và nạp dữ liệu mẫu nếu catalog còn trống
func (s *GormStore) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.AutoMigrate(&models.User{}, &models.Experience{}, &models.Stay{}, &models.Booking{}, &models.StayBooking{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	var count int64
	if err := db.Model(&models.Experience{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		hosts := data.Hosts()
		if err := tx.Create(&hosts).Error; err != nil {
			return err
		}
		experiences := data.Experiences()
		if err := tx.Omit("Host").Create(&experiences).Error; err != nil {
			return err
		}
		stays := data.Stays()
		return tx.Omit("Host").Create(&stays).Error
	})
}

func (s *GormStore) Hosts(ctx context.Context) ([]models.User, error) {
	var hosts []models.User
	err := s.db.WithContext(ctx).Where("role = ?", "host").Order("id").Find(&hosts).Error
	return hosts, err
}

func (s *GormStore) Experiences(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience
	err := s.db.WithContext(ctx).Preload("Host").Order("id").Find(&experiences).Error
	return experiences, err
}

func (s *GormStore) Stays(ctx context.Context) ([]models.Stay, error) {
	var stays []models.Stay
	err := s.db.WithContext(ctx).Preload("Host").Order("id").Find(&stays).Error
	return stays, err
}

func (s *GormStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	return s.db.WithContext(ctx).Omit("Experience").Create(b).Error
}

func (s *GormStore) CreateStayBooking(ctx context.Context, b *models.StayBooking) error {
	return s.db.WithContext(ctx).Omit("Stay").Create(b).Error
}

func (s *GormStore) FindBooking(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (s *GormStore) FindStayBooking(ctx context.Context, id string) (*models.StayBooking, error) {
	var b models.StayBooking
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (s *GormStore) SaveBooking(ctx context.Context, b *models.Booking, fromStatus string) error {
	return s.saveStatus(ctx, &models.Booking{}, b.ID, fromStatus, b.Status)
}

func (s *GormStore) SaveStayBooking(ctx context.Context, b *models.StayBooking, fromStatus string) error {
	return s.saveStatus(ctx, &models.StayBooking{}, b.ID, fromStatus, b.Status)
}

// saveStatus cập nhật có điều kiện: chỉ khi status trong DB vẫn là fromStatus
func (s *GormStore) saveStatus(ctx context.Context, model interface{}, id, fromStatus, toStatus string) error {
	db := s.db.WithContext(ctx)
	res := db.Model(model).Where("id = ? AND status = ?", id, fromStatus).Update("status", toStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrStaleStatus
}

func (s *GormStore) findBookings(ctx context.Context, query string, arg interface{}) ([]models.Booking, error) {
	var out []models.Booking
	err := s.db.WithContext(ctx).Where(query, arg).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *GormStore) findStayBookings(ctx context.Context, query string, arg interface{}) ([]models.StayBooking, error) {
	var out []models.StayBooking
	err := s.db.WithContext(ctx).Where(query, arg).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *GormStore) BookingsByTraveler(ctx context.Context, travelerID string) ([]models.Booking, error) {
	return s.findBookings(ctx, "traveler_id = ?", travelerID)
}

func (s *GormStore) StayBookingsByTraveler(ctx context.Context, travelerID string) ([]models.StayBooking, error) {
	return s.findStayBookings(ctx, "traveler_id = ?", travelerID)
}

func (s *GormStore) BookingsByHost(ctx context.Context, hostID string) ([]models.Booking, error) {
	return s.findBookings(ctx, "host_id = ?", hostID)
}

func (s *GormStore) StayBookingsByHost(ctx context.Context, hostID string) ([]models.StayBooking, error) {
	return s.findStayBookings(ctx, "host_id = ?", hostID)
}

func (s *GormStore) BookingsByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	return s.findBookings(ctx, "status = ?", status)
}

func (s *GormStore) StayBookingsByStatus(ctx context.Context, status string) ([]models.StayBooking, error) {
	return s.findStayBookings(ctx, "status = ?", status)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
