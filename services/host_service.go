package services

import (
	"context"
	"math"
	"sort"
	"time"

	"stayrooted/constants"
	"stayrooted/dto"
	"stayrooted/errors"
	"stayrooted/models"
	"stayrooted/services/logger"
	"stayrooted/store"
	"stayrooted/validator"
)

type HostService struct {
	catalog  *CatalogService
	bookings store.Bookings
	logger   logger.Logger
	now      func() time.Time
}

func NewHostService(catalog *CatalogService, bookings store.Bookings, log logger.Logger) *HostService {
	return &HostService{catalog: catalog, bookings: bookings, logger: log, now: time.Now}
}

func hostOnly(user *models.User) error {
	if user == nil {
		return unauthorized()
	}
	if !user.IsHost() {
		return errors.NewAppError(errors.ErrCodeForbidden, constants.MsgHostOnly, errors.ErrUnauthorized)
	}
	return nil
}

// Dashboard tổng hợp listing, booking và thống kê của host
func (s *HostService) Dashboard(ctx context.Context, host *models.User) (*dto.DashboardResponse, error) {
	if err := hostOnly(host); err != nil {
		return nil, err
	}

	experiences, err := s.catalog.ExperiencesByHost(ctx, host.ID)
	if err != nil {
		return nil, err
	}
	stays, err := s.catalog.StaysByHost(ctx, host.ID)
	if err != nil {
		return nil, err
	}

	expBookings, err := s.bookings.BookingsByHost(ctx, host.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}
	stayBookings, err := s.bookings.StayBookingsByHost(ctx, host.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}

	now := s.now()
	stats := dto.DashboardStats{
		TotalExperiences: len(experiences),
		TotalStays:       len(stays),
		TotalBookings:    len(expBookings) + len(stayBookings),
		AverageRating:    averageRating(experiences, stays),
	}

	titles := listingTitles(experiences, stays)
	type dated struct {
		at      time.Time
		booking dto.RecentBooking
	}
	recent := make([]dated, 0, stats.TotalBookings)

	for _, b := range expBookings {
		if earnedInMonth(b.Status, b.CreatedAt, now) {
			stats.MonthlyEarnings += b.TotalAmount
		}
		recent = append(recent, dated{b.CreatedAt, dto.RecentBooking{
			ID:          b.ID,
			Kind:        constants.BookingKindExperience,
			ListingID:   b.ExperienceID,
			Title:       titles[constants.BookingKindExperience+":"+b.ExperienceID],
			TravelerID:  b.TravelerID,
			TotalAmount: b.TotalAmount,
			Date:        b.Date,
			Status:      b.Status,
		}})
	}
	for _, b := range stayBookings {
		if earnedInMonth(b.Status, b.CreatedAt, now) {
			stats.MonthlyEarnings += b.TotalAmount
		}
		recent = append(recent, dated{b.CreatedAt, dto.RecentBooking{
			ID:          b.ID,
			Kind:        constants.BookingKindStay,
			ListingID:   b.StayID,
			Title:       titles[constants.BookingKindStay+":"+b.StayID],
			TravelerID:  b.TravelerID,
			TotalAmount: b.TotalAmount,
			Date:        b.CheckIn,
			Status:      b.Status,
		}})
	}

	sort.SliceStable(recent, func(i, j int) bool { return recent[i].at.After(recent[j].at) })
	recentBookings := make([]dto.RecentBooking, 0, constants.RecentBookingCount)
	for i := 0; i < len(recent) && i < constants.RecentBookingCount; i++ {
		recentBookings = append(recentBookings, recent[i].booking)
	}

	return &dto.DashboardResponse{
		Host:           *host,
		Stats:          stats,
		Experiences:    experiences,
		Stays:          stays,
		RecentBookings: recentBookings,
	}, nil
}

func earnedInMonth(status string, createdAt, now time.Time) bool {
	if status == models.BookingStatusCancelled {
		return false
	}
	y1, m1, _ := createdAt.Date()
	y2, m2, _ := now.Date()
	return y1 == y2 && m1 == m2
}

// averageRating là trung bình rating các listing, làm tròn 1 chữ số thập phân
func averageRating(experiences []models.Experience, stays []models.Stay) float64 {
	count := len(experiences) + len(stays)
	if count == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range experiences {
		sum += e.Rating
	}
	for _, s := range stays {
		sum += s.Rating
	}
	return math.Round(sum/float64(count)*10) / 10
}

func listingTitles(experiences []models.Experience, stays []models.Stay) map[string]string {
	titles := make(map[string]string, len(experiences)+len(stays))
	for _, e := range experiences {
		titles[constants.BookingKindExperience+":"+e.ID] = e.Title
	}
	for _, s := range stays {
		titles[constants.BookingKindStay+":"+s.ID] = s.Title
	}
	return titles
}

// CreateExperience kiểm tra form rồi xác nhận; bản nháp không được thêm vào catalog
func (s *HostService) CreateExperience(ctx context.Context, host *models.User, form dto.ExperienceForm) (*dto.ExperienceForm, error) {
	if err := hostOnly(host); err != nil {
		return nil, err
	}
	if err := validator.ValidateStruct(form); err != nil {
		return nil, err
	}
	s.logger.Info("host %s submitted experience draft %q", host.ID, form.Title)
	return &form, nil
}

// CreateStay kiểm tra form homestay rồi xác nhận; bản nháp không được thêm vào catalog
func (s *HostService) CreateStay(ctx context.Context, host *models.User, form dto.StayForm) (*dto.StayForm, error) {
	if err := hostOnly(host); err != nil {
		return nil, err
	}
	if err := validator.ValidateStruct(form); err != nil {
		return nil, err
	}
	s.logger.Info("host %s submitted stay draft %q", host.ID, form.Title)
	return &form, nil
}
