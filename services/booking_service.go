package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"math"
	"time"

	"stayrooted/builders"
	"stayrooted/commands"
	"stayrooted/constants"
	"stayrooted/dto"
	"stayrooted/errors"
	"stayrooted/models"
	"stayrooted/services/logger"
	"stayrooted/services/notification"
	"stayrooted/store"
)

type BookingService struct {
	catalog  *CatalogService
	bookings store.Bookings
	notifier *notification.Dispatcher
	logger   logger.Logger
	now      func() time.Time
}

func NewBookingService(catalog *CatalogService, bookings store.Bookings, notifier *notification.Dispatcher, log logger.Logger) *BookingService {
	return &BookingService{
		catalog:  catalog,
		bookings: bookings,
		notifier: notifier,
		logger:   log,
		now:      time.Now,
	}
}

func unauthorized() error {
	return errors.NewAppError(errors.ErrCodeUnauthorized, "Please log in to continue", errors.ErrUnauthorized)
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", value), err)
	}
	return t, nil
}

// countNights làm tròn lên số ngày giữa hai mốc
func countNights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

func checkCount(count, max int, what string) error {
	if count < 1 || count > max {
		return errors.NewAppError(errors.ErrCodeInvalidGuests, fmt.Sprintf("%s must be between 1 and %d", what, max), errors.ErrInvalidInput)
	}
	return nil
}

// QuoteExperience tính tổng tiền = giá × số người
func (s *BookingService) QuoteExperience(ctx context.Context, experienceID string, input dto.ExperienceBookingInput) (*dto.ExperienceQuote, error) {
	exp, err := s.catalog.GetExperience(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	return quoteExperience(exp, input)
}

func quoteExperience(exp *models.Experience, input dto.ExperienceBookingInput) (*dto.ExperienceQuote, error) {
	groupSize := input.GroupSize
	if groupSize == 0 {
		groupSize = 1
	}
	if err := checkCount(groupSize, exp.MaxGroupSize, "Group size"); err != nil {
		return nil, err
	}
	if input.Date != "" {
		if _, err := parseDate(input.Date); err != nil {
			return nil, err
		}
	}

	return &dto.ExperienceQuote{
		ExperienceID: exp.ID,
		Date:         input.Date,
		UnitPrice:    exp.Price,
		GroupSize:    groupSize,
		TotalPrice:   exp.Price * groupSize,
	}, nil
}

// BookExperience ghi nhận booking đã xác nhận cho user đang đăng nhập
func (s *BookingService) BookExperience(ctx context.Context, user *models.User, experienceID string, input dto.ExperienceBookingInput) (*models.Booking, error) {
	if user == nil {
		return nil, unauthorized()
	}
	if input.Date == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, constants.MsgSelectDate, errors.ErrMissingRequired)
	}

	exp, err := s.catalog.GetExperience(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	quote, err := quoteExperience(exp, input)
	if err != nil {
		return nil, err
	}

	booking := builders.NewBookingBuilder().
		ForExperience(exp).
		WithTraveler(user.ID).
		WithDate(quote.Date).
		WithGroupSize(quote.GroupSize).
		WithTotalAmount(quote.TotalPrice).
		WithStatus(models.BookingStatusConfirmed).
		CreatedAt(s.now()).
		Build()

	if err := commands.NewCreateBookingCommand(booking, s.bookings).Execute(ctx); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to save booking", err)
	}

	s.logger.Info("experience booking %s confirmed for traveler %s", booking.ID, user.ID)
	s.notifier.BookingConfirmed(experienceEvent(booking, exp.Title))
	return booking, nil
}

// QuoteStay tính số đêm và tổng tiền; thiếu ngày thì số đêm là 0
func (s *BookingService) QuoteStay(ctx context.Context, stayID string, input dto.StayBookingInput) (*dto.StayQuote, error) {
	stay, err := s.catalog.GetStay(ctx, stayID)
	if err != nil {
		return nil, err
	}
	return quoteStay(stay, input)
}

func quoteStay(stay *models.Stay, input dto.StayBookingInput) (*dto.StayQuote, error) {
	guests := input.Guests
	if guests == 0 {
		guests = constants.StayDefaultGuests
	}
	if err := checkCount(guests, stay.MaxGuests, "Guests"); err != nil {
		return nil, err
	}

	nights := 0
	if input.CheckIn != "" && input.CheckOut != "" {
		checkIn, err := parseDate(input.CheckIn)
		if err != nil {
			return nil, err
		}
		checkOut, err := parseDate(input.CheckOut)
		if err != nil {
			return nil, err
		}
		nights = max(countNights(checkIn, checkOut), 0)
	}

	return &dto.StayQuote{
		StayID:        stay.ID,
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		PricePerNight: stay.PricePerNight,
		Nights:        nights,
		Guests:        guests,
		TotalPrice:    stay.PricePerNight * nights,
	}, nil
}

// BookStay ghi nhận booking homestay đã xác nhận
func (s *BookingService) BookStay(ctx context.Context, user *models.User, stayID string, input dto.StayBookingInput) (*dto.StayBookingResult, error) {
	if user == nil {
		return nil, unauthorized()
	}
	if input.CheckIn == "" || input.CheckOut == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, constants.MsgSelectStayDates, errors.ErrMissingRequired)
	}

	stay, err := s.catalog.GetStay(ctx, stayID)
	if err != nil {
		return nil, err
	}
	quote, err := quoteStay(stay, input)
	if err != nil {
		return nil, err
	}
	if quote.Nights <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDates, constants.MsgCheckOutAfterCheckIn, errors.ErrInvalidInput)
	}

	booking := builders.NewStayBookingBuilder().
		ForStay(stay).
		WithTraveler(user.ID).
		WithDates(quote.CheckIn, quote.CheckOut).
		WithGuests(quote.Guests).
		WithTotalAmount(quote.TotalPrice).
		WithStatus(models.BookingStatusConfirmed).
		CreatedAt(s.now()).
		Build()

	if err := commands.NewCreateStayBookingCommand(booking, s.bookings).Execute(ctx); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to save booking", err)
	}

	s.logger.Info("stay booking %s confirmed for traveler %s (%d nights)", booking.ID, user.ID, quote.Nights)
	s.notifier.BookingConfirmed(stayEvent(booking, stay.Title))
	return &dto.StayBookingResult{Booking: *booking, Nights: quote.Nights}, nil
}

// StayBookedMessage là thông báo hiển thị sau khi đặt homestay
func StayBookedMessage(nights, total int) string {
	return fmt.Sprintf("Booking confirmed for %d nights! Total: ₹%d", nights, total)
}

// ListBookings trả về booking của traveler, mới nhất trước
func (s *BookingService) ListBookings(ctx context.Context, travelerID string) (*dto.BookingsResponse, error) {
	exps, err := s.bookings.BookingsByTraveler(ctx, travelerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}
	stays, err := s.bookings.StayBookingsByTraveler(ctx, travelerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}

	if err := s.attachListings(ctx, exps, stays); err != nil {
		return nil, err
	}
	if exps == nil {
		exps = []models.Booking{}
	}
	if stays == nil {
		stays = []models.StayBooking{}
	}
	return &dto.BookingsResponse{Experiences: exps, Stays: stays}, nil
}

func (s *BookingService) attachListings(ctx context.Context, exps []models.Booking, stays []models.StayBooking) error {
	for i := range exps {
		exp, err := s.catalog.GetExperience(ctx, exps[i].ExperienceID)
		if err != nil && !errors.HasCode(err, errors.ErrCodeExperienceNotFound) {
			return err
		}
		exps[i].Experience = exp
	}
	for i := range stays {
		stay, err := s.catalog.GetStay(ctx, stays[i].StayID)
		if err != nil && !errors.HasCode(err, errors.ErrCodeStayNotFound) {
			return err
		}
		stays[i].Stay = stay
	}
	return nil
}

// ChangeStatus chạy action confirm|cancel|complete; chỉ traveler hoặc host của listing được đổi
func (s *BookingService) ChangeStatus(ctx context.Context, user *models.User, bookingID, action string) (*dto.BookingStatusResult, error) {
	if user == nil {
		return nil, unauthorized()
	}

	booking, err := s.bookings.FindBooking(ctx, bookingID)
	if err == nil {
		if !canManage(user, booking.TravelerID, booking.HostID) {
			return nil, forbidden()
		}
		cmd := commands.NewUpdateBookingStatusCommand(booking, action, s.bookings)
		if err := cmd.Execute(ctx); err != nil {
			return nil, statusError(err)
		}
		title := ""
		if exp, err := s.catalog.GetExperience(ctx, booking.ExperienceID); err == nil {
			title = exp.Title
		}
		s.notifier.BookingStatusChanged(experienceEvent(booking, title))
		return &dto.BookingStatusResult{ID: booking.ID, Kind: constants.BookingKindExperience, Status: booking.Status}, nil
	}
	if !stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load booking", err)
	}

	stayBooking, err := s.bookings.FindStayBooking(ctx, bookingID)
	if stderrors.Is(err, store.ErrNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, constants.MsgBookingNotFound, errors.ErrBookingNotFound)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load booking", err)
	}
	if !canManage(user, stayBooking.TravelerID, stayBooking.HostID) {
		return nil, forbidden()
	}
	cmd := commands.NewUpdateStayBookingStatusCommand(stayBooking, action, s.bookings)
	if err := cmd.Execute(ctx); err != nil {
		return nil, statusError(err)
	}
	title := ""
	if stay, err := s.catalog.GetStay(ctx, stayBooking.StayID); err == nil {
		title = stay.Title
	}
	s.notifier.BookingStatusChanged(stayEvent(stayBooking, title))
	return &dto.BookingStatusResult{ID: stayBooking.ID, Kind: constants.BookingKindStay, Status: stayBooking.Status}, nil
}

func canManage(user *models.User, travelerID, hostID string) bool {
	return user.ID == travelerID || user.ID == hostID
}

func forbidden() error {
	return errors.NewAppError(errors.ErrCodeForbidden, "You cannot change this booking", errors.ErrUnauthorized)
}

func statusError(err error) error {
	switch {
	case stderrors.Is(err, store.ErrNotFound):
		return errors.NewAppError(errors.ErrCodeBookingNotFound, constants.MsgBookingNotFound, err)
	case stderrors.Is(err, store.ErrStaleStatus):
		return errors.NewAppError(errors.ErrCodeInvalidOperation, constants.MsgBookingChanged, err)
	case stderrors.Is(err, models.ErrUnknownBookingAction):
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	case models.IsTransitionError(err):
		return errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), err)
	default:
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to update booking", err)
	}
}

// CompleteElapsed chuyển booking confirmed đã qua ngày sang completed, trả về số booking đã đổi
func (s *BookingService) CompleteElapsed(ctx context.Context, now time.Time) (int, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	completed := 0

	exps, err := s.bookings.BookingsByStatus(ctx, models.BookingStatusConfirmed)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}
	for i := range exps {
		b := &exps[i]
		if !elapsed(b.Date, today) {
			continue
		}
		if err := commands.NewUpdateBookingStatusCommand(b, "complete", s.bookings).Execute(ctx); err != nil {
			logSkipped(s.logger, "booking", b.ID, err)
			continue
		}
		completed++
		s.notifier.BookingStatusChanged(experienceEvent(b, ""))
	}

	stays, err := s.bookings.StayBookingsByStatus(ctx, models.BookingStatusConfirmed)
	if err != nil {
		return completed, errors.NewAppError(errors.ErrCodeDBError, "Failed to load bookings", err)
	}
	for i := range stays {
		b := &stays[i]
		if !elapsed(b.CheckOut, today) {
			continue
		}
		if err := commands.NewUpdateStayBookingStatusCommand(b, "complete", s.bookings).Execute(ctx); err != nil {
			logSkipped(s.logger, "stay booking", b.ID, err)
			continue
		}
		completed++
		s.notifier.BookingStatusChanged(stayEvent(b, ""))
	}

	return completed, nil
}

// booking bị đổi trạng thái giữa lúc đọc và lúc ghi thì bỏ qua, không phải lỗi
func logSkipped(log logger.Logger, kind, id string, err error) {
	if stderrors.Is(err, store.ErrStaleStatus) {
		log.Info("skip completing %s %s: status changed meanwhile", kind, id)
		return
	}
	log.Error("complete %s %s: %v", kind, id, err)
}

// elapsed đúng khi ngày đã qua hẳn (trước hôm nay)
func elapsed(date string, today time.Time) bool {
	t, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return false
	}
	return t.Before(today)
}

func experienceEvent(b *models.Booking, title string) notification.BookingEvent {
	return notification.BookingEvent{
		BookingID:   b.ID,
		Kind:        constants.BookingKindExperience,
		ListingID:   b.ExperienceID,
		Title:       title,
		TravelerID:  b.TravelerID,
		HostID:      b.HostID,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
	}
}

func stayEvent(b *models.StayBooking, title string) notification.BookingEvent {
	return notification.BookingEvent{
		BookingID:   b.ID,
		Kind:        constants.BookingKindStay,
		ListingID:   b.StayID,
		Title:       title,
		TravelerID:  b.TravelerID,
		HostID:      b.HostID,
		Status:      b.Status,
		TotalAmount: b.TotalAmount,
	}
}
