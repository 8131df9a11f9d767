package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"stayrooted/dto"
	"stayrooted/errors"
	"stayrooted/models"
	"stayrooted/services/logger"
	"stayrooted/services/notification"
	"stayrooted/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []notification.BookingEvent
}

func (r *recordingPublisher) Publish(routingKey string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, routingKey)
	if ev, ok := payload.(notification.BookingEvent); ok {
		r.events = append(r.events, ev)
	}
	return nil
}

var (
	traveler = &models.User{ID: "t-1", Name: "Arjun", Role: "traveler"}
	hostRaj  = &models.User{ID: "2", Name: "Raj Patel", Role: "host"}
)

func newBookingService() (*BookingService, *store.MemoryBookings, *recordingPublisher) {
	repo := store.NewMemoryBookings()
	pub := &recordingPublisher{}
	svc := NewBookingService(
		newCatalogService(),
		repo,
		notification.NewDispatcher(nil, pub, logger.NewNop()),
		logger.NewNop(),
	)
	return svc, repo, pub
}

func TestQuoteExperience(t *testing.T) {
	svc, _, _ := newBookingService()
	ctx := context.Background()

	quote, err := svc.QuoteExperience(ctx, "1", dto.ExperienceBookingInput{GroupSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 1500, quote.UnitPrice)
	assert.Equal(t, 4500, quote.TotalPrice)

	quote, err = svc.QuoteExperience(ctx, "1", dto.ExperienceBookingInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, quote.GroupSize)
	assert.Equal(t, 1500, quote.TotalPrice)

	_, err = svc.QuoteExperience(ctx, "1", dto.ExperienceBookingInput{GroupSize: 9})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidGuests))

	_, err = svc.QuoteExperience(ctx, "1", dto.ExperienceBookingInput{GroupSize: 2, Date: "10/02/2024"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))

	_, err = svc.QuoteExperience(ctx, "42", dto.ExperienceBookingInput{})
	assert.True(t, errors.HasCode(err, errors.ErrCodeExperienceNotFound))
}

func TestBookExperience(t *testing.T) {
	svc, repo, pub := newBookingService()
	ctx := context.Background()

	_, err := svc.BookExperience(ctx, nil, "2", dto.ExperienceBookingInput{Date: "2024-03-10", GroupSize: 2})
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthorized))

	_, err = svc.BookExperience(ctx, traveler, "2", dto.ExperienceBookingInput{GroupSize: 2})
	require.Error(t, err)
	assert.Equal(t, "Please select a date", errors.GetAppError(err).Message)

	booking, err := svc.BookExperience(ctx, traveler, "2", dto.ExperienceBookingInput{Date: "2024-03-10", GroupSize: 2})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 2400, booking.TotalAmount)
	assert.Equal(t, "2", booking.HostID)

	stored, err := repo.FindBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "t-1", stored.TravelerID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, notification.RoutingBookingConfirmed, pub.keys[0])
	assert.Equal(t, "Mumbai Street Food Adventure", pub.events[0].Title)
}

func TestQuoteStay(t *testing.T) {
	svc, _, _ := newBookingService()
	ctx := context.Background()

	quote, err := svc.QuoteStay(ctx, "3", dto.StayBookingInput{CheckIn: "2024-05-01", CheckOut: "2024-05-04", Guests: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 12000, quote.TotalPrice)

	quote, err = svc.QuoteStay(ctx, "3", dto.StayBookingInput{CheckIn: "2024-05-04", CheckOut: "2024-05-01"})
	require.NoError(t, err)
	assert.Equal(t, 0, quote.Nights)
	assert.Equal(t, 0, quote.TotalPrice)

	_, err = svc.QuoteStay(ctx, "5", dto.StayBookingInput{Guests: 3})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidGuests))
}

func TestBookStay(t *testing.T) {
	svc, _, pub := newBookingService()
	ctx := context.Background()

	_, err := svc.BookStay(ctx, traveler, "1", dto.StayBookingInput{CheckIn: "2024-05-01"})
	require.Error(t, err)
	assert.Equal(t, "Please select check-in and check-out dates", errors.GetAppError(err).Message)

	_, err = svc.BookStay(ctx, traveler, "1", dto.StayBookingInput{CheckIn: "2024-05-01", CheckOut: "2024-05-01"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidDates))
	assert.Equal(t, "Check-out date must be after check-in date", errors.GetAppError(err).Message)

	result, err := svc.BookStay(ctx, traveler, "1", dto.StayBookingInput{CheckIn: "2024-05-01", CheckOut: "2024-05-03", Guests: 4})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Nights)
	assert.Equal(t, 5000, result.Booking.TotalAmount)
	assert.Equal(t, models.BookingStatusConfirmed, result.Booking.Status)
	assert.Equal(t, "Booking confirmed for 2 nights! Total: ₹5000", StayBookedMessage(result.Nights, result.Booking.TotalAmount))
	assert.Len(t, pub.events, 1)
}

func TestListBookingsNewestFirst(t *testing.T) {
	svc, _, _ := newBookingService()
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	first, err := svc.BookExperience(ctx, traveler, "1", dto.ExperienceBookingInput{Date: "2024-03-10"})
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(time.Hour) }
	second, err := svc.BookExperience(ctx, traveler, "4", dto.ExperienceBookingInput{Date: "2024-03-12"})
	require.NoError(t, err)

	_, err = svc.BookExperience(ctx, &models.User{ID: "someone-else"}, "4", dto.ExperienceBookingInput{Date: "2024-03-12"})
	require.NoError(t, err)

	resp, err := svc.ListBookings(ctx, traveler.ID)
	require.NoError(t, err)
	require.Len(t, resp.Experiences, 2)
	assert.Equal(t, second.ID, resp.Experiences[0].ID)
	assert.Equal(t, first.ID, resp.Experiences[1].ID)
	require.NotNil(t, resp.Experiences[0].Experience)
	assert.Equal(t, "Taj Mahal Sunrise Photography Tour", resp.Experiences[0].Experience.Title)
	assert.Empty(t, resp.Stays)
}

func TestChangeStatus(t *testing.T) {
	svc, _, pub := newBookingService()
	ctx := context.Background()

	booking, err := svc.BookExperience(ctx, traveler, "2", dto.ExperienceBookingInput{Date: "2024-03-10"})
	require.NoError(t, err)

	_, err = svc.ChangeStatus(ctx, &models.User{ID: "stranger"}, booking.ID, "cancel")
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))

	result, err := svc.ChangeStatus(ctx, hostRaj, booking.ID, "complete")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, result.Status)
	assert.Equal(t, "experience", result.Kind)

	_, err = svc.ChangeStatus(ctx, traveler, booking.ID, "cancel")
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidOperation))

	_, err = svc.ChangeStatus(ctx, traveler, "missing", "cancel")
	assert.True(t, errors.HasCode(err, errors.ErrCodeBookingNotFound))

	assert.Contains(t, pub.keys, notification.RoutingBookingStatusChanged)
}

func TestChangeStayStatus(t *testing.T) {
	svc, _, _ := newBookingService()
	ctx := context.Background()

	result, err := svc.BookStay(ctx, traveler, "2", dto.StayBookingInput{CheckIn: "2024-05-01", CheckOut: "2024-05-02"})
	require.NoError(t, err)

	changed, err := svc.ChangeStatus(ctx, traveler, result.Booking.ID, "cancel")
	require.NoError(t, err)
	assert.Equal(t, "stay", changed.Kind)
	assert.Equal(t, models.BookingStatusCancelled, changed.Status)
}

// cancelOnList mô phỏng traveler hủy booking ngay sau khi cron đã đọc danh sách confirmed
type cancelOnList struct {
	*store.MemoryBookings
}

func (c cancelOnList) BookingsByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	list, err := c.MemoryBookings.BookingsByStatus(ctx, status)
	for _, b := range list {
		b.Status = models.BookingStatusCancelled
		if err := c.MemoryBookings.SaveBooking(ctx, &b, models.BookingStatusConfirmed); err != nil {
			return nil, err
		}
	}
	return list, err
}

func TestCompleteElapsedSkipsCancelledMeanwhile(t *testing.T) {
	repo := store.NewMemoryBookings()
	svc := NewBookingService(newCatalogService(), cancelOnList{repo}, notification.NewDispatcher(nil, nil, logger.NewNop()), logger.NewNop())
	ctx := context.Background()

	past, err := svc.BookExperience(ctx, traveler, "1", dto.ExperienceBookingInput{Date: "2024-03-01"})
	require.NoError(t, err)

	count, err := svc.CompleteElapsed(ctx, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, count)

	b, err := repo.FindBooking(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, b.Status)
}

func TestCompleteElapsed(t *testing.T) {
	svc, repo, _ := newBookingService()
	ctx := context.Background()

	past, err := svc.BookExperience(ctx, traveler, "1", dto.ExperienceBookingInput{Date: "2024-03-01"})
	require.NoError(t, err)
	future, err := svc.BookExperience(ctx, traveler, "1", dto.ExperienceBookingInput{Date: "2024-03-20"})
	require.NoError(t, err)
	stay, err := svc.BookStay(ctx, traveler, "1", dto.StayBookingInput{CheckIn: "2024-03-02", CheckOut: "2024-03-04"})
	require.NoError(t, err)

	count, err := svc.CompleteElapsed(ctx, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	b, _ := repo.FindBooking(ctx, past.ID)
	assert.Equal(t, models.BookingStatusCompleted, b.Status)
	b, _ = repo.FindBooking(ctx, future.ID)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	sb, _ := repo.FindStayBooking(ctx, stay.Booking.ID)
	assert.Equal(t, models.BookingStatusCompleted, sb.Status)

	count, err = svc.CompleteElapsed(ctx, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, count)
}
