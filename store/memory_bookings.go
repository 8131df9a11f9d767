package store

import (
	"context"
	"sort"
	"sync"

	"stayrooted/models"
)

// MemoryBookings giữ booking trong bộ nhớ của process
type MemoryBookings struct {
	mu           sync.RWMutex
	bookings     map[string]models.Booking
	stayBookings map[string]models.StayBooking
}

func NewMemoryBookings() *MemoryBookings {
	return &MemoryBookings{
		bookings:     make(map[string]models.Booking),
		stayBookings: make(map[string]models.StayBooking),
	}
}

func (m *MemoryBookings) CreateBooking(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID] = *b
	return nil
}

func (m *MemoryBookings) CreateStayBooking(ctx context.Context, b *models.StayBooking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stayBookings[b.ID] = *b
	return nil
}

func (m *MemoryBookings) FindBooking(ctx context.Context, id string) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (m *MemoryBookings) FindStayBooking(ctx context.Context, id string) (*models.StayBooking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.stayBookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (m *MemoryBookings) SaveBooking(ctx context.Context, b *models.Booking, fromStatus string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.bookings[b.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Status != fromStatus {
		return ErrStaleStatus
	}
	m.bookings[b.ID] = *b
	return nil
}

func (m *MemoryBookings) SaveStayBooking(ctx context.Context, b *models.StayBooking, fromStatus string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.stayBookings[b.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Status != fromStatus {
		return ErrStaleStatus
	}
	m.stayBookings[b.ID] = *b
	return nil
}

func (m *MemoryBookings) filterBookings(keep func(models.Booking) bool) []models.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *MemoryBookings) filterStayBookings(keep func(models.StayBooking) bool) []models.StayBooking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.StayBooking
	for _, b := range m.stayBookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *MemoryBookings) BookingsByTraveler(ctx context.Context, travelerID string) ([]models.Booking, error) {
	return m.filterBookings(func(b models.Booking) bool { return b.TravelerID == travelerID }), nil
}

func (m *MemoryBookings) StayBookingsByTraveler(ctx context.Context, travelerID string) ([]models.StayBooking, error) {
	return m.filterStayBookings(func(b models.StayBooking) bool { return b.TravelerID == travelerID }), nil
}

func (m *MemoryBookings) BookingsByHost(ctx context.Context, hostID string) ([]models.Booking, error) {
	return m.filterBookings(func(b models.Booking) bool { return b.HostID == hostID }), nil
}

func (m *MemoryBookings) StayBookingsByHost(ctx context.Context, hostID string) ([]models.StayBooking, error) {
	return m.filterStayBookings(func(b models.StayBooking) bool { return b.HostID == hostID }), nil
}

func (m *MemoryBookings) BookingsByStatus(ctx context.Context, status string) ([]models.Booking, error) {
	return m.filterBookings(func(b models.Booking) bool { return b.Status == status }), nil
}

func (m *MemoryBookings) StayBookingsByStatus(ctx context.Context, status string) ([]models.StayBooking, error) {
	return m.filterStayBookings(func(b models.StayBooking) bool { return b.Status == status }), nil
}
