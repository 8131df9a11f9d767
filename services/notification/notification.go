package notification

import (
	"fmt"
)

type Service interface {
	SendMessage(message string) error
}

// BookingEvent là payload gửi đi khi một booking được xác nhận hoặc đổi trạng thái
type BookingEvent struct {
	BookingID   string `json:"booking_id"`
	Kind        string `json:"kind"`
	ListingID   string `json:"listing_id"`
	Title       string `json:"title"`
	TravelerID  string `json:"traveler_id"`
	HostID      string `json:"host_id"`
	Status      string `json:"status"`
	TotalAmount int    `json:"total_amount"`
}

type MessageBuilder struct {
	event BookingEvent
}

func NewMessageBuilder(event BookingEvent) *MessageBuilder {
	return &MessageBuilder{event: event}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Booking %s for %q is %s (₹%d)", b.event.BookingID, b.event.Title, b.event.Status, b.event.TotalAmount)
}
