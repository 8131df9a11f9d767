package notification

import (
	"stayrooted/services/logger"
)

// Dispatcher phát sự kiện booking tới websocket và broker; lỗi chỉ được log, không làm hỏng booking
type Dispatcher struct {
	realtime Service
	events   EventPublisher
	logger   logger.Logger
}

// NewDispatcher nhận realtime/events có thể nil (tắt kênh tương ứng)
func NewDispatcher(realtime Service, events EventPublisher, log logger.Logger) *Dispatcher {
	return &Dispatcher{realtime: realtime, events: events, logger: log}
}

func (d *Dispatcher) BookingConfirmed(event BookingEvent) {
	d.dispatch(RoutingBookingConfirmed, event)
}

func (d *Dispatcher) BookingStatusChanged(event BookingEvent) {
	d.dispatch(RoutingBookingStatusChanged, event)
}

func (d *Dispatcher) dispatch(routingKey string, event BookingEvent) {
	if d == nil {
		return
	}
	if d.realtime != nil {
		if err := d.sendRealtime(event); err != nil {
			d.logger.Error("realtime notification failed for booking %s: %v", event.BookingID, err)
		}
	}
	if d.events != nil {
		if err := d.events.Publish(routingKey, event); err != nil {
			d.logger.Error("publish %s failed for booking %s: %v", routingKey, event.BookingID, err)
		}
	}
}

// sendRealtime ưu tiên gửi riêng cho traveler và host nếu realtime hỗ trợ
func (d *Dispatcher) sendRealtime(event BookingEvent) error {
	message := NewMessageBuilder(event).Build()
	if targeted, ok := d.realtime.(TargetedService); ok {
		return targeted.SendToUsers(message, event.TravelerID, event.HostID)
	}
	return d.realtime.SendMessage(message)
}
