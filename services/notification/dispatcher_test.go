package notification

import (
	"errors"
	"testing"

	"stayrooted/services/logger"

	"github.com/stretchr/testify/assert"
)

type fakeRealtime struct {
	messages []string
	err      error
}

func (f *fakeRealtime) SendMessage(message string) error {
	f.messages = append(f.messages, message)
	return f.err
}

type fakePublisher struct {
	keys     []string
	payloads []any
	err      error
}

func (f *fakePublisher) Publish(routingKey string, payload any) error {
	f.keys = append(f.keys, routingKey)
	f.payloads = append(f.payloads, payload)
	return f.err
}

func sampleEvent() BookingEvent {
	return BookingEvent{
		BookingID:   "b-1",
		Kind:        "experience",
		ListingID:   "1",
		Title:       "Old Delhi Heritage Food Walk",
		Status:      "confirmed",
		TotalAmount: 3000,
	}
}

func TestDispatcherBookingConfirmed(t *testing.T) {
	rt := &fakeRealtime{}
	pub := &fakePublisher{}
	d := NewDispatcher(rt, pub, logger.NewNop())

	d.BookingConfirmed(sampleEvent())

	assert.Len(t, rt.messages, 1)
	assert.Contains(t, rt.messages[0], "Old Delhi Heritage Food Walk")
	assert.Contains(t, rt.messages[0], "₹3000")
	assert.Equal(t, []string{RoutingBookingConfirmed}, pub.keys)
	assert.Equal(t, sampleEvent(), pub.payloads[0])
}

func TestDispatcherSwallowsErrors(t *testing.T) {
	rt := &fakeRealtime{err: errors.New("no clients")}
	pub := &fakePublisher{err: errors.New("broker down")}
	d := NewDispatcher(rt, pub, logger.NewNop())

	assert.NotPanics(t, func() { d.BookingStatusChanged(sampleEvent()) })
	assert.Equal(t, []string{RoutingBookingStatusChanged}, pub.keys)
}

func TestDispatcherWithoutChannels(t *testing.T) {
	d := NewDispatcher(nil, nil, logger.NewNop())
	assert.NotPanics(t, func() { d.BookingConfirmed(sampleEvent()) })

	var nilDispatcher *Dispatcher
	assert.NotPanics(t, func() { nilDispatcher.BookingConfirmed(sampleEvent()) })
}

type recordingObserver struct {
	messages []string
}

func (r *recordingObserver) Notify(message string) error {
	r.messages = append(r.messages, message)
	return nil
}

func TestHubSendToUsers(t *testing.T) {
	hub := NewHub(nil)
	traveler := &recordingObserver{}
	host := &recordingObserver{}
	other := &recordingObserver{}
	hub.Register("t-1", traveler)
	hub.Register("h-1", host)
	hub.Register("x", other)

	d := NewDispatcher(hub, nil, logger.NewNop())
	event := sampleEvent()
	event.TravelerID = "t-1"
	event.HostID = "h-1"
	d.BookingConfirmed(event)

	assert.Len(t, traveler.messages, 1)
	assert.Len(t, host.messages, 1)
	assert.Empty(t, other.messages)

	hub.Remove("t-1", traveler)
	d.BookingStatusChanged(event)
	assert.Len(t, traveler.messages, 1)
	assert.Len(t, host.messages, 2)
}

func TestHubBroadcastWithoutMelody(t *testing.T) {
	assert.Error(t, NewHub(nil).SendMessage("hello"))
}
