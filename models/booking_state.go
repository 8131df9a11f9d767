package models

import "errors"

// Stateful là đặt chỗ có trạng thái (Booking, StayBooking)
type Stateful interface {
	GetStatus() string
	SetStatus(status string)
}

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(b Stateful) error
	Cancel(b Stateful) error
	Complete(b Stateful) error
}

var (
	ErrAlreadyConfirmed     = errors.New("booking already confirmed")
	ErrAlreadyCompleted     = errors.New("booking already completed")
	ErrAlreadyCancelled     = errors.New("booking already cancelled")
	ErrCompletePending      = errors.New("cannot complete pending booking")
	ErrCancelCompleted      = errors.New("cannot cancel completed booking")
	ErrConfirmCancelled     = errors.New("cannot confirm cancelled booking")
	ErrCompleteCancelled    = errors.New("cannot complete cancelled booking")
	ErrUnknownBookingAction = errors.New("unknown booking action")
)

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(b Stateful) error {
	b.SetStatus(BookingStatusConfirmed)
	return nil
}

func (s *PendingState) Cancel(b Stateful) error {
	b.SetStatus(BookingStatusCancelled)
	return nil
}

func (s *PendingState) Complete(b Stateful) error {
	return ErrCompletePending
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(b Stateful) error {
	return ErrAlreadyConfirmed
}

func (s *ConfirmedState) Cancel(b Stateful) error {
	b.SetStatus(BookingStatusCancelled)
	return nil
}

func (s *ConfirmedState) Complete(b Stateful) error {
	b.SetStatus(BookingStatusCompleted)
	return nil
}

// CompletedState trạng thái hoàn thành
type CompletedState struct{}

func (s *CompletedState) Confirm(b Stateful) error {
	return ErrAlreadyCompleted
}

func (s *CompletedState) Cancel(b Stateful) error {
	return ErrCancelCompleted
}

func (s *CompletedState) Complete(b Stateful) error {
	return ErrAlreadyCompleted
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(b Stateful) error {
	return ErrConfirmCancelled
}

func (s *CancelledState) Cancel(b Stateful) error {
	return ErrAlreadyCancelled
}

func (s *CancelledState) Complete(b Stateful) error {
	return ErrCompleteCancelled
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status string) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusCompleted:
		return &CompletedState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}

// ApplyBookingAction chạy action (confirm|cancel|complete) qua state machine
func ApplyBookingAction(b Stateful, action string) error {
	state := GetBookingState(b.GetStatus())
	switch action {
	case "confirm":
		return state.Confirm(b)
	case "cancel":
		return state.Cancel(b)
	case "complete":
		return state.Complete(b)
	default:
		return ErrUnknownBookingAction
	}
}

// IsTransitionError đúng khi err là lỗi chuyển trạng thái không hợp lệ
func IsTransitionError(err error) bool {
	for _, target := range []error{
		ErrAlreadyConfirmed, ErrAlreadyCompleted, ErrAlreadyCancelled,
		ErrCompletePending, ErrCancelCompleted, ErrConfirmCancelled, ErrCompleteCancelled,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
