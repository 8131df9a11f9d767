package constants

// User roles
const (
	RoleTraveler = "traveler"
	RoleHost     = "host"
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking kinds
const (
	BookingKindExperience = "experience"
	BookingKindStay       = "stay"
)

// Session
const (
	// SessionKey là khóa lưu user đang đăng nhập
	SessionKey      = "stayrooted_user"
	SessionIDHeader = "X-Session-ID"
)

// Search defaults
const (
	ExperiencePriceMin = 0
	ExperiencePriceMax = 5000
	StayPriceMin       = 0
	StayPriceMax       = 10000
	StayDefaultGuests  = 1
	FeaturedCount      = 3
	RecentBookingCount = 3
)

// DefaultMapCenter là tâm Ấn Độ, dùng khi không có marker nào
var DefaultMapCenter = [2]float64{20.5937, 78.9629}

// Date formats
const (
	DateLayout = "2006-01-02"
)

// Messages hiển thị cho người dùng
const (
	MsgAuthFailed             = "Authentication failed. Please try again."
	MsgSelectDate             = "Please select a date"
	MsgSelectStayDates        = "Please select check-in and check-out dates"
	MsgCheckOutAfterCheckIn   = "Check-out date must be after check-in date"
	MsgExperienceBooked       = "Booking confirmed! You will receive a confirmation email shortly."
	MsgHostOnly               = "You need to be a host to access this dashboard"
	MsgExperienceCreatedDemo  = "Experience created successfully! (This is a demo)"
	MsgStayCreatedDemo        = "Homestay created successfully! (This is a demo)"
	MsgExperienceNotFound     = "Experience not found"
	MsgStayNotFound           = "Stay not found"
	MsgBookingNotFound        = "Booking not found"
	MsgBookingChanged         = "Booking was changed by another request, please reload"
	MsgUploadNotConfigured    = "Image upload is not configured"
	MsgGoogleLoginUnavailable = "Google sign-in is not configured"
)
