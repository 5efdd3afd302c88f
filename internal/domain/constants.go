package domain

// Pagination defaults
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Business validation constants
const (
	MinNameLength    = 2
	MaxNameLength    = 50
	PhoneDigits      = 10
	AadharDigits     = 12
	MaxNotesLength   = 500
	MinRating        = 1
	MaxRating        = 5
	MaxReviewLength  = 2000
	MaxMessageLength = 5000
	MaxReplyLength   = 2000

	// MaxBookingDays ограничено колонкой bookings.days (INTEGER)
	MaxBookingDays = 2147483647
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
