package domain

// Fixed scheduling constants
const (
	// ReservationDurationMinutes is the standard length of a reservation
	ReservationDurationMinutes = 120

	// BufferMinutes is added before and after a reservation when checking overlaps
	BufferMinutes = 30

	// MinAdvanceMinutes is the earliest a booking may start relative to now (inclusive)
	MinAdvanceMinutes = 30

	// MaxAdvanceDays is the latest a booking may start relative to now (inclusive)
	MaxAdvanceDays = 30

	// SlotStepMinutes is the spacing between candidate start times
	SlotStepMinutes = 60
)

// DefaultOpeningHours is substituted when a restaurant has no parseable hours
const DefaultOpeningHours = "10:00-22:00"

// Guest count bounds for a single reservation
const (
	MinGuestCount = 1
	MaxGuestCount = 100
)

// Waitlist bounds
const (
	MinWaitlistPartySize = 1
	MaxWaitlistPartySize = 20

	// WaitlistGroupLimit is the stricter cap for waitlist admission;
	// larger groups must book directly
	WaitlistGroupLimit = 6

	// WaitMinutesPerPosition is the estimated wait contributed by each
	// party ahead in the queue
	WaitMinutesPerPosition = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveBookingStatuses occupy their tables' time ranges
var ActiveBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// InactiveBookingStatuses release their tables' time ranges
var InactiveBookingStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
