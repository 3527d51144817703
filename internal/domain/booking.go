package domain

import "time"

// BookingStatus represents the lifecycle status of a reservation
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a table reservation at a restaurant
type Booking struct {
	ID              int64
	CustomerID      int64
	RestaurantID    int64
	BookingTime     time.Time
	DurationMinutes int
	GuestCount      int
	Status          BookingStatus

	// Money is read and summed for display only; no payment logic lives here
	DepositAmount float64
	TotalAmount   float64

	Notes *string

	// Assigned tables (multi-table bookings are allowed)
	TableIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its tables.
// Cancelled and no-show bookings release their time range.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// EndTime returns the moment the reservation releases its tables
// (ignoring the buffer, which is applied by the overlap check).
func (b *Booking) EndTime() time.Time {
	return b.BookingTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// BookingTable joins a booking to one of its assigned tables
type BookingTable struct {
	ID        int64
	BookingID int64
	TableID   int64
}

// BookingDish is a denormalized menu-item line on a booking
type BookingDish struct {
	ID        int64
	BookingID int64
	DishID    int64
	Name      string
	Price     float64
	Quantity  int
}

// BookingServiceItem is a denormalized service line on a booking
type BookingServiceItem struct {
	ID        int64
	BookingID int64
	ServiceID int64
	Name      string
	Price     float64
	Quantity  int
}
