package domain

import "time"

// WaitlistStatus represents the state of a waitlist entry.
// Status only moves forward: WAITING -> {CALLED, SEATED, CANCELLED}.
// SEATED and CANCELLED are terminal; entries are never deleted, only flagged.
type WaitlistStatus string

const (
	WaitlistWaiting   WaitlistStatus = "waiting"
	WaitlistCalled    WaitlistStatus = "called"
	WaitlistSeated    WaitlistStatus = "seated"
	WaitlistCancelled WaitlistStatus = "cancelled"
)

// Waitlist is a queued request for a table that could not be immediately
// reserved; distinct from a booking until promoted.
type Waitlist struct {
	ID                   int64
	CustomerID           int64
	RestaurantID         int64
	PartySize            int
	Status               WaitlistStatus
	JoinTime             time.Time
	EstimatedWaitMinutes int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsWaiting reports whether the entry is still in the queue
func (w *Waitlist) IsWaiting() bool {
	return w.Status == WaitlistWaiting
}

// IsTerminal reports whether the entry can no longer transition
func (w *Waitlist) IsTerminal() bool {
	return w.Status == WaitlistSeated || w.Status == WaitlistCancelled
}

// WaitlistDish is a pre-selected menu item carried into a future booking
type WaitlistDish struct {
	ID         int64
	WaitlistID int64
	DishID     int64
	Name       string
	Price      float64
	Quantity   int
}

// WaitlistServiceItem is a pre-selected service carried into a future booking
type WaitlistServiceItem struct {
	ID         int64
	WaitlistID int64
	ServiceID  int64
	Name       string
	Price      float64
	Quantity   int
}

// WaitlistTable is a pre-selected table carried into a future booking
type WaitlistTable struct {
	ID         int64
	WaitlistID int64
	TableID    int64
}
