package domain

import "time"

// TableStatus represents the lifecycle status of a restaurant table.
// Status is orthogonal to time-based availability: OCCUPIED and MAINTENANCE
// block every time slot, while AVAILABLE and RESERVED are only blocked by
// actual overlapping reservations.
type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableReserved    TableStatus = "reserved"
	TableOccupied    TableStatus = "occupied"
	TableMaintenance TableStatus = "maintenance"
)

// Table belongs to exactly one restaurant
type Table struct {
	ID            int64
	RestaurantID  int64
	Name          string
	Capacity      int
	Status        TableStatus
	DepositAmount float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsBookable returns false for statuses that block all time slots
func (t *Table) IsBookable() bool {
	return t.Status == TableAvailable || t.Status == TableReserved
}
