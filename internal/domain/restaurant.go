package domain

import "time"

// Restaurant holds the subset of restaurant data the engine reads
type Restaurant struct {
	ID   int64
	Name string

	// OpeningHours is an "HH:mm-HH:mm" string; nil or unparsable values
	// fall back to DefaultOpeningHours
	OpeningHours *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Customer references a platform customer
type Customer struct {
	ID       int64
	FullName string
	Email    string
}
