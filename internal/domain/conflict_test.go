package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConflict(t *testing.T) {
	err := NewConflict(ConflictTimeOverlap, "table %s is already reserved around this time", "T1")

	assert.Equal(t, ConflictTimeOverlap, err.Code)
	assert.Equal(t, "table T1 is already reserved around this time", err.Message)
	assert.Contains(t, err.Error(), "TIME_OVERLAP")
}

func TestAsConflict(t *testing.T) {
	conflict := NewConflict(ConflictCapacityExceeded, "selected tables seat 10 guests, 11 requested")

	got, ok := AsConflict(conflict)
	require.True(t, ok)
	assert.Equal(t, ConflictCapacityExceeded, got.Code)

	// Конфликт извлекается и из обернутой ошибки
	wrapped := fmt.Errorf("execute: %w", conflict)
	got, ok = AsConflict(wrapped)
	require.True(t, ok)
	assert.Equal(t, ConflictCapacityExceeded, got.Code)

	_, ok = AsConflict(errors.New("plain error"))
	assert.False(t, ok)

	_, ok = AsConflict(nil)
	assert.False(t, ok)
}

func TestIsConflictType(t *testing.T) {
	err := NewConflict(ConflictPastTime, "booking time must be in the future")

	assert.True(t, IsConflictType(err, ConflictPastTime))
	assert.False(t, IsConflictType(err, ConflictTooSoon))
	assert.False(t, IsConflictType(errors.New("other"), ConflictPastTime))
}

func TestBookingIsActive(t *testing.T) {
	for _, status := range ActiveBookingStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s must hold its time range", status)
	}
	for _, status := range InactiveBookingStatuses {
		b := &Booking{Status: status}
		assert.False(t, b.IsActive(), "status %s must release its time range", status)
	}
}

func TestWaitlistTransitions(t *testing.T) {
	waiting := &Waitlist{Status: WaitlistWaiting}
	assert.True(t, waiting.IsWaiting())
	assert.False(t, waiting.IsTerminal())

	called := &Waitlist{Status: WaitlistCalled}
	assert.False(t, called.IsWaiting())
	assert.False(t, called.IsTerminal())

	seated := &Waitlist{Status: WaitlistSeated}
	assert.True(t, seated.IsTerminal())

	cancelled := &Waitlist{Status: WaitlistCancelled}
	assert.True(t, cancelled.IsTerminal())
}
