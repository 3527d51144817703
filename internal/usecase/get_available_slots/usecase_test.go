package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	restaurantRepoErr "github.com/tablerow/FRB-ReservationService/internal/infra/storage/restaurant"
	tableRepoErr "github.com/tablerow/FRB-ReservationService/internal/infra/storage/table"
	"github.com/tablerow/FRB-ReservationService/pkg/ptr"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubTableRepo struct {
	table *domain.Table
}

func (r *stubTableRepo) GetByID(_ context.Context, id int64) (*domain.Table, error) {
	if r.table == nil || r.table.ID != id {
		return nil, tableRepoErr.ErrTableNotFound
	}
	return r.table, nil
}

type stubRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (r *stubRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	if r.restaurant == nil || r.restaurant.ID != id {
		return nil, restaurantRepoErr.ErrRestaurantNotFound
	}
	return r.restaurant, nil
}

type storedBooking struct {
	tableID         int64
	start           time.Time
	durationMinutes int
}

type stubBookingRepo struct {
	existing []storedBooking
}

func (r *stubBookingRepo) ExistsOverlap(_ context.Context, tableID int64, start, end time.Time, _ *int64) (bool, error) {
	for _, b := range r.existing {
		if b.tableID != tableID {
			continue
		}
		bookingEnd := b.start.Add(time.Duration(b.durationMinutes) * time.Minute)
		if b.start.Before(end) && bookingEnd.After(start) {
			return true, nil
		}
	}
	return false, nil
}

func newUseCase(table *domain.Table, hours *string, bookings []storedBooking) *UseCase {
	uc := NewUseCase(
		&stubTableRepo{table: table},
		&stubRestaurantRepo{restaurant: &domain.Restaurant{ID: 10, OpeningHours: hours}},
		&stubBookingRepo{existing: bookings},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func availableTable() *domain.Table {
	return &domain.Table{ID: 1, RestaurantID: 10, Name: "T1", Capacity: 4, Status: domain.TableAvailable}
}

func TestExecute_FullDayFree(t *testing.T) {
	uc := newUseCase(availableTable(), ptr.Ptr("10:00-22:00"), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		TableID: 1,
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// 10:00 .. 20:00 - последний слот заканчивается ровно к закрытию
	require.Len(t, resp.Slots, 11)
	assert.Equal(t, time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC), resp.Slots[0])
	assert.Equal(t, time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC), resp.Slots[10])
}

func TestExecute_BookingBlocksSurroundingSlots(t *testing.T) {
	// Бронирование 18:00-20:00 блокирует кандидатов, чье окно с буфером
	// его задевает: 16:00 .. 20:00
	uc := newUseCase(availableTable(), ptr.Ptr("10:00-22:00"), []storedBooking{
		{tableID: 1, start: time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC), durationMinutes: 120},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		TableID: 1,
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 6)
	assert.Equal(t, time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC), resp.Slots[0])
	assert.Equal(t, time.Date(2026, 9, 5, 15, 0, 0, 0, time.UTC), resp.Slots[5])
}

func TestExecute_ShortOperatingWindow(t *testing.T) {
	// В окне 12:00-14:30 помещается единственный двухчасовой слот
	uc := newUseCase(availableTable(), ptr.Ptr("12:00-14:30"), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		TableID: 1,
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC), resp.Slots[0])
}

func TestExecute_OccupiedTableHasNoSlots(t *testing.T) {
	table := availableTable()
	table.Status = domain.TableOccupied
	uc := newUseCase(table, ptr.Ptr("10:00-22:00"), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		TableID: 1,
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MaintenanceTableHasNoSlots(t *testing.T) {
	table := availableTable()
	table.Status = domain.TableMaintenance
	uc := newUseCase(table, ptr.Ptr("10:00-22:00"), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		TableID: 1,
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDateHasNoSlots(t *testing.T) {
	uc := newUseCase(availableTable(), ptr.Ptr("10:00-22:00"), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		TableID: 1,
		Date:    time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_TableNotFound(t *testing.T) {
	uc := newUseCase(availableTable(), ptr.Ptr("10:00-22:00"), nil)

	_, err := uc.Execute(context.Background(), &Request{
		TableID: 999,
		Date:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(availableTable(), ptr.Ptr("10:00-22:00"), nil)

	_, err := uc.Execute(context.Background(), &Request{TableID: 0, Date: testNow})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TableID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
