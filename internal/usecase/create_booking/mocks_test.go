package create_booking

import (
	"context"
	"time"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	customerRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/customer"
	restaurantRepo "github.com/tablerow/FRB-ReservationService/internal/infra/storage/restaurant"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
)

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type storedBooking struct {
	id              int64
	tableID         int64
	start           time.Time
	durationMinutes int
}

// stubBookingRepo реализует проверку пересечений той же интервальной
// арифметикой, что и SQL запрос репозитория: строгие неравенства по краям.
type stubBookingRepo struct {
	existing []storedBooking

	created        *domain.Booking
	assignedTables []int64
	dishes         []domain.BookingDish
	services       []domain.BookingServiceItem
	lastExclude    *int64
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	b := *booking
	b.ID = 101
	b.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	r.created = &b
	return &b, nil
}

func (r *stubBookingRepo) AssignTables(_ context.Context, _ int64, tableIDs []int64) error {
	r.assignedTables = tableIDs
	return nil
}

func (r *stubBookingRepo) AddDishes(_ context.Context, _ int64, dishes []domain.BookingDish) error {
	r.dishes = dishes
	return nil
}

func (r *stubBookingRepo) AddServices(_ context.Context, _ int64, services []domain.BookingServiceItem) error {
	r.services = services
	return nil
}

func (r *stubBookingRepo) ExistsOverlap(_ context.Context, tableID int64, start, end time.Time, excludeBookingID *int64) (bool, error) {
	r.lastExclude = excludeBookingID
	for _, b := range r.existing {
		if b.tableID != tableID {
			continue
		}
		if excludeBookingID != nil && b.id == *excludeBookingID {
			continue
		}
		bookingEnd := b.start.Add(time.Duration(b.durationMinutes) * time.Minute)
		if b.start.Before(end) && bookingEnd.After(start) {
			return true, nil
		}
	}
	return false, nil
}

type stubTableRepo struct {
	tables []*domain.Table
}

func (r *stubTableRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Table, error) {
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	found := make([]*domain.Table, 0, len(ids))
	for _, t := range r.tables {
		if _, ok := want[t.ID]; ok {
			found = append(found, t)
		}
	}
	return found, nil
}

type stubRestaurantRepo struct {
	restaurant *domain.Restaurant
}

func (r *stubRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	if r.restaurant == nil || r.restaurant.ID != id {
		return nil, restaurantRepo.ErrRestaurantNotFound
	}
	return r.restaurant, nil
}

type stubCustomerRepo struct {
	customer *domain.Customer
}

func (r *stubCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if r.customer == nil || r.customer.ID != id {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return r.customer, nil
}

type stubNotifier struct {
	confirmed []notify.ReservationConfirmedEvent
}

func (n *stubNotifier) ReservationConfirmed(_ context.Context, event notify.ReservationConfirmedEvent) {
	n.confirmed = append(n.confirmed, event)
}
