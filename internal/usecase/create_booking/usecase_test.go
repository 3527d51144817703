package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	"github.com/tablerow/FRB-ReservationService/pkg/ptr"
)

type fixture struct {
	uc          *UseCase
	bookingRepo *stubBookingRepo
	notifier    *stubNotifier
}

func newFixture() *fixture {
	bookingRepo := &stubBookingRepo{}
	notifier := &stubNotifier{}

	uc := NewUseCase(
		bookingRepo,
		&stubTableRepo{tables: []*domain.Table{
			{ID: 1, RestaurantID: 10, Name: "T1", Capacity: 4, Status: domain.TableAvailable, DepositAmount: 500},
			{ID: 2, RestaurantID: 10, Name: "T2", Capacity: 6, Status: domain.TableAvailable, DepositAmount: 700},
			{ID: 3, RestaurantID: 10, Name: "T3", Capacity: 2, Status: domain.TableOccupied},
			{ID: 4, RestaurantID: 20, Name: "B1", Capacity: 4, Status: domain.TableAvailable},
		}},
		&stubRestaurantRepo{restaurant: &domain.Restaurant{ID: 10, Name: "La Riva", OpeningHours: ptr.Ptr("10:00-22:00")}},
		&stubCustomerRepo{customer: &domain.Customer{ID: 7, FullName: "Анна Петрова"}},
		passTxManager{},
		notifier,
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: testNow}

	return &fixture{uc: uc, bookingRepo: bookingRepo, notifier: notifier}
}

func validRequest() *Request {
	return &Request{
		CustomerID:   7,
		RestaurantID: 10,
		TableIDs:     []int64{1},
		BookingTime:  time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
		GuestCount:   ptr.Ptr(4),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Dishes = []LineItem{{ID: 1, Name: "Паста", Price: 450, Quantity: 2}}
	req.Services = []LineItem{{ID: 5, Name: "Декор стола", Price: 1000, Quantity: 1}}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.ReservationDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, 500.0, resp.DepositAmount)
	// total = депозит + 2×450 + 1×1000
	assert.Equal(t, 2400.0, resp.TotalAmount)

	assert.Equal(t, []int64{1}, f.bookingRepo.assignedTables)
	require.Len(t, f.bookingRepo.dishes, 1)
	assert.Equal(t, int64(101), f.bookingRepo.dishes[0].BookingID)
	require.Len(t, f.bookingRepo.services, 1)

	require.Len(t, f.notifier.confirmed, 1)
	assert.Equal(t, int64(101), f.notifier.confirmed[0].BookingID)
}

func TestExecute_MultiTableCapacity(t *testing.T) {
	f := newFixture()

	// Столы на 4 и 6 мест вместе вмещают компанию из 10
	req := validRequest()
	req.TableIDs = []int64{1, 2}
	req.GuestCount = ptr.Ptr(10)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, resp.DepositAmount)

	// Но не из 11
	req = validRequest()
	req.TableIDs = []int64{1, 2}
	req.GuestCount = ptr.Ptr(11)

	_, err = f.uc.Execute(context.Background(), req)
	assertConflict(t, err, domain.ConflictCapacityExceeded)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.CustomerID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Nil(t, f.bookingRepo.created)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.RestaurantID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestExecute_NoTableSelected(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.TableIDs = nil

	_, err := f.uc.Execute(context.Background(), req)
	assertConflict(t, err, domain.ConflictNoTableSelected)
}

func TestExecute_TableNotFound(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.TableIDs = []int64{1, 999}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestExecute_TableFromAnotherRestaurant(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.TableIDs = []int64{4}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTableNotInRestaurant)
}

func TestExecute_OccupiedTable(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.TableIDs = []int64{3}
	req.GuestCount = ptr.Ptr(2)

	_, err := f.uc.Execute(context.Background(), req)
	assertConflict(t, err, domain.ConflictTableOccupied)
}

func TestExecute_OverlapWithBuffer(t *testing.T) {
	f := newFixture()
	// Существующее бронирование стола 1: 18:00-20:00
	f.bookingRepo.existing = []storedBooking{
		{id: 55, tableID: 1, start: time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC), durationMinutes: 120},
	}

	// 20:15 попадает в 30-минутный буфер после существующего бронирования
	req := validRequest()
	req.BookingTime = time.Date(2026, 9, 5, 20, 15, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assertConflict(t, err, domain.ConflictTimeOverlap)
	assert.Nil(t, f.bookingRepo.created)

	// 20:30 ровно на границе буфера - уже допустимо
	req.BookingTime = time.Date(2026, 9, 5, 20, 30, 0, 0, time.UTC)
	f.bookingRepo.created = nil

	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, f.bookingRepo.created)
}

func TestExecute_OverlapOnSecondTable(t *testing.T) {
	f := newFixture()
	f.bookingRepo.existing = []storedBooking{
		{id: 56, tableID: 2, start: time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC), durationMinutes: 120},
	}

	// Конфликт хотя бы по одному из запрошенных столов отклоняет всю заявку
	req := validRequest()
	req.TableIDs = []int64{1, 2}
	req.GuestCount = ptr.Ptr(8)

	_, err := f.uc.Execute(context.Background(), req)
	assertConflict(t, err, domain.ConflictTimeOverlap)
}

func TestValidate_ExcludesBooking(t *testing.T) {
	f := newFixture()
	f.bookingRepo.existing = []storedBooking{
		{id: 55, tableID: 1, start: time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC), durationMinutes: 120},
	}

	req := validRequest()
	req.BookingTime = time.Date(2026, 9, 5, 18, 30, 0, 0, time.UTC)

	// Без исключения само бронирование конфликтует с новым временем
	err := f.uc.Validate(context.Background(), req, nil)
	assertConflict(t, err, domain.ConflictTimeOverlap)

	// С исключением своего ID проверка проходит
	err = f.uc.Validate(context.Background(), req, ptr.Ptr(int64(55)))
	assert.NoError(t, err)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.CustomerID = 0

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
