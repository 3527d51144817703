package confirm_waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	waitlistRepoErr "github.com/tablerow/FRB-ReservationService/internal/infra/storage/waitlist"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
	"github.com/tablerow/FRB-ReservationService/internal/usecase/create_booking"
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

type passTxManager struct{}

func (passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type statusUpdate struct {
	id       int64
	from, to domain.WaitlistStatus
}

type stubWaitlistRepo struct {
	entry    *domain.Waitlist
	dishes   []domain.WaitlistDish
	services []domain.WaitlistServiceItem
	tableIDs []int64

	updateResult bool
	updates      []statusUpdate
}

func (r *stubWaitlistRepo) GetByID(_ context.Context, id int64) (*domain.Waitlist, error) {
	if r.entry == nil || r.entry.ID != id {
		return nil, waitlistRepoErr.ErrEntryNotFound
	}
	return r.entry, nil
}

func (r *stubWaitlistRepo) GetDishes(_ context.Context, _ int64) ([]domain.WaitlistDish, error) {
	return r.dishes, nil
}

func (r *stubWaitlistRepo) GetServices(_ context.Context, _ int64) ([]domain.WaitlistServiceItem, error) {
	return r.services, nil
}

func (r *stubWaitlistRepo) GetTableIDs(_ context.Context, _ int64) ([]int64, error) {
	return r.tableIDs, nil
}

func (r *stubWaitlistRepo) UpdateStatusIf(_ context.Context, id int64, from, to domain.WaitlistStatus) (bool, error) {
	r.updates = append(r.updates, statusUpdate{id: id, from: from, to: to})
	return r.updateResult, nil
}

type stubBookingRepo struct {
	created        *domain.Booking
	assignedTables []int64
	dishes         []domain.BookingDish
	services       []domain.BookingServiceItem
}

func (r *stubBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	b := *booking
	b.ID = 101
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

type stubValidator struct {
	err     error
	lastReq *create_booking.Request
}

func (v *stubValidator) Validate(_ context.Context, req *create_booking.Request, _ *int64) error {
	v.lastReq = req
	return v.err
}

type stubNotifier struct {
	confirmed []notify.ReservationConfirmedEvent
}

func (n *stubNotifier) ReservationConfirmed(_ context.Context, event notify.ReservationConfirmedEvent) {
	n.confirmed = append(n.confirmed, event)
}

type fixture struct {
	uc           *UseCase
	waitlistRepo *stubWaitlistRepo
	bookingRepo  *stubBookingRepo
	validator    *stubValidator
	notifier     *stubNotifier
}

func waitingEntry() *domain.Waitlist {
	return &domain.Waitlist{
		ID:           42,
		CustomerID:   7,
		RestaurantID: 10,
		PartySize:    4,
		Status:       domain.WaitlistWaiting,
		JoinTime:     testNow.Add(-time.Hour),
	}
}

func newFixture(entry *domain.Waitlist) *fixture {
	waitlistRepo := &stubWaitlistRepo{
		entry:        entry,
		tableIDs:     []int64{1},
		dishes:       []domain.WaitlistDish{{WaitlistID: 42, DishID: 1, Name: "Паста", Price: 450, Quantity: 2}},
		services:     []domain.WaitlistServiceItem{{WaitlistID: 42, ServiceID: 5, Name: "Декор стола", Price: 1000, Quantity: 1}},
		updateResult: true,
	}
	bookingRepo := &stubBookingRepo{}
	validator := &stubValidator{}
	notifier := &stubNotifier{}

	uc := NewUseCase(
		waitlistRepo,
		bookingRepo,
		&stubTableRepo{tables: []*domain.Table{
			{ID: 1, RestaurantID: 10, Name: "T1", Capacity: 4, Status: domain.TableAvailable, DepositAmount: 500},
		}},
		validator,
		passTxManager{},
		notifier,
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: testNow}

	return &fixture{
		uc:           uc,
		waitlistRepo: waitlistRepo,
		bookingRepo:  bookingRepo,
		validator:    validator,
		notifier:     notifier,
	}
}

func confirmRequest() *Request {
	return &Request{
		EntryID:       42,
		RestaurantID:  10,
		ConfirmedTime: time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(waitingEntry())

	resp, err := f.uc.Execute(context.Background(), confirmRequest())
	require.NoError(t, err)

	// Бронирование создано сразу подтвержденным, с данными записи
	assert.Equal(t, int64(101), resp.BookingID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, int64(7), resp.CustomerID)
	assert.Equal(t, 4, resp.GuestCount)
	assert.Equal(t, []int64{1}, resp.TableIDs)

	// total = депозит 500 + 2×450 + 1×1000
	assert.Equal(t, 500.0, resp.DepositAmount)
	assert.Equal(t, 2400.0, resp.TotalAmount)

	// Предварительно выбранные позиции скопированы в бронирование
	require.Len(t, f.bookingRepo.dishes, 1)
	assert.Equal(t, int64(101), f.bookingRepo.dishes[0].BookingID)
	assert.Equal(t, "Паста", f.bookingRepo.dishes[0].Name)
	require.Len(t, f.bookingRepo.services, 1)

	// Запись переведена WAITING -> SEATED условным обновлением
	require.Len(t, f.waitlistRepo.updates, 1)
	assert.Equal(t, statusUpdate{id: 42, from: domain.WaitlistWaiting, to: domain.WaitlistSeated}, f.waitlistRepo.updates[0])

	// Проверка конфликтов получила синтезированный запрос
	require.NotNil(t, f.validator.lastReq)
	assert.Equal(t, int64(7), f.validator.lastReq.CustomerID)
	assert.Equal(t, confirmRequest().ConfirmedTime, f.validator.lastReq.BookingTime)
	require.NotNil(t, f.validator.lastReq.GuestCount)
	assert.Equal(t, 4, *f.validator.lastReq.GuestCount)

	require.Len(t, f.notifier.confirmed, 1)
}

func TestExecute_ValidationFailureLeavesEntryWaiting(t *testing.T) {
	f := newFixture(waitingEntry())
	f.validator.err = domain.NewConflict(domain.ConflictTimeOverlap, "table T1 is already reserved around this time")

	_, err := f.uc.Execute(context.Background(), confirmRequest())

	conflict, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, domain.ConflictTimeOverlap, conflict.Code)

	// Никаких частичных изменений: ни бронирования, ни смены статуса
	assert.Nil(t, f.bookingRepo.created)
	assert.Empty(t, f.waitlistRepo.updates)
	assert.Empty(t, f.notifier.confirmed)
}

func TestExecute_NonWaitingEntry(t *testing.T) {
	for _, status := range []domain.WaitlistStatus{domain.WaitlistCalled, domain.WaitlistSeated, domain.WaitlistCancelled} {
		entry := waitingEntry()
		entry.Status = status
		f := newFixture(entry)

		_, err := f.uc.Execute(context.Background(), confirmRequest())

		conflict, ok := domain.AsConflict(err)
		require.True(t, ok, "status %s", status)
		assert.Equal(t, domain.ConflictInvalidWaitlistState, conflict.Code)
		assert.Equal(t, "only WAITING entries can be confirmed", conflict.Message)
		assert.Empty(t, f.waitlistRepo.updates)
	}
}

func TestExecute_EntryNotFound(t *testing.T) {
	f := newFixture(waitingEntry())

	req := confirmRequest()
	req.EntryID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestExecute_WrongRestaurant(t *testing.T) {
	f := newFixture(waitingEntry())

	req := confirmRequest()
	req.RestaurantID = 20

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Nil(t, f.bookingRepo.created)
}

func TestExecute_PastConfirmedTime(t *testing.T) {
	f := newFixture(waitingEntry())

	req := confirmRequest()
	req.ConfirmedTime = testNow.Add(-time.Hour)

	_, err := f.uc.Execute(context.Background(), req)

	conflict, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, domain.ConflictPastTime, conflict.Code)
}

func TestExecute_LostStatusRace(t *testing.T) {
	f := newFixture(waitingEntry())
	// Конкурирующий вызов успел сменить статус между чтением и обновлением
	f.waitlistRepo.updateResult = false

	_, err := f.uc.Execute(context.Background(), confirmRequest())

	conflict, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, domain.ConflictInvalidWaitlistState, conflict.Code)
	assert.Empty(t, f.notifier.confirmed)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(waitingEntry())

	_, err := f.uc.Execute(context.Background(), &Request{EntryID: 0, RestaurantID: 10, ConfirmedTime: testNow.Add(time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{EntryID: 42, RestaurantID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
