package waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablerow/FRB-ReservationService/internal/domain"
	waitlistRepoErr "github.com/tablerow/FRB-ReservationService/internal/infra/storage/waitlist"
	"github.com/tablerow/FRB-ReservationService/internal/integrations/notify"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type statusUpdate struct {
	id       int64
	from, to domain.WaitlistStatus
}

// stubWaitlistRepo хранит записи в порядке присоединения; WAITING записи
// образуют очередь для ListWaiting и FirstWaiting.
type stubWaitlistRepo struct {
	entries []*domain.Waitlist

	updates       []statusUpdate
	updateResults []bool // по одному на вызов UpdateStatusIf; пусто = все успешны
}

func (r *stubWaitlistRepo) GetByID(_ context.Context, id int64) (*domain.Waitlist, error) {
	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, waitlistRepoErr.ErrEntryNotFound
}

func (r *stubWaitlistRepo) ListWaiting(_ context.Context, restaurantID int64) ([]*domain.Waitlist, error) {
	waiting := make([]*domain.Waitlist, 0, len(r.entries))
	for _, e := range r.entries {
		if e.RestaurantID == restaurantID && e.Status == domain.WaitlistWaiting {
			waiting = append(waiting, e)
		}
	}
	return waiting, nil
}

func (r *stubWaitlistRepo) FirstWaiting(ctx context.Context, restaurantID int64) (*domain.Waitlist, error) {
	waiting, err := r.ListWaiting(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(waiting) == 0 {
		return nil, waitlistRepoErr.ErrEntryNotFound
	}
	return waiting[0], nil
}

func (r *stubWaitlistRepo) UpdateStatusIf(_ context.Context, id int64, from, to domain.WaitlistStatus) (bool, error) {
	call := len(r.updates)
	r.updates = append(r.updates, statusUpdate{id: id, from: from, to: to})

	if call < len(r.updateResults) && !r.updateResults[call] {
		// Проигранная гонка: конкурирующий вызов уже сменил статус
		for _, e := range r.entries {
			if e.ID == id {
				e.Status = domain.WaitlistSeated
			}
		}
		return false, nil
	}
	for _, e := range r.entries {
		if e.ID == id && e.Status == from {
			e.Status = to
			return true, nil
		}
	}
	return false, nil
}

type stubNotifier struct {
	called []notify.WaitlistCalledEvent
}

func (n *stubNotifier) WaitlistCalled(_ context.Context, event notify.WaitlistCalledEvent) {
	n.called = append(n.called, event)
}

func entry(id, customerID int64, status domain.WaitlistStatus, joinOffset time.Duration) *domain.Waitlist {
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Waitlist{
		ID:                   id,
		CustomerID:           customerID,
		RestaurantID:         10,
		PartySize:            4,
		Status:               status,
		EstimatedWaitMinutes: 60,
		JoinTime:             base.Add(joinOffset),
	}
}

func newService(repo *stubWaitlistRepo, notifier *stubNotifier) *Service {
	return NewService(repo, notifier, nopLogger{})
}

func TestGetEntry_RecomputesPosition(t *testing.T) {
	repo := &stubWaitlistRepo{entries: []*domain.Waitlist{
		entry(1, 5, domain.WaitlistWaiting, 0),
		entry(2, 6, domain.WaitlistWaiting, 10*time.Minute),
		entry(3, 7, domain.WaitlistWaiting, 20*time.Minute),
	}}
	svc := newService(repo, &stubNotifier{})

	resp, err := svc.GetEntry(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, string(domain.WaitlistWaiting), resp.Status)
	assert.Equal(t, 2, resp.Position)
}

func TestGetEntry_InactiveEntryHasNoPosition(t *testing.T) {
	repo := &stubWaitlistRepo{entries: []*domain.Waitlist{
		entry(1, 5, domain.WaitlistCancelled, 0),
	}}
	svc := newService(repo, &stubNotifier{})

	resp, err := svc.GetEntry(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.WaitlistCancelled), resp.Status)
	assert.Equal(t, 0, resp.Position)
}

func TestGetEntry_NotFound(t *testing.T) {
	svc := newService(&stubWaitlistRepo{}, &stubNotifier{})

	_, err := svc.GetEntry(context.Background(), 999)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	_, err = svc.GetEntry(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestQueuePosition(t *testing.T) {
	repo := &stubWaitlistRepo{entries: []*domain.Waitlist{
		entry(1, 5, domain.WaitlistWaiting, 0),
		entry(2, 6, domain.WaitlistWaiting, 10*time.Minute),
	}}
	svc := newService(repo, &stubNotifier{})

	position, err := svc.QueuePosition(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, position)

	position, err = svc.QueuePosition(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, position)
}

func TestCancel_Success(t *testing.T) {
	repo := &stubWaitlistRepo{entries: []*domain.Waitlist{
		entry(1, 5, domain.WaitlistWaiting, 0),
	}}
	svc := newService(repo, &stubNotifier{})

	err := svc.Cancel(context.Background(), 1, 5)
	require.NoError(t, err)

	// Запись не удалена, а переведена в CANCELLED
	require.Len(t, repo.updates, 1)
	assert.Equal(t, statusUpdate{id: 1, from: domain.WaitlistWaiting, to: domain.WaitlistCancelled}, repo.updates[0])
	assert.Equal(t, domain.WaitlistCancelled, repo.entries[0].Status)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := &stubWaitlistRepo{entries: []*domain.Waitlist{
		entry(1, 5, domain.WaitlistWaiting, 0),
	}}
	svc := newService(repo, &stubNotifier{})

	err := svc.Cancel(context.Background(), 1, 6)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Empty(t, repo.updates)
}

func TestCancel_NonWaitingEntry(t *testing.T) {
	for _, status := range []domain.WaitlistStatus{domain.WaitlistCalled, domain.WaitlistSeated, domain.WaitlistCancelled} {
		repo := &stubWaitlistRepo{entries: []*domain.Waitlist{
			entry(1, 5, status, 0),
		}}
		svc := newService(repo, &stubNotifier{})

		err := svc.Cancel(context.Background(), 1, 5)

		conflict, ok := domain.AsConflict(err)
		require.True(t, ok, "status %s", status)
		assert.Equal(t, domain.ConflictInvalidWaitlistState, conflict.Code)
	}
}

func TestCancel_LostStatusRace(t *testing.T) {
	repo := &stubWaitlistRepo{
		entries:       []*domain.Waitlist{entry(1, 5, domain.WaitlistWaiting, 0)},
		updateResults: []bool{false},
	}
	svc := newService(repo, &stubNotifier{})

	err := svc.Cancel(context.Background(), 1, 5)

	conflict, ok := domain.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, domain.ConflictInvalidWaitlistState, conflict.Code)
}

func TestCallNext_Success(t *testing.T) {
	repo := &stubWaitlistRepo{entries: []*domain.Waitlist{
		entry(1, 5, domain.WaitlistWaiting, 0),
		entry(2, 6, domain.WaitlistWaiting, 10*time.Minute),
	}}
	notifier := &stubNotifier{}
	svc := newService(repo, notifier)

	resp, err := svc.CallNext(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.WaitlistCalled), resp.Status)

	require.Len(t, notifier.called, 1)
	assert.Equal(t, int64(1), notifier.called[0].WaitlistID)
	assert.Equal(t, int64(5), notifier.called[0].CustomerID)

	// Следующий вызов берет вторую запись
	resp, err = svc.CallNext(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(2), resp.ID)
}

func TestCallNext_EmptyQueue(t *testing.T) {
	notifier := &stubNotifier{}
	svc := newService(&stubWaitlistRepo{}, notifier)

	resp, err := svc.CallNext(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, notifier.called)
}

func TestCallNext_LostRaceTakesFollowing(t *testing.T) {
	// Первое условное обновление проигрывает гонку; запись 1 уже не
	// WAITING, и цикл переходит к записи 2
	repo := &stubWaitlistRepo{
		entries: []*domain.Waitlist{
			entry(1, 5, domain.WaitlistWaiting, 0),
			entry(2, 6, domain.WaitlistWaiting, 10*time.Minute),
		},
		updateResults: []bool{false},
	}
	notifier := &stubNotifier{}
	svc := newService(repo, notifier)

	resp, err := svc.CallNext(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, int64(2), resp.ID)
	require.Len(t, notifier.called, 1)
	assert.Equal(t, int64(2), notifier.called[0].WaitlistID)
}
