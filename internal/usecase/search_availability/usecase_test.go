package search_availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *countingMetrics) IncSearch(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[outcome]++
}

// fakeVilla отвечает по дате заезда; для дат из gates ждёт закрытия канала
type fakeVilla struct {
	mu      sync.Mutex
	calls   []villaapi.AvailabilityRequest
	rooms   map[string][]villaapi.Room
	err     error
	gates   map[string]chan struct{}
	started chan string
}

func (f *fakeVilla) CheckAvailability(_ context.Context, req villaapi.AvailabilityRequest) ([]villaapi.Room, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	gate := f.gates[req.CheckIn]
	rooms := f.rooms[req.CheckIn]
	err := f.err
	f.mu.Unlock()

	if f.started != nil {
		f.started <- req.CheckIn
	}
	if gate != nil {
		<-gate
	}
	return rooms, err
}

func (f *fakeVilla) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var today = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func date(day int) time.Time {
	return time.Date(2026, 11, day, 0, 0, 0, 0, time.UTC)
}

func poolSuite(total int64, count int) villaapi.Room {
	return villaapi.Room{ID: 1, Name: "Pool Suite", PricePerNight: 2_800_000, AvailableRooms: 3, TotalPrice: &total, AvailableCount: &count}
}

func setup(t *testing.T, villa *fakeVilla) (*UseCase, *session.MemoryRepository, *countingMetrics) {
	t.Helper()
	repo := session.NewMemoryRepository(time.Hour)
	m := &countingMetrics{}
	uc := NewUseCase(villa, repo, m, nopLogger{})
	uc.timeProvider = fixedTime{now: today}
	return uc, repo, m
}

func TestExecute_ValidationHappensLocally(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "check-in equals check-out", req: Request{CheckIn: date(1), CheckOut: date(1), Guests: 2}, wantErr: ErrInvalidDateRange},
		{name: "check-out before check-in", req: Request{CheckIn: date(4), CheckOut: date(1), Guests: 2}, wantErr: ErrInvalidDateRange},
		{name: "missing check-out", req: Request{CheckIn: date(1), Guests: 2}, wantErr: ErrInvalidDateRange},
		{name: "check-in in the past", req: Request{CheckIn: today.AddDate(0, 0, -1), CheckOut: date(1), Guests: 2}, wantErr: ErrCheckInInPast},
		{name: "no guests", req: Request{CheckIn: date(1), CheckOut: date(2), Guests: 0}, wantErr: ErrInvalidGuestCount},
		{name: "too many guests", req: Request{CheckIn: date(1), CheckOut: date(2), Guests: 11}, wantErr: ErrInvalidGuestCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			villa := &fakeVilla{}
			uc, _, m := setup(t, villa)
			tt.req.SessionID = "sid"

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, villa.callCount(), "no network call on local validation failure")
			assert.Equal(t, 1, m.outcomes[outcomeInvalid])
		})
	}
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	villa := &fakeVilla{}
	uc, _, _ := setup(t, villa)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "sid",
		CheckIn:   time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		Guests:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, villa.callCount())
}

func TestExecute_Results(t *testing.T) {
	villa := &fakeVilla{rooms: map[string][]villaapi.Room{"2026-11-01": {poolSuite(8_400_000, 2)}}}
	uc, _, m := setup(t, villa)
	ctx := context.Background()

	before, err := uc.Current(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewCatalog, before.View)

	resp, err := uc.Execute(ctx, &Request{SessionID: "sid", CheckIn: date(1), CheckOut: date(4), Guests: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewResults, resp.View)
	assert.Equal(t, 3, resp.Nights)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(8_400_000), resp.Results[0].StayTotal)
	assert.Equal(t, 2, resp.Results[0].AvailableCount)

	require.Len(t, villa.calls, 1)
	assert.Equal(t, villaapi.AvailabilityRequest{CheckIn: "2026-11-01", CheckOut: "2026-11-04", Guests: 2}, villa.calls[0])
	assert.Equal(t, 1, m.outcomes[outcomeResults])
}

func TestExecute_NoResultsIsDistinctFromCatalog(t *testing.T) {
	villa := &fakeVilla{rooms: map[string][]villaapi.Room{}}
	uc, _, m := setup(t, villa)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sid", CheckIn: date(1), CheckOut: date(4), Guests: 2})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewNoResults, resp.View)
	assert.Empty(t, resp.Results)
	assert.Equal(t, 1, m.outcomes[outcomeNoResults])
}

func TestExecute_FailureKeepsPriorResults(t *testing.T) {
	villa := &fakeVilla{rooms: map[string][]villaapi.Room{"2026-11-01": {poolSuite(8_400_000, 2)}}}
	uc, repo, m := setup(t, villa)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SessionID: "sid", CheckIn: date(1), CheckOut: date(4), Guests: 2})
	require.NoError(t, err)

	villa.err = villaapi.ErrUnavailable
	_, err = uc.Execute(ctx, &Request{SessionID: "sid", CheckIn: date(2), CheckOut: date(5), Guests: 2})
	assert.ErrorIs(t, err, ErrAvailabilityFetchFailed)
	assert.Equal(t, 1, m.outcomes[outcomeFailed])

	sess, err := repo.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewResults, sess.Search.View())
	require.Len(t, sess.Search.Results, 1)
	assert.Empty(t, sess.Search.Pending)
}

func TestExecute_LastRequestWins(t *testing.T) {
	gate := make(chan struct{})
	villa := &fakeVilla{
		rooms: map[string][]villaapi.Room{
			"2026-11-01": {poolSuite(8_400_000, 2)},
			"2026-11-10": {},
		},
		gates:   map[string]chan struct{}{"2026-11-01": gate},
		started: make(chan string, 2),
	}
	uc, repo, m := setup(t, villa)
	ctx := context.Background()

	slowErr := make(chan error, 1)
	go func() {
		_, err := uc.Execute(ctx, &Request{SessionID: "sid", CheckIn: date(1), CheckOut: date(4), Guests: 2})
		slowErr <- err
	}()
	require.Equal(t, "2026-11-01", <-villa.started)

	resp, err := uc.Execute(ctx, &Request{SessionID: "sid", CheckIn: date(10), CheckOut: date(12), Guests: 3})
	require.NoError(t, err)
	<-villa.started
	assert.Equal(t, domain.ViewNoResults, resp.View)

	close(gate)
	assert.ErrorIs(t, <-slowErr, ErrSearchSuperseded)
	assert.Equal(t, 1, m.outcomes[outcomeSuperseded])

	sess, err := repo.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewNoResults, sess.Search.View(), "stale response must not overwrite newer results")
	assert.Equal(t, 3, sess.Search.Guests)
	assert.True(t, date(10).Equal(sess.Search.CheckIn))
}

func TestExecute_CancelledCallerDoesNotApply(t *testing.T) {
	gate := make(chan struct{})
	villa := &fakeVilla{
		rooms:   map[string][]villaapi.Room{"2026-11-01": {poolSuite(8_400_000, 2)}},
		gates:   map[string]chan struct{}{"2026-11-01": gate},
		started: make(chan string, 1),
	}
	uc, repo, _ := setup(t, villa)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(ctx, &Request{SessionID: "sid", CheckIn: date(1), CheckOut: date(4), Guests: 2})
		done <- err
	}()
	<-villa.started
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	close(gate)

	sess, err := repo.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.False(t, sess.Search.Active)
	assert.Empty(t, sess.Search.Results)
}

func TestClear(t *testing.T) {
	villa := &fakeVilla{rooms: map[string][]villaapi.Room{"2026-11-01": {poolSuite(8_400_000, 2)}}}
	uc, _, _ := setup(t, villa)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SessionID: "sid", CheckIn: date(1), CheckOut: date(4), Guests: 5})
	require.NoError(t, err)

	resp, err := uc.Clear(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewCatalog, resp.View)
	assert.Equal(t, domain.DefaultGuests, resp.Guests)
	assert.Empty(t, resp.Results)
}

type brokenRepo struct{}

func (brokenRepo) Get(context.Context, string) (*domain.Session, error) {
	return nil, errors.New("down")
}

func (brokenRepo) Update(context.Context, string, session.UpdateFunc) (*domain.Session, error) {
	return nil, errors.New("down")
}

func TestExecute_SessionStoreFailure(t *testing.T) {
	villa := &fakeVilla{}
	uc := NewUseCase(villa, brokenRepo{}, nil, nopLogger{})
	uc.timeProvider = fixedTime{now: today}

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sid", CheckIn: date(1), CheckOut: date(4), Guests: 2})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, villa.callCount())
}
