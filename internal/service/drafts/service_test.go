package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (*domain.Session, error) {
	return nil, errors.New("redis down")
}

func (failingRepo) Update(context.Context, string, session.UpdateFunc) (*domain.Session, error) {
	return nil, errors.New("redis down")
}

func newService() *Service {
	return NewService(session.NewMemoryRepository(time.Hour), nopLogger{})
}

var (
	checkIn  = time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC)
	poolRoom = domain.Room{ID: 1, Name: "Pool Suite", PricePerNight: 2_800_000, MaxCapacity: 2, AvailableRooms: 3}
)

func TestGet_UnknownSessionIsEmptyDraft(t *testing.T) {
	svc := newService()

	d, err := svc.Get(context.Background(), "new")
	require.NoError(t, err)
	assert.False(t, d.HasRoom())
	assert.Equal(t, domain.DefaultGuests, d.Guests)
	assert.Equal(t, domain.DefaultNights, d.Nights)
}

func TestSetRoom_KeepsDatesAndServices(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.SetRoom(ctx, "sid", poolRoom))
	require.NoError(t, svc.SetDates(ctx, "sid", checkIn, checkOut, 2, 3))
	require.NoError(t, svc.SetServices(ctx, "sid", domain.Selection{
		{AddOn: domain.AddOn{ID: 5, Price: 500_000}, Quantity: 1},
	}))

	other := domain.Room{ID: 2, Name: "Garden Villa", PricePerNight: 1_500_000}
	require.NoError(t, svc.SetRoom(ctx, "sid", other))

	d, err := svc.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.Room.ID)
	assert.True(t, checkIn.Equal(d.CheckIn))
	assert.Equal(t, 3, d.Nights)
	assert.True(t, d.Services.Contains(5))
}

func TestSetDates_RejectsInvalidRange(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	err := svc.SetDates(ctx, "sid", checkIn, checkIn, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	err = svc.SetDates(ctx, "sid", checkOut, checkIn, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	d, err := svc.Get(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, d.CheckIn.IsZero(), "rejected dates must not be applied")
}

func TestSetDates_RecomputesMissingNights(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.SetDates(ctx, "sid", checkIn, checkOut, 4, 0))

	d, err := svc.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Nights)
	assert.Equal(t, 4, d.Guests)
}

func TestSetServices_RejectsZeroQuantity(t *testing.T) {
	svc := newService()

	err := svc.SetServices(context.Background(), "sid", domain.Selection{
		{AddOn: domain.AddOn{ID: 1}, Quantity: 0},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetServices_StoresCopy(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	sel := domain.Selection{{AddOn: domain.AddOn{ID: 1, Price: 150_000}, Quantity: 2}}
	require.NoError(t, svc.SetServices(ctx, "sid", sel))
	sel[0].Quantity = 9

	d, err := svc.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Services.Quantity(1))
}

func TestGetTotals(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.SetRoom(ctx, "sid", poolRoom))
	require.NoError(t, svc.SetDates(ctx, "sid", checkIn, checkOut, 2, 3))
	require.NoError(t, svc.SetServices(ctx, "sid", domain.Selection{
		{AddOn: domain.AddOn{ID: 1, Price: 150_000, HasQuantity: true}, Quantity: 2},
		{AddOn: domain.AddOn{ID: 2, Price: 500_000}, Quantity: 1},
	}))

	totals, err := svc.GetTotals(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, int64(8_400_000), totals.RoomTotal)
	assert.Equal(t, int64(800_000), totals.ServicesTotal)
	assert.Equal(t, int64(920_000), totals.ServiceFee)
	assert.Equal(t, int64(10_120_000), totals.GrandTotal)
}

func TestClear(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, svc.SetRoom(ctx, "sid", poolRoom))
	require.NoError(t, svc.SetCustomerInfo(ctx, "sid", domain.Customer{Name: "Ayu"}))
	require.NoError(t, svc.Clear(ctx, "sid"))

	d, err := svc.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDraft(), d)

	totals, err := svc.GetTotals(ctx, "sid")
	require.NoError(t, err)
	assert.Zero(t, totals.GrandTotal)
}

func TestRepositoryFailure(t *testing.T) {
	svc := NewService(failingRepo{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.Get(ctx, "sid")
	assert.ErrorIs(t, err, ErrInternal)

	assert.ErrorIs(t, svc.SetRoom(ctx, "sid", poolRoom), ErrInternal)
}
