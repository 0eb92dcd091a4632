package home

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	"github.com/m04kA/villa-booking-front/internal/domain"
	searchAvailability "github.com/m04kA/villa-booking-front/internal/usecase/search_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	rooms []domain.Room
	err   error
	calls int
}

func (f *fakeCatalog) ListRooms(context.Context) ([]domain.Room, error) {
	f.calls++
	return f.rooms, f.err
}

type fakeSearch struct {
	resp *searchAvailability.Response
	err  error
}

func (f *fakeSearch) Current(context.Context, string) (*searchAvailability.Response, error) {
	return f.resp, f.err
}

func serve(t *testing.T, h *Handler) (*httptest.ResponseRecorder, HomeResponse) {
	t.Helper()
	h.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	var body HomeResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	}
	return rec, body
}

func catalogState() *searchAvailability.Response {
	return &searchAvailability.Response{View: domain.ViewCatalog, Guests: 2, Results: []domain.AvailableRoom{}}
}

func TestHandle_Catalog(t *testing.T) {
	cat := &fakeCatalog{rooms: []domain.Room{{ID: 1, Name: "Deluxe", AvailableRooms: 2}}}
	h := NewHandler(cat, &fakeSearch{resp: catalogState()}, nopLogger{})

	rec, body := serve(t, h)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ViewCatalog, body.View)
	require.Len(t, body.Rooms, 1)
	assert.Equal(t, "Deluxe", body.Rooms[0].Name)
	assert.Equal(t, "2026-10-15", body.Search.MinDate)
	assert.False(t, body.CatalogUnavailable)
}

func TestHandle_CatalogUnavailable(t *testing.T) {
	h := NewHandler(&fakeCatalog{err: errors.New("down")}, &fakeSearch{resp: catalogState()}, nopLogger{})

	rec, body := serve(t, h)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.CatalogUnavailable)
	assert.Empty(t, body.Rooms)
	assert.NotEmpty(t, body.Message)
}

func TestHandle_ResultsSkipCatalog(t *testing.T) {
	checkIn, _ := domain.ParseDate("2026-11-01")
	checkOut, _ := domain.ParseDate("2026-11-03")
	cat := &fakeCatalog{}
	state := &searchAvailability.Response{
		View:     domain.ViewResults,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   3,
		Nights:   2,
		Results:  []domain.AvailableRoom{{Room: domain.Room{ID: 5}, StayTotal: 2800000, AvailableCount: 1, Nights: 2}},
	}
	h := NewHandler(cat, &fakeSearch{resp: state}, nopLogger{})

	_, body := serve(t, h)

	assert.Equal(t, 0, cat.calls)
	assert.Equal(t, domain.ViewResults, body.View)
	assert.Equal(t, "2026-11-01", body.Search.CheckIn)
	assert.Equal(t, 2, body.Search.Nights)
	require.Len(t, body.Results, 1)
	assert.Equal(t, int64(2800000), body.Results[0].StayTotal.Value)
}

func TestHandle_NoResults(t *testing.T) {
	state := &searchAvailability.Response{View: domain.ViewNoResults, Results: []domain.AvailableRoom{}}
	h := NewHandler(&fakeCatalog{}, &fakeSearch{resp: state}, nopLogger{})

	_, body := serve(t, h)

	assert.Equal(t, domain.ViewNoResults, body.View)
	assert.Empty(t, body.Results)
	assert.Equal(t, msgNoResults, body.Message)
}

func TestHandle_SearchStateError(t *testing.T) {
	h := NewHandler(&fakeCatalog{}, &fakeSearch{err: errors.New("redis down")}, nopLogger{})

	rec, _ := serve(t, h)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
