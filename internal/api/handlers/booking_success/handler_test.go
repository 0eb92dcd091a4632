package booking_success

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/service/bookings"
	"github.com/m04kA/villa-booking-front/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookings struct {
	got  string
	resp *models.BookingResponse
	err  error
}

func (f *fakeBookings) GetByCode(_ context.Context, code string) (*models.BookingResponse, error) {
	f.got = code
	return f.resp, f.err
}

func get(h *Handler, code string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/booking/success/{code}", h.Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking/success/"+code, nil))
	return rec
}

func TestHandle_Found(t *testing.T) {
	checkIn, _ := domain.ParseDate("2026-11-01")
	svc := &fakeBookings{resp: &models.BookingResponse{
		Code:     "VB-20261101-AB",
		Status:   "pending",
		RoomName: "Deluxe",
		CheckIn:  checkIn,
		Nights:   2,
		Total:    3080000,
		Services: []models.ServiceLine{{Name: "Spa", Quantity: 2, UnitPrice: 150000, LineTotal: 300000}},
	}}

	rec := get(NewHandler(svc, nopLogger{}), "VB-20261101-AB")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "VB-20261101-AB", svc.got)

	var body BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Deluxe", body.RoomName)
	assert.Equal(t, "2026-11-01", body.CheckIn)
	assert.Equal(t, "", body.CheckOut)
	assert.Equal(t, "Rp 3.080.000", body.Total.Formatted)
	require.Len(t, body.Services, 1)
	assert.Equal(t, int64(300000), body.Services[0].LineTotal.Value)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		bookings.ErrInvalidInput:    http.StatusBadRequest,
		bookings.ErrBookingNotFound: http.StatusNotFound,
		errors.New("boom"):          http.StatusBadGateway,
	}
	for err, status := range cases {
		rec := get(NewHandler(&fakeBookings{err: err}, nopLogger{}), "VB-1")
		assert.Equal(t, status, rec.Code, err.Error())
	}
}
