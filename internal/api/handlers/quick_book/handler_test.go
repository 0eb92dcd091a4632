package quick_book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	quickBook "github.com/m04kA/villa-booking-front/internal/usecase/quick_book"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *quickBook.Request
	resp *quickBook.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *quickBook.Request) (*quickBook.Response, error) {
	f.got = req
	return f.resp, f.err
}

func book(h *Handler, roomID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/rooms/{roomId}/book", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/rooms/"+roomID+"/book", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s1"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_RedirectsToServices(t *testing.T) {
	uc := &fakeUseCase{resp: &quickBook.Response{Nights: 2, RedirectTo: "/booking/services"}}

	rec := book(NewHandler(uc, nopLogger{}), "4")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/booking/services", rec.Header().Get("Location"))
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(4), uc.got.RoomID)
	assert.Equal(t, "s1", uc.got.SessionID)
	assert.Empty(t, rec.Header().Get(HeaderOverCapacity))
}

func TestHandle_OverCapacityHeader(t *testing.T) {
	uc := &fakeUseCase{resp: &quickBook.Response{OverCapacity: true, RedirectTo: "/booking/services"}}

	rec := book(NewHandler(uc, nopLogger{}), "4")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(HeaderOverCapacity))
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		quickBook.ErrDatesRequired:      http.StatusBadRequest,
		quickBook.ErrRoomNotFound:       http.StatusNotFound,
		quickBook.ErrRoomUnavailable:    http.StatusConflict,
		quickBook.ErrCatalogUnavailable: http.StatusBadGateway,
		quickBook.ErrInternal:           http.StatusInternalServerError,
	}
	for err, status := range cases {
		rec := book(NewHandler(&fakeUseCase{err: err}, nopLogger{}), "4")
		assert.Equal(t, status, rec.Code, err.Error())
	}
}

func TestHandle_InvalidRoomID(t *testing.T) {
	uc := &fakeUseCase{}
	rec := book(NewHandler(uc, nopLogger{}), "zero")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
