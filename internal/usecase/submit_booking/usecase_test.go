package submit_booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
	"github.com/m04kA/villa-booking-front/internal/service/drafts"
	"github.com/m04kA/villa-booking-front/internal/service/flow"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeVilla struct {
	requests []villaapi.CreateBookingRequest
	code     string
	err      error
}

func (f *fakeVilla) CreateBooking(_ context.Context, req villaapi.CreateBookingRequest) (*villaapi.CreatedBooking, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &villaapi.CreatedBooking{BookingCode: f.code}, nil
}

type countingMetrics map[string]int

func (m countingMetrics) IncBookingSubmission(outcome string) { m[outcome]++ }

func setup(t *testing.T, villa *fakeVilla) (*UseCase, *session.MemoryRepository, countingMetrics) {
	t.Helper()
	repo := session.NewMemoryRepository(time.Hour)
	m := countingMetrics{}
	uc := NewUseCase(villa, drafts.NewService(repo, nopLogger{}), flow.NewService(repo, nopLogger{}), m, nopLogger{})
	return uc, repo, m
}

func atCheckout(t *testing.T, repo *session.MemoryRepository) {
	t.Helper()
	_, err := repo.Update(context.Background(), "sid", func(s *domain.Session) error {
		s.Step = domain.StepCheckout
		s.Draft.Room = &domain.Room{ID: 7, Name: "Pool Suite", PricePerNight: 2_800_000, AvailableRooms: 1}
		s.Draft.CheckIn = time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
		s.Draft.CheckOut = time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC)
		s.Draft.Guests = 2
		s.Draft.Nights = 3
		s.Draft.Services = domain.Selection{
			{AddOn: domain.AddOn{ID: 3, Price: 150_000, HasQuantity: true}, Quantity: 2},
		}
		return nil
	})
	require.NoError(t, err)
}

func validRequest() *Request {
	return &Request{
		SessionID: "sid",
		Name:      "  Ayu Lestari ",
		Email:     "ayu@example.com",
		Whatsapp:  "0812-3456 7890",
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		fields map[string]string
	}{
		{name: "valid", mutate: func(*Request) {}},
		{name: "blank name", mutate: func(r *Request) { r.Name = "   " }, fields: map[string]string{FieldName: msgNameRequired}},
		{name: "missing email", mutate: func(r *Request) { r.Email = "" }, fields: map[string]string{FieldEmail: msgEmailRequired}},
		{name: "invalid email", mutate: func(r *Request) { r.Email = "ayu@example" }, fields: map[string]string{FieldEmail: msgEmailInvalid}},
		{name: "email with space", mutate: func(r *Request) { r.Email = "ayu lestari@example.com" }, fields: map[string]string{FieldEmail: msgEmailInvalid}},
		{name: "missing whatsapp", mutate: func(r *Request) { r.Whatsapp = " " }, fields: map[string]string{FieldWhatsapp: msgWhatsappRequired}},
		{name: "short whatsapp", mutate: func(r *Request) { r.Whatsapp = "0812-345" }, fields: map[string]string{FieldWhatsapp: msgWhatsappInvalid}},
		{name: "whatsapp with plus", mutate: func(r *Request) { r.Whatsapp = "+62 812 3456 7890" }, fields: map[string]string{FieldWhatsapp: msgWhatsappInvalid}},
		{name: "whatsapp too long", mutate: func(r *Request) { r.Whatsapp = "1234567890123456" }, fields: map[string]string{FieldWhatsapp: msgWhatsappInvalid}},
		{
			name:   "everything wrong",
			mutate: func(r *Request) { r.Name, r.Email, r.Whatsapp = "", "", "" },
			fields: map[string]string{FieldName: msgNameRequired, FieldEmail: msgEmailRequired, FieldWhatsapp: msgWhatsappRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestExecute_Success(t *testing.T) {
	villa := &fakeVilla{code: "VB-20261101-0001"}
	uc, repo, m := setup(t, villa)
	atCheckout(t, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "VB-20261101-0001", resp.BookingCode)
	assert.Equal(t, "/booking/success/VB-20261101-0001", resp.RedirectTo)
	assert.Equal(t, 1, m[outcomeCreated])

	require.Len(t, villa.requests, 1)
	sent := villa.requests[0]
	assert.Equal(t, int64(7), sent.RoomID)
	assert.Equal(t, "Ayu Lestari", sent.CustomerName)
	assert.Equal(t, "2026-11-01", sent.CheckIn)
	assert.Equal(t, "2026-11-04", sent.CheckOut)
	assert.Equal(t, 2, sent.GuestCount)
	assert.Nil(t, sent.SpecialRequests)
	assert.Equal(t, []villaapi.BookingServiceLine{{ServiceID: 3, Quantity: 2}}, sent.Services)

	body, err := json.Marshal(sent)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"special_requests":null`)
	assert.Contains(t, string(body), `"notes":null`)

	sess, err := repo.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirmation, sess.Step)
	assert.Nil(t, sess.Draft.Room, "draft is cleared after success")
}

func TestExecute_SpecialRequestsSent(t *testing.T) {
	villa := &fakeVilla{code: "VB-2"}
	uc, repo, _ := setup(t, villa)
	atCheckout(t, repo)

	req := validRequest()
	req.SpecialRequests = "Late check-in"
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, villa.requests[0].SpecialRequests)
	assert.Equal(t, "Late check-in", *villa.requests[0].SpecialRequests)
}

func TestExecute_InvalidEmailKeepsOtherFields(t *testing.T) {
	villa := &fakeVilla{code: "VB-3"}
	uc, repo, m := setup(t, villa)
	atCheckout(t, repo)

	req := validRequest()
	req.Email = "not-an-email"
	_, err := uc.Execute(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{FieldEmail: msgEmailInvalid}, verr.Fields)
	assert.Empty(t, villa.requests, "no network call on validation failure")
	assert.Equal(t, 1, m[outcomeInvalid])

	sess, err := repo.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, domain.StepCheckout, sess.Step)
	assert.Equal(t, "  Ayu Lestari ", sess.Draft.Customer.Name)
	assert.Equal(t, "0812-3456 7890", sess.Draft.Customer.Whatsapp)
	assert.Equal(t, "not-an-email", sess.Draft.Customer.Email)
	assert.NotNil(t, sess.Draft.Room)
}

func TestExecute_ServerRejectionKeepsDraft(t *testing.T) {
	villa := &fakeVilla{err: &villaapi.RejectedError{Status: 409, Message: "Room is fully booked"}}
	uc, repo, m := setup(t, villa)
	atCheckout(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSubmissionFailed)

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Room is fully booked", serr.Message)
	assert.Equal(t, 1, m[outcomeRejected])

	sess, err := repo.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, domain.StepCheckout, sess.Step)
	require.NotNil(t, sess.Draft.Room)
	assert.Equal(t, 2, sess.Draft.Services.Quantity(3))
}

func TestExecute_NetworkFailure(t *testing.T) {
	villa := &fakeVilla{err: villaapi.ErrUnavailable}
	uc, repo, m := setup(t, villa)
	atCheckout(t, repo)

	_, err := uc.Execute(context.Background(), validRequest())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, msgSubmissionFailed, serr.Message)
	assert.ErrorIs(t, err, villaapi.ErrUnavailable)
	assert.Equal(t, 1, m[outcomeFailed])
}

func TestExecute_NoRoom(t *testing.T) {
	villa := &fakeVilla{}
	uc, _, _ := setup(t, villa)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNoRoomSelected)
	assert.Empty(t, villa.requests)
}
