package submit_booking

import (
	"context"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
)

// VillaClient интерфейс клиента API виллы
type VillaClient interface {
	CreateBooking(ctx context.Context, req villaapi.CreateBookingRequest) (*villaapi.CreatedBooking, error)
}

// DraftStore интерфейс черновика бронирования
type DraftStore interface {
	Get(ctx context.Context, sessionID string) (domain.BookingDraft, error)
	SetCustomerInfo(ctx context.Context, sessionID string, customer domain.Customer) error
	Clear(ctx context.Context, sessionID string) error
}

// StepFlow интерфейс машины состояний этапов
type StepFlow interface {
	Advance(ctx context.Context, sessionID string, to domain.Step) error
}

// Metrics интерфейс для учёта отправок бронирования
type Metrics interface {
	IncBookingSubmission(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
