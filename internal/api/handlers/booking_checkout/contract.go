package booking_checkout

import (
	"context"

	"github.com/m04kA/villa-booking-front/internal/domain"
	submitBooking "github.com/m04kA/villa-booking-front/internal/usecase/submit_booking"
)

type DraftService interface {
	Get(ctx context.Context, sessionID string) (domain.BookingDraft, error)
}

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
