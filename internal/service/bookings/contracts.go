package bookings

import (
	"context"

	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
)

// VillaClient интерфейс клиента API виллы
type VillaClient interface {
	GetBooking(ctx context.Context, code string) (*villaapi.BookingDetail, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
