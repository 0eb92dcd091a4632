package search_availability

import (
	"context"

	searchAvailability "github.com/m04kA/villa-booking-front/internal/usecase/search_availability"
)

type SearchUseCase interface {
	Execute(ctx context.Context, req *searchAvailability.Request) (*searchAvailability.Response, error)
	Clear(ctx context.Context, sessionID string) (*searchAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
