package home

import (
	"context"

	"github.com/m04kA/villa-booking-front/internal/domain"
	searchAvailability "github.com/m04kA/villa-booking-front/internal/usecase/search_availability"
)

type CatalogService interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

type SearchUseCase interface {
	Current(ctx context.Context, sessionID string) (*searchAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
