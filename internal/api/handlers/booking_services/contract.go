package booking_services

import (
	"context"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/service/selection"
)

type SelectionService interface {
	Open(ctx context.Context, sessionID string) (*selection.View, error)
	Toggle(ctx context.Context, sessionID string, addOnID int64) (*selection.View, error)
	Increment(ctx context.Context, sessionID string, addOnID int64) (*selection.View, error)
	Decrement(ctx context.Context, sessionID string, addOnID int64) (*selection.View, error)
	Commit(ctx context.Context, sessionID string) error
	Skip(ctx context.Context, sessionID string) error
}

type StepFlow interface {
	Advance(ctx context.Context, sessionID string, to domain.Step) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
