package quick_book

import (
	"context"
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/service/flow"
)

// SessionRepository интерфейс хранилища сессий (только чтение состояния поиска)
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
}

// CatalogService интерфейс каталога номеров
type CatalogService interface {
	FindRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}

// DraftStore интерфейс черновика бронирования
type DraftStore interface {
	SetRoom(ctx context.Context, sessionID string, room domain.Room) error
	SetDates(ctx context.Context, sessionID string, checkIn, checkOut time.Time, guests, nights int) error
}

// StepFlow интерфейс машины состояний этапов
type StepFlow interface {
	Enter(ctx context.Context, sessionID string, step domain.Step) (flow.Decision, error)
	Advance(ctx context.Context, sessionID string, to domain.Step) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
