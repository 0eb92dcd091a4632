package session

import (
	"context"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

// UpdateFunc изменяет копию сессии. Ошибка отменяет запись.
type UpdateFunc func(s *domain.Session) error

// Repository хранилище сессий посетителей.
// Update выполняет атомарный read-modify-write и создаёт сессию, если её нет.
type Repository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, id string, fn UpdateFunc) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
