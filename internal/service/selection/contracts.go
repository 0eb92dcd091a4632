package selection

import (
	"context"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, id string, fn session.UpdateFunc) (*domain.Session, error)
}

// CatalogService интерфейс каталога дополнительных услуг
type CatalogService interface {
	ListAddOns(ctx context.Context) ([]domain.AddOn, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
