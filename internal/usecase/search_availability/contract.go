package search_availability

import (
	"context"
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/infra/storage/session"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
)

// VillaClient интерфейс клиента API виллы
type VillaClient interface {
	CheckAvailability(ctx context.Context, req villaapi.AvailabilityRequest) ([]villaapi.Room, error)
}

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Update(ctx context.Context, id string, fn session.UpdateFunc) (*domain.Session, error)
}

// Metrics интерфейс для учёта исходов поиска
type Metrics interface {
	IncSearch(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
