package middleware

import (
	"context"
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/service/flow"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HTTPMetrics сборщик метрик HTTP-запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// StepMetrics счётчик перенаправлений guard'ом этапов
type StepMetrics interface {
	IncStepRedirect(step string)
}

// StepFlow проверка входа на этап бронирования
type StepFlow interface {
	Enter(ctx context.Context, sessionID string, step domain.Step) (flow.Decision, error)
}
