package villaapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учёта вызовов внешнего API
type Metrics interface {
	ObserveUpstream(operation, outcome string, duration time.Duration)
}
