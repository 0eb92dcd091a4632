package quick_book

import (
	"context"

	quickBook "github.com/m04kA/villa-booking-front/internal/usecase/quick_book"
)

type QuickBookUseCase interface {
	Execute(ctx context.Context, req *quickBook.Request) (*quickBook.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
