package villaapi

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование с таким кодом не найдено
	ErrBookingNotFound = errors.New("villaapi client: booking not found")

	// ErrRejected возвращается, когда API отклонил запрос (ошибка валидации, success=false)
	ErrRejected = errors.New("villaapi client: request rejected")

	// ErrUnavailable возвращается при сетевых ошибках, таймаутах, 5xx и открытом circuit breaker
	ErrUnavailable = errors.New("villaapi client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("villaapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("villaapi client: internal error")
)

// RejectedError отказ API с сообщением сервера
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, e.Message)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrRejected)
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
