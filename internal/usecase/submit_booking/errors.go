package submit_booking

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrValidationFailed возвращается, когда поля заказчика не прошли проверку
	ErrValidationFailed = errors.New("submit_booking: validation failed")

	// ErrNoRoomSelected возвращается, когда в черновике нет номера
	ErrNoRoomSelected = errors.New("submit_booking: no room selected")

	// ErrSubmissionFailed возвращается, когда API не создал бронирование
	ErrSubmissionFailed = errors.New("submit_booking: booking submission failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// ValidationError ошибки по полям формы оформления
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidationFailed)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// SubmissionError отказ API с сообщением для посетителя
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return ErrSubmissionFailed.Error() + ": " + e.Err.Error()
}

func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
