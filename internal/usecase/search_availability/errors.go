package search_availability

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда даты не заданы или выезд не позже заезда
	ErrInvalidDateRange = errors.New("search_availability: invalid date range")

	// ErrCheckInInPast возвращается, когда дата заезда раньше сегодняшнего дня
	ErrCheckInInPast = errors.New("search_availability: check-in date is in the past")

	// ErrInvalidGuestCount возвращается, когда число гостей вне допустимого диапазона
	ErrInvalidGuestCount = errors.New("search_availability: invalid guest count")

	// ErrAvailabilityFetchFailed возвращается при ошибке запроса доступности
	ErrAvailabilityFetchFailed = errors.New("search_availability: availability fetch failed")

	// ErrSearchSuperseded возвращается, когда за время запроса был запущен поиск с другими параметрами
	ErrSearchSuperseded = errors.New("search_availability: superseded by a newer search")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_availability: internal error")
)
