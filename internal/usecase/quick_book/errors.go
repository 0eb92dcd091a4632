package quick_book

import "errors"

var (
	// ErrDatesRequired возвращается, когда в поиске ещё не выбраны даты
	ErrDatesRequired = errors.New("quick_book: pick check-in and check-out dates first")

	// ErrRoomNotFound возвращается, когда номер не найден ни в результатах поиска, ни в каталоге
	ErrRoomNotFound = errors.New("quick_book: room not found")

	// ErrRoomUnavailable возвращается, когда свободных единиц номера не осталось
	ErrRoomUnavailable = errors.New("quick_book: room is not available")

	// ErrCatalogUnavailable возвращается, когда номер не удалось найти из-за недоступности каталога
	ErrCatalogUnavailable = errors.New("quick_book: room catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quick_book: internal error")
)
