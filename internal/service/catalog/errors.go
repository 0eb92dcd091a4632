package catalog

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда каталог номеров не удалось получить
	ErrCatalogUnavailable = errors.New("catalog: room catalog unavailable")

	// ErrServiceCatalogUnavailable возвращается, когда каталог услуг не удалось получить
	ErrServiceCatalogUnavailable = errors.New("catalog: service catalog unavailable")

	// ErrRoomNotFound возвращается, когда номера нет в каталоге
	ErrRoomNotFound = errors.New("catalog: room not found")
)
