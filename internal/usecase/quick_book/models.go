package quick_book

import (
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

// Request модель запроса на быстрое бронирование номера
type Request struct {
	SessionID string
	RoomID    int64
}

// Response модель ответа: черновик после выбора номера и путь следующего этапа
type Response struct {
	Room         domain.Room
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	Nights       int
	OverCapacity bool
	RedirectTo   string
}
