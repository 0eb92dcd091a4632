package room_detail

import "github.com/m04kA/villa-booking-front/internal/api/handlers"

// RoomDetailResponse карточка номера. Availability заполняется,
// если в сессии есть результаты поиска с этим номером.
type RoomDetailResponse struct {
	Room         handlers.RoomView           `json:"room"`
	Availability *handlers.AvailableRoomView `json:"availability,omitempty"`
	CheckIn      string                      `json:"check_in,omitempty"`
	CheckOut     string                      `json:"check_out,omitempty"`
	Guests       int                         `json:"guests"`
	FitsGuests   bool                        `json:"fits_guests"`
}
