package domain

// RoomImage изображение номера (основное или из галереи)
type RoomImage struct {
	ID    int64  `json:"id"`
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Type  string `json:"type"`
	Order int    `json:"order"`
}

// Room represents a bookable unit of the villa.
// Read-only projection of the external API, refreshed on every catalog or availability fetch.
type Room struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	Description    string      `json:"description"`
	PricePerNight  int64       `json:"price_per_night"`
	MaxCapacity    int         `json:"max_capacity"`
	AvailableRooms int         `json:"available_rooms"`
	Features       []string    `json:"features"`
	MainImage      *RoomImage  `json:"main_image,omitempty"`
	Images         []RoomImage `json:"images,omitempty"` // nil = у варианта API нет галереи
}

// IsBookable returns true if at least one unit is currently available
func (r *Room) IsBookable() bool {
	return r.AvailableRooms > 0
}

// FitsGuests returns true if the room capacity covers the guest count.
// Мягкая проверка: используется только для предупреждений.
func (r *Room) FitsGuests(guests int) bool {
	return r.MaxCapacity <= 0 || guests <= r.MaxCapacity
}

// Clone возвращает глубокую копию номера
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	c := *r
	if r.Features != nil {
		c.Features = append([]string(nil), r.Features...)
	}
	if r.MainImage != nil {
		img := *r.MainImage
		c.MainImage = &img
	}
	if r.Images != nil {
		c.Images = append([]RoomImage(nil), r.Images...)
	}
	return &c
}

// AvailableRoom номер из результатов поиска с ценой и остатком на конкретное проживание
type AvailableRoom struct {
	Room
	StayTotal      int64 `json:"stay_total"`
	AvailableCount int   `json:"available_count"`
	Nights         int   `json:"nights"`
}

// IsBookable returns true if the room has units left for the searched stay
func (r *AvailableRoom) IsBookable() bool {
	return r.AvailableCount > 0
}

// IsLowStock returns true if only a few units are left for the stay
func (r *AvailableRoom) IsLowStock() bool {
	return r.AvailableCount > 0 && r.AvailableCount <= LowStockThreshold
}

// FindRoom ищет номер по ID в списке
func FindRoom(rooms []Room, id int64) (*Room, bool) {
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], true
		}
	}
	return nil, false
}
