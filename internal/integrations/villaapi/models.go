package villaapi

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

// envelope общий конверт ответов API
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

// errorMessage собирает текст ошибки из message и errors
func (e *envelope) errorMessage() string {
	if len(e.Errors) == 0 {
		return e.Message
	}
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, e.Errors[field]...)
	}
	if e.Message != "" {
		return e.Message + ": " + strings.Join(parts, ", ")
	}
	return strings.Join(parts, ", ")
}

// Image изображение номера
type Image struct {
	ID    int64  `json:"id"`
	URL   string `json:"url"`
	Alt   string `json:"alt"`
	Type  string `json:"type"`
	Order int    `json:"order"`
}

// Room модель номера из API
type Room struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	Description        string   `json:"description"`
	PricePerNight      int64    `json:"price_per_night"`
	MaxCapacity        int      `json:"max_capacity"`
	AvailableRooms     int      `json:"available_rooms"`
	AdditionalFeatures []string `json:"additional_features"`
	MainImage          *Image   `json:"main_image"`
	Images             []Image  `json:"images,omitempty"`

	// Заполняются только в ответе проверки доступности
	TotalPrice     *int64 `json:"total_price,omitempty"`
	AvailableCount *int   `json:"available_count,omitempty"`
	Nights         *int   `json:"nights,omitempty"`
}

// ToDomain конвертирует номер в доменную модель
func (r *Room) ToDomain() domain.Room {
	room := domain.Room{
		ID:             r.ID,
		Name:           r.Name,
		Slug:           r.Slug,
		Description:    r.Description,
		PricePerNight:  r.PricePerNight,
		MaxCapacity:    r.MaxCapacity,
		AvailableRooms: r.AvailableRooms,
		Features:       append([]string{}, r.AdditionalFeatures...),
	}
	if r.MainImage != nil {
		img := domain.RoomImage(*r.MainImage)
		room.MainImage = &img
	}
	if r.Images != nil {
		room.Images = make([]domain.RoomImage, len(r.Images))
		for i, img := range r.Images {
			room.Images[i] = domain.RoomImage(img)
		}
	}
	return room
}

// ToAvailableRoom конвертирует номер из ответа проверки доступности.
// Если API не прислал цену за проживание, она считается по цене за ночь.
func (r *Room) ToAvailableRoom(nights int) domain.AvailableRoom {
	result := domain.AvailableRoom{
		Room:           r.ToDomain(),
		Nights:         nights,
		AvailableCount: r.AvailableRooms,
	}
	if r.Nights != nil && *r.Nights > 0 {
		result.Nights = *r.Nights
	}
	if r.AvailableCount != nil {
		result.AvailableCount = *r.AvailableCount
	}
	if r.TotalPrice != nil {
		result.StayTotal = *r.TotalPrice
	} else {
		result.StayTotal = r.PricePerNight * int64(result.Nights)
	}
	return result
}

// Service модель дополнительной услуги из API
type Service struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          int64   `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Category       string  `json:"category"`
	ImageURL       *string `json:"image_url"`
	HasQuantity    bool    `json:"has_quantity"`
	MaxQuantity    *int    `json:"max_quantity"`
}

// ToDomain конвертирует услугу в доменную модель
func (s *Service) ToDomain() domain.AddOn {
	return domain.AddOn{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		Price:          s.Price,
		FormattedPrice: s.FormattedPrice,
		Category:       s.Category,
		ImageURL:       s.ImageURL,
		HasQuantity:    s.HasQuantity,
		MaxQuantity:    s.MaxQuantity,
	}
}

// AvailabilityRequest тело запроса POST /rooms/check-availability
type AvailabilityRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

type availabilityData struct {
	AvailableRooms []Room `json:"available_rooms"`
}

// BookingServiceLine позиция услуги в запросе создания бронирования
type BookingServiceLine struct {
	ServiceID int64   `json:"service_id"`
	Quantity  int     `json:"quantity"`
	Notes     *string `json:"notes"`
}

// CreateBookingRequest тело запроса POST /bookings
type CreateBookingRequest struct {
	RoomID           int64                `json:"room_id"`
	CustomerName     string               `json:"customer_name"`
	CustomerWhatsapp string               `json:"customer_whatsapp"`
	CustomerEmail    string               `json:"customer_email"`
	CheckIn          string               `json:"check_in"`
	CheckOut         string               `json:"check_out"`
	GuestCount       int                  `json:"guest_count"`
	SpecialRequests  *string              `json:"special_requests"`
	Services         []BookingServiceLine `json:"services"`
}

// CreatedBooking созданное бронирование (из ответа API нужен только код)
type CreatedBooking struct {
	BookingCode string `json:"booking_code"`
	Status      string `json:"status,omitempty"`
}

type bookingData[T any] struct {
	Booking T `json:"booking"`
}

// BookingRoom номер в детализации бронирования
type BookingRoom struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingServicePivot количество и цена услуги на момент бронирования
type BookingServicePivot struct {
	Quantity      int   `json:"quantity"`
	PriceSnapshot int64 `json:"price_snapshot"`
}

// BookingService услуга в детализации бронирования
type BookingService struct {
	ID    int64               `json:"id"`
	Name  string              `json:"name"`
	Pivot BookingServicePivot `json:"pivot"`
}

// BookingDetail полная информация о бронировании для страницы подтверждения
type BookingDetail struct {
	BookingCode      string           `json:"booking_code"`
	Status           string           `json:"status"`
	Room             BookingRoom      `json:"room"`
	CustomerName     string           `json:"customer_name"`
	CustomerWhatsapp string           `json:"customer_whatsapp"`
	CustomerEmail    string           `json:"customer_email"`
	CheckIn          string           `json:"check_in"`
	CheckOut         string           `json:"check_out"`
	GuestCount       int              `json:"guest_count"`
	DurationNights   int              `json:"duration_nights"`
	TotalPrice       int64            `json:"total_price"`
	SpecialRequests  *string          `json:"special_requests"`
	Services         []BookingService `json:"services"`
	CreatedAt        *time.Time       `json:"created_at,omitempty"`
}
