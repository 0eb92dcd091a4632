package models

import (
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
)

// ServiceLine услуга в подтверждённом бронировании
type ServiceLine struct {
	Name      string
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

// BookingResponse подтверждённое бронирование для страницы успеха
type BookingResponse struct {
	Code             string
	Status           string
	RoomName         string
	CustomerName     string
	CustomerEmail    string
	CustomerWhatsapp string
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int
	Nights           int
	Total            int64
	SpecialRequests  *string
	Services         []ServiceLine
}

// FromBookingDetail конвертирует ответ API в модель сервиса.
// Даты в неожиданном формате остаются нулевыми.
func FromBookingDetail(b *villaapi.BookingDetail) *BookingResponse {
	checkIn, _ := domain.ParseDate(dateOnly(b.CheckIn))
	checkOut, _ := domain.ParseDate(dateOnly(b.CheckOut))

	nights := b.DurationNights
	if nights < 1 {
		nights = domain.CountNights(checkIn, checkOut)
	}

	resp := &BookingResponse{
		Code:             b.BookingCode,
		Status:           b.Status,
		RoomName:         b.Room.Name,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerWhatsapp: b.CustomerWhatsapp,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           b.GuestCount,
		Nights:           nights,
		Total:            b.TotalPrice,
		SpecialRequests:  b.SpecialRequests,
		Services:         make([]ServiceLine, 0, len(b.Services)),
	}

	for _, s := range b.Services {
		resp.Services = append(resp.Services, ServiceLine{
			Name:      s.Name,
			Quantity:  s.Pivot.Quantity,
			UnitPrice: s.Pivot.PriceSnapshot,
			LineTotal: s.Pivot.PriceSnapshot * int64(s.Pivot.Quantity),
		})
	}

	return resp
}

// dateOnly отрезает время у дат вида 2026-11-01T00:00:00.000000Z
func dateOnly(value string) string {
	if len(value) > len(domain.DateFormat) {
		return value[:len(domain.DateFormat)]
	}
	return value
}
