package booking_success

import (
	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/service/bookings/models"
	"github.com/m04kA/villa-booking-front/pkg/money"
)

// ServiceLineResponse услуга в подтверждении
type ServiceLineResponse struct {
	Name      string       `json:"name"`
	Quantity  int          `json:"quantity"`
	UnitPrice money.Amount `json:"unit_price"`
	LineTotal money.Amount `json:"line_total"`
}

// BookingResponse подтверждение бронирования
type BookingResponse struct {
	Code            string                `json:"booking_code"`
	Status          string                `json:"status"`
	RoomName        string                `json:"room_name"`
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email"`
	Whatsapp        string                `json:"customer_whatsapp"`
	CheckIn         string                `json:"check_in"`
	CheckOut        string                `json:"check_out"`
	Guests          int                   `json:"guests"`
	Nights          int                   `json:"nights"`
	Total           money.Amount          `json:"total"`
	SpecialRequests *string               `json:"special_requests"`
	Services        []ServiceLineResponse `json:"services"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP модель
func FromServiceResponse(b *models.BookingResponse) BookingResponse {
	services := make([]ServiceLineResponse, 0, len(b.Services))
	for _, s := range b.Services {
		services = append(services, ServiceLineResponse{
			Name:      s.Name,
			Quantity:  s.Quantity,
			UnitPrice: money.NewAmount(s.UnitPrice),
			LineTotal: money.NewAmount(s.LineTotal),
		})
	}

	return BookingResponse{
		Code:            b.Code,
		Status:          b.Status,
		RoomName:        b.RoomName,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		Whatsapp:        b.CustomerWhatsapp,
		CheckIn:         domain.FormatDate(b.CheckIn),
		CheckOut:        domain.FormatDate(b.CheckOut),
		Guests:          b.Guests,
		Nights:          b.Nights,
		Total:           money.NewAmount(b.Total),
		SpecialRequests: b.SpecialRequests,
		Services:        services,
	}
}
