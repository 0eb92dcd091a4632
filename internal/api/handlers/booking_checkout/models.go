package booking_checkout

import (
	"strings"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/domain"
	submitBooking "github.com/m04kA/villa-booking-front/internal/usecase/submit_booking"
)

// CheckoutResponse сводка бронирования на шаге оформления
type CheckoutResponse struct {
	Draft  handlers.DraftView  `json:"draft"`
	Totals handlers.TotalsView `json:"totals"`
}

// NewCheckoutResponse собирает сводку из черновика
func NewCheckoutResponse(d *domain.BookingDraft) CheckoutResponse {
	return CheckoutResponse{
		Draft:  handlers.NewDraftView(d),
		Totals: handlers.NewTotalsView(domain.ComputeTotals(*d)),
	}
}

// SubmitRequest HTTP модель формы оформления
type SubmitRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Whatsapp        string `json:"whatsapp"`
	SpecialRequests string `json:"special_requests"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitRequest) ToUseCaseRequest(sessionID string) *submitBooking.Request {
	return &submitBooking.Request{
		SessionID:       sessionID,
		Name:            r.Name,
		Email:           strings.TrimSpace(r.Email),
		Whatsapp:        r.Whatsapp,
		SpecialRequests: r.SpecialRequests,
	}
}
