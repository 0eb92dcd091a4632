package search_availability

import (
	"errors"
	"strings"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/domain"
	searchAvailability "github.com/m04kA/villa-booking-front/internal/usecase/search_availability"
)

var errMalformedDate = errors.New("malformed date")

// SearchRequest HTTP модель запроса поиска
type SearchRequest struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   *int   `json:"guests,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Не указанное число гостей заменяется значением по умолчанию.
func (r *SearchRequest) ToUseCaseRequest(sessionID string) (*searchAvailability.Request, error) {
	checkIn, err := domain.ParseDate(strings.TrimSpace(r.CheckIn))
	if err != nil {
		return nil, errMalformedDate
	}
	checkOut, err := domain.ParseDate(strings.TrimSpace(r.CheckOut))
	if err != nil {
		return nil, errMalformedDate
	}

	guests := domain.DefaultGuests
	if r.Guests != nil {
		guests = *r.Guests
	}

	return &searchAvailability.Request{
		SessionID: sessionID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    guests,
	}, nil
}

// SearchResponse HTTP модель состояния поиска
type SearchResponse struct {
	View     domain.SearchView            `json:"view"`
	CheckIn  string                       `json:"check_in"`
	CheckOut string                       `json:"check_out"`
	Guests   int                          `json:"guests"`
	Nights   int                          `json:"nights"`
	Results  []handlers.AvailableRoomView `json:"results"`
	Message  string                       `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *searchAvailability.Response) SearchResponse {
	return SearchResponse{
		View:     resp.View,
		CheckIn:  domain.FormatDate(resp.CheckIn),
		CheckOut: domain.FormatDate(resp.CheckOut),
		Guests:   resp.Guests,
		Nights:   resp.Nights,
		Results:  handlers.NewAvailableRoomViews(resp.Results),
	}
}
