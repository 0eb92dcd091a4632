package search_availability

import (
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

// Исходы поиска для метрик
const (
	outcomeResults    = "results"
	outcomeNoResults  = "no_results"
	outcomeInvalid    = "invalid"
	outcomeFailed     = "failed"
	outcomeSuperseded = "superseded"
	outcomeAborted    = "aborted"
)

// Request модель запроса поиска доступности
type Request struct {
	SessionID string
	CheckIn   time.Time
	CheckOut  time.Time
	Guests    int
}

// Response состояние поиска сессии
type Response struct {
	View     domain.SearchView
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Nights   int
	Results  []domain.AvailableRoom
}

func responseFromState(state domain.SearchState) *Response {
	resp := &Response{
		View:     state.View(),
		CheckIn:  state.CheckIn,
		CheckOut: state.CheckOut,
		Guests:   state.Guests,
		Nights:   domain.CountNights(state.CheckIn, state.CheckOut),
		Results:  state.Results,
	}
	if resp.Results == nil {
		resp.Results = []domain.AvailableRoom{}
	}
	return resp
}
