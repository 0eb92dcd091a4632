package home

import (
	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/domain"
	searchAvailability "github.com/m04kA/villa-booking-front/internal/usecase/search_availability"
)

// SearchBarResponse текущее состояние строки поиска
type SearchBarResponse struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
	Nights   int    `json:"nights"`
	MinDate  string `json:"min_date"`
}

// HomeResponse главная страница: каталог или результаты поиска
type HomeResponse struct {
	View               domain.SearchView            `json:"view"`
	Search             SearchBarResponse            `json:"search"`
	Rooms              []handlers.RoomView          `json:"rooms"`
	Results            []handlers.AvailableRoomView `json:"results"`
	CatalogUnavailable bool                         `json:"catalog_unavailable"`
	Message            string                       `json:"message,omitempty"`
}

func newSearchBar(s *searchAvailability.Response, today string) SearchBarResponse {
	return SearchBarResponse{
		CheckIn:  domain.FormatDate(s.CheckIn),
		CheckOut: domain.FormatDate(s.CheckOut),
		Guests:   s.Guests,
		Nights:   s.Nights,
		MinDate:  today,
	}
}

func newRoomViews(rooms []domain.Room) []handlers.RoomView {
	out := make([]handlers.RoomView, 0, len(rooms))
	for i := range rooms {
		out = append(out, handlers.NewRoomView(&rooms[i]))
	}
	return out
}
