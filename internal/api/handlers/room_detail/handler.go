package room_detail

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/service/catalog"
)

const (
	msgInvalidRoomID      = "ID kamar tidak valid."
	msgRoomNotFound       = "Kamar tidak ditemukan."
	msgCatalogUnavailable = "Gagal memuat data kamar. Silakan coba lagi."
)

type Handler struct {
	catalog CatalogService
	search  SearchUseCase
	logger  Logger
}

func NewHandler(catalog CatalogService, search SearchUseCase, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		search:  search,
		logger:  logger,
	}
}

// Handle GET /rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{roomId} - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.catalog.FindRoom(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, catalog.ErrCatalogUnavailable):
			h.logger.Warn("GET /rooms/{roomId} - Catalog unavailable: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)
		default:
			h.logger.Error("GET /rooms/{roomId} - Failed to load room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := RoomDetailResponse{
		Room:       handlers.NewRoomView(room),
		Guests:     domain.DefaultGuests,
		FitsGuests: room.FitsGuests(domain.DefaultGuests),
	}

	// Данные поиска необязательны: без них показываем карточку каталога
	if sessionID, ok := middleware.GetSessionID(r.Context()); ok {
		state, err := h.search.Current(r.Context(), sessionID)
		if err != nil {
			h.logger.Warn("GET /rooms/{roomId} - Search state unavailable: session=%s, error=%v", sessionID, err)
		} else {
			response.CheckIn = domain.FormatDate(state.CheckIn)
			response.CheckOut = domain.FormatDate(state.CheckOut)
			response.Guests = state.Guests
			response.FitsGuests = room.FitsGuests(state.Guests)
			for i := range state.Results {
				if state.Results[i].ID == roomID {
					view := handlers.NewAvailableRoomView(&state.Results[i])
					response.Availability = &view
					break
				}
			}
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
