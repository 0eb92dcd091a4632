package home

import (
	"net/http"
	"time"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	"github.com/m04kA/villa-booking-front/internal/domain"
)

const (
	msgCatalogUnavailable = "Gagal memuat daftar kamar. Silakan muat ulang halaman."
	msgNoResults          = "Tidak ada kamar tersedia untuk tanggal yang dipilih."
)

type Handler struct {
	catalog CatalogService
	search  SearchUseCase
	logger  Logger
	now     func() time.Time
}

func NewHandler(catalog CatalogService, search SearchUseCase, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		search:  search,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("GET / - Session id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	state, err := h.search.Current(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET / - Failed to load search state: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := HomeResponse{
		View:    state.View,
		Search:  newSearchBar(state, domain.FormatDate(h.now())),
		Rooms:   []handlers.RoomView{},
		Results: handlers.NewAvailableRoomViews(state.Results),
	}

	switch state.View {
	case domain.ViewCatalog:
		rooms, err := h.catalog.ListRooms(r.Context())
		if err != nil {
			// Страница остаётся рабочей: строка поиска доступна и без каталога
			h.logger.Warn("GET / - Room catalog unavailable: %v", err)
			response.CatalogUnavailable = true
			response.Message = msgCatalogUnavailable
			break
		}
		response.Rooms = newRoomViews(rooms)
	case domain.ViewNoResults:
		response.Message = msgNoResults
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
