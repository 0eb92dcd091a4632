package quick_book

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	quickBook "github.com/m04kA/villa-booking-front/internal/usecase/quick_book"
)

// HeaderOverCapacity выставляется, когда гостей больше вместимости номера
const HeaderOverCapacity = "X-Villa-Over-Capacity"

const (
	msgInvalidRoomID      = "ID kamar tidak valid."
	msgDatesRequired      = "Silakan pilih tanggal check-in dan check-out terlebih dahulu."
	msgRoomNotFound       = "Kamar tidak ditemukan."
	msgRoomUnavailable    = "Kamar tidak tersedia untuk tanggal yang dipilih."
	msgCatalogUnavailable = "Gagal memuat data kamar. Silakan coba lagi."
)

type Handler struct {
	useCase QuickBookUseCase
	logger  Logger
}

func NewHandler(useCase QuickBookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /rooms/{roomId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /rooms/{roomId}/book - Session id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("POST /rooms/{roomId}/book - Invalid room id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quickBook.Request{SessionID: sessionID, RoomID: roomID})
	if err != nil {
		switch {
		case errors.Is(err, quickBook.ErrDatesRequired):
			h.logger.Warn("POST /rooms/{roomId}/book - Dates not picked: session=%s, room_id=%d", sessionID, roomID)
			handlers.RespondBadRequest(w, msgDatesRequired)

		case errors.Is(err, quickBook.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{roomId}/book - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quickBook.ErrRoomUnavailable):
			h.logger.Warn("POST /rooms/{roomId}/book - Room unavailable: session=%s, room_id=%d", sessionID, roomID)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, quickBook.ErrCatalogUnavailable):
			h.logger.Warn("POST /rooms/{roomId}/book - Catalog unavailable: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadGateway(w, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /rooms/{roomId}/book - Failed to book room: session=%s, room_id=%d, error=%v",
				sessionID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.OverCapacity {
		w.Header().Set(HeaderOverCapacity, "1")
	}

	h.logger.Info("POST /rooms/{roomId}/book - Room selected: session=%s, room_id=%d, nights=%d",
		sessionID, roomID, result.Nights)
	handlers.RedirectTo(w, r, result.RedirectTo)
}
