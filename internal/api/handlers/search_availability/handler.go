package search_availability

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	"github.com/m04kA/villa-booking-front/internal/domain"
	searchAvailability "github.com/m04kA/villa-booking-front/internal/usecase/search_availability"
)

const (
	msgInvalidRequestBody = "Permintaan tidak valid."
	msgMalformedDate      = "Format tanggal tidak valid, gunakan YYYY-MM-DD."
	msgInvalidDateRange   = "Check-out harus setelah check-in."
	msgCheckInInPast      = "Tanggal check-in tidak boleh di masa lalu."
	msgInvalidGuests      = "Jumlah tamu harus antara 1 dan 10."
	msgFetchFailed        = "Gagal memeriksa ketersediaan kamar. Silakan coba lagi."
	msgSuperseded         = "Pencarian digantikan oleh pencarian yang lebih baru."
	msgNoResults          = "Tidak ada kamar tersedia untuk tanggal yang dipilih."
)

type Handler struct {
	useCase SearchUseCase
	logger  Logger
}

func NewHandler(useCase SearchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /search - Session id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /search - Malformed dates: check_in=%q, check_out=%q", req.CheckIn, req.CheckOut)
		handlers.RespondBadRequest(w, msgMalformedDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchAvailability.ErrInvalidDateRange):
			h.logger.Warn("POST /search - Invalid date range: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, searchAvailability.ErrCheckInInPast):
			h.logger.Warn("POST /search - Check-in in the past: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, searchAvailability.ErrInvalidGuestCount):
			h.logger.Warn("POST /search - Invalid guest count: session=%s, guests=%d", sessionID, useCaseReq.Guests)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, searchAvailability.ErrAvailabilityFetchFailed):
			h.logger.Warn("POST /search - Availability fetch failed: session=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgFetchFailed)

		case errors.Is(err, searchAvailability.ErrSearchSuperseded):
			h.logger.Info("POST /search - Superseded by a newer search: session=%s", sessionID)
			handlers.RespondConflict(w, msgSuperseded)

		case errors.Is(err, context.Canceled):
			// Клиент ушёл, отвечать некому
			h.logger.Info("POST /search - Request cancelled: session=%s", sessionID)

		default:
			h.logger.Error("POST /search - Failed to search availability: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)
	if result.View == domain.ViewNoResults {
		response.Message = msgNoResults
	}

	h.logger.Info("POST /search - Search completed: session=%s, view=%s, results=%d", sessionID, result.View, len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleClear DELETE /search
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("DELETE /search - Session id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Clear(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("DELETE /search - Failed to clear search: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /search - Filter cleared: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
