package booking_services

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/service/flow"
	"github.com/m04kA/villa-booking-front/internal/service/selection"
)

const (
	msgInvalidServiceID   = "ID layanan tidak valid."
	msgServiceNotFound    = "Layanan tidak ditemukan."
	msgCatalogUnavailable = "Gagal memuat layanan tambahan. Anda tetap dapat melanjutkan tanpa layanan."
)

type editFunc func(ctx context.Context, sessionID string, addOnID int64) (*selection.View, error)

type Handler struct {
	selection SelectionService
	flow      StepFlow
	logger    Logger
}

func NewHandler(selection SelectionService, flow StepFlow, logger Logger) *Handler {
	return &Handler{
		selection: selection,
		flow:      flow,
		logger:    logger,
	}
}

// Handle GET /booking/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("GET /booking/services - Session id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	view, err := h.selection.Open(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /booking/services - Failed to open editor: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromView(view)
	if view.CatalogUnavailable {
		response.Message = msgCatalogUnavailable
	}
	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleToggle POST /booking/services/{serviceId}/toggle
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, "toggle", h.selection.Toggle)
}

// HandleIncrement POST /booking/services/{serviceId}/increment
func (h *Handler) HandleIncrement(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, "increment", h.selection.Increment)
}

// HandleDecrement POST /booking/services/{serviceId}/decrement
func (h *Handler) HandleDecrement(w http.ResponseWriter, r *http.Request) {
	h.edit(w, r, "decrement", h.selection.Decrement)
}

// HandleContinue POST /booking/services/continue
func (h *Handler) HandleContinue(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, "continue", h.selection.Commit)
}

// HandleSkip POST /booking/services/skip
func (h *Handler) HandleSkip(w http.ResponseWriter, r *http.Request) {
	h.finish(w, r, "skip", h.selection.Skip)
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request, action string, apply editFunc) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /booking/services/{serviceId}/%s - Session id missing in context", action)
		handlers.RespondInternalError(w)
		return
	}

	addOnID, err := handlers.PathInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("POST /booking/services/{serviceId}/%s - Invalid service id: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	view, err := apply(r.Context(), sessionID, addOnID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrEditorNotOpen):
			// Страница услуг не открывалась в этой сессии: открываем заново
			h.logger.Warn("POST /booking/services/{serviceId}/%s - Editor not open: session=%s", action, sessionID)
			handlers.RedirectTo(w, r, domain.StepServiceSelection.Path())
		case errors.Is(err, selection.ErrAddOnNotFound):
			h.logger.Warn("POST /booking/services/{serviceId}/%s - Service not found: service_id=%d", action, addOnID)
			handlers.RespondNotFound(w, msgServiceNotFound)
		default:
			h.logger.Error("POST /booking/services/{serviceId}/%s - Failed to edit selection: session=%s, error=%v",
				action, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromView(view))
}

func (h *Handler) finish(w http.ResponseWriter, r *http.Request, action string, closeEditor func(context.Context, string) error) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /booking/services/%s - Session id missing in context", action)
		handlers.RespondInternalError(w)
		return
	}

	if err := closeEditor(r.Context(), sessionID); err != nil {
		if errors.Is(err, selection.ErrEditorNotOpen) {
			h.logger.Warn("POST /booking/services/%s - Editor not open: session=%s", action, sessionID)
			handlers.RedirectTo(w, r, domain.StepServiceSelection.Path())
			return
		}
		h.logger.Error("POST /booking/services/%s - Failed to save services: session=%s, error=%v", action, sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.flow.Advance(r.Context(), sessionID, domain.StepCheckout); err != nil {
		switch {
		case errors.Is(err, flow.ErrRoomRequired), errors.Is(err, flow.ErrTransitionNotAllowed):
			h.logger.Warn("POST /booking/services/%s - Cannot advance to checkout: session=%s, error=%v", action, sessionID, err)
			handlers.RedirectTo(w, r, domain.StepRoomSelection.Path())
		default:
			h.logger.Error("POST /booking/services/%s - Failed to advance: session=%s, error=%v", action, sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/services/%s - Services saved: session=%s", action, sessionID)
	handlers.RedirectTo(w, r, domain.StepCheckout.Path())
}
