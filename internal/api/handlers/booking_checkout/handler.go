package booking_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/api/middleware"
	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/internal/integrations/villaapi"
	submitBooking "github.com/m04kA/villa-booking-front/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "Permintaan tidak valid."
	msgValidationFailed   = "Mohon periksa kembali data Anda."
	msgSubmissionFailed   = "Terjadi kesalahan saat membuat booking. Silakan coba lagi."
)

type Handler struct {
	drafts  DraftService
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(drafts DraftService, useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		drafts:  drafts,
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /booking/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("GET /booking/checkout - Session id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	draft, err := h.drafts.Get(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("GET /booking/checkout - Failed to load draft: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, NewCheckoutResponse(&draft))
}

// HandleSubmit POST /booking/checkout
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /booking/checkout - Session id missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		var validationErr *submitBooking.ValidationError
		var submissionErr *submitBooking.SubmissionError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /booking/checkout - Validation failed: session=%s, error=%v", sessionID, err)
			handlers.RespondValidationError(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, submitBooking.ErrNoRoomSelected):
			h.logger.Warn("POST /booking/checkout - No room selected: session=%s", sessionID)
			handlers.RedirectTo(w, r, domain.StepRoomSelection.Path())

		case errors.As(err, &submissionErr):
			message := submissionErr.Message
			if message == "" {
				message = msgSubmissionFailed
			}
			// Отказ API показываем посетителю, сбой связи отдаём как 502
			if errors.Is(submissionErr.Err, villaapi.ErrRejected) {
				h.logger.Warn("POST /booking/checkout - Booking rejected: session=%s, error=%v", sessionID, err)
				handlers.RespondValidationError(w, message, nil)
			} else {
				h.logger.Error("POST /booking/checkout - Booking submission failed: session=%s, error=%v", sessionID, err)
				handlers.RespondBadGateway(w, message)
			}

		default:
			h.logger.Error("POST /booking/checkout - Failed to submit booking: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/checkout - Booking created: session=%s, code=%s", sessionID, result.BookingCode)
	handlers.RedirectTo(w, r, result.RedirectTo)
}
