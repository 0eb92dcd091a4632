package booking_success

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/service/bookings"
)

const (
	msgInvalidCode     = "Kode booking tidak valid."
	msgBookingNotFound = "Booking tidak ditemukan."
	msgLoadFailed      = "Gagal memuat data booking. Silakan coba lagi."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /booking/success/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	booking, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /booking/success/{code} - Invalid code: %q", code)
			handlers.RespondBadRequest(w, msgInvalidCode)
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /booking/success/{code} - Booking not found: code=%s", code)
			handlers.RespondNotFound(w, msgBookingNotFound)
		default:
			h.logger.Error("GET /booking/success/{code} - Failed to load booking: code=%s, error=%v", code, err)
			handlers.RespondBadGateway(w, msgLoadFailed)
		}
		return
	}

	h.logger.Info("GET /booking/success/{code} - Booking shown: code=%s", booking.Code)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(booking))
}
