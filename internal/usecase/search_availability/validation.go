package search_availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/villa-booking-front/internal/domain"
)

// validateRequest проверяет параметры поиска до обращения к API
func validateRequest(req *Request, now time.Time) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidDateRange)
	}

	if !domain.IsValidStay(req.CheckIn, req.CheckOut) {
		return fmt.Errorf("%w: check-out %s is not after check-in %s",
			ErrInvalidDateRange, domain.FormatDate(req.CheckOut), domain.FormatDate(req.CheckIn))
	}

	if isDateInPast(req.CheckIn, now) {
		return ErrCheckInInPast
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidGuestCount, req.Guests, domain.MinGuests, domain.MaxGuests)
	}

	return nil
}

// paramKey ключ идентичности параметров поиска
func paramKey(req *Request) string {
	return strings.Join([]string{
		domain.FormatDate(req.CheckIn),
		domain.FormatDate(req.CheckOut),
		strconv.Itoa(req.Guests),
	}, "|")
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
