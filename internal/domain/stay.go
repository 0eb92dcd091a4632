package domain

import (
	"math"
	"time"
)

// CountNights количество ночей между датами: ceil(разница в днях), минимум 1.
// Если одна из дат не задана или выезд не позже заезда, возвращает DefaultNights.
func CountNights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return DefaultNights
	}
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// IsValidStay returns true if both dates are set and check-out is strictly after check-in
func IsValidStay(checkIn, checkOut time.Time) bool {
	return !checkIn.IsZero() && !checkOut.IsZero() && checkOut.After(checkIn)
}

// ParseDate разбирает дату формата YYYY-MM-DD. Пустая строка даёт нулевое время без ошибки.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(DateFormat, value)
}

// FormatDate форматирует дату для провода, нулевое время даёт пустую строку
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}
