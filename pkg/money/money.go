package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Все суммы в целых рупиях без дробной части. Локаль одна: id-ID.
var printer = message.NewPrinter(language.Indonesian)

// FormatIDR форматирует сумму для отображения: "Rp 2.800.000"
func FormatIDR(amount int64) string {
	if amount < 0 {
		return "-Rp " + printer.Sprintf("%d", -amount)
	}
	return "Rp " + printer.Sprintf("%d", amount)
}

// Amount сумма вместе с отформатированным представлением для view-моделей
type Amount struct {
	Value     int64  `json:"value"`
	Formatted string `json:"formatted"`
}

// NewAmount создаёт Amount
func NewAmount(value int64) Amount {
	return Amount{Value: value, Formatted: FormatIDR(value)}
}
