package domain

const (
	// DateFormat формат дат заезда/выезда на проводе и в URL
	DateFormat = "2006-01-02"

	// DefaultGuests количество гостей в пустом черновике и после сброса фильтра
	DefaultGuests = 2

	// DefaultNights количество ночей, пока даты не выбраны
	DefaultNights = 1

	// MinGuests и MaxGuests границы выбора количества гостей при поиске
	MinGuests = 1
	MaxGuests = 10

	// ServiceFeePercent сервисный сбор в процентах от подытога
	ServiceFeePercent = 10

	// LowStockThreshold порог, начиная с которого показываем "осталось N номеров"
	LowStockThreshold = 5
)
