package domain

// PriceBreakdown производная разбивка стоимости черновика. Никогда не хранится.
type PriceBreakdown struct {
	RoomTotal     int64 `json:"room_total"`
	ServicesTotal int64 `json:"services_total"`
	Subtotal      int64 `json:"subtotal"`
	ServiceFee    int64 `json:"service_fee"`
	GrandTotal    int64 `json:"grand_total"`
	Nights        int   `json:"nights"`
}

// ComputeTotals derives the price breakdown of a draft.
// Без номера все суммы нулевые. Если обе даты заданы, ночи пересчитываются по датам,
// иначе берётся сохранённое значение (по умолчанию 1).
func ComputeTotals(d BookingDraft) PriceBreakdown {
	if d.Room == nil {
		return PriceBreakdown{}
	}

	nights := d.Nights
	if d.HasStay() {
		nights = CountNights(d.CheckIn, d.CheckOut)
	}
	if nights < 1 {
		nights = DefaultNights
	}

	roomTotal := d.Room.PricePerNight * int64(nights)
	servicesTotal := d.Services.Total()
	subtotal := roomTotal + servicesTotal
	fee := ServiceFee(subtotal)

	return PriceBreakdown{
		RoomTotal:     roomTotal,
		ServicesTotal: servicesTotal,
		Subtotal:      subtotal,
		ServiceFee:    fee,
		GrandTotal:    subtotal + fee,
		Nights:        nights,
	}
}

// ServiceFee сбор ServiceFeePercent% от подытога с округлением половины вверх.
// Целочисленная арифметика, чтобы результат был воспроизводим бит в бит.
func ServiceFee(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}
	return (subtotal*ServiceFeePercent + 50) / 100
}
