package domain

import "time"

// Customer данные заказчика, заполняются на шаге оформления
type Customer struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Whatsapp        string `json:"whatsapp"`
	SpecialRequests string `json:"special_requests"`
}

// BookingDraft the single in-progress reservation of a visitor.
// Populated step by step (room, stay, add-ons, customer) and reset after a successful submission.
type BookingDraft struct {
	Room     *Room     `json:"room,omitempty"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Guests   int       `json:"guests"`
	Nights   int       `json:"nights"`
	Services Selection `json:"services"`
	Customer Customer  `json:"customer"`
}

// NewDraft возвращает пустой черновик
func NewDraft() BookingDraft {
	return BookingDraft{
		Guests:   DefaultGuests,
		Nights:   DefaultNights,
		Services: Selection{},
	}
}

// HasRoom returns true if a room has been chosen
func (d *BookingDraft) HasRoom() bool {
	return d.Room != nil
}

// HasStay returns true if both stay dates are set
func (d *BookingDraft) HasStay() bool {
	return !d.CheckIn.IsZero() && !d.CheckOut.IsZero()
}

// Clone возвращает глубокую копию черновика
func (d *BookingDraft) Clone() BookingDraft {
	c := *d
	c.Room = d.Room.Clone()
	c.Services = d.Services.Clone()
	return c
}
