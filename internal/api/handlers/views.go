package handlers

import (
	"github.com/m04kA/villa-booking-front/internal/domain"
	"github.com/m04kA/villa-booking-front/pkg/money"
)

// RoomView номер в ответе
type RoomView struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Slug           string             `json:"slug"`
	Description    string             `json:"description"`
	PricePerNight  money.Amount       `json:"price_per_night"`
	MaxCapacity    int                `json:"max_capacity"`
	AvailableRooms int                `json:"available_rooms"`
	Bookable       bool               `json:"bookable"`
	Features       []string           `json:"features"`
	MainImage      *domain.RoomImage  `json:"main_image,omitempty"`
	Images         []domain.RoomImage `json:"images,omitempty"`
}

// NewRoomView собирает представление номера
func NewRoomView(r *domain.Room) RoomView {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	return RoomView{
		ID:             r.ID,
		Name:           r.Name,
		Slug:           r.Slug,
		Description:    r.Description,
		PricePerNight:  money.NewAmount(r.PricePerNight),
		MaxCapacity:    r.MaxCapacity,
		AvailableRooms: r.AvailableRooms,
		Bookable:       r.IsBookable(),
		Features:       features,
		MainImage:      r.MainImage,
		Images:         r.Images,
	}
}

// AddOnView дополнительная услуга в ответе
type AddOnView struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       money.Amount `json:"price"`
	Category    string       `json:"category"`
	ImageURL    *string      `json:"image_url,omitempty"`
	HasQuantity bool         `json:"has_quantity"`
	MaxQuantity *int         `json:"max_quantity,omitempty"`
}

// NewAddOnView собирает представление услуги.
// Готовая строка цены из API используется, если она есть.
func NewAddOnView(a *domain.AddOn) AddOnView {
	price := money.NewAmount(a.Price)
	if a.FormattedPrice != "" {
		price.Formatted = a.FormattedPrice
	}
	return AddOnView{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Price:       price,
		Category:    a.Category,
		ImageURL:    a.ImageURL,
		HasQuantity: a.HasQuantity,
		MaxQuantity: a.MaxQuantity,
	}
}

// SelectedAddOnView выбранная услуга с количеством
type SelectedAddOnView struct {
	Service   AddOnView    `json:"service"`
	Quantity  int          `json:"quantity"`
	LineTotal money.Amount `json:"line_total"`
}

// NewSelectionView собирает представление набора выбранных услуг
func NewSelectionView(sel domain.Selection) []SelectedAddOnView {
	out := make([]SelectedAddOnView, 0, len(sel))
	for i := range sel {
		out = append(out, SelectedAddOnView{
			Service:   NewAddOnView(&sel[i].AddOn),
			Quantity:  sel[i].Quantity,
			LineTotal: money.NewAmount(sel[i].LineTotal()),
		})
	}
	return out
}

// TotalsView разбивка стоимости
type TotalsView struct {
	Nights        int          `json:"nights"`
	RoomTotal     money.Amount `json:"room_total"`
	ServicesTotal money.Amount `json:"services_total"`
	Subtotal      money.Amount `json:"subtotal"`
	ServiceFee    money.Amount `json:"service_fee"`
	GrandTotal    money.Amount `json:"grand_total"`
}

// NewTotalsView собирает представление разбивки стоимости
func NewTotalsView(p domain.PriceBreakdown) TotalsView {
	return TotalsView{
		Nights:        p.Nights,
		RoomTotal:     money.NewAmount(p.RoomTotal),
		ServicesTotal: money.NewAmount(p.ServicesTotal),
		Subtotal:      money.NewAmount(p.Subtotal),
		ServiceFee:    money.NewAmount(p.ServiceFee),
		GrandTotal:    money.NewAmount(p.GrandTotal),
	}
}

// CustomerView поля заказчика
type CustomerView struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Whatsapp        string `json:"whatsapp"`
	SpecialRequests string `json:"special_requests"`
}

// DraftView черновик бронирования в ответе
type DraftView struct {
	Room     *RoomView           `json:"room"`
	CheckIn  string              `json:"check_in"`
	CheckOut string              `json:"check_out"`
	Guests   int                 `json:"guests"`
	Nights   int                 `json:"nights"`
	Services []SelectedAddOnView `json:"services"`
	Customer CustomerView        `json:"customer"`
}

// NewDraftView собирает представление черновика
func NewDraftView(d *domain.BookingDraft) DraftView {
	view := DraftView{
		CheckIn:  domain.FormatDate(d.CheckIn),
		CheckOut: domain.FormatDate(d.CheckOut),
		Guests:   d.Guests,
		Nights:   d.Nights,
		Services: NewSelectionView(d.Services),
		Customer: CustomerView(d.Customer),
	}
	if d.Room != nil {
		room := NewRoomView(d.Room)
		view.Room = &room
	}
	return view
}

// AvailableRoomView номер из результатов поиска
type AvailableRoomView struct {
	RoomView
	StayTotal      money.Amount `json:"stay_total"`
	AvailableCount int          `json:"available_count"`
	Nights         int          `json:"nights"`
	LowStock       bool         `json:"low_stock"`
}

// NewAvailableRoomView собирает представление результата поиска
func NewAvailableRoomView(r *domain.AvailableRoom) AvailableRoomView {
	room := NewRoomView(&r.Room)
	room.Bookable = r.IsBookable()
	return AvailableRoomView{
		RoomView:       room,
		StayTotal:      money.NewAmount(r.StayTotal),
		AvailableCount: r.AvailableCount,
		Nights:         r.Nights,
		LowStock:       r.IsLowStock(),
	}
}

// NewAvailableRoomViews собирает список результатов поиска
func NewAvailableRoomViews(rooms []domain.AvailableRoom) []AvailableRoomView {
	out := make([]AvailableRoomView, 0, len(rooms))
	for i := range rooms {
		out = append(out, NewAvailableRoomView(&rooms[i]))
	}
	return out
}
