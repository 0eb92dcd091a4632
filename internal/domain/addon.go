package domain

// AddOn дополнительная услуга, которую можно купить вместе с номером.
// На проводе и в API называется service.
type AddOn struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          int64   `json:"price"`
	FormattedPrice string  `json:"formatted_price"`
	Category       string  `json:"category"`
	ImageURL       *string `json:"image_url,omitempty"`
	HasQuantity    bool    `json:"has_quantity"`
	MaxQuantity    *int    `json:"max_quantity,omitempty"`
}

// QuantityLimit returns the upper quantity bound and whether one exists.
// Услуга без выбора количества всегда ограничена единицей.
func (a *AddOn) QuantityLimit() (int, bool) {
	if !a.HasQuantity {
		return 1, true
	}
	if a.MaxQuantity != nil && *a.MaxQuantity > 0 {
		return *a.MaxQuantity, true
	}
	return 0, false
}

// SelectedAddOn выбранная услуга с количеством (всегда >= 1)
type SelectedAddOn struct {
	AddOn    AddOn `json:"service"`
	Quantity int   `json:"quantity"`
}

// LineTotal стоимость позиции
func (s SelectedAddOn) LineTotal() int64 {
	return s.AddOn.Price * int64(s.Quantity)
}

// FindAddOn ищет услугу по ID в каталоге
func FindAddOn(catalog []AddOn, id int64) (*AddOn, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}
