package booking_services

import (
	"github.com/m04kA/villa-booking-front/internal/api/handlers"
	"github.com/m04kA/villa-booking-front/internal/service/selection"
)

// CatalogItemResponse услуга каталога с текущим выбором
type CatalogItemResponse struct {
	handlers.AddOnView
	Selected     bool `json:"selected"`
	Quantity     int  `json:"quantity"`
	CanIncrement bool `json:"can_increment"`
	CanDecrement bool `json:"can_decrement"`
}

// ServicesResponse состояние шага выбора услуг
type ServicesResponse struct {
	Draft              handlers.DraftView           `json:"draft"`
	Catalog            []CatalogItemResponse        `json:"catalog"`
	Selected           []handlers.SelectedAddOnView `json:"selected"`
	Totals             handlers.TotalsView          `json:"totals"`
	CatalogUnavailable bool                         `json:"catalog_unavailable"`
	Message            string                       `json:"message,omitempty"`
}

// FromView конвертирует состояние редактора в HTTP модель
func FromView(v *selection.View) ServicesResponse {
	catalog := make([]CatalogItemResponse, 0, len(v.Catalog))
	for i := range v.Catalog {
		addOn := &v.Catalog[i]
		qty := v.Working.Quantity(addOn.ID)
		limit, bounded := addOn.QuantityLimit()
		catalog = append(catalog, CatalogItemResponse{
			AddOnView:    handlers.NewAddOnView(addOn),
			Selected:     qty > 0,
			Quantity:     qty,
			CanIncrement: qty > 0 && addOn.HasQuantity && (!bounded || qty < limit),
			CanDecrement: qty > 1,
		})
	}

	return ServicesResponse{
		Draft:              handlers.NewDraftView(&v.Draft),
		Catalog:            catalog,
		Selected:           handlers.NewSelectionView(v.Working),
		Totals:             handlers.NewTotalsView(v.Totals),
		CatalogUnavailable: v.CatalogUnavailable,
	}
}
