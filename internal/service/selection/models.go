package selection

import "github.com/m04kA/villa-booking-front/internal/domain"

// View состояние редактора услуг для ответа
type View struct {
	Draft              domain.BookingDraft
	Catalog            []domain.AddOn
	Working            domain.Selection
	Totals             domain.PriceBreakdown
	CatalogUnavailable bool
}

func newView(sess *domain.Session, catalogUnavailable bool) *View {
	preview := sess.Draft.Clone()
	preview.Services = sess.Editor.Working.Clone()

	return &View{
		Draft:              sess.Draft,
		Catalog:            sess.Editor.Catalog,
		Working:            sess.Editor.Working,
		Totals:             domain.ComputeTotals(preview),
		CatalogUnavailable: catalogUnavailable,
	}
}
