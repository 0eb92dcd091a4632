package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func intPtr(v int) *int { return &v }

func TestComputeTotals_NoRoom(t *testing.T) {
	draft := NewDraft()
	draft.Services = Selection{{AddOn: AddOn{ID: 1, Price: 100}, Quantity: 2}}

	assert.Equal(t, PriceBreakdown{}, ComputeTotals(draft))
}

func TestComputeTotals_RoomOnly(t *testing.T) {
	draft := NewDraft()
	draft.Room = &Room{ID: 1, PricePerNight: 2_800_000}
	draft.CheckIn = mustDate(t, "2026-11-01")
	draft.CheckOut = mustDate(t, "2026-11-04")

	totals := ComputeTotals(draft)

	assert.Equal(t, int64(8_400_000), totals.RoomTotal)
	assert.Equal(t, int64(0), totals.ServicesTotal)
	assert.Equal(t, int64(840_000), totals.ServiceFee)
	assert.Equal(t, int64(9_240_000), totals.GrandTotal)
	assert.Equal(t, 3, totals.Nights)
}

func TestComputeTotals_WithServices(t *testing.T) {
	draft := NewDraft()
	draft.Room = &Room{ID: 1, PricePerNight: 2_800_000}
	draft.CheckIn = mustDate(t, "2026-11-01")
	draft.CheckOut = mustDate(t, "2026-11-04")
	draft.Services = Selection{
		{AddOn: AddOn{ID: 1, Price: 150_000, HasQuantity: true}, Quantity: 2},
		{AddOn: AddOn{ID: 2, Price: 500_000}, Quantity: 1},
	}

	totals := ComputeTotals(draft)

	assert.Equal(t, int64(8_400_000), totals.RoomTotal)
	assert.Equal(t, int64(800_000), totals.ServicesTotal)
	assert.Equal(t, int64(9_200_000), totals.Subtotal)
	assert.Equal(t, int64(920_000), totals.ServiceFee)
	assert.Equal(t, int64(10_120_000), totals.GrandTotal)
}

func TestComputeTotals_UsesStoredNightsWithoutDates(t *testing.T) {
	draft := NewDraft()
	draft.Room = &Room{ID: 1, PricePerNight: 1_000}
	draft.Nights = 4

	assert.Equal(t, int64(4_000), ComputeTotals(draft).RoomTotal)

	draft.Nights = 0
	assert.Equal(t, int64(1_000), ComputeTotals(draft).RoomTotal, "zero nights falls back to default")
}

func TestComputeTotals_DatesOverrideStoredNights(t *testing.T) {
	draft := NewDraft()
	draft.Room = &Room{ID: 1, PricePerNight: 1_000}
	draft.Nights = 7
	draft.CheckIn = mustDate(t, "2026-11-01")
	draft.CheckOut = mustDate(t, "2026-11-03")

	assert.Equal(t, int64(2_000), ComputeTotals(draft).RoomTotal)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	draft := NewDraft()
	draft.Room = &Room{ID: 1, PricePerNight: 1_234_567}
	draft.Nights = 3
	draft.Services = Selection{{AddOn: AddOn{ID: 9, Price: 33_333}, Quantity: 1}}

	assert.Equal(t, ComputeTotals(draft), ComputeTotals(draft))
}

func TestComputeTotals_GrandTotalProperty(t *testing.T) {
	for price := int64(1); price < 3_000; price += 7 {
		for nights := 1; nights <= 5; nights++ {
			draft := NewDraft()
			draft.Room = &Room{ID: 1, PricePerNight: price}
			draft.Nights = nights

			totals := ComputeTotals(draft)
			subtotal := price * int64(nights)
			// round-half-up от subtotal*1.1
			expected := (subtotal*110 + 50) / 100

			assert.Equal(t, expected, totals.GrandTotal, "price=%d nights=%d", price, nights)
		}
	}
}

func TestServiceFee_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     int64
	}{
		{0, 0},
		{4, 0},
		{5, 1},
		{14, 1},
		{15, 2},
		{25, 3},
		{8_400_000, 840_000},
		{-10, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ServiceFee(tt.subtotal), "subtotal=%d", tt.subtotal)
	}
}
