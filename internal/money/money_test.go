package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  Item
	}{
		{"zero", 0, Item{0, 0, 0}},
		{"round hundred", 100, Item{100, 20, 120}},
		{"cents", 19.99, Item{19.99, 4, 23.99}},
		{"half-up vat", 0.125, Item{0.13, 0.03, 0.16}},
		{"fractional price", 33.333, Item{33.33, 6.67, 40}},
		{"large", 1234567.89, Item{1234567.89, 246913.58, 1481481.47}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.price))
		})
	}
}

func TestLine_TotalIsPricePlusVAT(t *testing.T) {
	for _, p := range []float64{0.01, 0.05, 1.11, 9.99, 10.005, 250.5, 999.95} {
		it := Line(p)
		assert.Equal(t, Round2(it.Price*0.2), it.VAT, "vat for %v", p)
		assert.Equal(t, Round2(it.Price+it.VAT), it.Total, "total for %v", p)
	}
}

func TestTotals(t *testing.T) {
	items := []Item{Line(100), Line(19.99), Line(0.1)}
	got := Totals(items)

	assert.Equal(t, 120.09, got.Subtotal)
	assert.Equal(t, 24.02, got.VATTotal)
	assert.Equal(t, 144.11, got.Total)
}

func TestTotals_OrderIndependent(t *testing.T) {
	a := []Item{Line(0.1), Line(0.2), Line(0.3), Line(1234.56)}
	b := []Item{a[3], a[1], a[0], a[2]}

	assert.Equal(t, Totals(a), Totals(b))
}

func TestTotals_NoDriftAcrossRepeatedSums(t *testing.T) {
	items := make([]Item, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, Line(0.1))
	}
	got := Totals(items)

	assert.Equal(t, 1.0, got.Subtotal)
	assert.Equal(t, 0.2, got.VATTotal)
	assert.Equal(t, 1.2, got.Total)
}

func TestTotals_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Totals(nil))
}

func TestDetails(t *testing.T) {
	assert.Equal(t, DetailsBlock{Amount: 250, VAT: 50, Total: 300}, Details(250))
	assert.Equal(t, DetailsBlock{Amount: 10.01, VAT: 2, Total: 12.01}, Details(10.01))
}

func TestPayment(t *testing.T) {
	got := Payment(500)

	assert.Equal(t, 500.0, got.Amount)
	assert.Equal(t, 100.0, got.VAT)
	assert.Equal(t, 100.0, got.Tevrikat)
	// amount + vat - tevrikat collapses to amount while both rates match.
	assert.Equal(t, 500.0, got.Total)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, 3.0, Round2(2.999))
	assert.Equal(t, 0.0, Round2(0.004))
}
