// Package money derives VAT and totals for invoice amounts.
//
// All arithmetic runs on decimal values and every result is rounded half-up
// to two places, so repeated recomputation from the same inputs always yields
// the same float64.
package money

import (
	"github.com/shopspring/decimal"
)

var (
	// VATRate is the fixed value-added tax rate (20%).
	VATRate = decimal.NewFromFloat(0.20)
	// TevrikatRate is the withheld-tax rate used by the payment block.
	// It currently equals VATRate.
	TevrikatRate = decimal.NewFromFloat(0.20)
)

const places = 2

// Item is a priced line with its derived VAT and gross total.
type Item struct {
	Price float64
	VAT   float64
	Total float64
}

// Summary aggregates a sequence of line items.
type Summary struct {
	Subtotal float64
	VATTotal float64
	Total    float64
}

// DetailsBlock is the secondary "invoice details" amount block.
type DetailsBlock struct {
	Amount float64
	VAT    float64
	Total  float64
}

// PaymentBlock is the payment information amount block.
type PaymentBlock struct {
	Amount   float64
	VAT      float64
	Tevrikat float64
	Total    float64
}

// Round2 rounds v half-up to two decimal places.
func Round2(v float64) float64 {
	return round(decimal.NewFromFloat(v)).InexactFloat64()
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(places)
}

// Line computes vat = round2(price*0.20) and total = round2(price+vat).
func Line(price float64) Item {
	p := round(decimal.NewFromFloat(price))
	vat := round(p.Mul(VATRate))
	return Item{
		Price: p.InexactFloat64(),
		VAT:   vat.InexactFloat64(),
		Total: round(p.Add(vat)).InexactFloat64(),
	}
}

// Totals sums the prices, VAT and totals of items. The result does not
// depend on item order.
func Totals(items []Item) Summary {
	subtotal := decimal.Zero
	vatTotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.Price))
		vatTotal = vatTotal.Add(decimal.NewFromFloat(it.VAT))
	}
	subtotal = round(subtotal)
	vatTotal = round(vatTotal)
	return Summary{
		Subtotal: subtotal.InexactFloat64(),
		VATTotal: vatTotal.InexactFloat64(),
		Total:    round(subtotal.Add(vatTotal)).InexactFloat64(),
	}
}

// Details computes the invoice-details block for amount.
func Details(amount float64) DetailsBlock {
	a := round(decimal.NewFromFloat(amount))
	vat := round(a.Mul(VATRate))
	return DetailsBlock{
		Amount: a.InexactFloat64(),
		VAT:    vat.InexactFloat64(),
		Total:  round(a.Add(vat)).InexactFloat64(),
	}
}

// Payment computes the payment block. Total is amount + vat - tevrikat,
// which equals amount while both rates are equal.
func Payment(amount float64) PaymentBlock {
	a := round(decimal.NewFromFloat(amount))
	vat := round(a.Mul(VATRate))
	tevrikat := round(a.Mul(TevrikatRate))
	return PaymentBlock{
		Amount:   a.InexactFloat64(),
		VAT:      vat.InexactFloat64(),
		Tevrikat: tevrikat.InexactFloat64(),
		Total:    round(a.Add(vat).Sub(tevrikat)).InexactFloat64(),
	}
}
