package order

import "github.com/shopspring/decimal"

// Line is a resolved cart line ready for pricing: an authoritative unit price
// paired with the requested quantity.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal computes the order subtotal as the sum of unit price times quantity
// over all lines, rounded to 2 decimal places. Ties round half away from zero,
// which for the non-negative amounts this domain produces is round-half-up
// (10.125 becomes 10.13). The computation is pure and deterministic.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		qty := decimal.NewFromInt(int64(l.Quantity))
		sum = sum.Add(l.UnitPrice.Mul(qty))
	}
	return sum.Round(2)
}
