package analytics

import "github.com/shopspring/decimal"

// Totals is the headline summary of a set of holdings.
type Totals struct {
	Invested       decimal.Decimal
	Returns        decimal.Decimal
	Value          decimal.Decimal
	PercentageGain decimal.Decimal
}

// Summarize adds up invested amount and returns across holdings. The
// percentage gain is zero when nothing is invested.
func Summarize(holdings []Holding) Totals {
	t := Totals{Invested: decimal.Zero, Returns: decimal.Zero, PercentageGain: decimal.Zero}
	for _, h := range holdings {
		t.Invested = t.Invested.Add(h.Amount)
		t.Returns = t.Returns.Add(h.Returns())
	}
	t.Value = t.Invested.Add(t.Returns)
	if t.Invested.IsPositive() {
		t.PercentageGain = t.Returns.Mul(hundred).Div(t.Invested)
	}
	return t
}
