package analytics

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Holding is one user investment reduced to what the aggregations need.
type Holding struct {
	InvestmentID uint
	FundID       uint
	FundName     string
	RiskLevel    string
	Amount       decimal.Decimal
	ReturnsPct   decimal.Decimal
}

// Returns is the absolute gain implied by the returns percentage.
func (h Holding) Returns() decimal.Decimal {
	return h.Amount.Mul(h.ReturnsPct).Div(hundred)
}

// CurrentValue is the amount grown by the returns percentage.
func (h Holding) CurrentValue() decimal.Decimal {
	return h.Amount.Add(h.Returns())
}

// Slice is a labelled percentage of a fund: a sector, a stock or a market-cap bucket.
type Slice struct {
	Label      string
	Percentage decimal.Decimal
}

// SectorShare is one row of a portfolio sector allocation.
type SectorShare struct {
	Sector     string
	Value      decimal.Decimal
	Percentage decimal.Decimal
}

// Allocation is the portfolio's value split across sectors.
type Allocation struct {
	TotalValue decimal.Decimal
	Sectors    []SectorShare
}

// ComputeSectorAllocation spreads each holding's current value over its
// fund's sector percentages and reports every sector as a share of the total
// portfolio value. Sectors are sorted by percentage descending, name ascending
// on ties. A portfolio with no positive value yields no sectors.
func ComputeSectorAllocation(holdings []Holding, sectorsByFund map[uint][]Slice) Allocation {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.CurrentValue())
	}

	alloc := Allocation{TotalValue: total, Sectors: []SectorShare{}}
	if !total.IsPositive() {
		return alloc
	}

	values := make(map[string]decimal.Decimal)
	var order []string
	for _, h := range holdings {
		value := h.CurrentValue()
		for _, s := range sectorsByFund[h.FundID] {
			prev, ok := values[s.Label]
			if !ok {
				order = append(order, s.Label)
			}
			values[s.Label] = prev.Add(value.Mul(s.Percentage).Div(hundred))
		}
	}

	for _, label := range order {
		v := values[label]
		alloc.Sectors = append(alloc.Sectors, SectorShare{
			Sector:     label,
			Value:      v,
			Percentage: v.Mul(hundred).Div(total),
		})
	}
	slices.SortStableFunc(alloc.Sectors, func(a, b SectorShare) int {
		if c := b.Percentage.Cmp(a.Percentage); c != 0 {
			return c
		}
		return strings.Compare(a.Sector, b.Sector)
	})
	return alloc
}

// SectorComparison is one sector row of a two-fund comparison. A zero
// percentage means the fund has no allocation to the sector.
type SectorComparison struct {
	Sector string
	Fund1  decimal.Decimal
	Fund2  decimal.Decimal
}

// CompareFundSectors unions the sectors of two funds. Sectors appear in the
// order first seen, fund1's first.
func CompareFundSectors(fund1, fund2 []Slice) []SectorComparison {
	index := make(map[string]int)
	out := []SectorComparison{}
	row := func(label string) *SectorComparison {
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, SectorComparison{Sector: label})
		}
		return &out[i]
	}
	for _, s := range fund1 {
		row(s.Label).Fund1 = s.Percentage
	}
	for _, s := range fund2 {
		row(s.Label).Fund2 = s.Percentage
	}
	return out
}

// Overlap summarizes the stocks two funds hold in common.
type Overlap struct {
	CommonCount int
	Percentage  decimal.Decimal
	Common      []string
}

// StockOverlap computes the weighted overlap of two stock lists: the sum, over
// common stocks, of the smaller of the two fund percentages. Common stocks are
// listed by that weight descending.
func StockOverlap(fund1, fund2 []Slice) Overlap {
	weights := make(map[string]decimal.Decimal, len(fund1))
	for _, s := range fund1 {
		weights[s.Label] = s.Percentage
	}

	type common struct {
		label  string
		weight decimal.Decimal
	}
	var shared []common
	seen := make(map[string]struct{})
	for _, s := range fund2 {
		p1, ok := weights[s.Label]
		if !ok {
			continue
		}
		if _, dup := seen[s.Label]; dup {
			continue
		}
		seen[s.Label] = struct{}{}
		shared = append(shared, common{label: s.Label, weight: decimal.Min(p1, s.Percentage)})
	}
	slices.SortStableFunc(shared, func(a, b common) int {
		if c := b.weight.Cmp(a.weight); c != 0 {
			return c
		}
		return strings.Compare(a.label, b.label)
	})

	ov := Overlap{Percentage: decimal.Zero, Common: []string{}}
	for _, c := range shared {
		ov.Percentage = ov.Percentage.Add(c.weight)
		ov.Common = append(ov.Common, c.label)
	}
	ov.CommonCount = len(ov.Common)
	return ov
}
