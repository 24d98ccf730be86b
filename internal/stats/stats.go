// Package stats computes and prints the descriptive statistics of the sale
// value column.
package stats

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/vinodismyname/salesreport/internal/sales"
)

// Summary holds total, mean, median and the mode set of a value column.
// Mean and Median are meaningful only when Count > 0.
type Summary struct {
	Count  int
	Total  decimal.Decimal
	Mean   decimal.Decimal
	Median decimal.Decimal
	Modes  []decimal.Decimal
}

// FromTable summarizes the table's value column.
func FromTable(t *sales.Table) Summary {
	return Compute(t.Values())
}

// Compute summarizes values. Every value reaching the highest frequency is a
// mode, so an all-distinct column yields every value; modes are ascending and
// empty only when values is empty.
func Compute(values []decimal.Decimal) Summary {
	s := Summary{Count: len(values), Total: decimal.Zero}
	if len(values) == 0 {
		return s
	}

	sorted := append([]decimal.Decimal(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	s.Total = decimal.Sum(decimal.Zero, sorted...)
	s.Mean = s.Total.Div(decimal.NewFromInt(int64(len(sorted))))

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		s.Median = sorted[mid]
	} else {
		s.Median = sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
	}

	s.Modes = modes(sorted)
	return s
}

// modes expects ascending input; equal decimals with different scales
// (1.5 and 1.50) count as the same value.
func modes(sorted []decimal.Decimal) []decimal.Decimal {
	type run struct {
		value decimal.Decimal
		n     int
	}
	var runs []run
	for _, v := range sorted {
		if len(runs) > 0 && runs[len(runs)-1].value.Equal(v) {
			runs[len(runs)-1].n++
			continue
		}
		runs = append(runs, run{value: v, n: 1})
	}
	top := lo.MaxBy(runs, func(a, b run) bool { return a.n > b.n })
	return lo.FilterMap(runs, func(r run, _ int) (decimal.Decimal, bool) {
		return r.value, r.n == top.n
	})
}
