package sales

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/vinodismyname/salesreport/config"
	"github.com/vinodismyname/salesreport/pkg/apperr"
)

// Aggregate is one group of a group-by over the value column.
type Aggregate struct {
	Label string
	Value decimal.Decimal
	Count int
}

// MonthTotal is the summed value of one calendar month.
type MonthTotal struct {
	Month time.Time
	Value decimal.Decimal
}

// Label renders the month as MM/YYYY.
func (m MonthTotal) Label() string { return m.Month.Format(config.MonthLayout) }

// Key selects the grouping dimension of a record.
type Key func(Record) string

// Grouping dimensions.
var (
	ByStore   Key = func(r Record) string { return r.StoreID }
	ByProduct Key = func(r Record) string { return r.Product }
	ByCity    Key = func(r Record) string { return r.City }
)

// SumBy totals the value column per key, in natural key order.
func SumBy(t *Table, key Key) []Aggregate {
	return groupBy(t, key, func(sum decimal.Decimal, _ int) decimal.Decimal { return sum })
}

// MeanBy averages the value column per key, in natural key order.
func MeanBy(t *Table, key Key) []Aggregate {
	return groupBy(t, key, func(sum decimal.Decimal, n int) decimal.Decimal {
		return sum.Div(decimal.NewFromInt(int64(n)))
	})
}

func groupBy(t *Table, key Key, reduce func(sum decimal.Decimal, n int) decimal.Decimal) []Aggregate {
	groups := lo.GroupBy(t.Records, func(r Record) string { return key(r) })
	keys := lo.Keys(groups)
	sort.Slice(keys, func(i, j int) bool { return naturalLess(keys[i], keys[j]) })

	out := make([]Aggregate, 0, len(keys))
	for _, k := range keys {
		recs := groups[k]
		sum := decimal.Zero
		for _, r := range recs {
			sum = sum.Add(r.Value)
		}
		out = append(out, Aggregate{Label: k, Value: reduce(sum, len(recs)), Count: len(recs)})
	}
	return out
}

// SortDescending orders aggregates by value, largest first. Ties keep their
// current relative order.
func SortDescending(aggs []Aggregate) []Aggregate {
	sort.SliceStable(aggs, func(i, j int) bool { return aggs[i].Value.GreaterThan(aggs[j].Value) })
	return aggs
}

// MonthlyTotals sums the value column per calendar month in chronological
// order. The table's months must have been parsed.
func MonthlyTotals(t *Table) ([]MonthTotal, error) {
	if !t.monthsParsed {
		return nil, apperr.Wrap(apperr.AnalysisFailed, ErrMonthsNotParsed)
	}
	sums := map[time.Time]decimal.Decimal{}
	for _, r := range t.Records {
		sums[r.Month] = sums[r.Month].Add(r.Value)
	}
	out := make([]MonthTotal, 0, len(sums))
	for m, v := range sums {
		out = append(out, MonthTotal{Month: m, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out, nil
}

// naturalLess orders numeric keys numerically ahead of text keys, and text
// keys lexically. Only plain decimal digits count as numeric.
func naturalLess(a, b string) bool {
	da, okA := numericKey(a)
	db, okB := numericKey(b)
	switch {
	case okA && okB:
		if c := da.Cmp(db); c != 0 {
			return c < 0
		}
		return a < b
	case okA:
		return true
	case okB:
		return false
	}
	return a < b
}

// numericKey parses keys such as "7" or "10.5"; signs, exponents, NaN and
// Inf are text.
func numericKey(s string) (decimal.Decimal, bool) {
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return decimal.Decimal{}, false
		}
	}
	if digits == 0 || dots > 1 {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	return d, err == nil
}
