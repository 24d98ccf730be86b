// Package report assembles the fixed sales analysis: one statistics summary
// and five charts in a fixed order.
package report

import (
	"context"
	"errors"
	"math"
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vinodismyname/salesreport/config"
	"github.com/vinodismyname/salesreport/internal/charts"
	"github.com/vinodismyname/salesreport/internal/sales"
	"github.com/vinodismyname/salesreport/internal/stats"
	"github.com/vinodismyname/salesreport/pkg/apperr"
)

// Report holds every dataset the charts are drawn from.
type Report struct {
	Summary   stats.Summary
	ByStore   []sales.Aggregate // total per store, descending
	ByProduct []sales.Aggregate // mean per product, descending
	ByCity    []sales.Aggregate // mean per city, descending
	Monthly   []sales.MonthTotal
}

// prepareTimeout bounds dataset preparation in Build.
var prepareTimeout = config.DefaultPrepareTimeout

// seasonalityIndex is the position of the monthly chart in Charts. Months are
// parsed only when that chart is due.
const seasonalityIndex = 3

// Build computes the summary and the store, product and city datasets. They
// are independent reads of t and are prepared concurrently. Monthly totals
// need the month column parsed and are added by AddMonthly.
func Build(ctx context.Context, t *sales.Table) (*Report, error) {
	ctx, cancel := context.WithTimeout(ctx, prepareTimeout)
	defer cancel()

	r := &Report{}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.DefaultPrepareWorkers)

	g.Go(func() error {
		r.Summary = stats.FromTable(t)
		return nil
	})
	g.Go(func() error {
		r.ByStore = sales.SortDescending(sales.SumBy(t, sales.ByStore))
		return gctx.Err()
	})
	g.Go(func() error {
		r.ByProduct = sales.SortDescending(sales.MeanBy(t, sales.ByProduct))
		return gctx.Err()
	})
	g.Go(func() error {
		r.ByCity = sales.SortDescending(sales.MeanBy(t, sales.ByCity))
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperr.Wrap(apperr.Canceled, err)
		}
		return nil, apperr.Wrap(apperr.AnalysisFailed, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Canceled, err)
	}
	return r, nil
}

// AddMonthly parses the month column of t and fills Monthly. A malformed
// month fails the whole column.
func (r *Report) AddMonthly(t *sales.Table) error {
	if err := t.ParseMonths(); err != nil {
		return err
	}
	m, err := sales.MonthlyTotals(t)
	if err != nil {
		return err
	}
	r.Monthly = m
	return nil
}

// Charts returns the five charts in display order.
func (r *Report) Charts() []charts.Chart {
	return []charts.Chart{
		charts.Bar{
			Title:       "Faturamento Total por Loja",
			XLabel:      "ID Loja",
			YLabel:      "Faturamento (R$)",
			Palette:     "Blues_d",
			Labels:      labels(r.ByStore),
			Values:      values(r.ByStore),
			Orientation: charts.Vertical,
			Annotate:    true,
		},
		charts.Bar{
			Title:       "Média de Vendas por Produto",
			XLabel:      "Média de Faturamento (R$)",
			YLabel:      "Produto",
			Palette:     "Greens_d",
			Labels:      labels(r.ByProduct),
			Values:      values(r.ByProduct),
			Orientation: charts.Horizontal,
			Annotate:    true,
		},
		charts.Bar{
			Title:       "Média de Vendas por Cidade",
			XLabel:      "Média de Faturamento (R$)",
			YLabel:      "Cidade",
			Palette:     "Oranges_d",
			Labels:      labels(r.ByCity),
			Values:      values(r.ByCity),
			Orientation: charts.Horizontal,
			Annotate:    true,
		},
		r.seasonality(),
		r.summaryChart(),
	}
}

func (r *Report) seasonality() charts.Line {
	c := charts.Line{
		Title:  "Vendas Totais por Mês/Ano (Sazonalidade)",
		XLabel: "Mês/Ano",
		YLabel: "Faturamento (R$)",
		Color:  "purple",
	}
	for _, m := range r.Monthly {
		c.Labels = append(c.Labels, m.Label())
		c.Values = append(c.Values, m.Value.InexactFloat64())
	}
	return c
}

// summaryChart plots mean, median and every mode. With no mode a single
// "Moda" entry without a value is drawn.
func (r *Report) summaryChart() charts.Bar {
	c := charts.Bar{
		Title:       "Média, Mediana e Moda Geral da Rede",
		XLabel:      "Valor (R$)",
		Palette:     "Set2",
		Orientation: charts.Horizontal,
		Annotate:    true,
	}
	s := r.Summary
	c.Labels = append(c.Labels, "Média", "Mediana")
	c.Values = append(c.Values, floatOrNaN(s, s.Mean), floatOrNaN(s, s.Median))
	if len(s.Modes) == 0 {
		c.Labels = append(c.Labels, "Moda")
		c.Values = append(c.Values, math.NaN())
	}
	for i, m := range s.Modes {
		c.Labels = append(c.Labels, "Moda "+strconv.Itoa(i+1))
		c.Values = append(c.Values, m.InexactFloat64())
	}
	return c
}

func floatOrNaN(s stats.Summary, d decimal.Decimal) float64 {
	if s.Count == 0 {
		return math.NaN()
	}
	return d.InexactFloat64()
}

func labels(aggs []sales.Aggregate) []string {
	return lo.Map(aggs, func(a sales.Aggregate, _ int) string { return a.Label })
}

func values(aggs []sales.Aggregate) []float64 {
	return lo.Map(aggs, func(a sales.Aggregate, _ int) float64 { return a.Value.InexactFloat64() })
}
