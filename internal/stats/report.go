package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vinodismyname/salesreport/config"
	"github.com/vinodismyname/salesreport/pkg/money"
)

// WriteReport prints the fixed-width statistics report.
func WriteReport(w io.Writer, s Summary) error {
	rule := strings.Repeat("=", config.DefaultReportRuleLen)

	var b strings.Builder
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "FATURAMENTO TOTAL DA REDE: %s\n", money.Format(s.Total))
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Média Geral de Vendas: %s\n", formatOrNaN(s, s.Mean))
	fmt.Fprintf(&b, "Mediana Geral de Vendas: %s\n", formatOrNaN(s, s.Median))
	if len(s.Modes) == 0 {
		fmt.Fprintln(&b, "Moda: Nenhuma")
	}
	for i, m := range s.Modes {
		fmt.Fprintf(&b, "Moda %d: %s\n", i+1, money.Format(m))
	}
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(w, b.String())
	return err
}

func formatOrNaN(s Summary, d decimal.Decimal) string {
	if s.Count == 0 {
		return money.FormatFloat(math.NaN())
	}
	return money.Format(d)
}
