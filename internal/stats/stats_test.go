package stats

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func decs(vals ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vals))
	for i, v := range vals {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

func strs(ds []decimal.Decimal) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

func TestCompute_SingleRecord(t *testing.T) {
	s := Compute(decs("42.50"))
	require.Equal(t, 1, s.Count)
	require.True(t, s.Total.Equal(decimal.RequireFromString("42.5")))
	require.True(t, s.Mean.Equal(s.Total))
	require.True(t, s.Median.Equal(s.Total))
	require.Equal(t, []string{"42.5"}, strs(s.Modes))
}

func TestCompute_TwoStoresScenario(t *testing.T) {
	s := Compute(decs("100.00", "300.00", "100.00", "300.00"))
	require.Equal(t, "800", s.Total.String())
	require.Equal(t, "200", s.Mean.String())
	require.Equal(t, "200", s.Median.String())
	// Both values occur twice.
	require.Equal(t, []string{"100", "300"}, strs(s.Modes))
}

func TestCompute_AllDistinctEveryValueIsAMode(t *testing.T) {
	s := Compute(decs("3", "1", "2"))
	require.Equal(t, "2", s.Median.String())
	require.Equal(t, []string{"1", "2", "3"}, strs(s.Modes))
}

func TestCompute_SingleMode(t *testing.T) {
	s := Compute(decs("5", "7", "5", "9", "1.50", "1.5"))
	// 1.5 and 5 both appear twice; scale differences do not split values.
	require.Equal(t, []string{"1.5", "5"}, strs(s.Modes))

	s = Compute(decs("5", "7", "5"))
	require.Equal(t, []string{"5"}, strs(s.Modes))
	require.Equal(t, "5", s.Median.String())
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)
	require.Equal(t, 0, s.Count)
	require.True(t, s.Total.IsZero())
	require.Empty(t, s.Modes)
}

func TestCompute_DoesNotReorderInput(t *testing.T) {
	in := decs("3", "1", "2")
	Compute(in)
	require.Equal(t, []string{"3", "1", "2"}, strs(in))
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, Compute(decs("1000", "3000", "1000", "3000"))))

	rule := "======================================================================\n"
	want := rule +
		"FATURAMENTO TOTAL DA REDE: R$ 8,000.00\n" +
		rule +
		"Média Geral de Vendas: R$ 2,000.00\n" +
		"Mediana Geral de Vendas: R$ 2,000.00\n" +
		"Moda 1: R$ 1,000.00\n" +
		"Moda 2: R$ 3,000.00\n" +
		rule
	require.Equal(t, want, buf.String())
}

func TestWriteReport_NoMode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, Compute(nil)))
	out := buf.String()
	require.Contains(t, out, "FATURAMENTO TOTAL DA REDE: R$ 0.00\n")
	require.Contains(t, out, "Média Geral de Vendas: R$ nan\n")
	require.Contains(t, out, "Moda: Nenhuma\n")
}
