package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestHooks_LogLevelsFollowOutcome(t *testing.T) {
	var buf bytes.Buffer
	h := NewHooks(zerolog.New(&buf).Level(zerolog.DebugLevel))

	h.OnRunStart("/data/vendas.xlsx", "Sheet1")
	h.OnLoad(12, time.Millisecond, nil)
	h.OnChartShown(1, "Faturamento Total por Loja", time.Second, nil)
	h.OnRunEnd(2*time.Second, errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)
	require.Equal(t, "info", lines[0]["level"])
	require.Equal(t, "Sheet1", lines[0]["sheet"])
	require.Equal(t, float64(12), lines[1]["records"])
	require.Equal(t, "debug", lines[2]["level"])
	require.Equal(t, "Faturamento Total por Loja", lines[2]["title"])
	require.Equal(t, "error", lines[3]["level"])
	require.Equal(t, "boom", lines[3]["error"])
}

func TestHooks_LoadError(t *testing.T) {
	var buf bytes.Buffer
	h := NewHooks(zerolog.New(&buf))
	h.OnLoad(0, time.Millisecond, errors.New("no sheet"))
	h.OnChartShown(2, "x", 0, errors.New("closed"))

	lines := decodeLines(t, &buf)
	require.Equal(t, "load failed", lines[0]["message"])
	require.Equal(t, "chart display error", lines[1]["message"])
}
