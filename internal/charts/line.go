package charts

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Line is an ordered series plotted as a line, e.g. a time series.
type Line struct {
	Title  string
	XLabel string
	YLabel string
	Color  string
	Labels []string
	Values []float64
}

// Heading returns the chart title.
func (c Line) Heading() string { return c.Title }

// Render draws the series with its x labels listed in order below the plot.
func (c Line) Render(w io.Writer, opts RenderOptions) error {
	if len(c.Labels) != len(c.Values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrShapeMismatch, len(c.Labels), len(c.Values))
	}
	opts = opts.withDefaults()

	var b strings.Builder
	writeTitle(&b, c.Title, opts.Color)
	if len(c.Values) == 0 {
		b.WriteString("(sem dados)\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	plotOpts := []asciigraph.Option{
		asciigraph.Height(opts.LineHeight),
		asciigraph.Precision(2),
	}
	if len(c.Values) < opts.Width {
		plotOpts = append(plotOpts, asciigraph.Width(opts.Width))
	}
	if c.YLabel != "" {
		plotOpts = append(plotOpts, asciigraph.Caption(c.YLabel))
	}
	if opts.Color {
		plotOpts = append(plotOpts, asciigraph.SeriesColors(asciigraph.AnsiColor(colorAt(Palette(c.Color), 0))))
	}
	b.WriteString(asciigraph.Plot(c.Values, plotOpts...))
	b.WriteString("\n\n")

	if c.XLabel != "" {
		fmt.Fprintf(&b, "%s: ", c.XLabel)
	}
	b.WriteString(strings.Join(c.Labels, "  "))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
