package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/vinodismyname/salesreport/pkg/money"
)

// ErrShapeMismatch indicates labels and values differ in length.
var ErrShapeMismatch = errors.New("charts: labels and values differ in length")

const (
	barCell      = "█"
	colBarWidth  = 3
	colGap       = 2
	hAxis, vAxis = "─", "│"
	axisCorner   = "└"
)

// Bar is a categorical bar chart. Values are plotted against Labels
// position by position; NaN values draw no bar.
type Bar struct {
	Title       string
	XLabel      string
	YLabel      string
	Palette     string
	Labels      []string
	Values      []float64
	Orientation Orientation
	Annotate    bool
}

// Heading returns the chart title.
func (c Bar) Heading() string { return c.Title }

// Render draws the chart to w.
func (c Bar) Render(w io.Writer, opts RenderOptions) error {
	if len(c.Labels) != len(c.Values) {
		return fmt.Errorf("%w: %d labels, %d values", ErrShapeMismatch, len(c.Labels), len(c.Values))
	}
	opts = opts.withDefaults()

	var b strings.Builder
	writeTitle(&b, c.Title, opts.Color)
	if len(c.Values) == 0 {
		b.WriteString("(sem dados)\n")
	} else if c.Orientation == Horizontal {
		c.renderHorizontal(&b, opts)
	} else {
		c.renderVertical(&b, opts)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (c Bar) annotation(i int) string {
	if !c.Annotate {
		return ""
	}
	return money.FormatFloat(c.Values[i])
}

// renderHorizontal draws one row per category, bars growing to the right
// with the annotation at each bar's end.
func (c Bar) renderHorizontal(b *strings.Builder, opts RenderOptions) {
	pal := Palette(c.Palette)
	labelW := width(c.YLabel)
	for _, l := range c.Labels {
		labelW = max(labelW, width(l))
	}
	lengths := scale(c.Values, opts.Width)

	if c.YLabel != "" {
		fmt.Fprintf(b, "%-*s\n", labelW, c.YLabel)
	}
	for i, l := range c.Labels {
		bar := paint(strings.Repeat(barCell, lengths[i]), colorAt(pal, i), opts.Color)
		line := fmt.Sprintf("%-*s %s%s", labelW, l, vAxis, bar)
		if a := c.annotation(i); a != "" {
			line += " " + a
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}
	fmt.Fprintf(b, "%s %s%s\n", strings.Repeat(" ", labelW), axisCorner, strings.Repeat(hAxis, opts.Width))
	if c.XLabel != "" {
		fmt.Fprintf(b, "%s  %s\n", strings.Repeat(" ", labelW), center(c.XLabel, opts.Width))
	}
}

// renderVertical draws one column per category, bars growing upward with
// the annotation on the row above each bar.
func (c Bar) renderVertical(b *strings.Builder, opts RenderOptions) {
	pal := Palette(c.Palette)
	colW := colBarWidth
	for i, l := range c.Labels {
		colW = max(colW, width(l), width(c.annotation(i)))
	}
	colW += colGap
	heights := scale(c.Values, opts.Height)
	plotW := colW * len(c.Labels)

	if c.YLabel != "" {
		fmt.Fprintf(b, "%s\n", c.YLabel)
	}
	// One extra row above the tallest bar holds its annotation.
	for row := opts.Height + 1; row >= 1; row-- {
		var line strings.Builder
		line.WriteString(vAxis)
		for i := range c.Labels {
			switch {
			case heights[i] >= row:
				cell := center(strings.Repeat(barCell, colBarWidth), colW)
				bar := strings.Repeat(barCell, colBarWidth)
				line.WriteString(strings.Replace(cell, bar, paint(bar, colorAt(pal, i), opts.Color), 1))
			case c.Annotate && heights[i]+1 == row:
				line.WriteString(center(c.annotation(i), colW))
			default:
				line.WriteString(strings.Repeat(" ", colW))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " ") + "\n")
	}
	fmt.Fprintf(b, "%s%s\n", axisCorner, strings.Repeat(hAxis, plotW))

	var labels strings.Builder
	labels.WriteString(" ")
	for _, l := range c.Labels {
		labels.WriteString(center(l, colW))
	}
	b.WriteString(strings.TrimRight(labels.String(), " ") + "\n")
	if c.XLabel != "" {
		b.WriteString(strings.TrimRight(" "+center(c.XLabel, plotW), " ") + "\n")
	}
}

// scale maps values onto 0..cells proportionally to the largest value.
// Positive values never collapse to zero cells; NaN and non-positive values
// draw nothing.
func scale(values []float64, cells int) []int {
	top := 0.0
	for _, v := range values {
		if !math.IsNaN(v) && v > top {
			top = v
		}
	}
	out := make([]int, len(values))
	if top == 0 {
		return out
	}
	for i, v := range values {
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		out[i] = max(1, int(math.Round(v/top*float64(cells))))
	}
	return out
}
