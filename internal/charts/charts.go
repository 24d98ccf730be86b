// Package charts draws bar and line charts as text for terminal display.
package charts

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vinodismyname/salesreport/config"
)

// Orientation selects which axis carries the categories of a bar chart.
type Orientation int

const (
	// Vertical maps categories to the x-axis and values to the y-axis.
	Vertical Orientation = iota
	// Horizontal maps categories to the y-axis and values to the x-axis.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Chart is anything a Display can show.
type Chart interface {
	Heading() string
	Render(w io.Writer, opts RenderOptions) error
}

// RenderOptions controls chart geometry and styling.
type RenderOptions struct {
	Color      bool
	Width      int // cells for the longest horizontal bar or the line plot
	Height     int // rows for the tallest vertical bar
	LineHeight int // rows for the line plot
}

// DefaultRenderOptions returns the configured geometry without colour.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:      config.DefaultBarWidth,
		Height:     config.DefaultVerticalRows,
		LineHeight: config.DefaultLineHeight,
	}
}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Width <= 0 {
		o.Width = config.DefaultBarWidth
	}
	if o.Height <= 0 {
		o.Height = config.DefaultVerticalRows
	}
	if o.LineHeight <= 0 {
		o.LineHeight = config.DefaultLineHeight
	}
	return o
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

func writeTitle(b *strings.Builder, title string, color bool) {
	if color {
		fmt.Fprintf(b, "%s%s%s\n\n", ansiBold, title, ansiReset)
		return
	}
	fmt.Fprintf(b, "%s\n%s\n\n", title, strings.Repeat("-", utf8.RuneCountInString(title)))
}

func paint(s string, code int, color bool) string {
	if !color || s == "" {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s%s", code, s, ansiReset)
}

func width(s string) int { return utf8.RuneCountInString(s) }

func center(s string, w int) string {
	n := width(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
