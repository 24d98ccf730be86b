package charts

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Display shows charts one at a time.
type Display interface {
	Show(ctx context.Context, c Chart) error
}

// Terminal renders charts to Out. With Wait set, Show blocks after each chart
// until a line is read from In, so the operator dismisses charts in turn.
type Terminal struct {
	Out     io.Writer
	In      io.Reader
	Wait    bool
	Options RenderOptions

	reader *bufio.Reader
}

// NewTerminal builds a Terminal over the process's stdio. Waiting and colour
// are enabled only when the respective stream is a terminal.
func NewTerminal(noWait bool) *Terminal {
	opts := DefaultRenderOptions()
	opts.Color = isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == ""
	return &Terminal{
		Out:     os.Stdout,
		In:      os.Stdin,
		Wait:    !noWait && isTerminal(os.Stdin),
		Options: opts,
	}
}

// Show renders c and, when waiting, blocks until dismissal or ctx is done.
func (t *Terminal) Show(ctx context.Context, c Chart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.Render(t.Out, t.Options); err != nil {
		return fmt.Errorf("charts: render %q: %w", c.Heading(), err)
	}
	if !t.Wait {
		_, err := io.WriteString(t.Out, "\n")
		return err
	}
	if _, err := io.WriteString(t.Out, "\n[Enter] para continuar "); err != nil {
		return err
	}
	return t.waitDismiss(ctx)
}

func (t *Terminal) waitDismiss(ctx context.Context) error {
	if t.reader == nil {
		t.reader = bufio.NewReader(t.In)
	}
	done := make(chan error, 1)
	go func() {
		_, err := t.reader.ReadString('\n')
		done <- err
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		// A closed input dismisses the chart like Enter does.
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("charts: wait for dismissal: %w", err)
		}
		return nil
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
