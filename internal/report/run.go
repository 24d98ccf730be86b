package report

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinodismyname/salesreport/internal/charts"
	"github.com/vinodismyname/salesreport/internal/sales"
	"github.com/vinodismyname/salesreport/internal/stats"
	"github.com/vinodismyname/salesreport/internal/telemetry"
	"github.com/vinodismyname/salesreport/internal/workbooks"
	"github.com/vinodismyname/salesreport/pkg/apperr"
)

// Options wires the run's input and outputs.
type Options struct {
	Path    string
	Sheet   string
	Loader  *workbooks.Loader
	Display charts.Display
	Out     io.Writer // statistics report
	Hooks   *telemetry.Hooks
	Clock   func() time.Time
}

// Run loads the sheet, prints the statistics report and shows the charts in
// order. The first failure aborts the run.
func Run(ctx context.Context, opts Options) (err error) {
	if opts.Loader == nil {
		opts.Loader = workbooks.NewLoader()
	}
	if opts.Hooks == nil {
		opts.Hooks = telemetry.NewHooks(*zerolog.Ctx(ctx))
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Display == nil || opts.Out == nil {
		return apperr.Wrapf(apperr.Internal, "report: display and output are required")
	}

	start := opts.Clock()
	opts.Hooks.OnRunStart(opts.Path, opts.Sheet)
	defer func() { opts.Hooks.OnRunEnd(opts.Clock().Sub(start), err) }()

	t, err := load(ctx, opts)
	if err != nil {
		return err
	}

	r, err := Build(ctx, t)
	if err != nil {
		return err
	}

	if err := stats.WriteReport(opts.Out, r.Summary); err != nil {
		return apperr.Wrap(apperr.RenderFailed, err)
	}

	cs := r.Charts()
	for i, c := range cs[:seasonalityIndex] {
		if err := show(ctx, opts, i, c); err != nil {
			return err
		}
	}

	if err := r.AddMonthly(t); err != nil {
		return err
	}
	cs = r.Charts()
	for i, c := range cs[seasonalityIndex:] {
		if err := show(ctx, opts, seasonalityIndex+i, c); err != nil {
			return err
		}
	}
	return nil
}

func show(ctx context.Context, opts Options, i int, c charts.Chart) error {
	shownAt := opts.Clock()
	err := opts.Display.Show(ctx, c)
	opts.Hooks.OnChartShown(i+1, c.Heading(), opts.Clock().Sub(shownAt), err)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.Canceled, err)
	}
	return apperr.Wrap(apperr.RenderFailed, err)
}

func load(ctx context.Context, opts Options) (*sales.Table, error) {
	loadStart := opts.Clock()
	sh, err := opts.Loader.Load(ctx, opts.Path, opts.Sheet)
	if err != nil {
		opts.Hooks.OnLoad(0, opts.Clock().Sub(loadStart), err)
		return nil, err
	}
	t, err := sales.Normalize(sh)
	if err != nil {
		opts.Hooks.OnLoad(0, opts.Clock().Sub(loadStart), err)
		return nil, err
	}
	opts.Hooks.OnLoad(len(t.Records), opts.Clock().Sub(loadStart), nil)
	return t, nil
}
