package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/vinodismyname/salesreport/config"
	"github.com/vinodismyname/salesreport/internal/charts"
	"github.com/vinodismyname/salesreport/internal/report"
	"github.com/vinodismyname/salesreport/internal/telemetry"
	"github.com/vinodismyname/salesreport/internal/workbooks"
	"github.com/vinodismyname/salesreport/pkg/apperr"
	"github.com/vinodismyname/salesreport/pkg/version"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var (
		showVersion bool
		noWait      bool
		logLevel    string
	)

	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&noWait, "no-wait", false, "Show all charts without pausing between them")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	if showVersion {
		fmt.Println(version.Version())
		return
	}

	logger := newLogger(logLevel).With().
		Str("service", "salesreport").
		Str("run_id", uuid.NewString()).
		Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	logger.Debug().
		Str("version", version.Version()).
		Bool("no_wait", noWait).
		Msg("report bootstrap configured")

	err := report.Run(ctx, report.Options{
		Path:    config.DefaultWorkbookPath,
		Sheet:   config.DefaultSheet,
		Loader:  workbooks.NewLoader(),
		Display: charts.NewTerminal(noWait),
		Out:     os.Stdout,
		Hooks:   telemetry.NewHooks(logger),
	})
	if err != nil {
		// Operator-facing diagnostics go to stderr so stdout carries only the report.
		fmt.Fprintln(os.Stderr, apperr.Message(err))
		os.Exit(1)
	}
}

// newLogger writes human-readable logs to an interactive stderr and JSON otherwise.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
