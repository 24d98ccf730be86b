package telemetry

import (
	"time"

	"github.com/rs/zerolog"
)

// Hooks logs report pipeline lifecycle events.
type Hooks struct {
	logger zerolog.Logger
}

// NewHooks constructs a Hooks instance with the provided logger.
func NewHooks(logger zerolog.Logger) *Hooks {
	return &Hooks{logger: logger}
}

// OnRunStart is called before the workbook is opened.
func (h *Hooks) OnRunStart(path, sheet string) {
	h.logger.Info().Str("path", path).Str("sheet", sheet).Msg("report run starting")
}

// OnLoad records the outcome of loading and normalizing the sheet.
func (h *Hooks) OnLoad(records int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error().Dur("duration", duration).Err(err).Msg("load failed")
		return
	}
	h.logger.Info().Int("records", records).Dur("duration", duration).Msg("sheet loaded")
}

// OnChartShown records a chart being displayed and dismissed.
func (h *Hooks) OnChartShown(index int, title string, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error().Int("chart", index).Str("title", title).Dur("duration", duration).Err(err).Msg("chart display error")
		return
	}
	h.logger.Debug().Int("chart", index).Str("title", title).Dur("duration", duration).Msg("chart dismissed")
}

// OnRunEnd records the end of the run.
func (h *Hooks) OnRunEnd(duration time.Duration, err error) {
	if err != nil {
		h.logger.Error().Dur("duration", duration).Err(err).Msg("report run failed")
		return
	}
	h.logger.Info().Dur("duration", duration).Msg("report run completed")
}
