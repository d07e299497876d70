package controller

import (
	"errors"

	"github.com/meghashyamc/gridtimer/logger"
	"github.com/meghashyamc/gridtimer/timer"
)

var (
	RunningControls = timer.Controls{Input: false, Start: false, Stop: true}
	PausedControls  = timer.Controls{Input: false, Start: true, Stop: false}
	IdleControls    = timer.Controls{Input: true, Start: true, Stop: false}
)

// Controller is the command side of the presentation layer: it applies the
// input policy, drives the engine and keeps the scheduler in step with it.
type Controller struct {
	engine         *timer.Engine
	scheduler      *timer.Scheduler
	presenter      timer.Presenter
	defaultMinutes float64
	logger         logger.Logger
}

func New(engine *timer.Engine, scheduler *timer.Scheduler, presenter timer.Presenter, defaultMinutes float64, log logger.Logger) *Controller {
	if defaultMinutes <= 0 {
		defaultMinutes = DefaultMinutes
	}
	return &Controller{
		engine:         engine,
		scheduler:      scheduler,
		presenter:      presenter,
		defaultMinutes: defaultMinutes,
		logger:         log,
	}
}

// Start begins a new countdown from raw entry text, or resumes a paused one
// (in which case raw is ignored). It returns the text the entry should show.
// Unusable input is reported as timer.ErrInvalidDuration and changes nothing.
func (c *Controller) Start(raw string) (string, error) {
	text := raw

	switch c.engine.Status() {
	case timer.StatusIdle, timer.StatusFinished:
		normalized, d, err := NormalizeMinutes(raw, c.defaultMinutes)
		if err != nil {
			c.logger.Warn("ignoring start with invalid duration", "input", raw, "err", err)
			return raw, err
		}
		if err := c.engine.Configure(d); err != nil {
			return raw, err
		}
		text = normalized
		c.logger.Info("countdown configured", "minutes", normalized, "duration", d)
	case timer.StatusPaused:
		c.logger.Info("countdown resumed", "elapsed", c.engine.Elapsed(), "remaining", c.engine.Remaining())
	}

	if err := c.engine.Start(); err != nil {
		return text, err
	}

	c.presenter.SetControlsEnabled(RunningControls)
	return text, c.scheduler.OnStart()
}

// Stop pauses a running countdown. Stopping anything else does nothing.
func (c *Controller) Stop() error {
	if c.engine.Status() != timer.StatusRunning {
		return nil
	}

	c.scheduler.Cancel()
	if err := c.engine.Stop(); err != nil {
		return err
	}

	c.logger.Info("countdown paused", "elapsed", c.engine.Elapsed(), "remaining", c.engine.Remaining())
	c.presenter.SetControlsEnabled(PausedControls)
	return nil
}

// Clear cancels any refresh, resets the engine and empties the grid.
func (c *Controller) Clear() {
	c.scheduler.Cancel()
	c.engine.Clear()

	c.logger.Info("countdown cleared")
	c.presenter.SetFillCount(0)
	c.presenter.SetControlsEnabled(IdleControls)
}

// Toggle starts or resumes when stopped and pauses when running.
func (c *Controller) Toggle(raw string) (string, error) {
	if c.engine.Status() == timer.StatusRunning {
		return raw, c.Stop()
	}
	return c.Start(raw)
}

// Controls returns the enabled state matching the engine's status.
func (c *Controller) Controls() timer.Controls {
	switch c.engine.Status() {
	case timer.StatusRunning:
		return RunningControls
	case timer.StatusPaused:
		return PausedControls
	}
	return IdleControls
}

// IsInputError reports whether err is bad user input rather than a bug.
func IsInputError(err error) bool {
	return errors.Is(err, timer.ErrInvalidDuration)
}
