package timer

import (
	"time"

	"github.com/meghashyamc/gridtimer/logger"
)

const DefaultRefreshInterval = 100 * time.Millisecond

// Controls is the enabled state of the collaborator's input widgets.
type Controls struct {
	Input bool
	Start bool
	Stop  bool
}

// FinishedControls re-enables configuration once a countdown completes.
var FinishedControls = Controls{Input: true, Start: true, Stop: false}

// Presenter renders what the core reports.
type Presenter interface {
	// SetFillCount marks cells [0, n) filled and the rest unfilled.
	SetFillCount(n int)
	SetControlsEnabled(c Controls)
}

// Scheduler polls a running engine at a fixed interval and forwards the fill
// count to the presenter. It holds at most one pending poll.
type Scheduler struct {
	engine    *Engine
	loop      Loop
	presenter Presenter
	interval  time.Duration
	cancel    func()
	logger    logger.Logger
}

func NewScheduler(engine *Engine, loop Loop, presenter Presenter, interval time.Duration, log logger.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Scheduler{
		engine:    engine,
		loop:      loop,
		presenter: presenter,
		interval:  interval,
		logger:    log,
	}
}

// OnStart polls immediately and keeps polling until the engine finishes or
// Cancel is called. Call it once after Engine.Start succeeds.
func (s *Scheduler) OnStart() error {
	s.Cancel()
	s.logger.Debug("refresh started", "interval", s.interval)
	return s.poll()
}

// Cancel drops the pending poll, if any.
func (s *Scheduler) Cancel() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.logger.Debug("refresh cancelled")
}

// Active reports whether a poll is pending.
func (s *Scheduler) Active() bool {
	return s.cancel != nil
}

func (s *Scheduler) poll() error {
	s.cancel = nil

	result, err := s.engine.Tick()
	if err != nil {
		return err
	}

	s.presenter.SetFillCount(result.FillCount)

	if result.Finished {
		s.logger.Info("countdown finished", "total", s.engine.Total(), "elapsed", s.engine.Elapsed())
		s.presenter.SetControlsEnabled(FinishedControls)
		return nil
	}

	s.cancel = s.loop.After(s.interval, s.poll)
	return nil
}
