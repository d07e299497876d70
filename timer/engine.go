package timer

import (
	"fmt"
	"time"
)

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// TickResult is what a single poll of a running engine reports.
type TickResult struct {
	FillCount int
	Finished  bool
}

// Engine is the countdown state machine. Elapsed time is banked across
// pause/resume cycles and projected onto a grid of cells.
//
// Engine is not safe for concurrent use; all calls are expected to come from
// the single control loop that also drives the Scheduler.
type Engine struct {
	clock Clock
	cells int

	total       time.Duration
	accumulated time.Duration
	runStart    time.Time // zero unless running
	status      Status
}

func NewEngine(clock Clock, cells int) *Engine {
	return &Engine{
		clock:  clock,
		cells:  cells,
		status: StatusIdle,
	}
}

// Configure sets the countdown length and resets the banked elapsed time.
// Configuring a finished timer returns it to idle.
func (e *Engine) Configure(d time.Duration) error {
	if e.status != StatusIdle && e.status != StatusFinished {
		return fmt.Errorf("configure while %s: %w", e.status, ErrInvalidState)
	}
	if d <= 0 {
		return fmt.Errorf("configure %s: %w", d, ErrInvalidDuration)
	}

	e.total = d
	e.accumulated = 0
	e.status = StatusIdle
	return nil
}

// Start begins a configured countdown or resumes a paused one.
func (e *Engine) Start() error {
	switch e.status {
	case StatusRunning:
		return ErrAlreadyRunning
	case StatusFinished:
		return fmt.Errorf("start after finish requires configure: %w", ErrNotConfigured)
	case StatusIdle:
		if e.total <= 0 {
			return ErrNotConfigured
		}
	}

	e.runStart = e.clock.Now()
	e.status = StatusRunning
	return nil
}

// Stop pauses a running countdown, banking the current segment.
func (e *Engine) Stop() error {
	if e.status != StatusRunning {
		return ErrNotRunning
	}

	e.accumulated += e.clock.Now().Sub(e.runStart)
	e.runStart = time.Time{}
	e.status = StatusPaused
	return nil
}

// Clear resets the engine to its initial idle state. Always legal.
func (e *Engine) Clear() {
	e.total = 0
	e.accumulated = 0
	e.runStart = time.Time{}
	e.status = StatusIdle
}

// Tick reports the current fill count. Once the elapsed time reaches the
// configured total the engine transitions to finished.
func (e *Engine) Tick() (TickResult, error) {
	if e.status != StatusRunning {
		return TickResult{}, fmt.Errorf("tick while %s: %w", e.status, ErrNotRunning)
	}

	segment := e.clock.Now().Sub(e.runStart)
	ratio := e.ratio(e.accumulated + segment)
	if ratio >= 1 {
		e.accumulated += segment
		e.runStart = time.Time{}
		e.status = StatusFinished
		return TickResult{FillCount: e.cells, Finished: true}, nil
	}

	return TickResult{FillCount: FillCount(ratio, e.cells), Finished: false}, nil
}

// Elapsed returns the banked time plus the current segment when running.
func (e *Engine) Elapsed() time.Duration {
	elapsed := e.accumulated
	if e.status == StatusRunning {
		elapsed += e.clock.Now().Sub(e.runStart)
	}
	return elapsed
}

// Remaining returns the time left on the countdown, never negative.
func (e *Engine) Remaining() time.Duration {
	return max(e.total-e.Elapsed(), 0)
}

func (e *Engine) Status() Status {
	return e.status
}

func (e *Engine) Total() time.Duration {
	return e.total
}

func (e *Engine) Cells() int {
	return e.cells
}

func (e *Engine) ratio(elapsed time.Duration) float64 {
	if e.total <= 0 {
		return 1
	}
	return min(float64(elapsed)/float64(e.total), 1)
}
