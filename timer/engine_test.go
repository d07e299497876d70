package timer

import (
	"errors"
	"testing"
	"time"
)

const testCells = 400

func newTestEngine(t *testing.T) (*Engine, *ManualClock) {
	t.Helper()
	clock := NewManualClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	return NewEngine(clock, testCells), clock
}

func mustTick(t *testing.T, e *Engine) TickResult {
	t.Helper()
	result, err := e.Tick()
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}
	return result
}

func TestEngine_HalfwayFill(t *testing.T) {
	e, clock := newTestEngine(t)

	if err := e.Configure(60 * time.Second); err != nil {
		t.Fatalf("Configure() error = %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	clock.Advance(30 * time.Second)
	got := mustTick(t, e)

	if got.FillCount != 200 || got.Finished {
		t.Errorf("Tick() = %+v, want {FillCount:200 Finished:false}", got)
	}
	if e.Status() != StatusRunning {
		t.Errorf("Status() = %v, want %v", e.Status(), StatusRunning)
	}
}

func TestEngine_PauseExcludedFromElapsed(t *testing.T) {
	e, clock := newTestEngine(t)

	_ = e.Configure(60 * time.Second)
	_ = e.Start()

	clock.Advance(15 * time.Second)
	if err := e.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	clock.Advance(20 * time.Second)
	if got := e.Elapsed(); got != 15*time.Second {
		t.Errorf("Elapsed() while paused = %v, want 15s", got)
	}

	if err := e.Start(); err != nil {
		t.Fatalf("Start() resume error = %v", err)
	}
	if e.Total() != 60*time.Second {
		t.Errorf("Total() after resume = %v, want 60s", e.Total())
	}

	clock.Advance(45 * time.Second)
	got := mustTick(t, e)

	if !got.Finished || got.FillCount != testCells {
		t.Errorf("Tick() = %+v, want {FillCount:%d Finished:true}", got, testCells)
	}
	if e.Status() != StatusFinished {
		t.Errorf("Status() = %v, want %v", e.Status(), StatusFinished)
	}
}

func TestEngine_PauseResumeIsElapsedNeutral(t *testing.T) {
	durations := []time.Duration{time.Second, 90 * time.Second, 25 * time.Minute}

	for _, d := range durations {
		for _, frac := range []float64{0.1, 0.5, 0.9} {
			t.Run(d.String(), func(t *testing.T) {
				e, clock := newTestEngine(t)
				_ = e.Configure(d)
				_ = e.Start()

				first := time.Duration(float64(d) * frac)
				clock.Advance(first)
				_ = e.Stop()
				clock.Advance(time.Hour)
				_ = e.Start()

				clock.Advance(d - first - time.Millisecond)
				if got := mustTick(t, e); got.Finished {
					t.Fatalf("Tick() 1ms before the end = %+v, want not finished", got)
				}

				clock.Advance(time.Millisecond)
				if got := mustTick(t, e); !got.Finished {
					t.Errorf("Tick() at the end = %+v, want finished", got)
				}
			})
		}
	}
}

func TestEngine_FillMonotonicAndBounded(t *testing.T) {
	e, clock := newTestEngine(t)
	_ = e.Configure(7 * time.Second)
	_ = e.Start()

	last := -1
	for i := 0; i < 200; i++ {
		clock.Advance(37 * time.Millisecond)
		got := mustTick(t, e)

		if got.FillCount < last {
			t.Fatalf("FillCount decreased from %d to %d", last, got.FillCount)
		}
		if got.FillCount > testCells {
			t.Fatalf("FillCount = %d exceeds %d", got.FillCount, testCells)
		}
		if got.Finished != (got.FillCount == testCells) {
			t.Fatalf("Tick() = %+v, full grid must coincide with finish", got)
		}
		last = got.FillCount
		if got.Finished {
			return
		}
	}
	t.Fatal("countdown never finished")
}

func TestEngine_ConfigureRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
	}{
		{"zero", 0},
		{"negative", -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			err := e.Configure(tt.d)
			if !errors.Is(err, ErrInvalidDuration) {
				t.Errorf("Configure(%v) error = %v, want %v", tt.d, err, ErrInvalidDuration)
			}
			if e.Total() != 0 {
				t.Errorf("Total() = %v, want 0", e.Total())
			}
		})
	}
}

func TestEngine_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		call  func(e *Engine) error
		want  error
	}{
		{
			name:  "start unconfigured",
			setup: func(e *Engine) {},
			call:  (*Engine).Start,
			want:  ErrNotConfigured,
		},
		{
			name:  "start while running",
			setup: func(e *Engine) { _ = e.Configure(time.Minute); _ = e.Start() },
			call:  (*Engine).Start,
			want:  ErrAlreadyRunning,
		},
		{
			name:  "stop while idle",
			setup: func(e *Engine) {},
			call:  (*Engine).Stop,
			want:  ErrNotRunning,
		},
		{
			name:  "stop while paused",
			setup: func(e *Engine) { _ = e.Configure(time.Minute); _ = e.Start(); _ = e.Stop() },
			call:  (*Engine).Stop,
			want:  ErrNotRunning,
		},
		{
			name:  "tick while idle",
			setup: func(e *Engine) { _ = e.Configure(time.Minute) },
			call:  func(e *Engine) error { _, err := e.Tick(); return err },
			want:  ErrNotRunning,
		},
		{
			name:  "configure while running",
			setup: func(e *Engine) { _ = e.Configure(time.Minute); _ = e.Start() },
			call:  func(e *Engine) error { return e.Configure(time.Second) },
			want:  ErrInvalidState,
		},
		{
			name:  "configure while paused",
			setup: func(e *Engine) { _ = e.Configure(time.Minute); _ = e.Start(); _ = e.Stop() },
			call:  func(e *Engine) error { return e.Configure(time.Second) },
			want:  ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			tt.setup(e)
			before := *e

			err := tt.call(e)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("error = %v, want it to wrap %v", err, ErrInvalidState)
			}
			if *e != before {
				t.Errorf("state changed on rejected call: got %+v, want %+v", *e, before)
			}
		})
	}
}

func TestEngine_FinishedRequiresConfigure(t *testing.T) {
	e, clock := newTestEngine(t)
	_ = e.Configure(time.Second)
	_ = e.Start()
	clock.Advance(2 * time.Second)
	mustTick(t, e)

	if err := e.Start(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Start() after finish error = %v, want %v", err, ErrNotConfigured)
	}

	if err := e.Configure(10 * time.Second); err != nil {
		t.Fatalf("Configure() after finish error = %v", err)
	}
	if e.Status() != StatusIdle || e.Elapsed() != 0 {
		t.Errorf("after reconfigure status = %v elapsed = %v, want idle and 0", e.Status(), e.Elapsed())
	}
	if err := e.Start(); err != nil {
		t.Errorf("Start() after reconfigure error = %v", err)
	}
}

func TestEngine_ClearFromEveryStatus(t *testing.T) {
	setups := map[string]func(e *Engine, clock *ManualClock){
		"idle":    func(e *Engine, clock *ManualClock) {},
		"running": func(e *Engine, clock *ManualClock) { _ = e.Configure(time.Minute); _ = e.Start(); clock.Advance(time.Second) },
		"paused": func(e *Engine, clock *ManualClock) {
			_ = e.Configure(time.Minute)
			_ = e.Start()
			clock.Advance(time.Second)
			_ = e.Stop()
		},
		"finished": func(e *Engine, clock *ManualClock) {
			_ = e.Configure(time.Second)
			_ = e.Start()
			clock.Advance(time.Minute)
			_, _ = e.Tick()
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			e, clock := newTestEngine(t)
			setup(e, clock)

			e.Clear()
			first := *e
			e.Clear()

			if *e != first {
				t.Errorf("second Clear() changed state: got %+v, want %+v", *e, first)
			}
			if e.Status() != StatusIdle || e.Total() != 0 || e.Elapsed() != 0 {
				t.Errorf("after Clear() status = %v total = %v elapsed = %v, want idle/0/0",
					e.Status(), e.Total(), e.Elapsed())
			}
			if !e.runStart.IsZero() {
				t.Errorf("runStart = %v, want zero", e.runStart)
			}
			if _, err := e.Tick(); !errors.Is(err, ErrNotRunning) {
				t.Errorf("Tick() after Clear() error = %v, want %v", err, ErrNotRunning)
			}
		})
	}
}

func TestEngine_Remaining(t *testing.T) {
	e, clock := newTestEngine(t)
	_ = e.Configure(time.Minute)
	_ = e.Start()

	clock.Advance(20 * time.Second)
	if got := e.Remaining(); got != 40*time.Second {
		t.Errorf("Remaining() = %v, want 40s", got)
	}

	clock.Advance(2 * time.Minute)
	if got := e.Remaining(); got != 0 {
		t.Errorf("Remaining() past the end = %v, want 0", got)
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusRunning, "running"},
		{StatusPaused, "paused"},
		{StatusFinished, "finished"},
		{Status(9), "status(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
