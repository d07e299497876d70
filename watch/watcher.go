package watch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/meghashyamc/gridtimer/controller"
	"github.com/meghashyamc/gridtimer/logger"
	"github.com/meghashyamc/gridtimer/timer"
)

const barWidth = 40

const helpText = `commands: s [minutes] start/resume, p pause, c clear, q quit`

// Watcher runs the countdown in a terminal. The engine, the refresh polls and
// typed commands are all handled on the goroutine that calls Run.
type Watcher struct {
	engine     *timer.Engine
	queue      *timer.TaskQueue
	controller *controller.Controller
	out        io.Writer
	logger     logger.Logger

	fill     int
	controls timer.Controls

	spent *color.Color
	left  *color.Color
	note  *color.Color
}

type Options struct {
	Cells           int
	RefreshInterval time.Duration
	DefaultMinutes  float64
}

func New(clock timer.Clock, opts Options, out io.Writer, log logger.Logger) *Watcher {
	w := &Watcher{
		engine: timer.NewEngine(clock, opts.Cells),
		queue:  timer.NewTaskQueue(clock),
		out:    out,
		logger: log,
		fill:   -1,
		spent:  color.New(color.FgHiWhite),
		left:   color.New(color.FgHiBlack),
		note:   color.New(color.FgYellow, color.Bold),
	}
	scheduler := timer.NewScheduler(w.engine, w.queue, w, opts.RefreshInterval, log)
	w.controller = controller.New(w.engine, scheduler, w, opts.DefaultMinutes, log)
	w.controls = w.controller.Controls()
	return w
}

// Run starts a countdown from minutes and serves ticks and commands until the
// countdown finishes, a quit command arrives or ctx is cancelled. A nil
// commands channel means no interactive input.
func (w *Watcher) Run(ctx context.Context, minutes string, ticks <-chan time.Time, commands <-chan string) error {
	if _, err := w.controller.Start(minutes); err != nil {
		return fmt.Errorf("failed to start countdown: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(w.out)
			return nil
		case <-ticks:
			if err := w.queue.RunDue(); err != nil {
				return err
			}
			if w.engine.Status() == timer.StatusFinished {
				return nil
			}
		case line, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			quit, err := w.Handle(line)
			if err != nil || quit {
				return err
			}
		}
	}
}

// Handle applies one typed command.
func (w *Watcher) Handle(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "s", "start":
		if !w.controls.Start {
			w.note.Fprintln(w.out, "\nalready running")
			return false, nil
		}
		raw := ""
		if len(fields) > 1 {
			raw = fields[1]
		}
		return false, w.start(raw)
	case "p", "pause", "stop":
		if err := w.controller.Stop(); err != nil {
			return false, err
		}
		w.render()
	case "c", "clear":
		w.controller.Clear()
	case "q", "quit":
		fmt.Fprintln(w.out)
		return true, nil
	default:
		fmt.Fprintln(w.out, "\n"+helpText)
	}
	return false, nil
}

func (w *Watcher) start(raw string) error {
	_, err := w.controller.Start(raw)
	if controller.IsInputError(err) {
		w.note.Fprintf(w.out, "\ninvalid minutes %q\n", raw)
		return nil
	}
	return err
}

// SetFillCount implements timer.Presenter.
func (w *Watcher) SetFillCount(n int) {
	if n == w.fill {
		return
	}
	w.fill = n
	w.render()
}

// SetControlsEnabled implements timer.Presenter.
func (w *Watcher) SetControlsEnabled(c timer.Controls) {
	w.controls = c
	if w.engine.Status() == timer.StatusFinished {
		w.note.Fprintln(w.out, "\ntime is up")
	}
}

func (w *Watcher) render() {
	cells := w.engine.Cells()
	fill := max(w.fill, 0)
	filled := 0
	if cells > 0 {
		filled = fill * barWidth / cells
	}

	status := controller.FormatRemaining(w.engine.Remaining()) + " left"
	if w.engine.Status() == timer.StatusPaused {
		status += " (paused)"
	}

	fmt.Fprintf(w.out, "\r[%s%s] %d/%d %s",
		w.spent.Sprint(strings.Repeat("#", filled)),
		w.left.Sprint(strings.Repeat(".", barWidth-filled)),
		fill, cells, status,
	)
}

// ReadCommands forwards trimmed lines from in until it is exhausted or ctx
// is done, then closes the returned channel.
func ReadCommands(ctx context.Context, in io.Reader) <-chan string {
	commands := make(chan string)
	go func() {
		defer close(commands)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case commands <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()
	return commands
}

// Help describes the interactive commands.
func Help() string {
	return helpText
}
