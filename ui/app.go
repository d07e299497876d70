package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/meghashyamc/gridtimer/assets"
	"github.com/meghashyamc/gridtimer/config"
	"github.com/meghashyamc/gridtimer/controller"
	"github.com/meghashyamc/gridtimer/geometry"
	"github.com/meghashyamc/gridtimer/logger"
	"github.com/meghashyamc/gridtimer/timer"
)

const (
	margin       = 20.0
	rowHeight    = 32.0
	rowGap       = 12.0
	buttonWidth  = 90.0
	buttonGap    = 10.0
	entryWidth   = 70.0
	labelGap     = 8.0
	statusHeight = 40.0
)

// labels sit slightly lower than the entry box they share a row with
var labelOffset = geometry.Vector{X: 0, Y: 4}

// App is the timer window. It renders what the core reports and turns
// clicks and key presses into controller commands. Everything, including
// the refresh polls, runs inside ebiten's Update on the game goroutine.
type App struct {
	cfg        *config.Config
	engine     *timer.Engine
	queue      *timer.TaskQueue
	controller *controller.Controller
	logger     logger.Logger

	grid        *GridView
	entry       *controller.Entry
	startButton *Button
	stopButton  *Button
	clearButton *Button

	labelPos     geometry.Vector
	entryRect    geometry.Rect
	unitPos      geometry.Vector
	statusRect   geometry.Rect
	screenWidth  int
	screenHeight int
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	gridCount := cfg.GetGridCount()
	canvasSize := float64(cfg.GetGridCanvasSize())
	clock := timer.SystemClock{}

	a := &App{
		cfg:    cfg,
		engine: timer.NewEngine(clock, gridCount*gridCount),
		queue:  timer.NewTaskQueue(clock),
		logger: log,
		entry:  controller.NewEntry(),
	}
	a.layout(canvasSize, gridCount)

	scheduler := timer.NewScheduler(a.engine, a.queue, a, cfg.GetRefreshInterval(), log)
	a.controller = controller.New(a.engine, scheduler, a, cfg.GetDefaultMinutes(), log)
	a.SetControlsEnabled(a.controller.Controls())

	a.logger.Info("timer initialized",
		"grid_count", gridCount,
		"refresh_interval", cfg.GetRefreshInterval(),
		"default_minutes", cfg.GetDefaultMinutes(),
	)
	return a, nil
}

func (a *App) layout(canvasSize float64, gridCount int) {
	a.screenWidth = int(canvasSize + 2*margin)
	width := float64(a.screenWidth)

	// First row: SET TIME [entry] MINUTES
	labelWidth := text.Advance("SET TIME", assets.LabelFont)
	unitWidth := text.Advance("MINUTES", assets.LabelFont)
	rowWidth := labelWidth + labelGap + entryWidth + labelGap + unitWidth
	x := (width - rowWidth) / 2
	y := margin

	a.labelPos = geometry.Vector{X: x, Y: y}.Add(labelOffset)
	a.entryRect = geometry.NewRect(x+labelWidth+labelGap, y, entryWidth, rowHeight)
	a.unitPos = geometry.Vector{X: a.entryRect.X + entryWidth + labelGap, Y: y}.Add(labelOffset)

	// Second row: buttons
	y += rowHeight + rowGap
	x = (width - (3*buttonWidth + 2*buttonGap)) / 2
	a.startButton = NewButton("Start", geometry.NewRect(x, y, buttonWidth, rowHeight), true)
	a.stopButton = NewButton("Stop", geometry.NewRect(x+buttonWidth+buttonGap, y, buttonWidth, rowHeight), false)
	a.clearButton = NewButton("Clear", geometry.NewRect(x+2*(buttonWidth+buttonGap), y, buttonWidth, rowHeight), true)

	y += rowHeight + rowGap
	a.grid = NewGridView(geometry.NewRect(margin, y, canvasSize, canvasSize), gridCount)

	y += canvasSize
	a.statusRect = geometry.NewRect(margin, y, canvasSize, statusHeight)
	a.screenHeight = int(y + statusHeight)
}

func (a *App) Run() error {
	a.logger.Info("opening timer window")
	a.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(a)
}

func (a *App) setupWindow() {
	ebiten.SetWindowSize(a.cfg.GetWindowWidth(), a.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(a.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// SetFillCount implements timer.Presenter.
func (a *App) SetFillCount(n int) {
	a.grid.SetFillCount(n)
}

// SetControlsEnabled implements timer.Presenter.
func (a *App) SetControlsEnabled(c timer.Controls) {
	a.entry.SetEnabled(c.Input)
	a.startButton.SetEnabled(c.Start)
	a.stopButton.SetEnabled(c.Stop)
}

func (a *App) Update() error {
	// Due refresh polls run first so input sees the latest status
	if err := a.queue.RunDue(); err != nil {
		a.logger.Error("refresh failed", "err", err, "status", a.engine.Status())
		return err
	}

	return a.handleInput()
}

func (a *App) handleInput() error {
	a.entry.Type(ebiten.AppendInputChars(nil))
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		a.entry.Backspace()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		if a.startButton.enabled {
			return a.start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if a.startButton.enabled || a.stopButton.enabled {
			return a.toggle()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		a.controller.Clear()
		return nil
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}

	mouse := getCurrentMousePosition()
	switch {
	case a.startButton.Clicked(mouse):
		return a.start()
	case a.stopButton.Clicked(mouse):
		return a.controller.Stop()
	case a.clearButton.Clicked(mouse):
		a.controller.Clear()
	}
	return nil
}

func (a *App) start() error {
	normalized, err := a.controller.Start(a.entry.Text())
	if controller.IsInputError(err) {
		// leave everything as is and let the user retry
		return nil
	}
	a.entry.Set(normalized)
	return err
}

func (a *App) toggle() error {
	normalized, err := a.controller.Toggle(a.entry.Text())
	if controller.IsInputError(err) {
		return nil
	}
	a.entry.Set(normalized)
	return err
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(leftColor)

	a.drawControls(screen)
	a.grid.Draw(screen)
	a.drawStatus(screen)
}

func (a *App) drawControls(screen *ebiten.Image) {
	drawText(screen, "SET TIME", assets.LabelFont, a.labelPos, spentColor)
	drawText(screen, "MINUTES", assets.LabelFont, a.unitPos, spentColor)

	entryColor := spentColor
	entryText := a.entry.Text()
	if a.entry.Enabled() {
		entryText += "_"
	} else {
		entryColor = disabledColor
	}
	fillRect(screen, a.entryRect, leftColor)
	drawRectangleOutline(screen, a.entryRect, entryColor)
	drawCenteredText(screen, entryText, assets.EntryFont, a.entryRect, entryColor)

	mouse := getCurrentMousePosition()
	a.startButton.Draw(screen, mouse)
	a.stopButton.Draw(screen, mouse)
	a.clearButton.Draw(screen, mouse)
}

func (a *App) drawStatus(screen *ebiten.Image) {
	remaining := controller.FormatRemaining(a.engine.Remaining())

	switch a.engine.Status() {
	case timer.StatusRunning:
		drawCenteredText(screen, remaining+" left", assets.StatusFont, a.statusRect, spentColor)
	case timer.StatusPaused:
		drawCenteredText(screen, "PAUSED  "+remaining+" left", assets.StatusFont, a.statusRect, pausedColor)
	case timer.StatusFinished:
		drawCenteredText(screen, "DONE", assets.StatusFont, a.statusRect, spentColor)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.screenWidth, a.screenHeight
}
