// headless is the headless mode driver for the program so we can avoid building the
// ebiten library into test and CI binaries
package headless

import (
	"errors"
	"time"

	"github.com/silbinarywolf/toy-pixel-box/internal/renderer/internal/rendereriface"
)

const defaultTickRate = 16 * time.Millisecond

var _ rendereriface.App = new(App)

type App struct {
	// MaxFrames is how many frames are drawn before a close is requested.
	//
	// If not set, this will run until the game terminates
	MaxFrames int
	// TickRate is the time between frames.
	//
	// If not set, this will default to 16ms. If negative, frames are drawn
	// back to back.
	TickRate time.Duration

	windowWidth, windowHeight int
	screen                    Screen
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	// n/a for headless
}

func (app *App) SetWindowSize(width, height int) {
	app.windowWidth = width
	app.windowHeight = height
}

func (app *App) SetWindowTitle(title string) {
	// n/a for headless
}

// Screen is the last frame written by the game
func (app *App) Screen() *Screen {
	return &app.screen
}

func (app *App) RunGame(game rendereriface.Game) error {
	width, height := app.windowWidth, app.windowHeight
	if width == 0 || height == 0 {
		width, height = game.ScreenSize()
	}
	if done, err := handle(game, rendereriface.ResizedEvent{
		Width:  width,
		Height: height,
	}); done {
		return err
	}

	tickRate := app.TickRate
	if tickRate == 0 {
		tickRate = defaultTickRate
	}
	var tick <-chan time.Time
	if tickRate > 0 {
		ticker := time.NewTicker(tickRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	frameCount := 0
	for {
		if tick != nil {
			<-tick
		}
		if done, err := handle(game, rendereriface.RedrawRequestedEvent{
			Screen: &app.screen,
		}); done {
			return err
		}
		frameCount++
		if app.MaxFrames > 0 && frameCount >= app.MaxFrames {
			// There is no window to keep open, so stop even if the game
			// ignores the request
			_, err := handle(game, rendereriface.CloseRequestedEvent{})
			return err
		}
	}
}

// handle returns true if the loop should stop
func handle(game rendereriface.Game, ev rendereriface.Event) (bool, error) {
	err := game.HandleEvent(ev)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, rendereriface.Termination) {
		return true, nil
	}
	return true, err
}

type Screen struct {
	pix        []byte
	frameCount int
}

var _ rendereriface.Screen = new(Screen)

func (screen *Screen) WritePixels(pix []byte) {
	if len(screen.pix) != len(pix) {
		screen.pix = make([]byte, len(pix))
	}
	copy(screen.pix, pix)
	screen.frameCount++
}

// Pixels returns the last frame written
func (screen *Screen) Pixels() []byte {
	return screen.pix
}

// FrameCount is how many frames have been written
func (screen *Screen) FrameCount() int {
	return screen.frameCount
}
