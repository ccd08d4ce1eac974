package app

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/toy-pixel-box/internal/input"
	"github.com/silbinarywolf/toy-pixel-box/internal/monotime"
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer"
	"github.com/silbinarywolf/toy-pixel-box/internal/world"
)

const defaultTitle = "Hello Pixels"

type Options struct {
	// Title of the window
	//
	// If not set, this will default to "Hello Pixels"
	Title string
	// WindowWidth and WindowHeight are the initial window size, the frame
	// is scaled to fit whatever size the window ends up.
	//
	// If not set or not positive, this will default to twice the screen size
	WindowWidth, WindowHeight int
	// World configures the surface and the box
	World world.Options
	// Logger is where lifecycle and failure messages go
	//
	// If not set, this will default to the standard logger
	Logger *log.Logger
}

// App owns the world and the frame buffer. It is fully set up by New, so every
// event can be handled as soon as the renderer starts sending them.
type App struct {
	renderer renderer.App
	logger   *log.Logger
	world    *world.World
	frame    []byte
	timer    monotime.FrameTimer

	surfaceWidth, surfaceHeight int
}

var _ renderer.Game = new(App)

// New creates the world, allocates the frame buffer and configures the window.
func New(driver renderer.App, options Options) *App {
	w := world.New(options.World)
	if options.Title == "" {
		options.Title = defaultTitle
	}
	if options.WindowWidth <= 0 || options.WindowHeight <= 0 {
		options.WindowWidth = w.Width * 2
		options.WindowHeight = w.Height * 2
	}
	if options.Logger == nil {
		options.Logger = log.Default()
	}

	app := &App{
		renderer: driver,
		logger:   options.Logger,
		world:    w,
		frame:    make([]byte, w.FrameLen()),
	}
	app.renderer.SetWindowSize(options.WindowWidth, options.WindowHeight)
	app.renderer.SetWindowTitle(options.Title)
	// Keep bouncing while another window has focus
	app.renderer.SetRunnableOnUnfocused(true)
	return app
}

// Run blocks until the window is closed or the exit key is pressed
func (app *App) Run() error {
	err := app.renderer.RunGame(app)
	app.logger.Printf("presented %d frames, average frame time %v, longest %v", app.timer.FrameCount(), app.timer.Average(), app.timer.Longest())
	if err != nil {
		return errors.Wrap(err, "run game")
	}
	return nil
}

func (app *App) ScreenSize() (int, int) {
	return app.world.Width, app.world.Height
}

func (app *App) HandleEvent(ev renderer.Event) error {
	switch ev := ev.(type) {
	case renderer.ResizedEvent:
		return app.resize(ev.Width, ev.Height)
	case renderer.RedrawRequestedEvent:
		app.redraw(ev.Screen)
		return nil
	case renderer.CloseRequestedEvent:
		return renderer.Termination
	case renderer.KeyPressedEvent:
		if input.IsExitKey(ev.Key) {
			return renderer.Termination
		}
		return nil
	default:
		panic(fmt.Sprintf("unhandled event type: %T", ev))
	}
}

func (app *App) resize(width, height int) error {
	if width < 0 || height < 0 {
		return errors.Errorf("invalid surface size %dx%d", width, height)
	}
	if width == 0 || height == 0 {
		// minimized, keep the last size
		return nil
	}
	app.surfaceWidth = width
	app.surfaceHeight = height
	app.logger.Printf("surface resized to %dx%d", width, height)
	return nil
}

func (app *App) redraw(screen renderer.Screen) {
	app.timer.Begin()
	app.world.Update()
	app.world.Draw(app.frame)
	screen.WritePixels(app.frame)
	app.timer.End()
}

// World is the simulation drawn each frame
func (app *App) World() *world.World {
	return app.world
}

// SurfaceSize is the last size reported by the renderer
func (app *App) SurfaceSize() (int, int) {
	return app.surfaceWidth, app.surfaceHeight
}

// FrameCount is the number of frames presented so far
func (app *App) FrameCount() int {
	return app.timer.FrameCount()
}

func StartApp() {
	logger, flush := newRunLogger()
	app := New(getRenderDriver(), Options{
		Logger: logger,
	})
	err := app.Run()
	flush()
	if err != nil {
		logError(log.Default(), "app.Run", err)
		os.Exit(1)
	}
}
