// terminal draws the frame into a terminal with tcell, two pixels per cell
// using half block characters.
package terminal

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	pkgerrors "github.com/pkg/errors"

	"github.com/silbinarywolf/toy-pixel-box/internal/input"
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer/internal/rendereriface"
)

const (
	defaultTickRate = 16 * time.Millisecond // ~60 FPS

	// upperHalfBlock is drawn with the foreground as the upper pixel
	// and the background as the lower pixel
	upperHalfBlock = '▀'
)

var _ rendereriface.App = new(App)

type App struct {
	// Screen is the terminal to draw to.
	//
	// If not set, a screen for the current terminal is created, initialized
	// and finalized by RunGame. A screen that is set is owned by the caller.
	Screen tcell.Screen
	// TickRate is the time between frames.
	//
	// If not set, this will default to 16ms
	TickRate time.Duration

	title string
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	// n/a for terminals
}

func (app *App) SetWindowSize(width, height int) {
	// n/a for terminals, the terminal decides
}

func (app *App) SetWindowTitle(title string) {
	app.title = title
}

func (app *App) RunGame(game rendereriface.Game) error {
	screen := app.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return pkgerrors.Wrap(err, "tcell.NewScreen")
		}
		if err := screen.Init(); err != nil {
			return pkgerrors.Wrap(err, "init terminal screen")
		}
		defer screen.Fini()
	}
	screen.HideCursor()
	if app.title != "" {
		screen.SetTitle(app.title)
	}

	screenWidth, screenHeight := game.ScreenSize()
	screenDriver := &Screen{
		screen: screen,
		width:  screenWidth,
		height: screenHeight,
	}

	// The reader must be gone before RunGame returns, otherwise it would take
	// events meant for the next RunGame on a caller-owned screen
	quit := make(chan struct{})
	readerDone := make(chan struct{})
	eventChan := make(chan tcell.Event, 100)
	go func() {
		defer close(readerDone)
		screen.ChannelEvents(eventChan, quit)
	}()
	defer func() {
		close(quit)
		<-readerDone
	}()

	tickRate := app.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	ticker := time.NewTicker(tickRate)
	defer ticker.Stop()

	// Send the size up front, terminals don't always report one on init
	cols, rows := screen.Size()
	if done, err := handle(game, resizedEvent(cols, rows)); done {
		return err
	}

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				// screen was finalized
				return nil
			}
			var gameEvent rendereriface.Event
			switch ev := ev.(type) {
			case *tcell.EventKey:
				gameEvent = keyEvent(ev)
			case *tcell.EventResize:
				newCols, newRows := ev.Size()
				if newCols == cols && newRows == rows {
					continue
				}
				cols, rows = newCols, newRows
				screen.Sync()
				gameEvent = resizedEvent(cols, rows)
			default:
				continue
			}
			if done, err := handle(game, gameEvent); done {
				return err
			}
		case <-ticker.C:
			if done, err := handle(game, rendereriface.RedrawRequestedEvent{
				Screen: screenDriver,
			}); done {
				return err
			}
			screen.Show()
		}
	}
}

// resizedEvent reports the size in half block pixels
func resizedEvent(cols, rows int) rendereriface.ResizedEvent {
	return rendereriface.ResizedEvent{
		Width:  cols,
		Height: rows * 2,
	}
}

func keyEvent(ev *tcell.EventKey) rendereriface.Event {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		// There is no close button in a terminal, so treat Ctrl+C as one
		return rendereriface.CloseRequestedEvent{}
	case tcell.KeyEscape:
		return rendereriface.KeyPressedEvent{Key: input.KeyEscape}
	case tcell.KeyEnter:
		return rendereriface.KeyPressedEvent{Key: input.KeyEnter}
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return rendereriface.KeyPressedEvent{Key: input.KeySpace}
		}
	}
	return rendereriface.KeyPressedEvent{Key: input.KeyUnknown}
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

// Screen scales a frame to the terminal size with nearest neighbour sampling
type Screen struct {
	screen        tcell.Screen
	width, height int
}

var _ rendereriface.Screen = new(Screen)

func (driver *Screen) WritePixels(pix []byte) {
	cols, rows := driver.screen.Size()
	if cols <= 0 || rows <= 0 || len(pix) < driver.width*driver.height*4 {
		return
	}
	pixelRows := rows * 2
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * driver.height / pixelRows
		bottom := (2*cy + 1) * driver.height / pixelRows
		for cx := 0; cx < cols; cx++ {
			x := cx * driver.width / cols
			style := tcell.StyleDefault.
				Foreground(driver.colorAt(pix, x, top)).
				Background(driver.colorAt(pix, x, bottom))
			driver.screen.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}
}

func (driver *Screen) colorAt(pix []byte, x, y int) tcell.Color {
	offset := (y*driver.width + x) * 4
	return tcell.NewRGBColor(int32(pix[offset]), int32(pix[offset+1]), int32(pix[offset+2]))
}
