package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	pkgerrors "github.com/pkg/errors"

	"github.com/silbinarywolf/toy-pixel-box/internal/input"
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer/internal/rendereriface"
)

var _ rendereriface.App = new(App)

type App struct {
}

// ebitenGame adapts the callbacks ebiten makes into events for the game
type ebitenGame struct {
	game         rendereriface.Game
	screenDriver Screen

	keys []ebiten.Key

	outsideWidth, outsideHeight int

	// err is an error from Draw or Layout, these can't return errors
	// so it's returned from the next Update
	err error
}

func (g *ebitenGame) handle(ev rendereriface.Event) {
	if g.err != nil {
		return
	}
	g.err = g.game.HandleEvent(ev)
}

func (g *ebitenGame) Update() error {
	if g.err != nil {
		return g.finish()
	}
	if ebiten.IsWindowBeingClosed() {
		g.handle(rendereriface.CloseRequestedEvent{})
	}
	if g.err == nil {
		g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
		for _, key := range g.keys {
			g.handle(rendereriface.KeyPressedEvent{
				Key: toKey(key),
			})
		}
	}
	return g.finish()
}

// finish converts the game's error into what ebiten expects from Update
func (g *ebitenGame) finish() error {
	err := g.err
	if err == nil {
		return nil
	}
	if errors.Is(err, rendereriface.Termination) {
		return ebiten.Termination
	}
	return err
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	g.screenDriver.screen = screen
	g.handle(rendereriface.RedrawRequestedEvent{
		Screen: &g.screenDriver,
	})
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideWidth || outsideHeight != g.outsideHeight {
		g.outsideWidth = outsideWidth
		g.outsideHeight = outsideHeight
		g.handle(rendereriface.ResizedEvent{
			Width:  outsideWidth,
			Height: outsideHeight,
		})
	}
	return g.game.ScreenSize()
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	ebiten.SetRunnableOnUnfocused(v)
}

func (app *App) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (app *App) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (app *App) RunGame(game rendereriface.Game) error {
	gameWrapper := ebitenGame{}
	gameWrapper.game = game
	// Ebiten scales the logical screen up to whatever size the window is
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(&gameWrapper); err != nil {
		return pkgerrors.Wrap(err, "ebiten.RunGame")
	}
	return nil
}

type Screen struct {
	screen *ebiten.Image
}

var _ rendereriface.Screen = new(Screen)

func (driver *Screen) WritePixels(pix []byte) {
	driver.screen.WritePixels(pix)
}

func toKey(key ebiten.Key) input.Key {
	switch key {
	case ebiten.KeyEscape:
		return input.KeyEscape
	case ebiten.KeySpace:
		return input.KeySpace
	case ebiten.KeyEnter:
		return input.KeyEnter
	}
	return input.KeyUnknown
}
