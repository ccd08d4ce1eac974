package rendereriface

import (
	"errors"

	"github.com/silbinarywolf/toy-pixel-box/internal/input"
)

// Termination is returned from Game.HandleEvent to stop the game loop.
// RunGame then returns nil.
var Termination = errors.New("regular termination")

// Event is one of ResizedEvent, RedrawRequestedEvent, CloseRequestedEvent
// or KeyPressedEvent. No other implementations exist.
type Event interface {
	isEvent()
}

// ResizedEvent is sent when the window or terminal changes size, including once
// when it is first created
type ResizedEvent struct {
	Width, Height int
}

// RedrawRequestedEvent is sent once per frame, the game should write the whole
// frame to Screen
type RedrawRequestedEvent struct {
	Screen Screen
}

// CloseRequestedEvent is sent when the user asks to close the window
type CloseRequestedEvent struct{}

// KeyPressedEvent is sent once when a key goes down
type KeyPressedEvent struct {
	Key input.Key
}

func (ResizedEvent) isEvent()         {}
func (RedrawRequestedEvent) isEvent() {}
func (CloseRequestedEvent) isEvent()  {}
func (KeyPressedEvent) isEvent()      {}

type Game interface {
	// ScreenSize is the logical size of the frame written to Screen
	ScreenSize() (screenWidth, screenHeight int)
	HandleEvent(ev Event) error
}

type App interface {
	SetRunnableOnUnfocused(v bool)
	SetWindowSize(screenWidth, screenHeight int)
	SetWindowTitle(title string)
	RunGame(game Game) error
}

type Screen interface {
	// WritePixels replaces the screen with a frame of RGBA bytes of the
	// game's ScreenSize
	WritePixels(pix []byte)
}
