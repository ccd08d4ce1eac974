package renderer

import (
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer/internal/rendereriface"
)

// Termination is returned by a game to stop the renderer loop cleanly
var Termination = rendereriface.Termination

type Event = rendereriface.Event

type ResizedEvent = rendereriface.ResizedEvent

type RedrawRequestedEvent = rendereriface.RedrawRequestedEvent

type CloseRequestedEvent = rendereriface.CloseRequestedEvent

type KeyPressedEvent = rendereriface.KeyPressedEvent

// Game is driven by the renderer through events
type Game = rendereriface.Game

// Screen is the surface a frame is presented to
type Screen = rendereriface.Screen

// App is the implementation of the renderer, chosen by build tags
type App = rendereriface.App
