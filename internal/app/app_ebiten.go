//go:build !headless && !terminal

package app

import (
	"log"

	"github.com/silbinarywolf/toy-pixel-box/internal/renderer"
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer/ebiten"
)

func getRenderDriver() renderer.App {
	return new(ebiten.App)
}

func newRunLogger() (*log.Logger, func()) {
	return log.Default(), func() {}
}
