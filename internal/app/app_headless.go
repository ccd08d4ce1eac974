//go:build headless

package app

import (
	"log"

	"github.com/silbinarywolf/toy-pixel-box/internal/renderer"
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer/headless"
)

func getRenderDriver() renderer.App {
	return new(headless.App)
}

func newRunLogger() (*log.Logger, func()) {
	return log.Default(), func() {}
}
