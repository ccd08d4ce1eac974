//go:build terminal && !headless

package app

import (
	"bytes"
	"log"
	"os"

	"github.com/silbinarywolf/toy-pixel-box/internal/renderer"
	"github.com/silbinarywolf/toy-pixel-box/internal/renderer/terminal"
)

func getRenderDriver() renderer.App {
	return new(terminal.App)
}

// newRunLogger holds messages while tcell owns the terminal, flush writes
// them to stderr once the screen is finalized
func newRunLogger() (*log.Logger, func()) {
	var buf bytes.Buffer
	logger := log.New(&buf, log.Prefix(), log.Flags())
	return logger, func() {
		os.Stderr.Write(buf.Bytes())
	}
}
