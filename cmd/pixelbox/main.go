package main

import (
	"log"

	"github.com/silbinarywolf/toy-pixel-box/internal/app"
)

// main opens a window with a box bouncing around it.
//
// Build with "-tags terminal" to draw into the terminal instead, or
// "-tags headless" to run without any output.
func main() {
	log.SetPrefix("pixelbox: ")
	app.StartApp()
}
