package main

import (
	"log"
	"os"

	"github.com/silbinarywolf/toy-pixel-box/cmd/dev-server/internal/devwebserver"
)

// main builds and serves the program for the web browser, rebuilding on every page load
func main() {
	if err := devwebserver.Serve(os.Args[1:]); err != nil {
		log.Fatalf("%+v", err)
	}
}
