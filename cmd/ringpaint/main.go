// Command ringpaint is a paint tool for the ring display: drag with the left
// button to fill cells, the right button to clear them, and press u to send
// the changes.
package main

import (
	"log"
	"os"

	"ringgrid/internal/desktop"
	"ringgrid/internal/game"
)

func main() {
	logger := log.New(os.Stderr, "ringpaint: ", log.LstdFlags)

	home, _ := os.UserHomeDir()
	cfg, err := game.LoadConfig(os.Args[0], os.Args[1:], os.Getenv, home)
	if err != nil {
		logger.Fatal(err)
	}
	if err := desktop.RunPaint(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}
