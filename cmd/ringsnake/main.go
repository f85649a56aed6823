// Command ringsnake plays snake around the outer rings of the display.
package main

import (
	"log"
	"os"

	"ringgrid/internal/desktop"
	"ringgrid/internal/game"
)

func main() {
	logger := log.New(os.Stderr, "ringsnake: ", log.LstdFlags)

	home, _ := os.UserHomeDir()
	cfg, err := game.LoadConfig(os.Args[0], os.Args[1:], os.Getenv, home)
	if err != nil {
		logger.Fatal(err)
	}
	if err := desktop.RunSnake(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}
