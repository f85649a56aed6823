// Command ringmon stands in for the ring display: it listens on the device
// port and shows every datagram it receives in the terminal.
package main

import (
	"context"
	"log"
	"net"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ringgrid/internal/game"
	"ringgrid/internal/monitor"
	"ringgrid/internal/transmit"
)

func main() {
	logger := log.New(os.Stderr, "ringmon: ", log.LstdFlags)

	home, _ := os.UserHomeDir()
	cfg, err := game.LoadConfig(os.Args[0], os.Args[1:], os.Getenv, home)
	if err != nil {
		logger.Fatal(err)
	}
	_, port, _ := net.SplitHostPort(cfg.Addr)
	listen := net.JoinHostPort("", port)

	recv, err := transmit.Listen(listen)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(monitor.New(recv.LocalAddr().String()), tea.WithAltScreen())

	errc := make(chan error, 1)
	go func() { errc <- recv.Run(ctx) }()
	go func() {
		for d := range recv.Datagrams() {
			p.Send(monitor.DatagramMsg(d))
		}
	}()

	_, runErr := p.Run()
	cancel()
	if runErr != nil {
		logger.Fatal(runErr)
	}
	if err := <-errc; err != nil {
		logger.Fatal(err)
	}
}
