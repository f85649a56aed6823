//go:build !android

// Package desktop runs the paint tool and the snake game in a GLFW window,
// sending grid changes to the device over UDP.
package desktop

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"ringgrid/internal/game"
	"ringgrid/internal/grid"
	"ringgrid/internal/snapshot"
	"ringgrid/internal/transmit"
)

// pollTimeout caps how long the loop waits for window events, in seconds.
const pollTimeout = 0.005

type sender interface {
	transmit.Sender
	io.Closer
}

// RunPaint runs the paint tool until the window closes or the user quits.
func RunPaint(cfg *game.Config, logger *log.Logger) error {
	return run(cfg, logger, "ringpaint", game.DrawPeriod, func(s *game.Session, geo grid.Geometry) game.Frontend {
		app := game.NewPaintApp(s, geo)
		app.Export = func(g *grid.Grid) error {
			path, err := cfg.SnapshotPath(time.Now().Format("ring-20060102-150405.png"))
			if err != nil {
				return err
			}
			if err := snapshot.WritePNG(path, g, cfg.ScreenSize, "ringpaint "+s.ID.String()); err != nil {
				return err
			}
			logger.Printf("snapshot written to %s", path)
			return nil
		}
		app.Copy = func(g *grid.Grid) error {
			if err := snapshot.CopyLit(g); err != nil {
				return err
			}
			logger.Printf("copied %d lit cells", len(g.LitCells()))
			return nil
		}
		return app
	})
}

// RunSnake runs the snake game until the window closes or the user quits.
func RunSnake(cfg *game.Config, logger *log.Logger) error {
	return run(cfg, logger, "ringsnake", game.MovePeriod, func(s *game.Session, _ grid.Geometry) game.Frontend {
		app := game.NewSnakeApp(s, cfg.Seed)
		logger.Printf("seed %d", cfg.Seed)
		app.Snake.Initialize()
		return app
	})
}

func run(cfg *game.Config, logger *log.Logger, title string, period time.Duration, build func(*game.Session, grid.Geometry) game.Frontend) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.ScreenSize, title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	r, g, b := game.Palette.Background.Floats()
	gl.ClearColor(r, g, b, 1.0)

	geo := grid.NewGeometry(cfg.ScreenSize)
	rend, err := NewRenderer(window, geo, cfg.ScreenSize)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	out, err := openSender(cfg)
	if err != nil {
		return err
	}
	defer out.Close()

	cells := grid.New()
	link := transmit.New(cells, out, transmit.WithLogger(logger), transmit.WithEcho(cfg.Echo))
	s := game.NewSession(cells, link, rend, logger)
	if cfg.Dry {
		logger.Printf("session %s: dry run, nothing is sent", s.ID)
	} else {
		logger.Printf("session %s: sending to %s", s.ID, cfg.Addr)
	}

	if !cfg.Mute {
		if a, err := NewAudio(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			a.Attach(s.Bus)
		}
	}

	sched := game.NewScheduler(period)
	attachInput(window, sched.Queue)
	app := build(s, geo)
	s.Render()

	for !window.ShouldClose() {
		glfw.WaitEventsTimeout(pollTimeout)
		if !pump(sched, app) {
			break
		}
	}

	st := link.Stats()
	logger.Printf("session %s: %d flushes, %d datagrams sent, %d failed", s.ID, st.Flushes, st.Sent, st.Failed)
	return nil
}

// pump dispatches every queued event, ticking as periods elapse.
func pump(s *game.Scheduler, f game.Frontend) bool {
	for {
		if !s.Step(f) {
			return false
		}
		if s.Queue.Len() == 0 {
			return true
		}
	}
}

func openSender(cfg *game.Config) (sender, error) {
	if cfg.Dry {
		return &transmit.Recorder{}, nil
	}
	u, err := transmit.Dial(cfg.Addr)
	if err != nil {
		return nil, err
	}
	return u, nil
}
