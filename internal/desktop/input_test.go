//go:build !android

package desktop

import (
	"testing"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"ringgrid/internal/game"
	"ringgrid/internal/grid"
)

func TestKeyRune(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want game.Key
		ok   bool
	}{
		{glfw.KeyA, 'a', true},
		{glfw.KeyP, 'p', true},
		{glfw.KeyZ, 'z', true},
		{glfw.KeySpace, game.KeySpace, true},
		{glfw.KeyEscape, game.KeyEscape, true},
		{glfw.KeyEnter, 0, false},
		{glfw.Key1, 0, false},
	}
	for _, tt := range tests {
		got, ok := keyRune(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("keyRune(%v) = %q %v, want %q %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMouseButton(t *testing.T) {
	if b, ok := mouseButton(glfw.MouseButtonRight); !ok || b != game.ButtonRight {
		t.Errorf("right = %v %v", b, ok)
	}
	if _, ok := mouseButton(glfw.MouseButton4); ok {
		t.Error("button 4 mapped")
	}
}

type countingFrontend struct{ handled, ticks int }

func (f *countingFrontend) Handle(game.InputEvent) bool { f.handled++; return true }
func (f *countingFrontend) Tick()                       { f.ticks++ }

func TestPumpDrainsQueue(t *testing.T) {
	now := time.Unix(0, 0)
	s := game.NewScheduler(game.DrawPeriod)
	s.Now = func() time.Time { return now }
	for i := 0; i < 5; i++ {
		s.Queue.Post(game.InputEvent{Kind: game.PointerMove, X: float64(i)})
	}
	f := &countingFrontend{}
	if !pump(s, f) {
		t.Fatal("pump stopped")
	}
	if f.handled != 5 || s.Queue.Len() != 0 {
		t.Errorf("handled %d, left %d", f.handled, s.Queue.Len())
	}

	now = now.Add(game.DrawPeriod)
	s.Queue.Post(game.InputEvent{Kind: game.PointerMove})
	s.Queue.Post(game.InputEvent{Kind: game.PointerMove})
	pump(s, f)
	if f.ticks != 1 {
		t.Errorf("ticks = %d, want 1", f.ticks)
	}

	s.Queue.Post(game.InputEvent{Kind: game.Quit})
	if pump(s, f) {
		t.Error("quit did not stop the pump")
	}
}

func TestDryRunSender(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Dry = true
	out, err := openSender(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	if err := out.Send([]byte{1, 2}); err != nil {
		t.Fatal(err)
	}
	rec := out.(interface{ Cells() []grid.Cell })
	if got := rec.Cells(); len(got) != 1 || got[0] != (grid.Cell{Ring: 1, Slice: 2}) {
		t.Errorf("recorded %v", got)
	}
}
