//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"ringgrid/internal/game"
)

// attachInput turns GLFW callbacks into queued input events. Callbacks run
// inside PollEvents/WaitEvents on the main thread, so the queue needs no lock.
func attachInput(window *glfw.Window, q *game.Queue) {
	window.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := mouseButton(b)
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		switch action {
		case glfw.Press:
			q.Post(game.InputEvent{Kind: game.PointerDown, Button: btn, X: x, Y: y})
		case glfw.Release:
			q.Post(game.InputEvent{Kind: game.PointerUp, Button: btn, X: x, Y: y})
		}
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		q.Post(game.InputEvent{Kind: game.PointerMove, X: x, Y: y})
	})
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if k, ok := keyRune(key); ok {
			q.Post(game.InputEvent{Kind: game.KeyDown, Key: k})
		}
	})
	window.SetCloseCallback(func(*glfw.Window) {
		q.Post(game.InputEvent{Kind: game.Quit})
	})
}

func mouseButton(b glfw.MouseButton) (game.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return game.ButtonLeft, true
	case glfw.MouseButtonRight:
		return game.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return game.ButtonMiddle, true
	}
	return 0, false
}

// keyRune maps letters to their lower-case rune; only the keys the front ends
// bind beyond letters are mapped.
func keyRune(key glfw.Key) (game.Key, bool) {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return game.Key('a' + rune(key-glfw.KeyA)), true
	case key == glfw.KeySpace:
		return game.KeySpace, true
	case key == glfw.KeyEscape:
		return game.KeyEscape, true
	}
	return 0, false
}
