package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// PointerAction identifies what a pointer event describes.
type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerUp
	PointerMove
	PointerCancel
	SecondaryPointerDown
	SecondaryPointerUp
)

// KeyAction identifies what a key event describes.
type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
	KeyRepeat
)

// PointerEvent is one pointer sample in surface pixel coordinates.
type PointerEvent struct {
	Action PointerAction
	ID     int
	X, Y   float32
}

// KeyEvent is one key transition.
type KeyEvent struct {
	Action KeyAction
	Code   int
}

// Buffer accumulates pointer and key events between frames. The frame
// loop consumes the queued events once per frame and must Clear the
// buffer afterwards so it can be reused.
type Buffer struct {
	mu       sync.Mutex
	pointers []PointerEvent
	keys     []KeyEvent

	// Last known cursor position in framebuffer pixels, and whether the
	// primary button is held (moves are only reported while it is, to
	// mirror touch semantics).
	cursorX     float32
	cursorY     float32
	primaryDown bool
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// PushPointer appends a pointer event to the queue.
func (b *Buffer) PushPointer(ev PointerEvent) {
	b.mu.Lock()
	b.pointers = append(b.pointers, ev)
	b.mu.Unlock()
}

// PushKey appends a key event to the queue.
func (b *Buffer) PushKey(ev KeyEvent) {
	b.mu.Lock()
	b.keys = append(b.keys, ev)
	b.mu.Unlock()
}

// Events returns the queued events. The returned slices remain valid
// until the next Clear.
func (b *Buffer) Events() ([]PointerEvent, []KeyEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pointers, b.keys
}

// Clear drops all consumed events.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.pointers = b.pointers[:0]
	b.keys = b.keys[:0]
	b.mu.Unlock()
}

// Attach installs the GLFW callbacks that feed this buffer. The left
// mouse button maps to the primary pointer, the right button to a
// secondary pointer; cursor motion while the primary button is held maps
// to pointer move. Coordinates are scaled from window to framebuffer
// pixels so they line up with the render area.
func (b *Buffer) Attach(window *glfw.Window) {
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		sx, sy := framebufferScale(w)

		b.mu.Lock()
		b.cursorX = float32(x) * sx
		b.cursorY = float32(y) * sy
		moving := b.primaryDown
		cx, cy := b.cursorX, b.cursorY
		b.mu.Unlock()

		if moving {
			b.PushPointer(PointerEvent{Action: PointerMove, ID: 0, X: cx, Y: cy})
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b.mu.Lock()
		cx, cy := b.cursorX, b.cursorY
		b.mu.Unlock()

		switch button {
		case glfw.MouseButtonLeft:
			if action == glfw.Press {
				b.mu.Lock()
				b.primaryDown = true
				b.mu.Unlock()
				b.PushPointer(PointerEvent{Action: PointerDown, ID: 0, X: cx, Y: cy})
			} else if action == glfw.Release {
				b.mu.Lock()
				b.primaryDown = false
				b.mu.Unlock()
				b.PushPointer(PointerEvent{Action: PointerUp, ID: 0, X: cx, Y: cy})
			}
		case glfw.MouseButtonRight:
			if action == glfw.Press {
				b.PushPointer(PointerEvent{Action: SecondaryPointerDown, ID: 1, X: cx, Y: cy})
			} else if action == glfw.Release {
				b.PushPointer(PointerEvent{Action: SecondaryPointerUp, ID: 1, X: cx, Y: cy})
			}
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			b.PushKey(KeyEvent{Action: KeyDown, Code: int(key)})
		case glfw.Release:
			b.PushKey(KeyEvent{Action: KeyUp, Code: int(key)})
		case glfw.Repeat:
			b.PushKey(KeyEvent{Action: KeyRepeat, Code: int(key)})
		}
	})
}

// framebufferScale returns the window-to-framebuffer pixel ratio per
// axis (not 1:1 on HiDPI displays).
func framebufferScale(w *glfw.Window) (float32, float32) {
	fw, fh := w.GetFramebufferSize()
	ww, wh := w.GetSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float32(fw) / float32(ww), float32(fh) / float32(wh)
}
