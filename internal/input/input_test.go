package input

import "testing"

func TestBufferQueuesAndClears(t *testing.T) {
	b := NewBuffer()

	b.PushPointer(PointerEvent{Action: PointerDown, ID: 0, X: 10, Y: 20})
	b.PushPointer(PointerEvent{Action: PointerUp, ID: 0, X: 10, Y: 20})
	b.PushKey(KeyEvent{Action: KeyDown, Code: 65})

	pointers, keys := b.Events()
	if len(pointers) != 2 {
		t.Fatalf("%d pointer events, want 2", len(pointers))
	}
	if len(keys) != 1 {
		t.Fatalf("%d key events, want 1", len(keys))
	}
	if pointers[0].Action != PointerDown || pointers[0].X != 10 || pointers[0].Y != 20 {
		t.Errorf("unexpected first pointer event: %+v", pointers[0])
	}

	b.Clear()
	pointers, keys = b.Events()
	if len(pointers) != 0 || len(keys) != 0 {
		t.Errorf("buffer not empty after Clear: %d pointer, %d key events", len(pointers), len(keys))
	}
}

func TestBufferPreservesEventOrder(t *testing.T) {
	b := NewBuffer()

	b.PushPointer(PointerEvent{Action: PointerDown, X: 1})
	b.PushPointer(PointerEvent{Action: PointerMove, X: 2})
	b.PushPointer(PointerEvent{Action: PointerUp, X: 3})

	pointers, _ := b.Events()
	want := []PointerAction{PointerDown, PointerMove, PointerUp}
	for i, a := range want {
		if pointers[i].Action != a {
			t.Errorf("event %d action = %v, want %v", i, pointers[i].Action, a)
		}
	}
}

func TestBufferReusableAfterClear(t *testing.T) {
	b := NewBuffer()

	b.PushKey(KeyEvent{Action: KeyDown, Code: 1})
	b.Clear()
	b.PushKey(KeyEvent{Action: KeyUp, Code: 2})

	_, keys := b.Events()
	if len(keys) != 1 || keys[0].Code != 2 {
		t.Errorf("unexpected keys after reuse: %+v", keys)
	}
}
