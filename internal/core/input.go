package core

import (
	"time"
)

// Key names understood by the scenes. The platform layer translates its own
// key events into these names.
const (
	KeyUp      = "Up"
	KeyDown    = "Down"
	KeyLeft    = "Left"
	KeyRight   = "Right"
	KeyConfirm = "Space"
	KeyDismiss = "Escape"
	KeyFire    = "X"
)

// Mouse button names.
const (
	MouseLeft   = "Left"
	MouseMiddle = "Middle"
	MouseRight  = "Right"
)

// DefaultHoldWindow is how long a key stays held after its last press event.
// Terminals report key presses and auto-repeats but never releases, so a key
// is considered down until the repeat stream stops for this long.
const DefaultHoldWindow = 120 * time.Millisecond

// KeyState tracks which named keys are currently held.
// It turns edge events (presses, repeats, releases) into level-triggered state
// that can be polled once per tick.
type KeyState struct {
	hold  time.Duration
	until map[string]time.Time
	order []string // Insertion order of currently held keys
}

// NewKeyState creates an empty key state. A hold of 0 or less means keys stay
// held until Release is called.
func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold:  hold,
		until: make(map[string]time.Time),
	}
}

// Press marks the key held, extending its hold window from at.
func (k *KeyState) Press(name string, at time.Time) {
	if _, held := k.until[name]; !held {
		k.order = append(k.order, name)
	}
	if k.hold <= 0 {
		k.until[name] = time.Time{}
		return
	}
	k.until[name] = at.Add(k.hold)
}

// Release marks the key up immediately.
func (k *KeyState) Release(name string) {
	if _, held := k.until[name]; !held {
		return
	}
	delete(k.until, name)
	k.removeFromOrder(name)
}

// Expire releases every key whose hold window ended before now.
func (k *KeyState) Expire(now time.Time) {
	if k.hold <= 0 {
		return
	}
	for _, name := range append([]string(nil), k.order...) {
		if deadline := k.until[name]; now.After(deadline) {
			delete(k.until, name)
			k.removeFromOrder(name)
		}
	}
}

// Held reports whether the key is currently down.
func (k *KeyState) Held(name string) bool {
	_, held := k.until[name]
	return held
}

// Pressed returns the held keys in the order they were first pressed.
func (k *KeyState) Pressed() []string {
	return append([]string(nil), k.order...)
}

// Clear releases every key.
func (k *KeyState) Clear() {
	clear(k.until)
	k.order = k.order[:0]
}

func (k *KeyState) removeFromOrder(name string) {
	for i, n := range k.order {
		if n == name {
			k.order = append(k.order[:i], k.order[i+1:]...)
			return
		}
	}
}
