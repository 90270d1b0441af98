package input

// Key names used by the controllers.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEscape     = "Escape"
)

// Modifiers records the modifier keys held during an event.
type Modifiers struct {
	Shift bool
	Alt   bool
	Ctrl  bool
	Meta  bool
}

// Capturer is implemented by event targets that support platform pointer
// capture. Both calls are best-effort.
type Capturer interface {
	SetPointerCapture(pointerID int) error
	ReleasePointerCapture(pointerID int) error
}

// PointerEvent is a pointer position in screen coordinates.
type PointerEvent struct {
	X, Y      float64
	PointerID int
	Modifiers
	// Target is the element the event originated on, if it supports capture.
	Target Capturer
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key string
	Modifiers
}

// IsArrow reports whether the key is one of the four arrow keys.
func (e KeyEvent) IsArrow() bool {
	switch e.Key {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return true
	}
	return false
}
