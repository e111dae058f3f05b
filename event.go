package inkwell

// Event is an input event delivered by the host. The concrete types are
// PointerEvent, KeyEvent, WheelEvent, and ResizeEvent.
type Event interface {
	isEvent()
}

// PointerEventType identifies a kind of pointer event.
type PointerEventType uint8

const (
	PointerDown  PointerEventType = iota // a button was pressed
	PointerMove                          // the pointer moved
	PointerUp                            // a button was released
	PointerLeave                         // the pointer left the drawing area
)

func (t PointerEventType) String() string {
	switch t {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent carries a pointer position in screen space.
type PointerEvent struct {
	Type      PointerEventType
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// Key identifies a keyboard key relevant to the editor.
type Key uint8

const (
	KeyRune      Key = iota // a printable character; see KeyEvent.Rune
	KeyBackspace            // delete the last character
	KeyEnter                // commit the text entry
	KeyEscape               // cancel the text entry
	KeyControl              // the control key itself
)

// KeyEvent is a key press.
type KeyEvent struct {
	Key       Key
	Rune      rune // valid when Key is KeyRune
	Modifiers KeyModifiers
}

// WheelEvent is a scroll-wheel movement at a screen position. Positive
// DeltaY scrolls down (zooms out).
type WheelEvent struct {
	X, Y      float64
	DeltaY    float64
	Modifiers KeyModifiers
}

// ResizeEvent reports a new pixel size for the drawing area.
type ResizeEvent struct {
	Width, Height float64
}

func (PointerEvent) isEvent() {}
func (KeyEvent) isEvent()     {}
func (WheelEvent) isEvent()   {}
func (ResizeEvent) isEvent()  {}
