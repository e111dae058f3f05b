package inkwell

import "fmt"

// Mode is the editor's exclusive interaction mode.
type Mode uint8

const (
	ModeIdle     Mode = iota // no interaction in progress
	ModePanning              // dragging the view
	ModeDragging             // moving an object
	ModeTyping               // entering text
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePanning:
		return "panning"
	case ModeDragging:
		return "dragging"
	case ModeTyping:
		return "typing"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// modeState is the transient state of the active mode. Exactly one value is
// held by the editor at any time; replacing it discards the previous mode's
// state in full.
type modeState interface {
	mode() Mode
}

type idleState struct{}

// panState tracks the last screen position seen while panning.
type panState struct {
	lastX, lastY float64
}

// dragState binds the dragged object and the last screen position.
type dragState struct {
	target       *Object
	lastX, lastY float64
}

type typeState struct {
	entry *TextEntry
}

func (idleState) mode() Mode  { return ModeIdle }
func (*panState) mode() Mode  { return ModePanning }
func (*dragState) mode() Mode { return ModeDragging }
func (*typeState) mode() Mode { return ModeTyping }
