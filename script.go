package inkwell

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Button string  `json:"button,omitempty"`
	Mods   string  `json:"mods,omitempty"`
	Key    string  `json:"key,omitempty"`
	Text   string  `json:"text,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	button MouseButton
	mods   KeyModifiers
	key    Key
	char   rune
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Runner replays a scripted sequence of input events through an Editor, one
// event per frame, for demos and automated visual checks.
type Runner struct {
	// OnScreenshot is called for "screenshot" steps. Hosts that can capture
	// frames set it; otherwise those steps are skipped.
	OnScreenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	queue     []Event
	done      bool
}

// LoadScript parses a JSON input script and returns a Runner ready to replay
// it. Unknown actions, buttons, modifiers and keys are rejected up front.
func LoadScript(jsonData []byte) (*Runner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range s.Steps {
		if err := s.Steps[i].resolve(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Runner{steps: s.Steps}, nil
}

// resolve validates the step and parses its string fields.
func (st *scriptStep) resolve() error {
	switch st.Action {
	case "press", "move", "release", "leave", "click", "drag",
		"key", "type", "wheel", "resize", "wait", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	var err error
	if st.button, err = ParseMouseButton(st.Button); err != nil {
		return err
	}
	if st.mods, err = ParseModifiers(st.Mods); err != nil {
		return err
	}
	if st.Action == "key" {
		if st.key, st.char, err = parseKey(st.Key); err != nil {
			return err
		}
	}
	return nil
}

// parseKey maps a key name to a Key. A single character is a KeyRune.
func parseKey(name string) (Key, rune, error) {
	switch strings.ToLower(name) {
	case "backspace":
		return KeyBackspace, 0, nil
	case "enter", "return":
		return KeyEnter, 0, nil
	case "escape", "esc":
		return KeyEscape, 0, nil
	case "control", "ctrl":
		return KeyControl, 0, nil
	case "space":
		return KeyRune, ' ', nil
	}
	r := []rune(name)
	if len(r) != 1 {
		return 0, 0, fmt.Errorf("unknown key %q", name)
	}
	return KeyRune, r[0], nil
}

// Done reports whether every step has been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Step advances the runner by one frame and dispatches at most one event.
// Returns true if the editor needs a redraw.
func (r *Runner) Step(e *Editor) bool {
	if r.done {
		return false
	}
	if len(r.queue) == 0 {
		r.advance()
	}
	dirty := false
	if len(r.queue) > 0 {
		ev := r.queue[0]
		copy(r.queue, r.queue[1:])
		r.queue[len(r.queue)-1] = nil
		r.queue = r.queue[:len(r.queue)-1]
		dirty = e.Dispatch(ev)
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
	return dirty
}

// advance consumes wait frames or expands the next step into queued events.
func (r *Runner) advance() {
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}
	st := r.steps[r.cursor]
	r.cursor++

	ptr := func(typ PointerEventType, x, y float64) {
		r.queue = append(r.queue, PointerEvent{
			Type: typ, X: x, Y: y, Button: st.button, Modifiers: st.mods,
		})
	}

	switch st.Action {
	case "press":
		ptr(PointerDown, st.X, st.Y)
	case "move":
		ptr(PointerMove, st.X, st.Y)
	case "release":
		ptr(PointerUp, st.X, st.Y)
	case "leave":
		ptr(PointerLeave, st.X, st.Y)
	case "click":
		ptr(PointerDown, st.X, st.Y)
		ptr(PointerUp, st.X, st.Y)
	case "drag":
		// Press, frames-2 interpolated moves, release at the target.
		frames := max(st.Frames, 2)
		ptr(PointerDown, st.FromX, st.FromY)
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps+1)
			ptr(PointerMove, st.FromX+(st.ToX-st.FromX)*t, st.FromY+(st.ToY-st.FromY)*t)
		}
		ptr(PointerMove, st.ToX, st.ToY)
		ptr(PointerUp, st.ToX, st.ToY)
	case "key":
		r.queue = append(r.queue, KeyEvent{Key: st.key, Rune: st.char, Modifiers: st.mods})
	case "type":
		for _, c := range st.Text {
			r.queue = append(r.queue, KeyEvent{Key: KeyRune, Rune: c, Modifiers: st.mods})
		}
	case "wheel":
		r.queue = append(r.queue, WheelEvent{X: st.X, Y: st.Y, DeltaY: st.DeltaY, Modifiers: st.mods})
	case "resize":
		r.queue = append(r.queue, ResizeEvent{Width: st.Width, Height: st.Height})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if r.OnScreenshot != nil {
			r.OnScreenshot(st.Label)
		}
	}
}

// RunAll replays the remaining script headlessly, ticking the editor by
// frame after every step. Returns the number of frames used.
func (r *Runner) RunAll(e *Editor, frame time.Duration) int {
	frames := 0
	for !r.done {
		r.Step(e)
		e.Tick(frame)
		frames++
	}
	return frames
}
