package inkwell

import (
	"fmt"
	"time"
)

// commitMenuOffset is the screen distance below a committed text's baseline
// reported in CommitContext.
const commitMenuOffset = 10

// Editor is the single owner of canvas state: viewport, scene, interaction
// mode, and presentation timers. Hosts feed it events with Dispatch and
// time with Tick, then read it back to render.
//
// An Editor is not safe for concurrent use; all calls must come from the
// goroutine that runs the host's event loop.
type Editor struct {
	viewport *Viewport
	scene    *Scene
	state    modeState

	cfg        Config
	dragMods   KeyModifiers
	panMods    KeyModifiers
	allowEmpty bool

	// Last seen pointer position and modifiers, for the cursor hint.
	pointerX, pointerY float64
	mods               KeyModifiers
	hover              *Object

	caretVisible  bool
	blinkAcc      time.Duration
	blinkInterval time.Duration
	fadeDuration  time.Duration
	fading        []*Object

	handlers handlerRegistry
	sink     EventSink
	debug    bool
}

// NewEditor creates an editor with DefaultConfig and an empty scene.
func NewEditor() *Editor {
	e, err := NewEditorWithConfig(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("inkwell: default config invalid: %v", err))
	}
	return e
}

// NewEditorWithConfig creates an editor with the given configuration.
func NewEditorWithConfig(cfg Config) (*Editor, error) {
	e := &Editor{
		viewport:     NewViewport(),
		scene:        NewScene(),
		state:        idleState{},
		caretVisible: true,
	}
	if err := e.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// ApplyConfig validates cfg and applies it. Pan, zoom, scene content, and the
// current mode are preserved; the zoom is re-clamped to the new bounds.
func (e *Editor) ApplyConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("apply config: %w", err)
	}
	// Validate has already parsed both modifier strings.
	e.dragMods, _ = ParseModifiers(cfg.DragModifier)
	e.panMods, _ = ParseModifiers(cfg.PanModifier)
	e.allowEmpty = cfg.AllowEmptyCommit
	e.blinkInterval = cfg.BlinkInterval()
	e.fadeDuration = cfg.FadeDuration()

	v := e.viewport
	v.Sensitivity = cfg.ZoomSensitivity
	v.MinZoom = cfg.MinZoom
	v.MaxZoom = cfg.MaxZoom
	v.SetZoomAt(v.Width/2, v.Height/2, v.Zoom)

	e.scene.SetTextHeight(cfg.TextHeight)
	e.cfg = cfg
	e.SetDebugMode(cfg.Debug)
	return nil
}

// Config returns the active configuration.
func (e *Editor) Config() Config {
	return e.cfg
}

// Viewport returns the editor's viewport.
func (e *Editor) Viewport() *Viewport {
	return e.viewport
}

// Scene returns the editor's scene.
func (e *Editor) Scene() *Scene {
	return e.scene
}

// Mode returns the active interaction mode.
func (e *Editor) Mode() Mode {
	return e.state.mode()
}

// Entry returns the live text entry while typing, or nil.
func (e *Editor) Entry() *TextEntry {
	if st, ok := e.state.(*typeState); ok {
		return st.entry
	}
	return nil
}

// Dragged returns the object being dragged, or nil.
func (e *Editor) Dragged() *Object {
	if st, ok := e.state.(*dragState); ok {
		return st.target
	}
	return nil
}

// Hover returns the topmost object under the last pointer position, or nil.
func (e *Editor) Hover() *Object {
	return e.hover
}

// CaretVisible reports the blink phase of the text caret.
func (e *Editor) CaretVisible() bool {
	return e.caretVisible
}

// Cursor returns the pointer shape the host should display.
func (e *Editor) Cursor() Cursor {
	switch e.state.(type) {
	case *panState:
		return CursorMove
	case *dragState:
		return CursorGrabbing
	}
	if e.hover != nil && e.dragMods != 0 && e.mods.Has(e.dragMods) {
		return CursorGrab
	}
	if e.Mode() == ModeTyping {
		return CursorText
	}
	return CursorDefault
}

// Dispatch routes one input event to the active mode. Events with no
// matching transition are ignored. Returns true if a redraw is needed.
func (e *Editor) Dispatch(ev Event) bool {
	switch ev := ev.(type) {
	case PointerEvent:
		return e.handlePointer(ev)
	case KeyEvent:
		return e.handleKey(ev)
	case WheelEvent:
		return e.handleWheel(ev)
	case ResizeEvent:
		e.viewport.Resize(ev.Width, ev.Height)
		return true
	}
	return false
}

// enter replaces the active mode. The previous mode's transient state is
// dropped as a whole.
func (e *Editor) enter(st modeState) {
	from := e.state.mode()
	e.state = st
	to := st.mode()
	if to == ModeTyping {
		e.caretVisible = true
		e.blinkAcc = 0
	}
	if e.debug {
		e.debugLogf("mode: %s -> %s", from, to)
	}
	if from != to || to == ModeTyping {
		e.fireModeChange(from, to)
	}
}

// Cancel returns to idle, discarding any drag binding or text entry.
// Returns false if the editor was already idle.
func (e *Editor) Cancel() bool {
	if e.Mode() == ModeIdle {
		return false
	}
	e.enter(idleState{})
	return true
}

// ResetView restores zero pan and zoom 1.
func (e *Editor) ResetView() {
	prev := e.viewport.Zoom
	e.viewport.Reset()
	if prev != e.viewport.Zoom {
		e.fireZoom(0, 0, prev)
	}
}
