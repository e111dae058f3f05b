package inkwell

import "slices"

// ModeChangeContext describes a mode transition.
type ModeChangeContext struct {
	From, To Mode
}

// CommitContext describes a text object created by a typing session.
// ScreenX and ScreenY sit just below the new text, where a host can place a
// context menu.
type CommitContext struct {
	Object           *Object
	ScreenX, ScreenY float64
}

// DragContext describes one drag step of an object.
type DragContext struct {
	Object *Object
	// DeltaX and DeltaY are the world-space movement of this step.
	DeltaX, DeltaY float64
}

// ZoomContext describes a viewport zoom.
type ZoomContext struct {
	ScreenX, ScreenY float64
	Zoom, PrevZoom   float64
}

// CallbackType identifies which registry a CallbackHandle belongs to.
type CallbackType uint8

const (
	CallbackModeChange CallbackType = iota
	CallbackCommit
	CallbackDrag
	CallbackZoom
)

type handler[T any] struct {
	id uint32
	fn func(T)
}

type handlerRegistry struct {
	modeChange []handler[ModeChangeContext]
	commit     []handler[CommitContext]
	drag       []handler[DragContext]
	zoom       []handler[ZoomContext]
	nextID     uint32
}

// CallbackHandle allows removing a registered editor callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event CallbackType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case CallbackModeChange:
		h.reg.modeChange = removeHandler(h.reg.modeChange, h.id)
	case CallbackCommit:
		h.reg.commit = removeHandler(h.reg.commit, h.id)
	case CallbackDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id)
	case CallbackZoom:
		h.reg.zoom = removeHandler(h.reg.zoom, h.id)
	}
}

// removeHandler returns a new slice without id. The old backing array is
// left intact because a fire loop may still be ranging over it.
func removeHandler[T any](s []handler[T], id uint32) []handler[T] {
	for i := range s {
		if s[i].id == id {
			return slices.Delete(slices.Clone(s), i, i+1)
		}
	}
	return s
}

func addHandler[T any](reg *handlerRegistry, s *[]handler[T], event CallbackType, fn func(T)) CallbackHandle {
	reg.nextID++
	id := reg.nextID
	*s = append(*s, handler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: reg, event: event}
}

// OnModeChange registers a callback fired after every mode transition.
func (e *Editor) OnModeChange(fn func(ModeChangeContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.modeChange, CallbackModeChange, fn)
}

// OnCommit registers a callback fired when a text object is created.
func (e *Editor) OnCommit(fn func(CommitContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.commit, CallbackCommit, fn)
}

// OnDrag registers a callback fired for each drag step of an object.
func (e *Editor) OnDrag(fn func(DragContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.drag, CallbackDrag, fn)
}

// OnZoom registers a callback fired when the viewport zoom changes.
func (e *Editor) OnZoom(fn func(ZoomContext)) CallbackHandle {
	return addHandler(&e.handlers, &e.handlers.zoom, CallbackZoom, fn)
}

// --- Event dispatch ---

func (e *Editor) fireModeChange(from, to Mode) {
	ctx := ModeChangeContext{From: from, To: to}
	for _, h := range e.handlers.modeChange {
		h.fn(ctx)
	}
	e.emit(CanvasEvent{Type: CanvasModeChange, Mode: to, PrevMode: from})
}

func (e *Editor) fireCommit(obj *Object) {
	sx, sy := e.viewport.ToScreen(obj.X, obj.Y)
	ctx := CommitContext{Object: obj, ScreenX: sx, ScreenY: sy + commitMenuOffset}
	for _, h := range e.handlers.commit {
		h.fn(ctx)
	}
	e.emit(CanvasEvent{
		Type: CanvasCommit, ObjectID: obj.ID, Kind: obj.kind,
		X: obj.X, Y: obj.Y, Content: obj.Content,
	})
}

func (e *Editor) fireDrag(obj *Object, dx, dy float64) {
	ctx := DragContext{Object: obj, DeltaX: dx, DeltaY: dy}
	for _, h := range e.handlers.drag {
		h.fn(ctx)
	}
	e.emit(CanvasEvent{
		Type: CanvasDrag, ObjectID: obj.ID, Kind: obj.kind,
		X: obj.X, Y: obj.Y, DeltaX: dx, DeltaY: dy,
	})
}

func (e *Editor) fireZoom(sx, sy, prev float64) {
	ctx := ZoomContext{ScreenX: sx, ScreenY: sy, Zoom: e.viewport.Zoom, PrevZoom: prev}
	for _, h := range e.handlers.zoom {
		h.fn(ctx)
	}
	e.emit(CanvasEvent{Type: CanvasZoom, X: sx, Y: sy, Zoom: e.viewport.Zoom})
}
