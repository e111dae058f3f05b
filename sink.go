package inkwell

// EventSink is the interface for optional external integration (ECS, logs,
// network mirrors). When set on an Editor, canvas events are forwarded to it.
type EventSink interface {
	EmitEvent(event CanvasEvent)
}

// CanvasEventType identifies a kind of canvas event.
type CanvasEventType uint8

const (
	CanvasModeChange CanvasEventType = iota // the interaction mode changed
	CanvasCommit                            // a text object was created
	CanvasDrag                              // an object moved by one drag step
	CanvasPan                               // the viewport panned
	CanvasZoom                              // the viewport zoom changed
	CanvasScroll                            // a scrollable object scrolled
)

// CanvasEvent carries canvas state changes for the sink bridge.
type CanvasEvent struct {
	Type     CanvasEventType
	ObjectID uint32
	Kind     ObjectKind
	// X and Y are the object's world origin for object events, the screen
	// anchor for zoom events, and the new pan for pan events.
	X, Y float64
	// DeltaX and DeltaY are world units for drag, screen units for pan.
	// Scroll events use DeltaY only.
	DeltaX, DeltaY float64
	Zoom           float64
	Mode, PrevMode Mode
	Content        string
}

// SetEventSink sets the optional event bridge. Nil disables it.
func (e *Editor) SetEventSink(sink EventSink) {
	e.sink = sink
}

func (e *Editor) emit(ev CanvasEvent) {
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(ev)
}
