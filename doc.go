// Package inkwell is the interaction core of an infinite-canvas drawing
// surface: a pannable, zoomable viewport over a scene of rectangles and text,
// with in-place text entry.
//
// The core is host-agnostic. A host (see the ebitenhost package for an
// [Ebitengine] implementation) translates its window events into [Event]
// values, feeds them to [Editor.Dispatch], advances time with [Editor.Tick],
// and renders from the editor's [Viewport], [Scene], and [TextEntry].
//
// # Quick start
//
//	ed := inkwell.NewEditor()
//	ed.Scene().AddRect(200, 150, 200, 200)
//
//	// In the host's update loop:
//	ed.Dispatch(inkwell.PointerEvent{Type: inkwell.PointerDown, X: 250, Y: 200,
//		Modifiers: inkwell.ModCtrl})
//	ed.Tick(time.Second / 60)
//
// # Coordinate spaces
//
// Objects live in world space. Pointer events arrive in screen space.
// [Viewport.ToWorld] and [Viewport.ToScreen] convert between the two:
//
//	screen = world*zoom + pan
//
// Wheel events zoom about the cursor, so the world point under the pointer
// stays put. Zoom is clamped to [Viewport.MinZoom, Viewport.MaxZoom].
//
// # Modes
//
// The editor is always in exactly one [Mode]:
//
//   - [ModeIdle]: nothing in progress.
//   - [ModePanning]: middle or right button, or left with the pan modifier
//     (Alt by default). Pointer moves translate the view.
//   - [ModeDragging]: left button with the drag modifier (Ctrl by default)
//     over an object. Pointer moves translate the object.
//   - [ModeTyping]: left button on anything else. Keys edit the entry; Enter
//     commits a text object, Escape cancels.
//
// Entering a mode discards the previous mode's state. Pointer release ends
// panning and dragging; typing continues until Enter, Escape, or the next
// press.
//
// # Integration
//
// Register callbacks with [Editor.OnModeChange], [Editor.OnCommit],
// [Editor.OnDrag], and [Editor.OnZoom], or forward everything to an
// [EventSink] (the inkwell/ecs module ships a [Donburi] sink). Input can be
// scripted with [LoadScript] for demos and visual checks.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package inkwell
