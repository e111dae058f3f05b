// Package ecs forwards inkwell editor activity into a Donburi world.
package ecs

import (
	"github.com/phanxgames/inkwell"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CanvasEventType carries every inkwell.CanvasEvent the editor emits. Switch
// on the event's Type: CanvasCommit holds the new text object's ID and
// Content, CanvasDrag the object ID with a world-space DeltaX/DeltaY,
// CanvasPan the new pan in X/Y and the screen delta, CanvasZoom the cursor
// point and new Zoom, CanvasScroll the object ID with its DeltaY, and
// CanvasModeChange Mode and PrevMode.
var CanvasEventType = events.NewEventType[inkwell.CanvasEvent]()

// worldSink publishes onto one world. Events queue until the ECS side calls
// CanvasEventType.ProcessEvents, so the editor never runs subscriber code
// inside Dispatch.
type worldSink struct {
	world donburi.World
}

// NewDonburiSink returns a sink for Editor.SetEventSink that publishes canvas
// events onto world.
func NewDonburiSink(world donburi.World) inkwell.EventSink {
	return &worldSink{world: world}
}

func (s *worldSink) EmitEvent(event inkwell.CanvasEvent) {
	CanvasEventType.Publish(s.world, event)
}
