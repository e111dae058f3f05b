// Package ecs provides ECS adapters for inkwell's canvas event stream.
//
// The primary adapter is [NewDonburiSink], which bridges canvas events
// (text commits, object drags, viewport pans and zooms, mode changes) into a
// [Donburi] world as typed events. Subscribe to [CanvasEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	editor.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
