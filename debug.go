package inkwell

import (
	"fmt"
	"io"
	"os"
)

// debugOut is where debug lines go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, mode
// transitions and commits are printed to stderr.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// DebugMode reports whether debug logging is enabled.
func (e *Editor) DebugMode() bool {
	return e.debug
}

func (e *Editor) debugLogf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[inkwell] "+format+"\n", args...)
}

// DebugSummary returns a one-line description of the editor state, suitable
// for an on-screen overlay.
func (e *Editor) DebugSummary() string {
	v := e.viewport
	s := fmt.Sprintf("mode: %s | zoom: %.3f | pan: (%.1f, %.1f) | objects: %d",
		e.Mode(), v.Zoom, v.PanX, v.PanY, e.scene.Len())
	if entry := e.Entry(); entry != nil {
		s += fmt.Sprintf(" | entry: %q", entry.Text())
	}
	return s
}
