package inkwell

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// newFade creates a 0→1 opacity tween. A non-positive duration yields nil,
// meaning "already opaque".
func newFade(d time.Duration) *gween.Tween {
	if d <= 0 {
		return nil
	}
	return gween.New(0, 1, float32(d.Seconds()), ease.Linear)
}

// stepFade advances a fade tween by dt and writes the value to *alpha.
// Returns the tween to keep (nil once finished).
func stepFade(t *gween.Tween, alpha *float64, dt time.Duration) *gween.Tween {
	if t == nil {
		*alpha = 1
		return nil
	}
	val, done := t.Update(float32(dt.Seconds()))
	*alpha = clamp01(float64(val))
	if done {
		*alpha = 1
		return nil
	}
	return t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// startFade begins fading obj in from transparent.
func (e *Editor) startFade(obj *Object) {
	obj.fadeT = newFade(e.fadeDuration)
	if obj.fadeT == nil {
		obj.Fade = 1
		return
	}
	obj.Fade = 0
	e.fading = append(e.fading, obj)
}

// Tick advances time-driven presentation state: caret blink, the typing
// fade-in, and fade-ins of committed text. It never changes the viewport,
// object positions, or the mode. Returns true if a redraw is needed.
func (e *Editor) Tick(dt time.Duration) bool {
	if dt <= 0 {
		return false
	}
	dirty := false

	e.blinkAcc += dt
	for e.blinkInterval > 0 && e.blinkAcc >= e.blinkInterval {
		e.blinkAcc -= e.blinkInterval
		e.caretVisible = !e.caretVisible
		if e.Mode() == ModeTyping {
			dirty = true
		}
	}

	if entry := e.Entry(); entry != nil && entry.fadeT != nil {
		entry.fadeT = stepFade(entry.fadeT, &entry.Fade, dt)
		dirty = true
	}

	if len(e.fading) > 0 {
		kept := e.fading[:0]
		for _, obj := range e.fading {
			obj.fadeT = stepFade(obj.fadeT, &obj.Fade, dt)
			if obj.fadeT != nil {
				kept = append(kept, obj)
			}
		}
		for i := len(kept); i < len(e.fading); i++ {
			e.fading[i] = nil
		}
		e.fading = kept
		dirty = true
	}

	return dirty
}
