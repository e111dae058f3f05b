package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/inkwell"
)

// wheelScale converts wheel notches into the pixel-style deltas the
// editor's zoom sensitivity is tuned for. Ebitengine reports up as
// positive; the editor zooms in on negative deltas.
const wheelScale = 100

// Backspace auto-repeat, in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	ink inkwell.MouseButton
}{
	{ebiten.MouseButtonLeft, inkwell.MouseButtonLeft},
	{ebiten.MouseButtonRight, inkwell.MouseButtonRight},
	{ebiten.MouseButtonMiddle, inkwell.MouseButtonMiddle},
}

// frameInput is one tick of polled Ebitengine input.
type frameInput struct {
	X, Y   float64
	Inside bool // cursor over the window and the window focused

	// Pressed and Released are indexed by inkwell.MouseButton.
	Pressed, Released [3]bool

	WheelY float64
	Chars  []rune

	Backspace, Enter, Escape, Control bool

	Mods inkwell.KeyModifiers
}

// inputReader turns polled input into editor events. It remembers the last
// pointer position so moves and leaves are only reported on change.
type inputReader struct {
	lastX, lastY float64
	seen         bool
	inside       bool
	chars        []rune
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() inkwell.KeyModifiers {
	var mods inkwell.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= inkwell.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= inkwell.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= inkwell.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= inkwell.ModMeta
	}
	return mods
}

// repeating reports whether key was just pressed or is auto-repeating.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// poll reads this tick's input. width and height are the layout size.
func (r *inputReader) poll(width, height int) frameInput {
	mx, my := ebiten.CursorPosition()
	in := frameInput{
		X:      float64(mx),
		Y:      float64(my),
		Inside: mx >= 0 && my >= 0 && mx < width && my < height && ebiten.IsFocused(),
		Mods:   readModifiers(),
	}
	for _, b := range mouseButtons {
		in.Pressed[b.ink] = inpututil.IsMouseButtonJustPressed(b.eb)
		in.Released[b.ink] = inpututil.IsMouseButtonJustReleased(b.eb)
	}
	_, yoff := ebiten.Wheel()
	in.WheelY = -yoff * wheelScale

	r.chars = ebiten.AppendInputChars(r.chars[:0])
	in.Chars = r.chars

	in.Backspace = repeating(ebiten.KeyBackspace)
	in.Enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	in.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Control = inpututil.IsKeyJustPressed(ebiten.KeyControlLeft) || inpututil.IsKeyJustPressed(ebiten.KeyControlRight)
	return in
}

// events appends the editor events for one tick of input to out. Order:
// leave, move, presses, releases, wheel, keys.
func (r *inputReader) events(in frameInput, out []inkwell.Event) []inkwell.Event {
	mods := in.Mods
	ptr := func(typ inkwell.PointerEventType, b inkwell.MouseButton) {
		out = append(out, inkwell.PointerEvent{Type: typ, X: in.X, Y: in.Y, Button: b, Modifiers: mods})
	}

	if r.inside && !in.Inside {
		ptr(inkwell.PointerLeave, inkwell.MouseButtonLeft)
	}
	r.inside = in.Inside

	moved := !r.seen || in.X != r.lastX || in.Y != r.lastY
	r.lastX, r.lastY, r.seen = in.X, in.Y, true
	if moved && in.Inside {
		ptr(inkwell.PointerMove, inkwell.MouseButtonLeft)
	}

	if in.Inside {
		for _, b := range mouseButtons {
			if in.Pressed[b.ink] {
				ptr(inkwell.PointerDown, b.ink)
			}
		}
	}
	for _, b := range mouseButtons {
		if in.Released[b.ink] {
			ptr(inkwell.PointerUp, b.ink)
		}
	}

	if in.WheelY != 0 && in.Inside {
		out = append(out, inkwell.WheelEvent{X: in.X, Y: in.Y, DeltaY: in.WheelY, Modifiers: mods})
	}

	if in.Control {
		out = append(out, inkwell.KeyEvent{Key: inkwell.KeyControl, Modifiers: mods})
	}
	for _, c := range in.Chars {
		out = append(out, inkwell.KeyEvent{Key: inkwell.KeyRune, Rune: c, Modifiers: mods})
	}
	if in.Backspace {
		out = append(out, inkwell.KeyEvent{Key: inkwell.KeyBackspace, Modifiers: mods})
	}
	if in.Enter {
		out = append(out, inkwell.KeyEvent{Key: inkwell.KeyEnter, Modifiers: mods})
	}
	if in.Escape {
		out = append(out, inkwell.KeyEvent{Key: inkwell.KeyEscape, Modifiers: mods})
	}
	return out
}
