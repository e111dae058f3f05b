package inkwell

import "unicode"

// --- Pointer ---

func (e *Editor) handlePointer(ev PointerEvent) bool {
	e.pointerX, e.pointerY = ev.X, ev.Y
	e.mods = ev.Modifiers

	switch ev.Type {
	case PointerDown:
		return e.pointerDown(ev)
	case PointerMove:
		return e.pointerMove(ev)
	case PointerUp, PointerLeave:
		return e.pointerRelease(ev)
	}
	return false
}

// isPanTrigger reports whether a press should pan: any non-primary button,
// or the primary button with the pan modifier held.
func (e *Editor) isPanTrigger(ev PointerEvent) bool {
	if ev.Button != MouseButtonLeft {
		return true
	}
	return e.panMods != 0 && ev.Modifiers.Has(e.panMods)
}

// pointerDown picks the new mode in priority order: pan, drag, type.
func (e *Editor) pointerDown(ev PointerEvent) bool {
	if e.isPanTrigger(ev) {
		e.enter(&panState{lastX: ev.X, lastY: ev.Y})
		return true
	}

	wx, wy := e.viewport.ToWorld(ev.X, ev.Y)
	hit := e.scene.HitTest(wx, wy)
	e.hover = hit

	if hit != nil && e.dragMods != 0 && ev.Modifiers.Has(e.dragMods) {
		e.enter(&dragState{target: hit, lastX: ev.X, lastY: ev.Y})
		return true
	}

	entry := newTextEntry(wx, wy)
	entry.fadeT = newFade(e.fadeDuration)
	if entry.fadeT == nil {
		entry.Fade = 1
	}
	e.enter(&typeState{entry: entry})
	return true
}

func (e *Editor) pointerMove(ev PointerEvent) bool {
	switch st := e.state.(type) {
	case *panState:
		dx, dy := ev.X-st.lastX, ev.Y-st.lastY
		st.lastX, st.lastY = ev.X, ev.Y
		if dx == 0 && dy == 0 {
			return false
		}
		e.viewport.Pan(dx, dy)
		e.emit(CanvasEvent{
			Type: CanvasPan, X: e.viewport.PanX, Y: e.viewport.PanY,
			DeltaX: dx, DeltaY: dy,
		})
		return true

	case *dragState:
		zoom := e.viewport.Zoom
		dx, dy := (ev.X-st.lastX)/zoom, (ev.Y-st.lastY)/zoom
		st.lastX, st.lastY = ev.X, ev.Y
		if dx == 0 && dy == 0 {
			return false
		}
		st.target.MoveBy(dx, dy)
		e.fireDrag(st.target, dx, dy)
		return true
	}

	return e.updateHover()
}

// updateHover refreshes the hovered object. Returns true if the cursor hint
// changed.
func (e *Editor) updateHover() bool {
	before := e.Cursor()
	wx, wy := e.viewport.ToWorld(e.pointerX, e.pointerY)
	e.hover = e.scene.HitTest(wx, wy)
	return e.Cursor() != before
}

// pointerRelease ends panning and dragging regardless of which button was
// released. A typing session survives: it was opened by the press and waits
// for keys.
func (e *Editor) pointerRelease(ev PointerEvent) bool {
	if ev.Type == PointerLeave {
		e.hover = nil
	}
	switch e.state.(type) {
	case *panState, *dragState:
		e.enter(idleState{})
		return true
	}
	return false
}

// --- Keyboard ---

func (e *Editor) handleKey(ev KeyEvent) bool {
	if ev.Key == KeyControl {
		before := e.Cursor()
		e.mods = ev.Modifiers | ModCtrl
		return e.Cursor() != before
	}

	st, ok := e.state.(*typeState)
	if !ok {
		return false
	}
	entry := st.entry

	switch ev.Key {
	case KeyRune:
		if isShortcut(ev.Modifiers) || !unicode.IsPrint(ev.Rune) {
			return false
		}
		entry.Insert(ev.Rune)
		e.caretVisible = true
		e.blinkAcc = 0
		return true
	case KeyBackspace:
		return entry.Backspace()
	case KeyEnter:
		e.commit(entry)
		return true
	case KeyEscape:
		e.enter(idleState{})
		return true
	}
	return false
}

// commit turns the entry into a text object if the commit policy allows it,
// then leaves typing mode either way.
func (e *Editor) commit(entry *TextEntry) {
	if !entry.committable(e.allowEmpty) {
		e.enter(idleState{})
		return
	}
	obj := e.scene.Append(NewTextObject(entry.Anchor.X, entry.Anchor.Y, entry.Text()))
	e.startFade(obj)
	e.enter(idleState{})
	if e.debug {
		e.debugLogf("commit: %v", obj)
	}
	e.fireCommit(obj)
}

// --- Wheel ---

// handleWheel zooms about the cursor in every mode, unless the topmost
// object under the cursor scrolls on its own.
func (e *Editor) handleWheel(ev WheelEvent) bool {
	if ev.DeltaY == 0 {
		return false
	}
	wx, wy := e.viewport.ToWorld(ev.X, ev.Y)
	if hit := e.scene.HitTest(wx, wy); hit != nil && hit.Scrollable {
		prev := hit.ScrollY
		hit.ScrollBy(ev.DeltaY)
		if hit.ScrollY == prev {
			return false
		}
		e.emit(CanvasEvent{
			Type: CanvasScroll, ObjectID: hit.ID, Kind: hit.kind,
			X: hit.X, Y: hit.Y, DeltaY: hit.ScrollY - prev,
		})
		return true
	}

	prev := e.viewport.Zoom
	if !e.viewport.ZoomAt(ev.X, ev.Y, ev.DeltaY) {
		return false
	}
	e.fireZoom(ev.X, ev.Y, prev)
	return true
}

// isShortcut reports whether a rune typed with mods is a key chord rather
// than text. Ctrl+Alt is AltGr on Windows layouts and still types.
func isShortcut(mods KeyModifiers) bool {
	if mods.Has(ModMeta) {
		return true
	}
	return mods.Has(ModCtrl) && !mods.Has(ModAlt)
}
