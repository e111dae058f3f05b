package inkwell

import "testing"

func TestOnModeChangeSequence(t *testing.T) {
	e := NewEditor()
	var got []ModeChangeContext
	e.OnModeChange(func(ctx ModeChangeContext) { got = append(got, ctx) })

	e.Dispatch(down(10, 10, MouseButtonLeft, 0))
	e.Dispatch(down(20, 20, MouseButtonLeft, 0)) // restart typing
	e.Dispatch(key(KeyEscape))
	e.Dispatch(key(KeyEscape)) // already idle

	want := []ModeChangeContext{
		{ModeIdle, ModeTyping},
		{ModeTyping, ModeTyping},
		{ModeTyping, ModeIdle},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d mode changes %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOnCommitContext(t *testing.T) {
	e := NewEditor()
	e.Viewport().PanX = 5
	var ctx CommitContext
	calls := 0
	e.OnCommit(func(c CommitContext) { ctx = c; calls++ })

	e.Dispatch(down(105, 100, MouseButtonLeft, 0))
	typeString(e, "menu")
	e.Dispatch(key(KeyEnter))

	if calls != 1 {
		t.Fatalf("commit callbacks = %d, want 1", calls)
	}
	if ctx.Object == nil || ctx.Object.Content != "menu" {
		t.Errorf("Object = %v, want text \"menu\"", ctx.Object)
	}
	if ctx.ScreenX != 105 || ctx.ScreenY != 100+commitMenuOffset {
		t.Errorf("menu anchor = (%v,%v), want (105,%v)", ctx.ScreenX, ctx.ScreenY, 100+commitMenuOffset)
	}
}

func TestOnCommitNotFiredForRejectedBuffer(t *testing.T) {
	e := NewEditor()
	e.OnCommit(func(CommitContext) { t.Error("commit fired for empty buffer") })
	e.Dispatch(down(0, 0, MouseButtonLeft, 0))
	e.Dispatch(key(KeyEnter))
}

func TestOnZoomContext(t *testing.T) {
	e := NewEditor()
	var got ZoomContext
	e.OnZoom(func(c ZoomContext) { got = c })
	e.Dispatch(WheelEvent{X: 40, Y: 30, DeltaY: -100})
	if got.ScreenX != 40 || got.ScreenY != 30 || got.PrevZoom != 1 || !approxEqual(got.Zoom, 1.1, epsilon) {
		t.Errorf("ZoomContext = %+v", got)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	e := NewEditor()
	e.Scene().AddRect(0, 0, 100, 100)

	var a, b int
	ha := e.OnDrag(func(DragContext) { a++ })
	e.OnDrag(func(DragContext) { b++ })

	e.Dispatch(down(10, 10, MouseButtonLeft, ModCtrl))
	e.Dispatch(move(20, 20))
	ha.Remove()
	ha.Remove() // second remove is a no-op
	e.Dispatch(move(30, 30))

	if a != 1 || b != 2 {
		t.Errorf("calls = %d,%d, want 1,2", a, b)
	}
}

func TestCallbackRemovesItselfWhileFiring(t *testing.T) {
	e := NewEditor()
	var once, other int
	var h CallbackHandle
	h = e.OnModeChange(func(ModeChangeContext) {
		once++
		h.Remove()
	})
	e.OnModeChange(func(ModeChangeContext) { other++ })

	e.Dispatch(down(0, 0, MouseButtonLeft, 0))
	if once != 1 || other != 1 {
		t.Fatalf("after first transition calls = %d,%d, want 1,1", once, other)
	}

	e.Dispatch(key(KeyEscape))
	if once != 1 || other != 2 {
		t.Errorf("after second transition calls = %d,%d, want 1,2", once, other)
	}
}

func TestCallbackRemovesLaterHandlerWhileFiring(t *testing.T) {
	e := NewEditor()
	e.Scene().AddRect(0, 0, 100, 100)
	var a, b, c int
	var hb CallbackHandle
	e.OnDrag(func(DragContext) {
		a++
		hb.Remove()
	})
	hb = e.OnDrag(func(DragContext) { b++ })
	e.OnDrag(func(DragContext) { c++ })

	e.Dispatch(down(10, 10, MouseButtonLeft, ModCtrl))
	e.Dispatch(move(20, 20))
	e.Dispatch(move(30, 30))

	// b was captured by the first step's loop before its removal.
	if a != 2 || b != 1 || c != 2 {
		t.Errorf("calls = %d,%d,%d, want 2,1,2", a, b, c)
	}
}

func TestZeroCallbackHandleRemove(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}
