package inkwell

import (
	"testing"
	"time"
)

const frame = time.Second / 60

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"steps":[`},
		{"no steps", `{"steps":[]}`},
		{"unknown action", `{"steps":[{"action":"teleport"}]}`},
		{"bad button", `{"steps":[{"action":"press","button":"fourth"}]}`},
		{"bad mods", `{"steps":[{"action":"press","mods":"hyper"}]}`},
		{"bad key", `{"steps":[{"action":"key","key":"f13"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.json)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		key  Key
		char rune
	}{
		{"Backspace", KeyBackspace, 0},
		{"return", KeyEnter, 0},
		{"esc", KeyEscape, 0},
		{"ctrl", KeyControl, 0},
		{"space", KeyRune, ' '},
		{"q", KeyRune, 'q'},
		{"é", KeyRune, 'é'},
	}
	for _, tt := range tests {
		k, c, err := parseKey(tt.in)
		if err != nil || k != tt.key || c != tt.char {
			t.Errorf("parseKey(%q) = %v, %q, %v; want %v, %q", tt.in, k, c, err, tt.key, tt.char)
		}
	}
}

func TestRunnerDragScript(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"press","x":250,"y":200,"mods":"ctrl"},
		{"action":"move","x":270,"y":230,"mods":"ctrl"},
		{"action":"release","x":270,"y":230}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	e := NewEditor()
	rect := e.Scene().AddRect(200, 150, 200, 200)

	if frames := r.RunAll(e, frame); frames != 3 {
		t.Errorf("frames = %d, want 3", frames)
	}
	if !r.Done() {
		t.Error("runner not done after RunAll")
	}
	if rect.X != 220 || rect.Y != 180 || e.Mode() != ModeIdle {
		t.Errorf("rect = (%v,%v) mode = %v, want (220,180) idle", rect.X, rect.Y, e.Mode())
	}
}

func TestRunnerDragAction(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"drag","fromX":50,"fromY":50,"toX":90,"toY":110,"frames":5,"mods":"ctrl"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	e := NewEditor()
	rect := e.Scene().AddRect(0, 0, 100, 100)

	var steps int
	e.OnDrag(func(DragContext) { steps++ })

	if frames := r.RunAll(e, frame); frames != 6 {
		t.Errorf("frames = %d, want 6", frames)
	}
	if !approxEqual(rect.X, 40, 1e-9) || !approxEqual(rect.Y, 60, 1e-9) {
		t.Errorf("rect = (%v,%v), want (40,60)", rect.X, rect.Y)
	}
	if steps != 4 {
		t.Errorf("drag steps = %d, want 4", steps)
	}
}

func TestRunnerTextCommit(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"click","x":100,"y":100},
		{"action":"type","text":"hi"},
		{"action":"key","key":"enter"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	e := NewEditor()
	if frames := r.RunAll(e, frame); frames != 5 {
		t.Errorf("frames = %d, want 5", frames)
	}
	if e.Scene().Len() != 1 || e.Scene().At(0).Content != "hi" {
		t.Fatalf("scene = %v, want one text \"hi\"", e.Scene().Objects())
	}
}

func TestRunnerPanZoomResize(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"resize","width":800,"height":600},
		{"action":"press","x":0,"y":0,"button":"middle"},
		{"action":"move","x":30,"y":-10},
		{"action":"release","x":30,"y":-10,"button":"middle"},
		{"action":"wheel","x":400,"y":300,"deltaY":-100}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	e := NewEditor()
	r.RunAll(e, frame)

	v := e.Viewport()
	if v.Width != 800 || v.Height != 600 {
		t.Errorf("size = %vx%v, want 800x600", v.Width, v.Height)
	}
	if !approxEqual(v.Zoom, 1.1, epsilon) {
		t.Errorf("Zoom = %v, want 1.1", v.Zoom)
	}
	// (400,300) mapped to world (370,310) before the zoom.
	wx, wy := v.ToWorld(400, 300)
	if !approxEqual(wx, 370, 1e-9) || !approxEqual(wy, 310, 1e-9) {
		t.Errorf("ToWorld(400,300) = (%v,%v), want (370,310)", wx, wy)
	}
}

func TestRunnerWaitAndScreenshot(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[
		{"action":"wait","frames":3},
		{"action":"screenshot","label":"after-wait"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	var labels []string
	r.OnScreenshot = func(label string) { labels = append(labels, label) }

	e := NewEditor()
	frames := 0
	for !r.Done() {
		r.Step(e)
		frames++
		if frames > 100 {
			t.Fatal("runner never finished")
		}
	}
	if frames != 4 {
		t.Errorf("frames = %d, want 4", frames)
	}
	if len(labels) != 1 || labels[0] != "after-wait" {
		t.Errorf("screenshots = %v, want [after-wait]", labels)
	}
}

func TestRunnerStepAfterDone(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps":[{"action":"leave"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	e := NewEditor()
	r.Step(e)
	if !r.Done() {
		t.Fatal("single-step script not done")
	}
	if r.Step(e) {
		t.Error("Step after Done should report no change")
	}
}
