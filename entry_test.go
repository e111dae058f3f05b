package inkwell

import "testing"

func TestTextEntryInsert(t *testing.T) {
	e := newTextEntry(3, 4)
	if !e.Empty() || e.Len() != 0 {
		t.Fatalf("new entry: Empty=%v Len=%d", e.Empty(), e.Len())
	}
	for _, r := range "héy" {
		e.Insert(r)
	}
	if e.Text() != "héy" || e.Len() != 3 {
		t.Errorf("Text = %q Len = %d, want %q and 3", e.Text(), e.Len(), "héy")
	}
	if e.Anchor != (Vec2{3, 4}) {
		t.Errorf("Anchor = %v, want (3,4)", e.Anchor)
	}
}

func TestTextEntryBackspace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "abc", "ab"},
		{"single", "a", ""},
		{"multibyte", "a\u00e9", "a"},
		{"combining mark", "xe\u0301", "x"},
		{"flag", "a\U0001F1E9\U0001F1EA", "a"},
		{"zwj family", "b\U0001F468\u200D\U0001F469\u200D\U0001F467", "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTextEntry(0, 0)
			for _, r := range tt.in {
				e.Insert(r)
			}
			if !e.Backspace() {
				t.Fatal("Backspace returned false on a non-empty buffer")
			}
			if e.Text() != tt.want {
				t.Errorf("after Backspace: %q, want %q", e.Text(), tt.want)
			}
		})
	}
}

func TestTextEntryBackspaceEmpty(t *testing.T) {
	e := newTextEntry(0, 0)
	if e.Backspace() {
		t.Error("Backspace on empty buffer returned true")
	}
}

func TestTextEntryCommittable(t *testing.T) {
	tests := []struct {
		text       string
		allowEmpty bool
		want       bool
	}{
		{"", false, false},
		{"  ", false, false},
		{"x", false, true},
		{"", true, true},
		{"  ", true, true},
	}
	for _, tt := range tests {
		e := newTextEntry(0, 0)
		for _, r := range tt.text {
			e.Insert(r)
		}
		if got := e.committable(tt.allowEmpty); got != tt.want {
			t.Errorf("committable(%q, %v) = %v, want %v", tt.text, tt.allowEmpty, got, tt.want)
		}
	}
}
