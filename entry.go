package inkwell

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/tanema/gween"
)

// TextEntry is the in-progress text of a typing session. It lives only while
// the editor is in ModeTyping.
type TextEntry struct {
	// Anchor is the world-space baseline-left position of the text.
	Anchor Vec2
	// Fade is the opacity of the live text and caret, rising from 0 to 1
	// after the session starts.
	Fade float64

	text  string
	fadeT *gween.Tween
}

func newTextEntry(x, y float64) *TextEntry {
	return &TextEntry{Anchor: Vec2{X: x, Y: y}}
}

// Text returns the current buffer.
func (t *TextEntry) Text() string {
	return t.text
}

// Empty reports whether the buffer has no characters.
func (t *TextEntry) Empty() bool {
	return t.text == ""
}

// Len returns the number of user-perceived characters in the buffer.
func (t *TextEntry) Len() int {
	return uniseg.GraphemeClusterCount(t.text)
}

// Insert appends r to the buffer.
func (t *TextEntry) Insert(r rune) {
	t.text += string(r)
}

// Backspace removes the last grapheme cluster, so a flag or a combined emoji
// goes away in one keystroke. Returns false on an empty buffer.
func (t *TextEntry) Backspace() bool {
	if t.text == "" {
		return false
	}
	last := 0
	g := uniseg.NewGraphemes(t.text)
	for g.Next() {
		last, _ = g.Positions()
	}
	t.text = t.text[:last]
	return true
}

// committable reports whether the buffer may become a text object.
func (t *TextEntry) committable(allowEmpty bool) bool {
	if allowEmpty {
		return true
	}
	return strings.TrimSpace(t.text) != ""
}
