package carrier

import (
	"strings"
)

const (
	// markZero and markOne follow a visible code point and encode one bit.
	markZero = '\u200b' // zero width space
	markOne  = '\u200c' // zero width non-joiner

	noMark int8 = -1
)

// Text is a cover text. Each visible code point is one unit; the bit it
// carries is a zero-width mark written right after it.
type Text struct {
	runes []rune
	marks []int8
}

// NewText parses s. Marks already present are attached to the preceding
// visible code point; marks before the first visible code point and
// duplicates are dropped.
func NewText(s string) *Text {
	t := &Text{
		runes: make([]rune, 0, len(s)),
		marks: make([]int8, 0, len(s)),
	}
	for _, r := range s {
		if isMark(r) {
			if n := len(t.runes); n > 0 && t.marks[n-1] == noMark {
				t.marks[n-1] = markValue(r)
			}
			continue
		}
		t.runes = append(t.runes, r)
		t.marks = append(t.marks, noMark)
	}
	return t
}

// String renders the text with its marks.
func (t *Text) String() string {
	var b strings.Builder
	b.Grow(len(t.runes) * 4)
	for i, r := range t.runes {
		b.WriteRune(r)
		switch t.marks[i] {
		case 0:
			b.WriteRune(markZero)
		case 1:
			b.WriteRune(markOne)
		}
	}
	return b.String()
}

// Visible returns the text without any marks.
func (t *Text) Visible() string {
	return string(t.runes)
}

// Marked returns how many units carry a mark.
func (t *Text) Marked() int {
	n := 0
	for _, m := range t.marks {
		if m != noMark {
			n++
		}
	}
	return n
}

func (t *Text) Kind() Kind {
	return KindText
}

func (t *Text) Units() int {
	return len(t.runes)
}

func (t *Text) Clone() Carrier {
	return &Text{
		runes: append([]rune(nil), t.runes...),
		marks: append([]int8(nil), t.marks...),
	}
}

// strip removes every mark; Embed starts from a clean cover.
func (t *Text) strip() {
	for i := range t.marks {
		t.marks[i] = noMark
	}
}

func (t *Text) unit(i int) (uint32, bool) {
	if t.marks[i] == noMark {
		return 0, false
	}
	return uint32(t.marks[i]), true
}

func (t *Text) setUnit(i int, v uint32) {
	t.marks[i] = int8(v & 1)
}

// maxBitsPerUnit is 1: denser substitutions would be visible.
func (t *Text) maxBitsPerUnit() int {
	return 1
}

func isMark(r rune) bool {
	return r == markZero || r == markOne
}

func markValue(r rune) int8 {
	if r == markOne {
		return 1
	}
	return 0
}
