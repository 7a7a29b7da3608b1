package textedit

import (
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

func TestInsert_LengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.StringMatching(`[a-z ,.]{0,20}`).Draw(t, "initial")
		cursor := rapid.IntRange(0, utf8.RuneCountInString(initial)).Draw(t, "cursor")
		s := rapid.StringMatching(`[a-zA-Z0-9 ,.]{0,20}`).Draw(t, "s")

		b := New()
		b.Insert(initial)
		b.SetCursorTo(AnchorBegin)
		for b.Cursor() < cursor {
			b.MoveCursor(DirectionRight, false, false)
		}

		before := b.Len()
		b.Insert(s)
		n := utf8.RuneCountInString(s)
		if b.Len() != before+n {
			t.Fatalf("Len() = %d, want %d", b.Len(), before+n)
		}
		if b.Cursor() != cursor+n {
			t.Fatalf("Cursor() = %d, want %d", b.Cursor(), cursor+n)
		}
	})
}

func TestBuffer_InvariantsProperty(t *testing.T) {
	controls := []Control{
		ControlBackspace, ControlDelete, ControlWordBackspace, ControlWordDelete,
		ControlSelectAll, ControlCut, ControlPaste, ControlCopy,
	}
	directions := []Direction{DirectionLeft, DirectionRight, DirectionHome, DirectionEnd}

	rapid.Check(t, func(t *rapid.T) {
		b := New(WithClipboard(&MemoryClipboard{Text: "clip"}))
		events := 0
		b.Subscribe(func(Event) { events++ })

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			events = 0
			changed := false
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				b.Insert(rapid.StringMatching(`[a-z ,.]{0,5}`).Draw(t, "text"))
				changed = events > 0
			case 1:
				changed = b.ApplyControl(rapid.SampledFrom(controls).Draw(t, "control"))
			case 2:
				dir := rapid.SampledFrom(directions).Draw(t, "dir")
				changed = b.MoveCursor(dir, rapid.Bool().Draw(t, "extend"), rapid.Bool().Draw(t, "word"))
			}

			if !changed && events != 0 {
				t.Fatalf("step %d: no change reported but %d events fired", i, events)
			}
			if b.Cursor() < 0 || b.Cursor() > b.Len() {
				t.Fatalf("step %d: cursor %d outside [0, %d]", i, b.Cursor(), b.Len())
			}
			sel := b.Selection()
			if sel.Start < 0 || sel.Start > sel.End || sel.End > b.Len() {
				t.Fatalf("step %d: selection %+v outside buffer of length %d", i, sel, b.Len())
			}
		}
	})
}

func TestWordBoundary_AlwaysProgresses(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := []rune(rapid.StringMatching(`[a-c ,.]{0,30}`).Draw(t, "text"))
		from := rapid.IntRange(0, len(text)).Draw(t, "from")

		next := nextWordBoundary(text, from)
		if from < len(text) && next <= from {
			t.Fatalf("nextWordBoundary(%q, %d) = %d, want > %d", string(text), from, next, from)
		}
		prev := prevWordBoundary(text, from)
		if from > 0 && prev >= from {
			t.Fatalf("prevWordBoundary(%q, %d) = %d, want < %d", string(text), from, prev, from)
		}
	})
}
