// Package textedit provides a single-line text editing buffer with a cursor,
// a selection and word-wise movement, driven by printable text and control
// commands.
package textedit

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zyedidia/generic"
)

// ErrInvalidArgument is wrapped by the panics raised for programmer errors,
// such as removing past the end of the buffer.
var ErrInvalidArgument = errors.New("textedit: invalid argument")

// Selection is a half-open rune range [Start, End).
type Selection struct {
	Start, End int
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Empty reports whether the selection covers nothing.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// Buffer is an editable line of text.
//
// A Buffer is not safe for concurrent use; it is meant to live on the
// host's update goroutine.
type Buffer struct {
	text      []rune
	cursor    int
	anchor    int
	selecting bool

	accept    func(rune) bool
	clipboard Clipboard
	observers observers
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithClipboard sets the clipboard used for copy, cut and paste.
func WithClipboard(c Clipboard) Option {
	return func(b *Buffer) {
		b.clipboard = c
	}
}

// WithFilter sets the predicate deciding which runes Insert accepts. Fonts
// that only cover part of Unicode use this to drop glyphs they cannot draw.
func WithFilter(accept func(rune) bool) Option {
	return func(b *Buffer) {
		b.accept = accept
	}
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		accept: unicode.IsPrint,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.clipboard == nil {
		b.clipboard = &MemoryClipboard{}
	}
	return b
}

// Subscribe registers l for every subsequent event. The returned function
// removes it again.
func (b *Buffer) Subscribe(l Listener) func() {
	return b.observers.subscribe(l)
}

// Text returns the buffer contents.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Len returns the length of the buffer in runes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Cursor returns the cursor position as a rune index.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// HasSelection reports whether a non-empty selection is active.
func (b *Buffer) HasSelection() bool {
	return b.selecting && b.anchor != b.cursor
}

// Selection returns the active selection, or an empty selection at the
// cursor when there is none.
func (b *Buffer) Selection() Selection {
	if !b.HasSelection() {
		return Selection{Start: b.cursor, End: b.cursor}
	}
	return Selection{Start: min(b.anchor, b.cursor), End: max(b.anchor, b.cursor)}
}

// SelectedText returns the text covered by the selection.
func (b *Buffer) SelectedText() string {
	sel := b.Selection()
	return string(b.text[sel.Start:sel.End])
}

// Insert types s at the cursor, replacing the selection if there is one.
// It panics if s is not valid UTF-8.
func (b *Buffer) Insert(s string) {
	if !utf8.ValidString(s) {
		panic(fmt.Errorf("%w: insert of invalid UTF-8 %q", ErrInvalidArgument, s))
	}
	b.insert(s)
}

func (b *Buffer) insert(s string) bool {
	runes := make([]rune, 0, len(s))
	for _, r := range s {
		if b.accept == nil || b.accept(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return false
	}

	b.deleteSelection()

	start := b.cursor
	b.text = slices.Insert(b.text, start, runes...)
	b.cursor += len(runes)
	b.observers.emit(Event{Kind: EventTextAdded, Text: string(runes), Start: start, From: start, To: b.cursor})
	return true
}

// Submit hands the current text to listeners and empties the buffer.
func (b *Buffer) Submit() string {
	text := string(b.text)
	from := b.cursor

	b.text = b.text[:0]
	b.cursor = 0
	b.selecting = false

	b.observers.emit(Event{Kind: EventSubmitted, Text: text, From: from, To: 0})
	return text
}

// SetText replaces the whole contents and moves the cursor to the end.
func (b *Buffer) SetText(s string) {
	if !utf8.ValidString(s) {
		panic(fmt.Errorf("%w: set of invalid UTF-8 %q", ErrInvalidArgument, s))
	}
	if s == string(b.text) && b.cursor == len(b.text) && !b.HasSelection() {
		return
	}

	b.selecting = false
	if len(b.text) > 0 {
		from := b.cursor
		removed := b.remove(0, len(b.text))
		b.cursor = 0
		b.observers.emit(Event{Kind: EventTextRemoved, Text: removed, Start: 0, From: from, To: 0})
	}
	b.insert(s)
}

// ApplyControl executes a control command and reports whether the buffer
// changed.
func (b *Buffer) ApplyControl(c Control) bool {
	switch c {
	case ControlBackspace:
		if b.deleteSelection() {
			return true
		}
		if b.cursor == 0 {
			return false
		}
		return b.removeAndEmit(b.cursor-1, 1)

	case ControlDelete:
		if b.deleteSelection() {
			return true
		}
		if b.cursor == len(b.text) {
			return false
		}
		return b.removeAndEmit(b.cursor, 1)

	case ControlWordBackspace:
		if b.deleteSelection() {
			return true
		}
		start := prevWordBoundary(b.text, b.cursor)
		return b.removeAndEmit(start, b.cursor-start)

	case ControlWordDelete:
		if b.deleteSelection() {
			return true
		}
		end := nextWordBoundary(b.text, b.cursor)
		return b.removeAndEmit(b.cursor, end-b.cursor)

	case ControlEnter:
		b.Submit()
		return true

	case ControlSelectAll:
		return b.selectAll()

	case ControlCopy:
		if !b.HasSelection() {
			return false
		}
		if err := b.clipboard.WriteAll(b.SelectedText()); err != nil {
			log.Printf("textedit: copy failed: %v", err)
		}
		return false

	case ControlCut:
		if !b.HasSelection() {
			return false
		}
		if err := b.clipboard.WriteAll(b.SelectedText()); err != nil {
			log.Printf("textedit: cut failed: %v", err)
			return false
		}
		return b.deleteSelection()

	case ControlPaste:
		text, err := b.clipboard.ReadAll()
		if err != nil {
			log.Printf("textedit: paste failed: %v", err)
			return false
		}
		return b.insert(singleLine(text))
	}
	return false
}

// MoveCursor moves the cursor one rune or one word in dir. With
// extendSelection the selection grows or shrinks around its anchor,
// otherwise any selection is dropped. It reports whether anything changed.
func (b *Buffer) MoveCursor(dir Direction, extendSelection, wholeWord bool) bool {
	from := b.cursor
	to := b.target(dir, wholeWord)

	if extendSelection {
		if to == from {
			return false
		}
		if !b.selecting {
			b.anchor = from
			b.selecting = true
		}
		b.cursor = to
		if b.anchor == b.cursor {
			b.selecting = false
		}
		b.observers.emit(Event{Kind: EventCursorMoved, From: from, To: to})
		return true
	}

	if b.HasSelection() {
		sel := b.Selection()
		if !wholeWord {
			switch dir {
			case DirectionLeft:
				to = sel.Start
			case DirectionRight:
				to = sel.End
			}
		}
		b.selecting = false
		b.cursor = to
		b.observers.emit(Event{Kind: EventCursorMoved, From: from, To: to})
		return true
	}

	b.selecting = false
	if to == from {
		return false
	}
	b.cursor = to
	b.observers.emit(Event{Kind: EventCursorMoved, From: from, To: to})
	return true
}

// SetCursorTo jumps to the beginning, the middle or the end of the text and
// drops the selection.
func (b *Buffer) SetCursorTo(a Anchor) {
	var to int
	switch a {
	case AnchorBegin:
		to = 0
	case AnchorCenter:
		to = len(b.text) / 2
	case AnchorEnd:
		to = len(b.text)
	default:
		panic(fmt.Errorf("%w: unknown anchor %d", ErrInvalidArgument, a))
	}

	from := b.cursor
	hadSelection := b.HasSelection()
	b.selecting = false
	if to == from && !hadSelection {
		return
	}
	b.cursor = to
	b.observers.emit(Event{Kind: EventCursorMoved, From: from, To: to})
}

func (b *Buffer) target(dir Direction, wholeWord bool) int {
	var to int
	switch dir {
	case DirectionLeft:
		if wholeWord {
			to = prevWordBoundary(b.text, b.cursor)
		} else {
			to = b.cursor - 1
		}
	case DirectionRight:
		if wholeWord {
			to = nextWordBoundary(b.text, b.cursor)
		} else {
			to = b.cursor + 1
		}
	case DirectionHome:
		to = 0
	case DirectionEnd:
		to = len(b.text)
	default:
		panic(fmt.Errorf("%w: unknown direction %d", ErrInvalidArgument, dir))
	}
	return generic.Clamp(to, 0, len(b.text))
}

func (b *Buffer) selectAll() bool {
	if len(b.text) == 0 {
		return false
	}
	sel := b.Selection()
	if b.HasSelection() && sel.Start == 0 && sel.End == len(b.text) && b.cursor == len(b.text) {
		return false
	}
	from := b.cursor
	b.anchor = 0
	b.cursor = len(b.text)
	b.selecting = true
	b.observers.emit(Event{Kind: EventCursorMoved, From: from, To: b.cursor})
	return true
}

// deleteSelection removes the selected text and leaves the cursor at the
// selection start.
func (b *Buffer) deleteSelection() bool {
	if !b.HasSelection() {
		b.selecting = false
		return false
	}
	sel := b.Selection()
	b.selecting = false
	return b.removeAndEmit(sel.Start, sel.Len())
}

func (b *Buffer) removeAndEmit(start, count int) bool {
	from := b.cursor
	removed := b.remove(start, count)
	if removed == "" {
		return false
	}
	b.cursor = start
	b.observers.emit(Event{Kind: EventTextRemoved, Text: removed, Start: start, From: from, To: start})
	return true
}

// remove cuts count runes at start and returns them. Removing nothing, or
// removing at the very end, is a no-op; anything reaching past the end is a
// programmer error.
func (b *Buffer) remove(start, count int) string {
	if start < 0 || count < 0 || start+count > len(b.text) {
		panic(fmt.Errorf("%w: remove [%d, %d) from buffer of length %d", ErrInvalidArgument, start, start+count, len(b.text)))
	}
	if count == 0 || start == len(b.text) {
		return ""
	}
	removed := string(b.text[start : start+count])
	b.text = slices.Delete(b.text, start, start+count)
	return removed
}

// singleLine flattens pasted text onto one line.
func singleLine(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t':
			return ' '
		}
		return r
	}, s)
}
