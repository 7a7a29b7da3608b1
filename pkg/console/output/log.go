// Package output holds the console's scrollback: an ordered log of colored,
// optionally timestamped entries.
package output

import (
	"image/color"
	"time"
)

// DefaultLimit is the number of entries kept before the oldest are dropped.
const DefaultLimit = 500

// TimestampFormat is how timestamped entries are prefixed when drawn.
const TimestampFormat = "[15:04:05] "

// Entry is one logged message. A nil Color means the skin's default text
// color.
type Entry struct {
	Text          string
	Color         color.Color
	ShowTimestamp bool
	Time          time.Time
}

// Prefix returns the timestamp prefix for the entry, or "" when it has none.
func (e Entry) Prefix() string {
	if !e.ShowTimestamp {
		return ""
	}
	return e.Time.Format(TimestampFormat)
}

// EventKind tells log observers what happened.
type EventKind int

const (
	EventAppended EventKind = iota
	EventCleared
)

// Event is delivered to observers after each change.
type Event struct {
	Kind  EventKind
	Entry Entry
}

// Log is the console scrollback. It is not safe for concurrent use.
type Log struct {
	// Limit caps the number of entries; zero or less keeps everything.
	Limit int
	// Now stamps appended entries that carry no time of their own.
	Now func() time.Time

	entries   []Entry
	observers []func(Event)
}

// NewLog creates a log holding at most limit entries.
func NewLog(limit int) *Log {
	return &Log{Limit: limit, Now: time.Now}
}

// Subscribe registers fn for every later append or clear.
func (l *Log) Subscribe(fn func(Event)) {
	l.observers = append(l.observers, fn)
}

// Append adds an entry at the end, stamping it if needed.
func (l *Log) Append(e Entry) {
	if e.Time.IsZero() {
		now := time.Now
		if l.Now != nil {
			now = l.Now
		}
		e.Time = now()
	}
	l.entries = append(l.entries, e)
	if l.Limit > 0 && len(l.entries) > l.Limit {
		l.entries = l.entries[len(l.entries)-l.Limit:]
	}
	l.emit(Event{Kind: EventAppended, Entry: e})
}

// Add appends text in c.
func (l *Log) Add(text string, c color.Color, showTimestamp bool) {
	l.Append(Entry{Text: text, Color: c, ShowTimestamp: showTimestamp})
}

// Clear drops every entry.
func (l *Log) Clear() {
	l.entries = nil
	l.emit(Event{Kind: EventCleared})
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Entries returns the entries, oldest first. The slice must not be modified.
func (l *Log) Entries() []Entry {
	return l.entries
}

func (l *Log) emit(ev Event) {
	for _, fn := range l.observers {
		fn(ev)
	}
}
