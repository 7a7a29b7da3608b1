// Package history records submitted console lines and lets the user walk
// back and forth through them, shell style.
package history

import (
	"github.com/zyedidia/generic/list"

	"gameconsole/pkg/console/command"
)

// DefaultLimit is how many submissions are remembered.
const DefaultLimit = 100

// Navigator keeps submissions newest first and tracks a browse position.
//
// While browsing, the text that was in the input before the first step back
// is held as the draft and handed back when the user steps forward past the
// newest entry.
type Navigator struct {
	// Limit caps the number of entries; zero or less keeps everything.
	Limit int

	entries *list.List[command.Invocation]
	size    int
	current *list.Node[command.Invocation]
	draft   string
}

// NewNavigator creates an empty navigator remembering up to limit entries.
func NewNavigator(limit int) *Navigator {
	return &Navigator{Limit: limit, entries: list.New[command.Invocation]()}
}

// Record stores a submitted line. A line equal to the newest entry is not
// stored twice. Recording always ends browsing.
func (n *Navigator) Record(text string) {
	n.Reset()

	inv := command.Parse(text)
	if front := n.entries.Front; front != nil && front.Value.Equal(inv) {
		return
	}
	n.entries.PushFront(inv)
	n.size++

	for n.Limit > 0 && n.size > n.Limit {
		n.entries.Remove(n.entries.Back)
		n.size--
	}
}

// Previous steps to an older entry. The first step saves current as the
// draft. It returns false when there is no history.
func (n *Navigator) Previous(current string) (string, bool) {
	if n.current == nil {
		if n.entries.Front == nil {
			return "", false
		}
		n.draft = current
		n.current = n.entries.Front
		return n.current.Value.Raw, true
	}
	if n.current.Next != nil {
		n.current = n.current.Next
	}
	return n.current.Value.Raw, true
}

// Next steps to a newer entry. Stepping past the newest entry returns the
// draft and ends browsing. It returns false when not browsing.
func (n *Navigator) Next() (string, bool) {
	if n.current == nil {
		return "", false
	}
	if n.current.Prev == nil {
		draft := n.draft
		n.Reset()
		return draft, true
	}
	n.current = n.current.Prev
	return n.current.Value.Raw, true
}

// Browsing reports whether Previous has been called since the last Record
// or Reset.
func (n *Navigator) Browsing() bool {
	return n.current != nil
}

// Reset ends browsing and forgets the draft.
func (n *Navigator) Reset() {
	n.current = nil
	n.draft = ""
}

// Len returns the number of entries.
func (n *Navigator) Len() int {
	return n.size
}

// Entries returns the remembered invocations, newest first.
func (n *Navigator) Entries() []command.Invocation {
	out := make([]command.Invocation, 0, n.size)
	if n.entries.Front != nil {
		n.entries.Front.Each(func(inv command.Invocation) {
			out = append(out, inv)
		})
	}
	return out
}
