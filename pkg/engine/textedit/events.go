package textedit

// EventKind identifies what a buffer mutation did.
type EventKind int

const (
	EventTextAdded EventKind = iota
	EventTextRemoved
	EventCursorMoved
	EventSubmitted
)

// Event describes a single buffer mutation.
//
// Text is the inserted, removed or submitted text. Start is the rune index the
// edit happened at. From and To carry the cursor position before and after the
// mutation for every kind of event.
type Event struct {
	Kind  EventKind
	Text  string
	Start int
	From  int
	To    int
}

// Listener receives buffer events synchronously, on the goroutine that
// mutated the buffer.
type Listener func(Event)

// observers is an ordered listener list. Removed slots are nil'd so that
// unsubscribing during dispatch does not shift indices.
type observers struct {
	listeners []Listener
}

func (o *observers) subscribe(l Listener) func() {
	o.listeners = append(o.listeners, l)
	idx := len(o.listeners) - 1
	return func() {
		if idx < len(o.listeners) {
			o.listeners[idx] = nil
		}
	}
}

func (o *observers) emit(ev Event) {
	for _, l := range o.listeners {
		if l != nil {
			l(ev)
		}
	}
}

func (k EventKind) String() string {
	switch k {
	case EventTextAdded:
		return "TextAdded"
	case EventTextRemoved:
		return "TextRemoved"
	case EventCursorMoved:
		return "CursorMoved"
	case EventSubmitted:
		return "Submitted"
	default:
		return "Unknown"
	}
}
