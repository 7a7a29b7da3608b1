package input

import "github.com/zyedidia/generic/queue"

// Queue buffers raw input between the moment a host captures it and the
// frame update that consumes it, in arrival order.
type Queue struct {
	items  *queue.Queue[RawInput]
	size   int
	ignore int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{items: queue.New[RawInput]()}
}

// Push appends raw to the queue.
func (q *Queue) Push(raw RawInput) {
	q.items.Enqueue(raw)
	q.size++
}

// Len returns the number of queued inputs.
func (q *Queue) Len() int {
	return q.size
}

// Ignore drops the next n text inputs of the current drain. It is used to
// swallow the character produced by the key that opened the console. The
// count does not outlive the drain it was set in.
func (q *Queue) Ignore(n int) {
	q.ignore += n
}

// Drain hands every queued input to fn, oldest first, then clears any
// pending ignore count.
func (q *Queue) Drain(fn func(RawInput)) {
	for !q.items.Empty() {
		raw := q.items.Dequeue()
		q.size--
		if raw.IsText() && q.ignore > 0 {
			q.ignore--
			continue
		}
		fn(raw)
	}
	q.ignore = 0
}
