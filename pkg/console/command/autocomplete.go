package command

import (
	"cmp"
	"fmt"
	"slices"
)

// DefaultMaxResults is how many completions an Index offers by default.
const DefaultMaxResults = 3

// Index answers prefix queries over a registry's completable commands.
type Index struct {
	registry   *Registry
	maxResults int
}

// NewIndex creates an index over r returning at most maxResults commands.
// It panics if maxResults is negative.
func NewIndex(r *Registry, maxResults int) *Index {
	x := &Index{registry: r}
	x.SetMaxResults(maxResults)
	return x
}

// MaxResults returns the result cap.
func (x *Index) MaxResults() int {
	return x.maxResults
}

// SetMaxResults changes the result cap. It panics if n is negative.
func (x *Index) SetMaxResults(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative max results %d", ErrInvalidArgument, n))
	}
	x.maxResults = n
}

// Query returns up to MaxResults completable commands whose name starts with
// prefix (case-sensitive), sorted by name. An empty prefix matches nothing.
func (x *Index) Query(prefix string) []Command {
	if prefix == "" || x.maxResults == 0 {
		return nil
	}

	var out []Command
	for _, cmd := range x.registry.WithPrefix(prefix) {
		if cmd.AutoComplete() {
			out = append(out, cmd)
		}
	}
	slices.SortFunc(out, func(a, b Command) int { return cmp.Compare(a.Name(), b.Name()) })
	if len(out) > x.maxResults {
		out = out[:x.maxResults]
	}
	return out
}
