package command

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic"
	"github.com/zyedidia/generic/hashmap"
	"github.com/zyedidia/generic/trie"
)

// Registry holds commands keyed by case-insensitive name.
type Registry struct {
	byName *hashmap.Map[string, Command]
	// names indexes the registered spelling for case-sensitive prefix
	// queries.
	names *trie.Trie[Command]
	order []Command
}

func foldName(s string) string {
	return strings.ToLower(s)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: hashmap.New[string, Command](
			16,
			func(a, b string) bool { return foldName(a) == foldName(b) },
			func(s string) uint64 { return generic.HashString(foldName(s)) },
		),
		names: trie.New[Command](),
	}
}

// Register adds cmd and reports whether it was added. A command whose name
// matches an existing one, ignoring case, is rejected.
func (r *Registry) Register(cmd Command) bool {
	if cmd.IsZero() {
		panic(fmt.Errorf("%w: register of zero Command", ErrInvalidArgument))
	}
	if _, exists := r.byName.Get(cmd.Name()); exists {
		return false
	}
	r.byName.Put(cmd.Name(), cmd)
	r.names.Put(cmd.Name(), cmd)
	r.order = append(r.order, cmd)
	return true
}

// Lookup finds a command by name, ignoring case.
func (r *Registry) Lookup(name string) (Command, bool) {
	if name == "" {
		return Command{}, false
	}
	return r.byName.Get(name)
}

// Commands returns every command in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.order))
	copy(out, r.order)
	return out
}

// WithPrefix returns the commands whose registered name starts with prefix,
// compared case-sensitively, in byte order of their names.
func (r *Registry) WithPrefix(prefix string) []Command {
	keys := r.names.KeysWithPrefix(prefix)
	out := make([]Command, 0, len(keys))
	for _, k := range keys {
		if cmd, ok := r.names.Get(k); ok {
			out = append(out, cmd)
		}
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return r.byName.Size()
}
