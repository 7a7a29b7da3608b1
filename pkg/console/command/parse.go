package command

import (
	"slices"
	"strings"
	"time"
)

// Invocation is one parsed line of console input.
type Invocation struct {
	Name string
	Args []string
	Raw  string
	Time time.Time
}

// Parse splits raw into a command name and arguments. The name is everything
// before the first space; the arguments are the rest split on runs of
// spaces. No quoting is supported.
func Parse(raw string) Invocation {
	inv := Invocation{Raw: raw, Time: time.Now()}
	name, rest, found := strings.Cut(raw, " ")
	inv.Name = name
	if found {
		inv.Args = strings.FieldsFunc(rest, func(r rune) bool { return r == ' ' })
	}
	return inv
}

// Equal reports whether two invocations run the same command with the same
// arguments.
func (inv Invocation) Equal(other Invocation) bool {
	return inv.Name == other.Name && slices.Equal(inv.Args, other.Args)
}

func (inv Invocation) String() string {
	return inv.Raw
}
