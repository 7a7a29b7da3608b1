// Package command implements console commands: the immutable command record,
// a case-insensitive registry, input parsing, dispatch into the output log
// and prefix autocompletion.
package command

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

var (
	// ErrInvalidName is returned for empty command names and names that
	// contain a space.
	ErrInvalidName = errors.New("command: invalid name")
	// ErrNilHandler is returned when a command has no handler.
	ErrNilHandler = errors.New("command: nil handler")
	// ErrInvalidArgument is wrapped by panics raised for programmer errors.
	ErrInvalidArgument = errors.New("command: invalid argument")
)

// Result is what a handler wants printed after its input line. A nil Color
// uses the log's default color.
type Result struct {
	Text  string
	Color color.Color
}

// Reply is shorthand for a default-colored result.
func Reply(format string, args ...any) *Result {
	return &Result{Text: fmt.Sprintf(format, args...)}
}

// Handler runs a command. A nil result prints nothing.
type Handler func(args []string) *Result

// Command is an immutable named handler. Copies are independent and safe to
// pass around by value.
type Command struct {
	name         string
	help         string
	handler      Handler
	autoComplete bool
}

// Option configures a command at construction time.
type Option func(*Command)

// WithHelp sets the help text shown by the help command. Commands without
// help text are not listed there.
func WithHelp(help string) Option {
	return func(c *Command) {
		c.help = help
	}
}

// WithoutAutoComplete hides the command from autocompletion.
func WithoutAutoComplete() Option {
	return func(c *Command) {
		c.autoComplete = false
	}
}

// New builds a command. Commands take part in autocompletion unless
// WithoutAutoComplete is given.
func New(name string, h Handler, opts ...Option) (Command, error) {
	if name == "" || strings.ContainsRune(name, ' ') {
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if h == nil {
		return Command{}, fmt.Errorf("%w: %q", ErrNilHandler, name)
	}
	c := Command{name: name, handler: h, autoComplete: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}

// MustNew is like New but panics on error. It is meant for built-in commands
// whose definitions are fixed at compile time.
func MustNew(name string, h Handler, opts ...Option) Command {
	c, err := New(name, h, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the name as registered.
func (c Command) Name() string { return c.name }

// Help returns the help text, possibly empty.
func (c Command) Help() string { return c.help }

// AutoComplete reports whether the command is offered as a completion.
func (c Command) AutoComplete() bool { return c.autoComplete }

// Run invokes the handler. Panics from the handler are not recovered.
func (c Command) Run(args []string) *Result {
	return c.handler(args)
}

// IsZero reports whether c is the zero Command.
func (c Command) IsZero() bool {
	return c.handler == nil
}
