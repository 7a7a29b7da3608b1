package command

import (
	"image/color"

	"github.com/leonelquinteros/gotext"

	"gameconsole/pkg/console/output"
)

// Dispatcher runs submitted lines against a registry and records the
// exchange in an output log.
type Dispatcher struct {
	Registry *Registry
	Log      *output.Log
	// WarningColor is used for the unknown-command message.
	WarningColor color.Color
}

// NewDispatcher wires a dispatcher to its registry and log.
func NewDispatcher(r *Registry, log *output.Log, warning color.Color) *Dispatcher {
	return &Dispatcher{Registry: r, Log: log, WarningColor: warning}
}

// Dispatch parses raw and runs the matching command. The raw line is logged
// before the handler runs and the handler's result, if any, after it, as
// "- " followed by the result text. Unknown commands log a warning and
// return false. A panicking handler is not recovered.
func (d *Dispatcher) Dispatch(raw string) bool {
	inv := Parse(raw)

	cmd, ok := d.Registry.Lookup(inv.Name)
	if !ok {
		d.Log.Add(gotext.Get("Unknown command \"%s\"", inv.Name), d.WarningColor, false)
		return false
	}

	d.Log.Append(output.Entry{Text: inv.Raw, ShowTimestamp: true})
	if res := cmd.Run(inv.Args); res != nil {
		d.Log.Add("- "+res.Text, res.Color, false)
	}
	return true
}
