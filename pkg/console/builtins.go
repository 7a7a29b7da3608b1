package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	"gameconsole/pkg/console/command"
	"gameconsole/pkg/engine/input"
)

// registerBuiltins adds the commands every console has.
func (c *Console) registerBuiltins() {
	builtins := []command.Command{
		command.MustNew("help", c.cmdHelp, command.WithHelp(gotext.Get("guide to commands"))),
		command.MustNew("cls", c.cmdCls, command.WithHelp(gotext.Get("clear the console output"))),
		command.MustNew("get", c.cmdGet, command.WithHelp(gotext.Get("get <cvar>: show a console variable"))),
		command.MustNew("set", c.cmdSet, command.WithHelp(gotext.Get("set <cvar> <value>: change a console variable"))),
		command.MustNew("list", c.cmdList, command.WithHelp(gotext.Get("list every console variable"))),
		command.MustNew("bind", c.cmdBind, command.WithHelp(gotext.Get("bind [<key> <action>]: show or change key bindings"))),
		command.MustNew("dump", c.cmdDump, command.WithHelp(gotext.Get("dump [dir]: save the output as HTML"))),
	}
	for _, cmd := range builtins {
		c.registry.Register(cmd)
	}
}

// say is a default-colored reply carrying already formatted text.
func say(text string) *command.Result {
	return &command.Result{Text: text}
}

// usage is a warning-colored reply.
func (c *Console) usage(format string, args ...any) *command.Result {
	return &command.Result{Text: gotext.Get(format, args...), Color: c.skin.Warning}
}

func (c *Console) cmdHelp([]string) *command.Result {
	for _, cmd := range c.registry.Commands() {
		if cmd.Help() == "" {
			continue
		}
		c.out.Add(fmt.Sprintf("- %s \"%s\"", cmd.Name(), cmd.Help()), colorYellow, false)
	}
	return nil
}

func (c *Console) cmdCls([]string) *command.Result {
	c.Clear()
	return nil
}

func (c *Console) cmdGet(args []string) *command.Result {
	if len(args) < 1 {
		return c.usage("Usage: get <cvar>")
	}
	name := strings.ToLower(args[0])
	value, err := c.cvars.getCvar(name)
	if err != nil {
		return c.usage("Unknown cvar: %s", name)
	}
	return command.Reply("%s = \"%s\"", name, value)
}

func (c *Console) cmdSet(args []string) *command.Result {
	if len(args) < 2 {
		return c.usage("Usage: set <cvar> <value>")
	}
	name := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")
	if err := c.cvars.setCvar(name, value); err != nil {
		return &command.Result{Text: err.Error(), Color: c.skin.Warning}
	}
	value, _ = c.cvars.getCvar(name)
	return command.Reply("%s = \"%s\"", name, value)
}

func (c *Console) cmdList([]string) *command.Result {
	names := c.cvars.names()
	if len(names) == 0 {
		return say(gotext.Get("No cvars defined"))
	}
	for _, name := range names {
		value, _ := c.cvars.getCvar(name)
		c.out.Add(fmt.Sprintf("  %s = \"%s\"", name, value), nil, false)
	}
	return say(gotext.Get("Cvars (%d)", len(names)))
}

func (c *Console) cmdBind(args []string) *command.Result {
	if len(args) == 0 {
		byAction := c.bindings.ByAction()
		actions := make([]input.Action, 0, len(byAction))
		for act := range byAction {
			actions = append(actions, act)
		}
		sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
		for _, act := range actions {
			c.out.Add(fmt.Sprintf("  %-14s %s", input.ActionName(act), strings.Join(byAction[act], ", ")), nil, false)
		}
		return nil
	}
	if len(args) < 2 {
		return c.usage("Usage: bind <key> <action>")
	}

	key := strings.ToLower(args[0])
	action, ok := input.ParseAction(args[1])
	if !ok {
		return c.usage("Unknown action: %s", args[1])
	}
	if !c.bindings.Set(action, key) {
		return c.usage("Key '%s' is reserved", key)
	}
	return say(gotext.Get("Bound '%s' to %s", key, input.ActionName(action)))
}

func (c *Console) cmdDump(args []string) *command.Result {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	path, err := c.out.SaveHTML(dir, gotext.Get("Console output"))
	if err != nil {
		return &command.Result{Text: err.Error(), Color: c.skin.Warning}
	}
	return say(gotext.Get("Saved %s", path))
}
