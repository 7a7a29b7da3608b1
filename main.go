package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/leonelquinteros/gotext"

	"gameconsole/pkg/config"
	"gameconsole/pkg/console"
	"gameconsole/pkg/console/command"
	"gameconsole/pkg/devtools"
	"gameconsole/pkg/engine/input"
	"gameconsole/pkg/engine/terminal"
	"gameconsole/pkg/renderer"
	ebitenhost "gameconsole/pkg/renderer/ebiten"
	"gameconsole/pkg/renderer/tui"
)

func main() {
	rendererName := flag.String("renderer", "ebiten", "renderer to use: ebiten or tui")
	configPath := flag.String("config", "", "preferences file (default: user config directory)")
	lang := flag.String("lang", "en_GB", "language for console messages")
	locales := flag.String("locales", "locales", "directory holding translations")
	skinName := flag.String("skin", "", "console skin, overriding preferences: dark or light")
	flag.Parse()

	gotext.Configure(*locales, *lang, "default")

	prefs := loadPreferences(*configPath)
	if *skinName != "" {
		prefs.Skin = *skinName
	}
	config.SetCurrent(prefs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch *rendererName {
	case "ebiten":
		err = runEbiten(ctx, prefs)
	case "tui":
		err = runTUI(ctx, prefs)
	default:
		err = fmt.Errorf("unknown renderer %q", *rendererName)
	}
	if err != nil {
		log.Printf("gameconsole: %v", err)
		os.Exit(1)
	}
}

func loadPreferences(path string) *config.Preferences {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return config.Defaults()
		}
		path = p
	}
	prefs, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load preferences: %v\n", err)
		return config.Defaults()
	}
	return prefs
}

// consoleOptions turns preferences into console options.
func consoleOptions(prefs *config.Preferences, font renderer.Font) console.Options {
	bindings := input.DefaultBindings()
	if prefs.ToggleKey != "" && !bindings.Set(input.ActionToggleConsole, prefs.ToggleKey) {
		fmt.Fprintf(os.Stderr, "Warning: toggle key %q is reserved\n", prefs.ToggleKey)
	}
	opts := console.Options{
		Font:            font,
		Bindings:        bindings,
		HistoryLimit:    prefs.HistoryLimit,
		OutputLimit:     prefs.OutputLimit,
		AutoCompleteMax: prefs.AutoCompleteMax,
	}
	if prefs.AutoCompleteMax == 0 {
		opts.AutoCompleteMax = -1
	}
	if s, ok := console.SkinByName(prefs.Skin); ok {
		opts.Skin = s
	} else {
		fmt.Fprintf(os.Stderr, "Warning: unknown skin %q\n", prefs.Skin)
	}
	return opts
}

// setup registers the host commands shared by every renderer and starts
// watching the preferences file. The returned tick applies reloaded
// preferences and must run on the console's goroutine.
func setup(ctx context.Context, c *console.Console, fps *devtools.FPSCounter, quit func()) func() {
	c.RegisterCommand(fps.Command())
	c.RegisterCommand(command.MustNew("echo", func(args []string) *command.Result {
		return &command.Result{Text: strings.Join(args, " ")}
	}, command.WithHelp(gotext.Get("echo <text>: print text"))))
	c.RegisterCommand(command.MustNew("quit", func([]string) *command.Result {
		quit()
		return nil
	}, command.WithHelp(gotext.Get("quit the program"))))
	c.RegisterCommand(command.MustNew("save", func([]string) *command.Result {
		if err := savePreferences(c); err != nil {
			return &command.Result{Text: err.Error(), Color: c.Skin().Warning}
		}
		return &command.Result{Text: gotext.Get("Preferences saved")}
	}, command.WithHelp(gotext.Get("save the console settings as preferences"))))

	c.Log(gotext.Get("Console ready. Type help for a list of commands."), nil, true)

	prefs := config.Current()
	if prefs.Path() == "" {
		return func() {}
	}
	reloads, err := config.Watch(ctx, prefs.Path(), config.DefaultDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: preferences will not reload: %v\n", err)
		return func() {}
	}
	return func() {
		select {
		case p, ok := <-reloads:
			if ok {
				applyPreferences(c, fps, p)
			}
		default:
		}
	}
}

// applyPreferences updates a running console through its cvars.
func applyPreferences(c *console.Console, fps *devtools.FPSCounter, p *config.Preferences) {
	config.SetCurrent(p)
	settings := []struct{ name, value string }{
		{"skin", p.Skin},
		{"autocomplete.max", strconv.Itoa(p.AutoCompleteMax)},
		{"history.limit", strconv.Itoa(p.HistoryLimit)},
	}
	for _, s := range settings {
		if err := c.SetCvar(s.name, s.value); err != nil {
			c.Warn(err.Error())
		}
	}
	if p.ToggleKey != "" {
		c.Bindings().Set(input.ActionToggleConsole, p.ToggleKey)
	}
	fps.Visible = p.ShowFPS
	c.Log(gotext.Get("Preferences reloaded"), nil, true)
}

// savePreferences stores the console's current settings.
func savePreferences(c *console.Console) error {
	p := config.Current()
	if p.Path() == "" {
		return errors.New(gotext.Get("no preferences file"))
	}
	p.Skin = c.Skin().Name
	if v, err := c.Cvar("autocomplete.max"); err == nil {
		p.AutoCompleteMax, _ = strconv.Atoi(v)
	}
	if v, err := c.Cvar("history.limit"); err == nil {
		p.HistoryLimit, _ = strconv.Atoi(v)
	}
	if codes := c.Bindings().Codes(input.ActionToggleConsole); len(codes) > 0 {
		p.ToggleKey = codes[0]
	}
	return p.Save()
}

func runEbiten(ctx context.Context, prefs *config.Preferences) error {
	font, err := ebitenhost.NewFont(prefs.FontSize)
	if err != nil {
		return err
	}
	if _, ok := ebitenhost.KeyByCode(prefs.ToggleKey); !ok {
		fmt.Fprintf(os.Stderr, "Warning: toggle key %q has no window key\n", prefs.ToggleKey)
	}

	var host *ebitenhost.Host
	opts := consoleOptions(prefs, font)
	opts.Filter = ebitenhost.CanType
	opts.MinHeight = 200
	opts.OnQuit = func() { host.Quit() }
	c, err := console.New(opts)
	if err != nil {
		return err
	}

	fps := devtools.NewFPSCounter()
	fps.Visible = prefs.ShowFPS
	host = ebitenhost.NewHost(c, font, ebitenhost.Options{
		Title: "gameconsole " + renderer.Version,
		FPS:   fps,
	})
	tick := setup(ctx, c, fps, host.Quit)
	host.SetTick(func() {
		if ctx.Err() != nil {
			host.Quit()
		}
		tick()
	})
	c.Open()
	return host.Run()
}

func runTUI(ctx context.Context, prefs *config.Preferences) error {
	if !terminal.IsTerminal() {
		return errors.New("the tui renderer needs a terminal")
	}

	var host *tui.Host
	opts := consoleOptions(prefs, tui.Font{})
	opts.AdjustSkin = tui.CellSkin
	opts.Padding = -1
	opts.HeightRatio = 0.5
	opts.OnQuit = func() { host.Quit() }
	c, err := console.New(opts)
	if err != nil {
		return err
	}

	fps := devtools.NewFPSCounter()
	fps.Visible = prefs.ShowFPS
	host = tui.NewHost(c, tui.Options{FPS: fps})
	host.SetTick(setup(ctx, c, fps, host.Quit))
	c.Open()
	return host.Run(ctx)
}
