// Package console implements a drop-down developer console: a one-line
// editor, a scrollable colored log, named commands with autocomplete and a
// shell-style input history.
//
// A Console is driven by its host once per frame: HandleInput queues device
// events as they arrive, Update consumes them and advances animations, and
// Draw paints the console onto a renderer.Canvas. All methods must be called
// from the host's update goroutine.
package console

import (
	"errors"
	"image/color"
	"math"
	"time"

	"gameconsole/pkg/console/command"
	"gameconsole/pkg/console/history"
	"gameconsole/pkg/console/output"
	"gameconsole/pkg/engine/input"
	"gameconsole/pkg/engine/layout"
	"gameconsole/pkg/engine/textedit"
	"gameconsole/pkg/renderer"
)

// ErrNoFont is returned by New when Options carries no font.
var ErrNoFont = errors.New("console: no font")

// slideDuration is how long the console takes to slide fully in or out.
const slideDuration = 200 * time.Millisecond

// defaultPageLines is how far PageUp/PageDown scroll before the first Draw
// has measured the history field.
const defaultPageLines = 10

// Options configures a Console. Only Font is required.
type Options struct {
	Font renderer.Font
	// Skin defaults to DarkSkin.
	Skin *Skin
	// AdjustSkin is applied to a copy of every skin the console adopts,
	// e.g. to turn pixel metrics into terminal cells.
	AdjustSkin func(*Skin)
	// Clipboard defaults to the system clipboard when there is one.
	Clipboard textedit.Clipboard
	// Bindings defaults to input.DefaultBindings.
	Bindings *input.Bindings
	// Filter decides which runes can be typed, e.g. those the font covers.
	Filter func(rune) bool

	HistoryLimit int // default history.DefaultLimit
	OutputLimit  int // default output.DefaultLimit
	// AutoCompleteMax defaults to command.DefaultMaxResults; negative
	// turns autocomplete off.
	AutoCompleteMax int

	// HeightRatio is the share of the canvas height the open console takes,
	// default 0.4. MinHeight is a floor in canvas units.
	HeightRatio float64
	MinHeight   float64
	// Padding separates the console's fields, default 5; negative means
	// none.
	Padding float64

	// OnQuit is called for the quit action.
	OnQuit func()
	// Now is the clock used for log timestamps.
	Now func() time.Time
}

// Console is the developer console widget.
type Console struct {
	opts Options
	skin *Skin
	font renderer.Font

	buffer     *textedit.Buffer
	history    *history.Navigator
	registry   *command.Registry
	index      *command.Index
	dispatcher *command.Dispatcher
	out        *output.Log
	scroll     layout.ScrollWindow
	bindings   *input.Bindings
	queue      *input.Queue
	cvars      cvarTable

	open bool
	// slide is the linear animation position, 0 closed and 1 open.
	slide float64

	blinkElapsed  time.Duration
	cursorVisible bool

	suggestions []command.Command
	selected    int
	completing  bool

	fieldScroll float64
	pageLines   int
	wrapCache   wrapCache
	outVersion  int
}

// New creates a closed console with the built-in commands registered.
func New(opts Options) (*Console, error) {
	if opts.Font == nil {
		return nil, ErrNoFont
	}
	if opts.Skin == nil {
		opts.Skin = DarkSkin()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = textedit.DefaultClipboard()
	}
	if opts.Bindings == nil {
		opts.Bindings = input.DefaultBindings()
	}
	if opts.HistoryLimit == 0 {
		opts.HistoryLimit = history.DefaultLimit
	}
	if opts.OutputLimit == 0 {
		opts.OutputLimit = output.DefaultLimit
	}
	switch {
	case opts.AutoCompleteMax == 0:
		opts.AutoCompleteMax = command.DefaultMaxResults
	case opts.AutoCompleteMax < 0:
		opts.AutoCompleteMax = 0
	}
	if opts.HeightRatio <= 0 {
		opts.HeightRatio = 0.4
	}
	switch {
	case opts.Padding == 0:
		opts.Padding = 5
	case opts.Padding < 0:
		opts.Padding = 0
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	bufOpts := []textedit.Option{textedit.WithClipboard(opts.Clipboard)}
	if opts.Filter != nil {
		bufOpts = append(bufOpts, textedit.WithFilter(opts.Filter))
	}

	c := &Console{
		opts:          opts,
		skin:          opts.adjust(opts.Skin),
		font:          opts.Font,
		buffer:        textedit.New(bufOpts...),
		history:       history.NewNavigator(opts.HistoryLimit),
		registry:      command.NewRegistry(),
		out:           output.NewLog(opts.OutputLimit),
		bindings:      opts.Bindings,
		queue:         input.NewQueue(),
		cvars:         make(cvarTable),
		selected:      -1,
		cursorVisible: true,
		pageLines:     defaultPageLines,
	}
	c.out.Now = opts.Now
	c.index = command.NewIndex(c.registry, opts.AutoCompleteMax)
	c.dispatcher = command.NewDispatcher(c.registry, c.out, c.skin.Warning)

	c.out.Subscribe(func(output.Event) {
		c.scroll.Reset()
		c.outVersion++
	})
	c.buffer.Subscribe(c.onBufferEvent)

	c.initCvars()
	c.registerBuiltins()
	return c, nil
}

// Open shows the console.
func (c *Console) Open() {
	c.open = true
}

// Close hides the console, dropping the unsubmitted input.
func (c *Console) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.buffer.SetText("")
	c.history.Reset()
}

// Toggle opens a closed console and closes an open one.
func (c *Console) Toggle() {
	if c.open {
		c.Close()
	} else {
		c.Open()
	}
}

// IsOpen reports whether the console accepts input.
func (c *Console) IsOpen() bool {
	return c.open
}

// Visible reports whether any part of the console is on screen, including
// while it slides out.
func (c *Console) Visible() bool {
	return c.open || c.slide > 0
}

// Progress returns how far the console has slid in, eased, from 0 to 1.
func (c *Console) Progress() float64 {
	return easeInOut(c.slide)
}

// Log appends text to the output. A nil color uses the skin's history
// text color.
func (c *Console) Log(text string, col color.Color, showTimestamp bool) {
	c.out.Add(text, col, showTimestamp)
}

// Warn logs text in the skin's warning color.
func (c *Console) Warn(text string) {
	c.out.Add(text, c.skin.Warning, true)
}

// Clear empties the output log.
func (c *Console) Clear() {
	c.out.Clear()
}

// RegisterCommand adds cmd. It returns false, changing nothing, when a
// command with the same name (in any letter case) exists.
func (c *Console) RegisterCommand(cmd command.Command) bool {
	ok := c.registry.Register(cmd)
	if ok {
		c.refreshSuggestions()
	}
	return ok
}

// Output returns the console's log.
func (c *Console) Output() *output.Log {
	return c.out
}

// Buffer returns the input line editor.
func (c *Console) Buffer() *textedit.Buffer {
	return c.buffer
}

// Bindings returns the key bindings the console maps input with.
func (c *Console) Bindings() *input.Bindings {
	return c.bindings
}

// Skin returns the active skin.
func (c *Console) Skin() *Skin {
	return c.skin
}

// SetSkin replaces the active skin.
func (c *Console) SetSkin(s *Skin) {
	c.skin = c.opts.adjust(s)
	c.dispatcher.WarningColor = c.skin.Warning
}

func (o *Options) adjust(s *Skin) *Skin {
	if o.AdjustSkin == nil {
		return s
	}
	s = s.Clone()
	o.AdjustSkin(s)
	return s
}

// Suggestions returns the current autocomplete candidates and the index of
// the one Tab last accepted, or -1.
func (c *Console) Suggestions() ([]command.Command, int) {
	return c.suggestions, c.selected
}

// HandleInput queues raw for the next Update. Inputs are handled in arrival
// order.
func (c *Console) HandleInput(raw input.RawInput) {
	c.queue.Push(raw)
}

// Scroll moves the output by lines; positive goes back in time.
func (c *Console) Scroll(lines float64) {
	c.scroll.ScrollBy(lines * c.font.LineHeight())
}

// Update consumes queued input and advances the slide animation and cursor
// blink by dt.
func (c *Console) Update(dt time.Duration) {
	c.queue.Drain(c.handleRaw)
	c.animate(dt)
	c.blink(dt)
}

func (c *Console) animate(dt time.Duration) {
	step := float64(dt) / float64(slideDuration)
	if c.open {
		c.slide = math.Min(1, c.slide+step)
	} else {
		c.slide = math.Max(0, c.slide-step)
	}
}

func (c *Console) blink(dt time.Duration) {
	if c.skin.CursorBlink <= 0 {
		c.cursorVisible = true
		return
	}
	c.blinkElapsed += dt
	for c.blinkElapsed >= c.skin.CursorBlink {
		c.blinkElapsed -= c.skin.CursorBlink
		c.cursorVisible = !c.cursorVisible
	}
}

// easeInOut provides smooth acceleration and deceleration
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}
