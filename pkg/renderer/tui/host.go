package tui

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"gameconsole/pkg/console"
	"gameconsole/pkg/devtools"
	"gameconsole/pkg/engine/input"
	"gameconsole/pkg/engine/terminal"
)

const (
	// frameInterval paces redraws.
	frameInterval = time.Second / 30

	enterAltScreen = "\x1b[?1049h\x1b[?25l\x1b[2J"
	leaveAltScreen = "\x1b[0m\x1b[?25h\x1b[?1049l"
)

var colorBackdrop = color.RGBA{0, 0, 0, 255}

// CellSkin turns a skin's pixel metrics into terminal cells. Pass it as
// console.Options.AdjustSkin.
func CellSkin(s *console.Skin) {
	s.ScrollBarPadX = 0
	s.ScrollBarPadY = 0
	s.ScrollBarWidth = 1
	s.CursorWidth = 1
}

// Options configures a Host.
type Options struct {
	// In and Out default to the process's stdin and stdout.
	In  io.Reader
	Out io.Writer
	// FPS is drawn when non-nil.
	FPS *devtools.FPSCounter
	// Tick runs before every frame, on the frame goroutine.
	Tick func()
}

// Host runs a console in the terminal.
type Host struct {
	opts    Options
	console *console.Console
	grid    *Grid
	quit    bool
}

// NewHost creates a host for c. The console should have been created with
// Font{}, CellSkin and negative padding.
func NewHost(c *console.Console, opts Options) *Host {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	w, h := terminal.GetSize()
	return &Host{
		opts:    opts,
		console: c,
		grid:    NewGrid(w, h, colorBackdrop),
	}
}

// SetTick replaces Options.Tick.
func (h *Host) SetTick(fn func()) {
	h.opts.Tick = fn
}

// Quit ends Run after the current frame.
func (h *Host) Quit() {
	h.quit = true
}

// Run puts the terminal into raw mode and runs the frame loop until ctx is
// done, Quit is called or input ends. The terminal is restored on return.
func (h *Host) Run(ctx context.Context) error {
	raw, err := terminal.EnterRaw()
	if err != nil {
		return err
	}
	defer raw.Restore()

	fmt.Fprint(h.opts.Out, enterAltScreen)
	defer fmt.Fprint(h.opts.Out, leaveAltScreen)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return h.loop(ctx)
}

// loop reads keys on a separate goroutine and hands them to the console
// between frames.
func (h *Host) loop(ctx context.Context) error {
	keys := make(chan input.RawInput, 64)
	readErr := make(chan error, 1)
	go func() {
		readErr <- input.ReadTerminal(ctx, h.opts.In, keys)
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			// The reader sends every key before it returns, so the rest are
			// already buffered.
			for drained := false; !drained; {
				select {
				case raw := <-keys:
					h.console.HandleInput(raw)
				default:
					drained = true
				}
			}
			if ferr := h.frame(time.Since(last)); ferr != nil {
				return ferr
			}
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("reading terminal: %w", err)
			}
			return nil
		case raw := <-keys:
			h.console.HandleInput(raw)
		case now := <-ticker.C:
			if err := h.frame(now.Sub(last)); err != nil {
				return err
			}
			last = now
			if h.quit {
				return nil
			}
		}
	}
}

// frame advances the console by dt and redraws the terminal.
func (h *Host) frame(dt time.Duration) error {
	if h.opts.Tick != nil {
		h.opts.Tick()
	}
	h.console.Update(dt)
	if h.opts.FPS != nil {
		h.opts.FPS.Update(dt)
	}

	w, ht := terminal.GetSize()
	h.grid.Resize(w, ht)
	cv := h.grid.Canvas()
	if err := h.console.Draw(cv); err != nil {
		return err
	}
	if h.opts.FPS != nil {
		h.opts.FPS.Draw(cv, Font{})
	}
	return h.grid.Render(h.opts.Out)
}
