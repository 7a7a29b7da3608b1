package ebiten

import (
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gameconsole/pkg/console"
	"gameconsole/pkg/devtools"
	engineinput "gameconsole/pkg/engine/input"
)

const (
	defaultWidth  = 1024
	defaultHeight = 640
	// wheelLines is how far one wheel notch scrolls the output.
	wheelLines = 3
)

var colorBackdrop = color.RGBA{16, 16, 24, 255}

// Options configures a Host.
type Options struct {
	Title         string
	Width, Height int
	// FPS is drawn when non-nil.
	FPS *devtools.FPSCounter
	// Tick runs at the start of every update, on the update goroutine.
	Tick func()
}

// Host runs a console in an Ebiten window and implements ebiten.Game.
type Host struct {
	opts     Options
	console  *console.Console
	font     *Font
	repeater *engineinput.Repeater
	chars    []rune

	quit         bool
	drawErr      error
	openedLogged bool
}

// NewHost creates a host for c, which must have been created with font.
func NewHost(c *console.Console, font *Font, opts Options) *Host {
	if opts.Width == 0 {
		opts.Width = defaultWidth
	}
	if opts.Height == 0 {
		opts.Height = defaultHeight
	}
	return &Host{
		opts:     opts,
		console:  c,
		font:     font,
		repeater: engineinput.NewRepeater(),
	}
}

// SetTick replaces Options.Tick.
func (h *Host) SetTick(fn func()) {
	h.opts.Tick = fn
}

// Quit ends the game loop after the current update.
func (h *Host) Quit() {
	h.quit = true
}

// Run opens the window and blocks until it is closed or Quit is called.
func (h *Host) Run() error {
	ebiten.SetWindowSize(h.opts.Width, h.opts.Height)
	ebiten.SetWindowTitle(h.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(h)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input and advances the console (Ebiten interface)
func (h *Host) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !h.openedLogged {
		h.openedLogged = true
		w, hh := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, hh)
	}
	if h.drawErr != nil {
		return h.drawErr
	}
	if h.opts.Tick != nil {
		h.opts.Tick()
	}

	now := time.Now()
	for _, raw := range h.captureInput(now) {
		h.console.HandleInput(raw)
	}
	if _, dy := ebiten.Wheel(); dy != 0 && h.console.IsOpen() {
		h.console.Scroll(dy * wheelLines)
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	h.console.Update(dt)
	if h.opts.FPS != nil {
		h.opts.FPS.Update(dt)
	}

	if h.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the console (Ebiten interface). A draw error stops the game
// at the next update.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackdrop)
	cv := NewCanvas(screen)

	if err := h.console.Draw(cv); err != nil && h.drawErr == nil {
		h.drawErr = err
	}
	if h.opts.FPS != nil {
		h.opts.FPS.Draw(cv, h.font)
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
