// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"gameconsole/pkg/console/command"
	"gameconsole/pkg/renderer"
)

// fpsPadding keeps the counter off the canvas edge.
const fpsPadding = 6

var (
	colorBadFPS    = color.RGBA{255, 0, 0, 255}
	colorNormalFPS = color.RGBA{255, 255, 0, 255}
	colorGoodFPS   = color.RGBA{0, 128, 0, 255}
)

// FPSCounter counts drawn frames and shows the rate of the last full second
// in the top-right corner.
type FPSCounter struct {
	Visible bool

	elapsed time.Duration
	frames  int
	fps     int
}

// NewFPSCounter returns a visible counter.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{Visible: true}
}

// Update advances the counter's clock. Once a second has passed the frames
// drawn since the last sample become the reading.
func (f *FPSCounter) Update(dt time.Duration) {
	if !f.Visible {
		return
	}
	f.elapsed += dt
	if f.elapsed >= time.Second {
		f.elapsed = 0
		f.fps = f.frames
		f.frames = 0
	}
}

// FPS returns the last reading.
func (f *FPSCounter) FPS() int {
	return f.fps
}

// Color is red at 20 FPS or less, yellow up to 40 and green above.
func (f *FPSCounter) Color() color.Color {
	switch {
	case f.fps <= 20:
		return colorBadFPS
	case f.fps <= 40:
		return colorNormalFPS
	default:
		return colorGoodFPS
	}
}

// Draw counts a frame and paints the reading.
func (f *FPSCounter) Draw(cv renderer.Canvas, font renderer.Font) {
	if !f.Visible {
		return
	}
	f.frames++

	text := strconv.Itoa(f.fps)
	tw, _ := font.Measure(text)
	w, _ := cv.Size()
	cv.DrawText(font, text, w-tw-fpsPadding, fpsPadding, f.Color())
}

// Command returns the "fps" console command, which shows or hides the
// counter.
func (f *FPSCounter) Command() command.Command {
	return command.MustNew("fps", f.run, command.WithHelp(gotext.Get("fps [on|off]: show or hide the frame counter")))
}

func (f *FPSCounter) run(args []string) *command.Result {
	if len(args) == 0 {
		f.Visible = !f.Visible
	} else {
		switch strings.ToLower(args[0]) {
		case "on", "1", "true":
			f.Visible = true
		case "off", "0", "false":
			f.Visible = false
		default:
			return &command.Result{Text: gotext.Get("Usage: fps [on|off]"), Color: colorBadFPS}
		}
	}
	if !f.Visible {
		f.elapsed, f.frames, f.fps = 0, 0, 0
		return &command.Result{Text: gotext.Get("FPS counter off")}
	}
	return &command.Result{Text: gotext.Get("FPS counter on")}
}
