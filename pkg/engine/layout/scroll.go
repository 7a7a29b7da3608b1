package layout

import (
	"math"

	"github.com/zyedidia/generic"
)

// ScrollWindow tracks how far a bottom-anchored list of lines has been
// scrolled back, in pixels. Offset 0 shows the newest line at the bottom.
type ScrollWindow struct {
	LineHeight float64

	offset float64
}

// Window is the result of laying out a ScrollWindow over a list of lines.
type Window struct {
	// First and Last are the fully visible line indices (inclusive). Both are
	// -1 when there is nothing to show.
	First, Last int
	// DrawFrom and DrawTo widen [First, Last] by the partially visible lines
	// that peek in while scrolled by a fraction of a line.
	DrawFrom, DrawTo int
	// Scrolled is the number of lines scrolled back, after clamping.
	Scrolled float64
	// Shift is the pixel amount lines are pushed down by the fractional part
	// of Scrolled.
	Shift float64
}

// Offset returns the current pixel offset.
func (s *ScrollWindow) Offset() float64 {
	return s.offset
}

// ScrollBy moves the window back (positive) or forward (negative) by delta
// pixels. It never scrolls past the newest line; the upper bound depends on
// the content and is applied by Visible.
func (s *ScrollWindow) ScrollBy(delta float64) {
	s.offset = math.Max(0, s.offset+delta)
}

// Reset jumps back to the newest line.
func (s *ScrollWindow) Reset() {
	s.offset = 0
}

// Visible computes which of total lines show in a window that fits capacity
// lines. It clamps the offset to the oldest reachable position and snaps it
// to a whole line when it does.
func (s *ScrollWindow) Visible(total, capacity int) Window {
	if total <= 0 || capacity <= 0 || s.LineHeight <= 0 {
		s.offset = 0
		return Window{First: -1, Last: -1, DrawFrom: -1, DrawTo: -1}
	}

	linesToDraw := generic.Min(capacity, total)
	scrolled := s.offset / s.LineHeight
	if int(scrolled)+linesToDraw >= total {
		scrolled = float64(total - linesToDraw)
		s.offset = scrolled * s.LineHeight
	}

	whole := math.Floor(scrolled)
	frac := scrolled - whole

	w := Window{
		Scrolled: scrolled,
		Shift:    frac * s.LineHeight,
	}
	w.Last = total - 1 - int(whole)
	w.First = w.Last - linesToDraw + 1
	w.DrawFrom, w.DrawTo = w.First, w.Last
	if frac > 0 {
		if w.First > 0 {
			w.DrawFrom--
		}
		if w.Last < total-1 {
			w.DrawTo++
		}
	}
	return w
}

// Thumb returns the scrollbar thumb for total lines of which capacity fit,
// laid out on a track of the given height. ok is false when everything fits
// and no thumb should be drawn. Call Visible first so the offset is clamped.
func (s *ScrollWindow) Thumb(total, capacity int, track float64) (y, height float64, ok bool) {
	if total <= 0 || capacity <= 0 || track <= 0 || s.LineHeight <= 0 {
		return 0, 0, false
	}

	linesToDraw := generic.Min(capacity, total)
	height = float64(linesToDraw) / float64(total) * track
	if math.Abs(height-track) <= 0.01 {
		return 0, 0, false
	}

	scrolled := generic.Clamp(s.offset/s.LineHeight, 0, float64(total-linesToDraw))
	y = track - height - track/float64(total)*scrolled
	return y, height, true
}
