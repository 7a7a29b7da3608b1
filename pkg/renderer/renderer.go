// Package renderer defines what the console needs from a drawing backend.
// Implementations include Ebiten (2D window) and a TUI (terminal cells).
package renderer

import "image/color"

// Version and Commit are set at build time with -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Rect is an axis-aligned rectangle in canvas units (pixels for Ebiten,
// cells for the TUI).
type Rect struct {
	X, Y, W, H float64
}

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom. The result never has negative size.
func (r Rect) Inset(dx, dy float64) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bottom returns the Y coordinate just below the rectangle.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Right returns the X coordinate just right of the rectangle.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Font measures text.
type Font interface {
	// Measure returns the advance width and height of s.
	Measure(s string) (width, height float64)
	// LineHeight is the distance between consecutive baselines.
	LineHeight() float64
}

// Canvas is a drawing target. Coordinates are absolute on every canvas,
// including clipped ones.
type Canvas interface {
	// Size returns the drawable width and height.
	Size() (width, height float64)

	// FillRect fills r with c.
	FillRect(r Rect, c color.Color)

	// DrawText draws s with f so that the top of its line box is at y.
	DrawText(f Font, s string, x, y float64, c color.Color)

	// Clip returns a canvas drawing to the same target that discards
	// anything outside r.
	Clip(r Rect) Canvas
}

// Fade scales the alpha of c by f, clamped to [0, 1]. Hosts use it while the
// console slides in and out.
func Fade(c color.Color, f float64) color.Color {
	if c == nil {
		return nil
	}
	if f >= 1 {
		return c
	}
	if f <= 0 {
		return color.RGBA{}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * f),
		G: uint16(float64(g) * f),
		B: uint16(float64(b) * f),
		A: uint16(float64(a) * f),
	}
}
