// Package ebiten draws the console in an Ebiten window.
package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gameconsole/pkg/renderer"
)

// Canvas draws onto an Ebiten image. Sub-images share the coordinates of the
// image they were cut from, so clipped canvases keep absolute coordinates.
type Canvas struct {
	img *ebiten.Image
}

// NewCanvas wraps img.
func NewCanvas(img *ebiten.Image) *Canvas {
	return &Canvas{img: img}
}

// Size returns the image size in pixels.
func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r renderer.Rect, col color.Color) {
	if col == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, false)
}

// DrawText draws s with the top of its line box at y. Fonts from other
// backends are ignored.
func (c *Canvas) DrawText(f renderer.Font, s string, x, y float64, col color.Color) {
	font, ok := f.(*Font)
	if !ok || col == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.img, s, font.face, op)
}

// Clip returns a canvas over the part of the image inside r.
func (c *Canvas) Clip(r renderer.Rect) renderer.Canvas {
	rect := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
	sub, ok := c.img.SubImage(rect).(*ebiten.Image)
	if !ok {
		return c
	}
	return &Canvas{img: sub}
}
