// Package tui draws the console in a terminal, one canvas unit per cell.
package tui

import (
	"bufio"
	"image/color"
	"io"
	"math"

	gcolor "github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"gameconsole/pkg/renderer"
)

// Font measures text in terminal cells.
type Font struct{}

// Measure returns the cell width of s and a height of one row.
func (Font) Measure(s string) (float64, float64) {
	return float64(runewidth.StringWidth(s)), 1
}

// LineHeight is one row.
func (Font) LineHeight() float64 { return 1 }

type cell struct {
	ch rune
	// wide marks the cell covered by the right half of a double-width rune.
	wide bool
	fg   color.RGBA
	bg   color.RGBA
}

// Grid is the frame being drawn. Fills paint the background layer only;
// glyphs drawn earlier stay, and an opaque fill over a glyph inverts it.
type Grid struct {
	cols, rows int
	cells      []cell
	backdrop   color.RGBA
}

// NewGrid returns a grid of cols by rows cells.
func NewGrid(cols, rows int, backdrop color.RGBA) *Grid {
	g := &Grid{backdrop: backdrop}
	g.Resize(cols, rows)
	return g
}

// Resize changes the grid size and clears it.
func (g *Grid) Resize(cols, rows int) {
	if cols != g.cols || rows != g.rows {
		g.cols, g.rows = cols, rows
		g.cells = make([]cell, cols*rows)
	}
	g.Clear()
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{ch: ' ', fg: g.backdrop, bg: g.backdrop}
	}
}

// At returns the rune shown at col, row, or 0 outside the grid.
func (g *Grid) At(col, row int) rune {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return 0
	}
	return g.cells[row*g.cols+col].ch
}

// split blanks a double-width rune whose halves are about to be separated
// by a write starting at col.
func (g *Grid) split(col, row int) {
	if col <= 0 || col >= g.cols {
		return
	}
	cl := &g.cells[row*g.cols+col]
	if !cl.wide {
		return
	}
	cl.ch, cl.wide = ' ', false
	g.cells[row*g.cols+col-1].ch = ' '
}

// Canvas returns a canvas covering the whole grid.
func (g *Grid) Canvas() *Canvas {
	return &Canvas{grid: g, x0: 0, y0: 0, x1: g.cols, y1: g.rows}
}

// Render writes the grid to w as ANSI text, starting at the top-left
// corner of the screen.
func (g *Grid) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("\x1b[H")
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			bw.WriteString("\r\n")
		}
		line := g.cells[row*g.cols : (row+1)*g.cols]
		for i := 0; i < len(line); {
			j := i
			var run []rune
			for j < len(line) && line[j].fg == line[i].fg && line[j].bg == line[i].bg {
				if !line[j].wide {
					run = append(run, line[j].ch)
				}
				j++
			}
			style := gcolor.NewRGBStyle(rgb(line[i].fg, false), rgb(line[i].bg, true))
			bw.WriteString(style.Sprint(string(run)))
			i = j
		}
	}
	return bw.Flush()
}

func rgb(c color.RGBA, bg bool) gcolor.RGBColor {
	return gcolor.RGB(c.R, c.G, c.B, bg)
}

// blend composites premultiplied src over an opaque dst.
func blend(dst color.RGBA, src color.Color) color.RGBA {
	r, g, b, a := src.RGBA()
	k := 1 - float64(a)/0xffff
	mix := func(s uint32, d uint8) uint8 {
		return uint8(math.Round(float64(s>>8) + float64(d)*k))
	}
	return color.RGBA{mix(r, dst.R), mix(g, dst.G), mix(b, dst.B), 255}
}

// Canvas draws into a rectangle of a Grid.
type Canvas struct {
	grid           *Grid
	x0, y0, x1, y1 int
}

// Size returns the grid size in cells.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.grid.cols), float64(c.grid.rows)
}

func (c *Canvas) inside(col, row int) bool {
	return col >= c.x0 && col < c.x1 && row >= c.y0 && row < c.y1
}

// FillRect paints the background of the cells r covers.
func (c *Canvas) FillRect(r renderer.Rect, col color.Color) {
	if col == nil || r.Empty() {
		return
	}
	_, _, _, a := col.RGBA()
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 := int(math.Round(r.Right())), int(math.Round(r.Bottom()))
	if x1 == x0 {
		x1++
	}
	for row := y0; row < y1; row++ {
		for cx := x0; cx < x1; cx++ {
			if !c.inside(cx, row) {
				continue
			}
			cl := &c.grid.cells[row*c.grid.cols+cx]
			if a == 0xffff && cl.ch != ' ' {
				cl.fg = cl.bg
			}
			cl.bg = blend(cl.bg, col)
		}
	}
}

// DrawText writes s from the cell at x, y. Double-width runes take two
// cells.
func (c *Canvas) DrawText(_ renderer.Font, s string, x, y float64, col color.Color) {
	if col == nil {
		return
	}
	row := int(math.Round(y))
	cx := int(math.Round(x))
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c.inside(cx, row) && (w == 1 || c.inside(cx+1, row)) {
			c.grid.split(cx, row)
			c.grid.split(cx+w, row)
			cl := &c.grid.cells[row*c.grid.cols+cx]
			cl.ch = r
			cl.wide = false
			cl.fg = blend(cl.bg, col)
			if w == 2 {
				next := &c.grid.cells[row*c.grid.cols+cx+1]
				next.ch, next.wide, next.fg, next.bg = 0, true, cl.fg, cl.bg
			}
		}
		cx += w
	}
}

// Clip returns a canvas limited to the cells of r inside c.
func (c *Canvas) Clip(r renderer.Rect) renderer.Canvas {
	return &Canvas{
		grid: c.grid,
		x0:   max(c.x0, int(math.Round(r.X))),
		y0:   max(c.y0, int(math.Round(r.Y))),
		x1:   min(c.x1, int(math.Round(r.Right()))),
		y1:   min(c.y1, int(math.Round(r.Bottom()))),
	}
}
