package tui

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"gameconsole/pkg/renderer"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func rowText(g *Grid, row int) string {
	var sb strings.Builder
	for col := 0; col < g.cols; col++ {
		if r := g.At(col, row); r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestFont_Measure(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"", 0},
		{"help", 4},
		{"日本", 4},
		{"é", 1},
	}
	for _, tt := range tests {
		if got, h := (Font{}).Measure(tt.s); got != tt.want || h != 1 {
			t.Errorf("Measure(%q) = %v, %v, want %v, 1", tt.s, got, h, tt.want)
		}
	}
}

func TestCanvas_DrawText(t *testing.T) {
	g := NewGrid(10, 2, colorBackdrop)
	cv := g.Canvas()

	cv.DrawText(Font{}, "hi", 2, 1, white)
	if got := rowText(g, 1); got != "  hi      " {
		t.Errorf("row 1 = %q", got)
	}

	cv.DrawText(Font{}, "日x", 0, 0, white)
	if got := rowText(g, 0); got != "日x       " {
		t.Errorf("row 0 = %q", got)
	}

	// Overwriting the right half of a wide rune blanks it.
	cv.DrawText(Font{}, "y", 1, 0, white)
	if got := rowText(g, 0); got != " yx       " {
		t.Errorf("row 0 after split = %q", got)
	}
}

func TestCanvas_Clip(t *testing.T) {
	g := NewGrid(10, 1, colorBackdrop)
	clip := g.Canvas().Clip(renderer.Rect{X: 2, Y: 0, W: 3, H: 1})

	clip.DrawText(Font{}, "abcdefg", 0, 0, white)
	if got := rowText(g, 0); got != "  cde     " {
		t.Errorf("clipped row = %q", got)
	}
}

func TestCanvas_FillRect(t *testing.T) {
	g := NewGrid(4, 1, colorBackdrop)
	cv := g.Canvas()

	cv.FillRect(renderer.Rect{X: 0, Y: 0, W: 2, H: 1}, color.RGBA{0, 0, 128, 128})
	if bg := g.cells[0].bg; bg != (color.RGBA{0, 0, 128, 255}) {
		t.Errorf("half-transparent fill over black = %v", bg)
	}
	if bg := g.cells[2].bg; bg != colorBackdrop {
		t.Errorf("cell outside the fill = %v", bg)
	}

	cv.DrawText(Font{}, "a", 3, 0, white)
	cv.FillRect(renderer.Rect{X: 3, Y: 0, W: 0.5, H: 1}, red)
	cl := g.cells[3]
	if cl.ch != 'a' || cl.bg != red || cl.fg != colorBackdrop {
		t.Errorf("opaque fill over glyph = %+v, want inverted 'a'", cl)
	}
}

func TestGrid_Render(t *testing.T) {
	g := NewGrid(5, 2, colorBackdrop)
	g.Canvas().DrawText(Font{}, "ok", 0, 1, white)

	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[H") {
		t.Errorf("render does not start at home: %q", out)
	}
	if strings.Count(out, "\r\n") != 1 {
		t.Errorf("render of 2 rows has %d line breaks", strings.Count(out, "\r\n"))
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("render lost the text: %q", out)
	}
}
