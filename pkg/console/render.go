package console

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gameconsole/pkg/console/output"
	"gameconsole/pkg/engine/layout"
	"gameconsole/pkg/renderer"
)

// prompt is drawn in front of the input text.
const prompt = "> "

// wrappedLine is one physical history line.
type wrappedLine struct {
	text string
	// color is nil for the skin's history text color.
	color color.Color
	// timeLen is the byte length of the timestamp prefix drawn at the start
	// of the line, 0 on continuation lines.
	timeLen int
}

// wrapCache keeps the wrapped history between frames while neither the log
// nor the width changes.
type wrapCache struct {
	width   float64
	version int
	lines   []wrappedLine
	valid   bool
}

// Draw paints the console onto cv. It draws nothing while the console is
// fully closed. A history entry containing a glyph wider than the history
// field yields an error wrapping layout.ErrGlyphTooWide.
func (c *Console) Draw(cv renderer.Canvas) error {
	progress := c.Progress()
	if progress <= 0 {
		return nil
	}
	fade := func(col color.Color) color.Color { return renderer.Fade(col, progress) }

	w, h := cv.Size()
	height := math.Min(h, math.Max(h*c.opts.HeightRatio, c.opts.MinHeight))
	panel := renderer.Rect{X: 0, Y: -height * (1 - progress), W: w, H: height}
	cv.FillRect(panel, fade(c.skin.Background))

	pad := c.opts.Padding
	lh := c.font.LineHeight()
	inner := panel.Inset(pad, pad)
	inputH := lh + pad
	inputRect := renderer.Rect{X: inner.X, Y: inner.Bottom() - inputH, W: inner.W, H: inputH}
	historyRect := renderer.Rect{X: inner.X, Y: inner.Y, W: inner.W, H: inputRect.Y - pad - inner.Y}

	if err := c.drawHistory(cv, historyRect, fade); err != nil {
		return err
	}
	c.drawInput(cv, inputRect, fade)
	c.drawSuggestions(cv, inputRect, panel.Bottom(), fade)
	return nil
}

func (c *Console) measure(s string) float64 {
	w, _ := c.font.Measure(s)
	return w
}

// wrapHistory splits every log entry into physical lines of at most width.
func (c *Console) wrapHistory(width float64) ([]wrappedLine, error) {
	wc := &c.wrapCache
	if wc.valid && wc.width == width && wc.version == c.outVersion {
		return wc.lines, nil
	}

	var lines []wrappedLine
	for _, e := range c.out.Entries() {
		entryLines, err := c.wrapEntry(e, width)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entryLines...)
	}

	*wc = wrapCache{width: width, version: c.outVersion, lines: lines, valid: true}
	return lines, nil
}

func (c *Console) wrapEntry(e output.Entry, width float64) ([]wrappedLine, error) {
	col := e.Color
	prefix := e.Prefix()

	var out []wrappedLine
	for i, part := range strings.Split(e.Text, "\n") {
		text := part
		if i == 0 {
			text = prefix + part
		}
		phys, err := layout.Wrap(text, c.measure, width)
		if err != nil {
			return nil, fmt.Errorf("console: wrap history entry: %w", err)
		}
		for j, line := range phys {
			wl := wrappedLine{text: line, color: col}
			if i == 0 && j == 0 {
				wl.timeLen = min(len(prefix), len(line))
			}
			out = append(out, wl)
		}
	}
	return out, nil
}

func (c *Console) drawHistory(cv renderer.Canvas, r renderer.Rect, fade func(color.Color) color.Color) error {
	if r.Empty() {
		return nil
	}
	cv.FillRect(r, fade(c.skin.History.Back))

	s := c.skin
	pad := c.opts.Padding
	lh := c.font.LineHeight()
	textRect := renderer.Rect{
		X: r.X + pad,
		Y: r.Y,
		W: r.W - s.ScrollBarWidth - s.ScrollBarPadX - 2*pad,
		H: r.H - s.ScrollBarPadY,
	}
	if textRect.Empty() {
		return nil
	}

	lines, err := c.wrapHistory(textRect.W)
	if err != nil {
		return err
	}

	capacity := int(textRect.H / lh)
	if capacity > 1 {
		c.pageLines = capacity - 1
	}
	c.scroll.LineHeight = lh
	win := c.scroll.Visible(len(lines), capacity)

	if win.First >= 0 {
		clip := cv.Clip(r)
		y := textRect.Y + win.Shift - float64(win.First-win.DrawFrom)*lh
		for i := win.DrawFrom; i <= win.DrawTo; i++ {
			c.drawHistoryLine(clip, lines[i], textRect.X, y, fade)
			y += lh
		}
	}

	track := renderer.Rect{
		X: r.Right() - s.ScrollBarWidth - s.ScrollBarPadX,
		Y: r.Y + s.ScrollBarPadY,
		W: s.ScrollBarWidth,
		H: r.H - 2*s.ScrollBarPadY,
	}
	cv.FillRect(track, fade(s.ScrollBar))
	if y, th, ok := c.scroll.Thumb(len(lines), capacity, track.H); ok {
		cv.FillRect(renderer.Rect{X: track.X, Y: track.Y + y, W: track.W, H: th}, fade(s.ScrollBarStrip))
	}
	return nil
}

func (c *Console) drawHistoryLine(cv renderer.Canvas, l wrappedLine, x, y float64, fade func(color.Color) color.Color) {
	col := l.color
	if col == nil {
		col = c.skin.History.Text
	}
	if l.timeLen == 0 {
		cv.DrawText(c.font, l.text, x, y, fade(col))
		return
	}
	stamp := l.text[:l.timeLen]
	cv.DrawText(c.font, stamp, x, y, fade(c.skin.Time))
	if rest := l.text[l.timeLen:]; rest != "" {
		cv.DrawText(c.font, rest, x+c.measure(stamp), y, fade(col))
	}
}

func (c *Console) drawInput(cv renderer.Canvas, r renderer.Rect, fade func(color.Color) color.Color) {
	if r.Empty() {
		return
	}
	s := c.skin
	cv.FillRect(r, fade(s.Input.Back))

	pad := c.opts.Padding
	lh := c.font.LineHeight()
	x := r.X + pad
	y := r.Y + (r.H-lh)/2

	cv.DrawText(c.font, prompt, x, y, fade(s.Input.Text))
	fieldX := x + c.measure(prompt)
	fieldW := r.Right() - pad - fieldX
	if fieldW <= 0 {
		return
	}

	runes := []rune(c.buffer.Text())
	cursorX := c.measure(string(runes[:c.buffer.Cursor()]))
	c.scrollField(cursorX, c.measure(string(runes)), fieldW)

	clip := cv.Clip(renderer.Rect{X: fieldX, Y: r.Y, W: fieldW, H: r.H})
	origin := fieldX - c.fieldScroll

	if sel := c.buffer.Selection(); !sel.Empty() {
		sx := c.measure(string(runes[:sel.Start]))
		ex := c.measure(string(runes[:sel.End]))
		clip.FillRect(renderer.Rect{X: origin + sx, Y: y, W: ex - sx, H: lh}, fade(s.Highlight))
	}
	clip.DrawText(c.font, string(runes), origin, y, fade(s.Input.Text))

	if c.open && c.cursorVisible {
		clip.FillRect(renderer.Rect{X: origin + cursorX, Y: y, W: s.CursorWidth, H: lh}, fade(s.Cursor))
	}
}

// scrollField keeps the cursor inside a field of width fieldW by scrolling
// the input text horizontally.
func (c *Console) scrollField(cursorX, textW, fieldW float64) {
	cw := c.skin.CursorWidth
	switch {
	case textW+cw <= fieldW:
		c.fieldScroll = 0
	case cursorX-c.fieldScroll > fieldW-cw:
		c.fieldScroll = cursorX - fieldW + cw
	case cursorX < c.fieldScroll:
		c.fieldScroll = cursorX
	}
	c.fieldScroll = math.Max(0, c.fieldScroll)
}

func (c *Console) drawSuggestions(cv renderer.Canvas, field renderer.Rect, top float64, fade func(color.Color) color.Color) {
	if len(c.suggestions) == 0 || !c.open {
		return
	}
	s := c.skin
	pad := c.opts.Padding
	lh := c.font.LineHeight()

	var widest float64
	for _, cmd := range c.suggestions {
		widest = math.Max(widest, c.measure(cmd.Name()))
	}

	box := renderer.Rect{
		X: field.X + c.measure(prompt),
		Y: top + 1,
		W: widest + 2*pad,
		H: float64(len(c.suggestions))*lh + 2*pad,
	}
	cv.FillRect(renderer.Rect{X: box.X - 1, Y: box.Y - 1, W: box.W + 2, H: box.H + 2}, fade(s.AutoCompleteBorder))
	cv.FillRect(box, fade(s.AutoComplete.Back))

	for i, cmd := range c.suggestions {
		col := s.AutoComplete.Text
		if i == c.selected {
			col = s.AutoCompleteSelected
		}
		cv.DrawText(c.font, cmd.Name(), box.X+pad, box.Y+pad+float64(i)*lh, fade(col))
	}
}
