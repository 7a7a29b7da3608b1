package devtools

import (
	"image/color"
	"testing"
	"time"

	"gameconsole/pkg/renderer"
)

type monoFont struct{}

func (monoFont) Measure(s string) (float64, float64) { return float64(len([]rune(s))) * 10, 20 }
func (monoFont) LineHeight() float64                 { return 20 }

type textOp struct {
	s    string
	x, y float64
	c    color.Color
}

type recordingCanvas struct {
	w, h  float64
	texts []textOp
}

func (c *recordingCanvas) Size() (float64, float64)          { return c.w, c.h }
func (c *recordingCanvas) FillRect(renderer.Rect, color.Color) {}
func (c *recordingCanvas) Clip(renderer.Rect) renderer.Canvas  { return c }
func (c *recordingCanvas) DrawText(_ renderer.Font, s string, x, y float64, col color.Color) {
	c.texts = append(c.texts, textOp{s: s, x: x, y: y, c: col})
}

// runFrames draws n frames spread over one second; the last update reaches
// the second.
func runFrames(f *FPSCounter, cv *recordingCanvas, n int) {
	dt := (time.Second + time.Duration(n) - 1) / time.Duration(n)
	for i := 0; i < n; i++ {
		f.Draw(cv, monoFont{})
		f.Update(dt)
	}
}

func TestFPSCounter_Reading(t *testing.T) {
	f := NewFPSCounter()
	cv := &recordingCanvas{w: 800, h: 600}

	runFrames(f, cv, 60)
	if got := f.FPS(); got != 60 {
		t.Fatalf("FPS() = %d, want 60", got)
	}
	if f.Color() != colorGoodFPS {
		t.Errorf("Color() at 60 FPS = %v, want green", f.Color())
	}

	runFrames(f, cv, 30)
	if got := f.FPS(); got != 30 {
		t.Fatalf("FPS() = %d, want 30", got)
	}
	if f.Color() != colorNormalFPS {
		t.Errorf("Color() at 30 FPS = %v, want yellow", f.Color())
	}

	runFrames(f, cv, 20)
	if f.Color() != colorBadFPS {
		t.Errorf("Color() at 20 FPS = %v, want red", f.Color())
	}
}

func TestFPSCounter_DrawTopRight(t *testing.T) {
	f := NewFPSCounter()
	cv := &recordingCanvas{w: 800, h: 600}
	runFrames(f, cv, 60)

	cv.texts = nil
	f.Draw(cv, monoFont{})
	if len(cv.texts) != 1 {
		t.Fatalf("drew %d texts, want 1", len(cv.texts))
	}
	op := cv.texts[0]
	if op.s != "60" {
		t.Errorf("text = %q, want %q", op.s, "60")
	}
	if want := 800.0 - 20 - fpsPadding; op.x != want {
		t.Errorf("x = %v, want %v", op.x, want)
	}
}

func TestFPSCounter_Command(t *testing.T) {
	f := NewFPSCounter()
	cmd := f.Command()

	cmd.Run([]string{"off"})
	if f.Visible {
		t.Fatal("fps off left the counter visible")
	}
	cv := &recordingCanvas{w: 800, h: 600}
	f.Draw(cv, monoFont{})
	if len(cv.texts) != 0 {
		t.Errorf("hidden counter drew %d texts", len(cv.texts))
	}

	cmd.Run(nil)
	if !f.Visible {
		t.Error("fps with no argument did not toggle the counter back on")
	}

	if res := cmd.Run([]string{"maybe"}); res == nil || res.Color == nil {
		t.Errorf("fps maybe = %+v, want a colored usage reply", res)
	}
}
