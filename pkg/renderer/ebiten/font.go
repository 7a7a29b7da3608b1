package ebiten

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// DefaultFontSize is the console font size in pixels.
const DefaultFontSize = 16

// Font is a monospace text face.
type Font struct {
	source *text.GoTextFaceSource
	face   *text.GoTextFace
}

// NewFont loads the Go Mono face at size.
func NewFont(size float64) (*Font, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading Go Mono: %w", err)
	}
	return &Font{
		source: src,
		face:   &text.GoTextFace{Source: src, Size: size},
	}, nil
}

// Size returns the face size in pixels.
func (f *Font) Size() float64 {
	return f.face.Size
}

// SetSize changes the face size.
func (f *Font) SetSize(size float64) {
	if size == f.face.Size {
		return
	}
	f.face = &text.GoTextFace{Source: f.source, Size: size}
}

// Measure returns the advance width and height of s.
func (f *Font) Measure(s string) (float64, float64) {
	return text.Measure(s, f.face, f.LineHeight())
}

// LineHeight returns the distance between baselines.
func (f *Font) LineHeight() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// CanType reports whether r is a printable rune. Go Mono covers Latin,
// Greek and Cyrillic; anything else draws as a placeholder box.
func CanType(r rune) bool {
	return unicode.IsPrint(r)
}
