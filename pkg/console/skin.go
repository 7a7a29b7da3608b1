package console

import (
	"image/color"
	"strings"
	"time"
)

// FieldSkin colors one rectangular area of the console.
type FieldSkin struct {
	Back color.Color
	Text color.Color
}

// Skin holds every color and metric the console draws with. Colors are
// alpha-premultiplied, as image/color expects.
type Skin struct {
	Name string

	Background color.Color
	Highlight  color.Color
	Cursor     color.Color

	AutoCompleteBorder   color.Color
	AutoCompleteSelected color.Color

	ScrollBar      color.Color
	ScrollBarStrip color.Color

	// Padding of the scrollbar inside the history field.
	ScrollBarPadX, ScrollBarPadY float64
	ScrollBarWidth               float64
	CursorWidth                  float64

	Input        FieldSkin
	History      FieldSkin
	AutoComplete FieldSkin

	// CursorBlink is how long the cursor stays in each blink phase.
	CursorBlink time.Duration

	// Time colors the timestamp prefix of history entries.
	Time color.Color
	// Warning colors unknown-command and usage messages.
	Warning color.Color
}

// Clone returns an independent copy of s.
func (s *Skin) Clone() *Skin {
	c := *s
	return &c
}

var (
	colorYellow = color.RGBA{255, 255, 0, 255}
	colorWhite  = color.RGBA{255, 255, 255, 255}
)

// DarkSkin returns the default skin.
func DarkSkin() *Skin {
	return &Skin{
		Name:                 "dark",
		Background:           color.RGBA{26, 22, 37, 204},
		Highlight:            color.RGBA{63, 63, 63, 76},
		Cursor:               color.RGBA{185, 214, 255, 255},
		AutoCompleteBorder:   color.RGBA{0, 0, 0, 64},
		AutoCompleteSelected: color.RGBA{255, 215, 0, 255},
		ScrollBar:            color.RGBA{26, 28, 47, 255},
		ScrollBarStrip:       color.RGBA{0, 0, 0, 128},
		ScrollBarWidth:       7,
		CursorWidth:          2,
		Input:                FieldSkin{Back: color.RGBA{0, 0, 0, 76}, Text: color.RGBA{185, 214, 255, 255}},
		History:              FieldSkin{Back: color.RGBA{0, 0, 0, 76}, Text: colorWhite},
		AutoComplete:         FieldSkin{Back: color.RGBA{0, 0, 0, 153}, Text: color.RGBA{102, 102, 102, 204}},
		CursorBlink:          500 * time.Millisecond,
		Time:                 color.RGBA{0, 128, 0, 255},
		Warning:              color.RGBA{255, 0, 0, 255},
	}
}

// LightSkin returns a pale skin for bright scenes.
func LightSkin() *Skin {
	return &Skin{
		Name:                 "light",
		Background:           color.RGBA{126, 122, 115, 127},
		Highlight:            color.RGBA{53, 71, 17, 127},
		Cursor:               color.RGBA{0, 29, 94, 255},
		AutoCompleteBorder:   color.RGBA{152, 152, 152, 229},
		AutoCompleteSelected: color.RGBA{0, 255, 0, 255},
		ScrollBar:            color.RGBA{51, 51, 51, 102},
		ScrollBarStrip:       color.RGBA{0, 0, 0, 63},
		ScrollBarPadX:        1,
		ScrollBarPadY:        1,
		ScrollBarWidth:       7,
		CursorWidth:          2,
		Input:                FieldSkin{Back: color.RGBA{114, 114, 114, 114}, Text: color.RGBA{0, 29, 94, 255}},
		History:              FieldSkin{Back: color.RGBA{114, 114, 114, 114}, Text: color.RGBA{109, 0, 132, 255}},
		AutoComplete:         FieldSkin{Back: color.RGBA{165, 165, 165, 165}, Text: color.RGBA{148, 0, 211, 255}},
		CursorBlink:          500 * time.Millisecond,
		Time:                 color.RGBA{0, 72, 170, 255},
		Warning:              color.RGBA{139, 0, 0, 255},
	}
}

// SkinByName returns a fresh copy of a built-in skin.
func SkinByName(name string) (*Skin, bool) {
	switch strings.ToLower(name) {
	case "dark":
		return DarkSkin(), true
	case "light":
		return LightSkin(), true
	}
	return nil, false
}
