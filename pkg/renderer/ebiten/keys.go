package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "gameconsole/pkg/engine/input"
)

// keyCode names an Ebiten key the way the console's bindings do.
type keyCode struct {
	key  ebiten.Key
	code string
	// repeat keys fire again while held.
	repeat bool
	// ctrlOnly keys are reported only with Ctrl held; otherwise they arrive
	// as typed characters.
	ctrlOnly bool
}

var keyCodes = []keyCode{
	{key: ebiten.KeyGraveAccent, code: "grave"},
	{key: ebiten.KeyEscape, code: "escape"},
	{key: ebiten.KeyEnter, code: "enter"},
	{key: ebiten.KeyNumpadEnter, code: "numpad_enter"},
	{key: ebiten.KeyTab, code: "tab"},
	{key: ebiten.KeyBackspace, code: "backspace", repeat: true},
	{key: ebiten.KeyDelete, code: "delete", repeat: true},
	{key: ebiten.KeyArrowLeft, code: "arrow_left", repeat: true},
	{key: ebiten.KeyArrowRight, code: "arrow_right", repeat: true},
	{key: ebiten.KeyArrowUp, code: "arrow_up", repeat: true},
	{key: ebiten.KeyArrowDown, code: "arrow_down", repeat: true},
	{key: ebiten.KeyHome, code: "home"},
	{key: ebiten.KeyEnd, code: "end"},
	{key: ebiten.KeyPageUp, code: "page_up", repeat: true},
	{key: ebiten.KeyPageDown, code: "page_down", repeat: true},
	{key: ebiten.KeyF1, code: "f1"},
	{key: ebiten.KeyF2, code: "f2"},
	{key: ebiten.KeyF3, code: "f3"},
	{key: ebiten.KeyF4, code: "f4"},
	{key: ebiten.KeyF5, code: "f5"},
	{key: ebiten.KeyF6, code: "f6"},
	{key: ebiten.KeyF7, code: "f7"},
	{key: ebiten.KeyF8, code: "f8"},
	{key: ebiten.KeyF9, code: "f9"},
	{key: ebiten.KeyF10, code: "f10"},
	{key: ebiten.KeyF11, code: "f11"},
	{key: ebiten.KeyF12, code: "f12"},
	{key: ebiten.KeyA, code: "a", ctrlOnly: true},
	{key: ebiten.KeyC, code: "c", ctrlOnly: true},
	{key: ebiten.KeyD, code: "d", ctrlOnly: true},
	{key: ebiten.KeyV, code: "v", ctrlOnly: true},
	{key: ebiten.KeyW, code: "w", ctrlOnly: true, repeat: true},
	{key: ebiten.KeyX, code: "x", ctrlOnly: true},
}

// modifiers returns the modifier keys held down. Meta counts as Ctrl so
// the usual macOS shortcuts work.
func modifiers() engineinput.Modifier {
	var m engineinput.Modifier
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= engineinput.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= engineinput.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= engineinput.ModAlt
	}
	return m
}

// captureInput collects this tick's key presses and typed characters in
// the order the console should see them: keys first, then text.
func (h *Host) captureInput(now time.Time) []engineinput.RawInput {
	mods := modifiers()
	var raws []engineinput.RawInput

	for _, k := range keyCodes {
		if k.ctrlOnly && mods&engineinput.ModCtrl == 0 {
			h.repeater.ShouldFire(k.code, false, now)
			continue
		}
		var fire bool
		if k.repeat {
			fire = h.repeater.ShouldFire(k.code, ebiten.IsKeyPressed(k.key), now)
		} else {
			fire = inpututil.IsKeyJustPressed(k.key)
		}
		if fire {
			raws = append(raws, engineinput.RawInput{
				Device:    engineinput.DeviceKeyboard,
				Code:      k.code,
				Mods:      mods,
				Timestamp: now,
			})
		}
	}

	if mods&engineinput.ModCtrl != 0 {
		return raws
	}
	h.chars = ebiten.AppendInputChars(h.chars[:0])
	for _, r := range h.chars {
		if r < 0x20 || r == 0x7f {
			continue
		}
		raws = append(raws, engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Char:      r,
			Timestamp: now,
		})
	}
	return raws
}

// KeyByCode returns the Ebiten key for a binding code such as "grave" or
// "f1".
func KeyByCode(code string) (ebiten.Key, bool) {
	for _, k := range keyCodes {
		if k.code == code {
			return k.key, true
		}
	}
	return 0, false
}
