// Package input turns device events into console intents. Events flow in
// layers: a RawInput from a device, mapped through a binding table to an
// Intent the console acts on.
package input

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Action represents a high-level intent in the console.
type Action int

const (
	ActionNone Action = iota
	ActionText        // Typed printable character

	// Visibility
	ActionToggleConsole
	ActionClose
	ActionQuit // Host-level quit (TUI Ctrl+D)

	// Editing
	ActionSubmit
	ActionBackspace
	ActionDelete
	ActionCursorLeft
	ActionCursorRight
	ActionCursorHome
	ActionCursorEnd
	ActionSelectAll
	ActionCopy
	ActionCut
	ActionPaste

	// Navigation
	ActionHistoryPrevious
	ActionHistoryNext
	ActionScrollUp
	ActionScrollDown
	ActionComplete
)

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-independent key name (e.g. "arrow_up", "backspace", "a")
// and is empty for plain text, which arrives in Char.
type RawInput struct {
	Device    Device
	Code      string
	Char      rune
	Mods      Modifier
	Timestamp time.Time
}

// IsText reports whether the input carries a typed character and no key.
func (r RawInput) IsText() bool {
	return r.Code == "" && r.Char != 0
}

// Intent is the high-level description of what the user wants to do.
type Intent struct {
	Action Action
	Char   rune
	// Shift extends the selection for cursor movement.
	Shift bool
	// Word makes movement and erasing work on whole words.
	Word bool
}

// defaultBindings maps key codes to actions. Codes with a modifier are
// written "ctrl+<code>".
var defaultBindings = map[string]Action{
	"grave":  ActionToggleConsole,
	"escape": ActionClose,
	"ctrl+d": ActionQuit,

	"enter":        ActionSubmit,
	"numpad_enter": ActionSubmit,
	"backspace":    ActionBackspace,
	"ctrl+w":       ActionBackspace,
	"delete":       ActionDelete,
	"arrow_left":   ActionCursorLeft,
	"arrow_right":  ActionCursorRight,
	"home":         ActionCursorHome,
	"end":          ActionCursorEnd,
	"ctrl+a":       ActionSelectAll,
	"ctrl+c":       ActionCopy,
	"ctrl+x":       ActionCut,
	"ctrl+v":       ActionPaste,

	"arrow_up":   ActionHistoryPrevious,
	"arrow_down": ActionHistoryNext,
	"page_up":    ActionScrollUp,
	"page_down":  ActionScrollDown,
	"tab":        ActionComplete,
}

// reservedCodes keep their bindings; the console is unusable without them.
var reservedCodes = map[string]bool{
	"enter":       true,
	"backspace":   true,
	"arrow_left":  true,
	"arrow_right": true,
	"escape":      true,
}

// Bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
type Bindings struct {
	codes map[string]Action
}

// DefaultBindings returns a fresh copy of the default binding table.
func DefaultBindings() *Bindings {
	b := &Bindings{codes: make(map[string]Action, len(defaultBindings))}
	for code, act := range defaultBindings {
		b.codes[code] = act
	}
	return b
}

// MapToIntent applies the bindings to a raw input. Modified codes are looked
// up as "ctrl+<code>" first and fall back to the bare code.
func (b *Bindings) MapToIntent(raw RawInput) Intent {
	intent := Intent{
		Shift: raw.Mods&ModShift != 0,
		Word:  raw.Mods&ModCtrl != 0,
	}

	if raw.Code == "" {
		if raw.Char == 0 {
			return Intent{Action: ActionNone}
		}
		intent.Action = ActionText
		intent.Char = raw.Char
		return intent
	}

	code := strings.ToLower(raw.Code)
	if intent.Word {
		if act, ok := b.codes["ctrl+"+code]; ok {
			intent.Action = act
			return intent
		}
	}
	if act, ok := b.codes[code]; ok {
		intent.Action = act
		return intent
	}
	// Unbound keys that carry a character still type it.
	if raw.Char != 0 {
		intent.Action = ActionText
		intent.Char = raw.Char
		return intent
	}
	return Intent{Action: ActionNone}
}

// Set replaces all bindings for the given action with a single code.
// Reserved codes are neither removed nor rebound.
func (b *Bindings) Set(action Action, code string) bool {
	code = strings.ToLower(code)
	if reservedCodes[code] {
		return false
	}
	for c, a := range b.codes {
		if a == action && !reservedCodes[c] {
			delete(b.codes, c)
		}
	}
	if code != "" {
		b.codes[code] = action
	}
	return true
}

// Codes returns the codes bound to action, sorted.
func (b *Bindings) Codes(action Action) []string {
	var codes []string
	for c, a := range b.codes {
		if a == action {
			codes = append(codes, c)
		}
	}
	sort.Strings(codes)
	return codes
}

// ByAction returns the current bindings grouped by action.
func (b *Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b.codes {
		result[act] = append(result[act], code)
	}
	// Stable ordering so listings don't shuffle between calls.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

var actionNames = map[Action]string{
	ActionText:            "text",
	ActionToggleConsole:   "toggle",
	ActionClose:           "close",
	ActionQuit:            "quit",
	ActionSubmit:          "submit",
	ActionBackspace:       "backspace",
	ActionDelete:          "delete",
	ActionCursorLeft:      "left",
	ActionCursorRight:     "right",
	ActionCursorHome:      "home",
	ActionCursorEnd:       "end",
	ActionSelectAll:       "select_all",
	ActionCopy:            "copy",
	ActionCut:             "cut",
	ActionPaste:           "paste",
	ActionHistoryPrevious: "history_prev",
	ActionHistoryNext:     "history_next",
	ActionScrollUp:        "scroll_up",
	ActionScrollDown:      "scroll_down",
	ActionComplete:        "complete",
}

// ActionName returns the name used for an action by the bind command.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction looks up an action by the name ActionName returns.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(name)
	for a, n := range actionNames {
		if n == name && a != ActionText {
			return a, true
		}
	}
	return ActionNone, false
}

// namedChars are key codes whose key also types a character.
var namedChars = map[string]rune{
	"grave": '`',
	"space": ' ',
}

// TypesChar reports whether pressing the key named code also produces a
// typed character, which windowed hosts deliver as a separate text input.
// Keys held with Ctrl type nothing.
func TypesChar(code string, mods Modifier) bool {
	if mods&ModCtrl != 0 {
		return false
	}
	code = strings.ToLower(code)
	if _, ok := namedChars[code]; ok {
		return true
	}
	return utf8.RuneCountInString(code) == 1 && unicode.IsPrint([]rune(code)[0])
}
