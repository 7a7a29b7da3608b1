package textedit

// Control is a non-printing editing command.
type Control int

const (
	ControlNone Control = iota
	ControlBackspace
	ControlDelete
	ControlWordBackspace
	ControlWordDelete
	ControlEnter
	ControlSelectAll
	ControlCopy
	ControlCut
	ControlPaste
	// ControlTab is never handled by the buffer. It exists so hosts can
	// decode it alongside the others and hand it to whoever owns completion.
	ControlTab
)

// Direction is a cursor movement direction.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionHome
	DirectionEnd
)

// Anchor is an absolute cursor position used by SetCursorTo.
type Anchor int

const (
	AnchorBegin Anchor = iota
	AnchorCenter
	AnchorEnd
)

// ControlForRune maps a terminal control byte to a Control.
func ControlForRune(r rune) (Control, bool) {
	switch r {
	case '\b', 0x7f:
		return ControlBackspace, true
	case '\r', '\n':
		return ControlEnter, true
	case '\t':
		return ControlTab, true
	case 0x01: // Ctrl+A
		return ControlSelectAll, true
	case 0x03: // Ctrl+C
		return ControlCopy, true
	case 0x16: // Ctrl+V
		return ControlPaste, true
	case 0x17: // Ctrl+W
		return ControlWordBackspace, true
	case 0x18: // Ctrl+X
		return ControlCut, true
	}
	return ControlNone, false
}

func (c Control) String() string {
	switch c {
	case ControlBackspace:
		return "backspace"
	case ControlDelete:
		return "delete"
	case ControlWordBackspace:
		return "word_backspace"
	case ControlWordDelete:
		return "word_delete"
	case ControlEnter:
		return "enter"
	case ControlSelectAll:
		return "select_all"
	case ControlCopy:
		return "copy"
	case ControlCut:
		return "cut"
	case ControlPaste:
		return "paste"
	case ControlTab:
		return "tab"
	default:
		return "none"
	}
}
