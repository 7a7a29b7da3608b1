package textedit

import "github.com/atotto/clipboard"

// Clipboard is the copy/paste store used by ControlCopy, ControlCut and
// ControlPaste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

// ReadAll returns the current clipboard contents.
func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard contents.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps clipboard contents in process. It is used when no
// system clipboard is available (clipboard.Unsupported) and in tests.
type MemoryClipboard struct {
	Text string
}

func (m *MemoryClipboard) ReadAll() (string, error) {
	return m.Text, nil
}

func (m *MemoryClipboard) WriteAll(text string) error {
	m.Text = text
	return nil
}

// DefaultClipboard returns the system clipboard when the platform has one.
func DefaultClipboard() Clipboard {
	if clipboard.Unsupported {
		return &MemoryClipboard{}
	}
	return SystemClipboard{}
}
