package console

import (
	"strings"

	"gameconsole/pkg/engine/input"
	"gameconsole/pkg/engine/textedit"
)

// handleRaw maps one queued input to an intent and applies it.
func (c *Console) handleRaw(raw input.RawInput) {
	intent := c.bindings.MapToIntent(raw)

	switch intent.Action {
	case input.ActionNone:
		return
	case input.ActionToggleConsole:
		if c.open {
			c.Close()
			return
		}
		c.Open()
		// A printing toggle key's character arrives as a separate text input.
		if raw.Char == 0 && input.TypesChar(raw.Code, raw.Mods) {
			c.queue.Ignore(1)
		}
		return
	case input.ActionQuit:
		if c.opts.OnQuit != nil {
			c.opts.OnQuit()
		}
		return
	}

	if !c.open {
		return
	}
	c.applyIntent(intent)
}

func (c *Console) applyIntent(intent input.Intent) {
	b := c.buffer

	switch intent.Action {
	case input.ActionText:
		b.Insert(string(intent.Char))
	case input.ActionClose:
		c.Close()
	case input.ActionSubmit:
		b.ApplyControl(textedit.ControlEnter)
	case input.ActionBackspace:
		if intent.Word {
			b.ApplyControl(textedit.ControlWordBackspace)
		} else {
			b.ApplyControl(textedit.ControlBackspace)
		}
	case input.ActionDelete:
		if intent.Word {
			b.ApplyControl(textedit.ControlWordDelete)
		} else {
			b.ApplyControl(textedit.ControlDelete)
		}
	case input.ActionCursorLeft:
		b.MoveCursor(textedit.DirectionLeft, intent.Shift, intent.Word)
	case input.ActionCursorRight:
		b.MoveCursor(textedit.DirectionRight, intent.Shift, intent.Word)
	case input.ActionCursorHome:
		b.MoveCursor(textedit.DirectionHome, intent.Shift, false)
	case input.ActionCursorEnd:
		b.MoveCursor(textedit.DirectionEnd, intent.Shift, false)
	case input.ActionSelectAll:
		b.ApplyControl(textedit.ControlSelectAll)
	case input.ActionCopy:
		b.ApplyControl(textedit.ControlCopy)
	case input.ActionCut:
		b.ApplyControl(textedit.ControlCut)
	case input.ActionPaste:
		b.ApplyControl(textedit.ControlPaste)
	case input.ActionHistoryPrevious:
		if text, ok := c.history.Previous(b.Text()); ok {
			b.SetText(text)
		}
	case input.ActionHistoryNext:
		if text, ok := c.history.Next(); ok {
			b.SetText(text)
		}
	case input.ActionScrollUp:
		c.Scroll(float64(c.pageLines))
	case input.ActionScrollDown:
		c.Scroll(-float64(c.pageLines))
	case input.ActionComplete:
		c.complete()
	}
}

func (c *Console) onBufferEvent(ev textedit.Event) {
	c.cursorVisible = true
	c.blinkElapsed = 0

	switch ev.Kind {
	case textedit.EventSubmitted:
		c.submit(ev.Text)
	case textedit.EventTextAdded, textedit.EventTextRemoved:
		if !c.completing {
			c.refreshSuggestions()
		}
	}
}

// submit records and runs a line taken from the input buffer. Blank lines
// are dropped.
func (c *Console) submit(text string) {
	c.refreshSuggestions()
	if strings.TrimSpace(text) == "" {
		return
	}
	c.history.Record(text)
	c.dispatcher.Dispatch(text)
}

// refreshSuggestions recomputes the autocomplete candidates for the command
// name being typed. Nothing is suggested once arguments are being typed.
func (c *Console) refreshSuggestions() {
	c.selected = -1
	text := c.buffer.Text()
	if strings.ContainsRune(text, ' ') {
		c.suggestions = nil
		return
	}
	c.suggestions = c.index.Query(text)
}

// complete accepts the next suggestion, cycling through the list on
// repeated presses.
func (c *Console) complete() {
	if len(c.suggestions) == 0 {
		return
	}
	c.selected = (c.selected + 1) % len(c.suggestions)

	c.completing = true
	c.buffer.SetText(c.suggestions[c.selected].Name())
	c.completing = false
}
