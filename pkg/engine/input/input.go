package input

import (
	"context"
	"errors"
	"io"
	"time"
	"unicode/utf8"
)

// ctrlLetters maps the C0 control bytes a terminal sends for Ctrl+letter to
// the letter.
var ctrlLetters = map[byte]string{
	0x01: "a",
	0x03: "c",
	0x04: "d",
	0x16: "v",
	0x17: "w",
	0x18: "x",
}

// csiTilde maps the numeric parameter of "ESC [ n ~" sequences.
var csiTilde = map[string]string{
	"1": "home",
	"7": "home",
	"4": "end",
	"8": "end",
	"3": "delete",
	"5": "page_up",
	"6": "page_down",
}

// csiFinal maps the final byte of CSI and SS3 sequences.
var csiFinal = map[byte]string{
	'A': "arrow_up",
	'B': "arrow_down",
	'C': "arrow_right",
	'D': "arrow_left",
	'H': "home",
	'F': "end",
}

// DecodeTerminal turns a chunk of bytes read from a terminal in raw mode into
// raw inputs. Escape sequences are expected to arrive whole within a chunk;
// an unrecognised sequence is discarded.
func DecodeTerminal(b []byte, now time.Time) []RawInput {
	var out []RawInput
	key := func(code string, mods Modifier) {
		out = append(out, RawInput{Device: DeviceTerminal, Code: code, Mods: mods, Timestamp: now})
	}

	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == 0x1b:
			n, code, mods := decodeEscape(b[i:])
			if code != "" {
				key(code, mods)
			}
			i += n
			continue
		case c == '\r' || c == '\n':
			key("enter", 0)
		case c == '\t':
			key("tab", 0)
		case c == 0x7f:
			key("backspace", 0)
		case c == 0x08:
			// Most terminals send BS for Ctrl+Backspace.
			key("backspace", ModCtrl)
		case c < 0x20:
			if letter, ok := ctrlLetters[c]; ok {
				key(letter, ModCtrl)
			}
		default:
			r, size := utf8.DecodeRune(b[i:])
			if r == utf8.RuneError && size <= 1 {
				i++
				continue
			}
			raw := RawInput{Device: DeviceTerminal, Char: r, Timestamp: now}
			if r == '`' {
				raw.Code = "grave"
			}
			out = append(out, raw)
			i += size
			continue
		}
		i++
	}
	return out
}

// decodeEscape decodes the escape sequence at the start of b, returning how
// many bytes it used.
func decodeEscape(b []byte) (n int, code string, mods Modifier) {
	if len(b) == 1 {
		return 1, "escape", 0
	}
	switch b[1] {
	case 'O':
		if len(b) < 3 {
			return 2, "", 0
		}
		return 3, csiFinal[b[2]], 0
	case '[':
		// Parameter bytes, then one final byte in 0x40..0x7e.
		j := 2
		for j < len(b) && (b[j] < 0x40 || b[j] > 0x7e) {
			j++
		}
		if j == len(b) {
			return len(b), "", 0
		}
		params := string(b[2:j])
		num, mod := splitParams(params)
		mods = xtermModifier(mod)
		if b[j] == '~' {
			return j + 1, csiTilde[num], mods
		}
		return j + 1, csiFinal[b[j]], mods
	default:
		// Bare escape; whatever follows is decoded on its own.
		return 1, "escape", 0
	}
}

func splitParams(params string) (num, mod string) {
	for i := 0; i < len(params); i++ {
		if params[i] == ';' {
			return params[:i], params[i+1:]
		}
	}
	return params, ""
}

// xtermModifier decodes the "1 + bitmask" modifier parameter xterm adds to
// cursor and editing keys.
func xtermModifier(p string) Modifier {
	if len(p) != 1 || p[0] < '2' || p[0] > '8' {
		return 0
	}
	bits := p[0] - '1'
	var m Modifier
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

// ReadTerminal reads r until it fails or ctx is cancelled, sending decoded
// inputs to out. A cancelled context is noticed after the next read returns.
func ReadTerminal(ctx context.Context, r io.Reader, out chan<- RawInput) error {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, raw := range DecodeTerminal(buf[:n], time.Now()) {
				select {
				case out <- raw:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
