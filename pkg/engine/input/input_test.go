package input

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestDecodeTerminal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []RawInput
	}{
		{"plain text", "ab", []RawInput{{Char: 'a'}, {Char: 'b'}}},
		{"multibyte rune", "é", []RawInput{{Char: 'é'}}},
		{"grave carries code and char", "`", []RawInput{{Code: "grave", Char: '`'}}},
		{"enter", "\r", []RawInput{{Code: "enter"}}},
		{"tab", "\t", []RawInput{{Code: "tab"}}},
		{"backspace", "\x7f", []RawInput{{Code: "backspace"}}},
		{"ctrl backspace", "\x08", []RawInput{{Code: "backspace", Mods: ModCtrl}}},
		{"ctrl letter", "\x01", []RawInput{{Code: "a", Mods: ModCtrl}}},
		{"unmapped control ignored", "\x02", nil},
		{"bare escape", "\x1b", []RawInput{{Code: "escape"}}},
		{"csi arrow", "\x1b[D", []RawInput{{Code: "arrow_left"}}},
		{"ss3 home", "\x1bOH", []RawInput{{Code: "home"}}},
		{"ctrl arrow", "\x1b[1;5C", []RawInput{{Code: "arrow_right", Mods: ModCtrl}}},
		{"shift ctrl arrow", "\x1b[1;6D", []RawInput{{Code: "arrow_left", Mods: ModShift | ModCtrl}}},
		{"delete", "\x1b[3~", []RawInput{{Code: "delete"}}},
		{"page down", "\x1b[6~", []RawInput{{Code: "page_down"}}},
		{"unknown sequence dropped", "\x1b[99~x", []RawInput{{Char: 'x'}}},
		{"sequence then text", "\x1b[Ahi", []RawInput{{Code: "arrow_up"}, {Char: 'h'}, {Char: 'i'}}},
	}

	now := time.Unix(100, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeTerminal([]byte(tt.in), now)
			if len(got) != len(tt.want) {
				t.Fatalf("DecodeTerminal(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			for i, w := range tt.want {
				w.Device = DeviceTerminal
				w.Timestamp = now
				if got[i] != w {
					t.Errorf("DecodeTerminal(%q)[%d] = %+v, want %+v", tt.in, i, got[i], w)
				}
			}
		})
	}
}

func TestReadTerminal_StopsAtEOF(t *testing.T) {
	out := make(chan RawInput, 8)
	err := ReadTerminal(context.Background(), bytes.NewReader([]byte("a\r")), out)
	if err != nil {
		t.Fatalf("ReadTerminal() error = %v", err)
	}
	close(out)

	var codes []string
	for raw := range out {
		if raw.IsText() {
			codes = append(codes, string(raw.Char))
		} else {
			codes = append(codes, raw.Code)
		}
	}
	if len(codes) != 2 || codes[0] != "a" || codes[1] != "enter" {
		t.Errorf("decoded = %v, want [a enter]", codes)
	}
}

func TestReadTerminal_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Unbuffered and unread: the send must give way to the cancelled context.
	out := make(chan RawInput)
	err := ReadTerminal(ctx, bytes.NewReader([]byte("abc")), out)
	if err != context.Canceled {
		t.Errorf("ReadTerminal() error = %v, want %v", err, context.Canceled)
	}
}
