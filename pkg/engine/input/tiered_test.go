package input

import (
	"slices"
	"testing"
	"time"
)

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		name string
		raw  RawInput
		want Intent
	}{
		{"text", RawInput{Char: 'x'}, Intent{Action: ActionText, Char: 'x'}},
		{"empty", RawInput{}, Intent{Action: ActionNone}},
		{"submit", RawInput{Code: "enter"}, Intent{Action: ActionSubmit}},
		{"code is case-insensitive", RawInput{Code: "Enter"}, Intent{Action: ActionSubmit}},
		{"shift extends", RawInput{Code: "arrow_left", Mods: ModShift}, Intent{Action: ActionCursorLeft, Shift: true}},
		{"ctrl makes word", RawInput{Code: "backspace", Mods: ModCtrl}, Intent{Action: ActionBackspace, Word: true}},
		{"ctrl binding wins", RawInput{Code: "a", Mods: ModCtrl}, Intent{Action: ActionSelectAll, Word: true}},
		{"ctrl w erases word", RawInput{Code: "w", Mods: ModCtrl}, Intent{Action: ActionBackspace, Word: true}},
		{"unbound key", RawInput{Code: "f12"}, Intent{Action: ActionNone}},
		{"toggle", RawInput{Code: "grave", Char: '`'}, Intent{Action: ActionToggleConsole}},
	}

	b := DefaultBindings()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.MapToIntent(tt.raw); got != tt.want {
				t.Errorf("MapToIntent(%+v) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestBindings_Set(t *testing.T) {
	b := DefaultBindings()

	if !b.Set(ActionToggleConsole, "F1") {
		t.Fatal("Set(toggle, F1) = false, want true")
	}
	if got := b.Codes(ActionToggleConsole); !slices.Equal(got, []string{"f1"}) {
		t.Errorf("Codes(toggle) = %v, want [f1]", got)
	}

	// The old toggle key now types its character.
	got := b.MapToIntent(RawInput{Code: "grave", Char: '`'})
	if got.Action != ActionText || got.Char != '`' {
		t.Errorf("MapToIntent(grave) = %+v, want text '`'", got)
	}
}

func TestBindings_SetReserved(t *testing.T) {
	b := DefaultBindings()
	if b.Set(ActionToggleConsole, "enter") {
		t.Error("Set(toggle, enter) = true, want false")
	}
	if got := b.MapToIntent(RawInput{Code: "enter"}); got.Action != ActionSubmit {
		t.Errorf("enter maps to %s, want submit", ActionName(got.Action))
	}

	// Rebinding submit keeps the reserved enter key.
	b.Set(ActionSubmit, "f5")
	if got := b.Codes(ActionSubmit); !slices.Equal(got, []string{"enter", "f5"}) {
		t.Errorf("Codes(submit) = %v, want [enter f5]", got)
	}
}

func TestParseAction(t *testing.T) {
	for act, name := range actionNames {
		if act == ActionText {
			continue
		}
		got, ok := ParseAction(name)
		if !ok || got != act {
			t.Errorf("ParseAction(%q) = %v, %v, want %v, true", name, got, ok, act)
		}
	}
	if _, ok := ParseAction("text"); ok {
		t.Error("ParseAction(text) ok = true, want false")
	}
	if _, ok := ParseAction("nope"); ok {
		t.Error("ParseAction(nope) ok = true, want false")
	}
}

func TestQueue_DrainInOrder(t *testing.T) {
	q := NewQueue()
	q.Push(RawInput{Char: 'a'})
	q.Push(RawInput{Code: "enter"})
	q.Push(RawInput{Char: 'b'})

	var got []RawInput
	q.Drain(func(raw RawInput) { got = append(got, raw) })

	if len(got) != 3 || got[0].Char != 'a' || got[1].Code != "enter" || got[2].Char != 'b' {
		t.Errorf("drained = %+v, want [a enter b]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", q.Len())
	}
}

func TestQueue_IgnoreSkipsTextOnly(t *testing.T) {
	q := NewQueue()
	q.Push(RawInput{Code: "grave"})
	q.Push(RawInput{Code: "enter"})
	q.Push(RawInput{Char: '`'})
	q.Push(RawInput{Char: 'x'})

	var got []RawInput
	q.Drain(func(raw RawInput) {
		if raw.Code == "grave" {
			q.Ignore(1)
		}
		got = append(got, raw)
	})

	if len(got) != 3 || got[1].Code != "enter" || got[2].Char != 'x' {
		t.Errorf("drained = %+v, want [grave enter x]", got)
	}
}

func TestQueue_IgnoreDoesNotOutliveDrain(t *testing.T) {
	q := NewQueue()
	q.Ignore(1)
	q.Drain(func(RawInput) {})

	q.Push(RawInput{Char: 'a'})
	var n int
	q.Drain(func(RawInput) { n++ })
	if n != 1 {
		t.Errorf("delivered %d inputs, want 1", n)
	}
}

func TestRepeater(t *testing.T) {
	r := NewRepeater()
	start := time.Unix(0, 0)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	steps := []struct {
		ms      int
		pressed bool
		want    bool
	}{
		{0, true, true},     // initial press
		{100, true, false},  // within delay
		{299, true, false},  // still within delay
		{300, true, true},   // delay reached
		{320, true, false},  // within interval
		{335, true, true},   // interval reached
		{340, false, false}, // released
		{350, true, true},   // fresh press
	}
	for _, s := range steps {
		if got := r.ShouldFire("backspace", s.pressed, at(s.ms)); got != s.want {
			t.Errorf("ShouldFire at %dms pressed=%v = %v, want %v", s.ms, s.pressed, got, s.want)
		}
	}
}

func TestTypesChar(t *testing.T) {
	tests := []struct {
		code string
		mods Modifier
		want bool
	}{
		{"grave", 0, true},
		{"space", 0, true},
		{"a", 0, true},
		{"a", ModCtrl, false},
		{"grave", ModShift, true},
		{"f1", 0, false},
		{"escape", 0, false},
		{"arrow_up", 0, false},
	}
	for _, tt := range tests {
		if got := TypesChar(tt.code, tt.mods); got != tt.want {
			t.Errorf("TypesChar(%q, %v) = %v, want %v", tt.code, tt.mods, got, tt.want)
		}
	}
}
