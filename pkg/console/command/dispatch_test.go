package command

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"gameconsole/pkg/console/output"
)

var red = color.RGBA{255, 0, 0, 255}

func newDispatcher(t *testing.T) (*Dispatcher, *output.Log) {
	t.Helper()
	log := output.NewLog(0)
	return NewDispatcher(NewRegistry(), log, red), log
}

func texts(log *output.Log) []string {
	var out []string
	for _, e := range log.Entries() {
		out = append(out, e.Text)
	}
	return out
}

func TestDispatch_RunsHandlerWithArgs(t *testing.T) {
	d, log := newDispatcher(t)
	var got []string
	cmd, _ := New("echo", func(args []string) *Result {
		got = args
		return &Result{Text: strings.Join(args, "+"), Color: red}
	})
	d.Registry.Register(cmd)

	if !d.Dispatch("ECHO a   b") {
		t.Fatal("Dispatch(ECHO a   b) = false, want true")
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("handler args = %q, want [a b]", got)
	}

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("log = %q, want input line and result", texts(log))
	}
	if entries[0].Text != "ECHO a   b" || !entries[0].ShowTimestamp {
		t.Errorf("input entry = %+v, want raw line with timestamp", entries[0])
	}
	if entries[1].Text != "- a+b" || entries[1].Color != red {
		t.Errorf("result entry = %+v, want %q in red", entries[1], "- a+b")
	}
}

func TestDispatch_EchoUsesLogClock(t *testing.T) {
	d, log := newDispatcher(t)
	stamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	log.Now = func() time.Time { return stamp }
	d.Registry.Register(mustCommand(t, "quiet"))

	d.Dispatch("quiet")
	entries := log.Entries()
	if len(entries) == 0 {
		t.Fatal("nothing logged")
	}
	if !entries[0].Time.Equal(stamp) {
		t.Errorf("echo stamped %v, want the log clock %v", entries[0].Time, stamp)
	}
}

func TestDispatch_NilResultLogsOnlyInput(t *testing.T) {
	d, log := newDispatcher(t)
	d.Registry.Register(mustCommand(t, "quiet"))

	d.Dispatch("quiet")
	if got := texts(log); len(got) != 1 || got[0] != "quiet" {
		t.Errorf("log = %q, want [quiet]", got)
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	d, log := newDispatcher(t)
	if d.Dispatch("nope arg") {
		t.Error("Dispatch(nope arg) = true, want false")
	}
	entries := log.Entries()
	if len(entries) != 1 {
		t.Fatalf("log = %q, want one warning", texts(log))
	}
	if entries[0].Text != `Unknown command "nope"` {
		t.Errorf("warning = %q, want %q", entries[0].Text, `Unknown command "nope"`)
	}
	if entries[0].Color != red {
		t.Errorf("warning color = %v, want %v", entries[0].Color, red)
	}
}

func TestDispatch_HandlerSeesEchoFirst(t *testing.T) {
	d, log := newDispatcher(t)
	cls, _ := New("cls", func([]string) *Result {
		log.Clear()
		return nil
	})
	d.Registry.Register(cls)

	log.Add("old", nil, false)
	d.Dispatch("cls")
	log.Add("after", nil, false)

	if got := texts(log); len(got) != 1 || got[0] != "after" {
		t.Errorf("log = %q, want [after]", got)
	}
}

func TestDispatch_HandlerPanicPropagates(t *testing.T) {
	d, _ := newDispatcher(t)
	boom, _ := New("boom", func([]string) *Result { panic("kaboom") })
	d.Registry.Register(boom)

	defer func() {
		if r := recover(); r != "kaboom" {
			t.Errorf("recover() = %v, want kaboom", r)
		}
	}()
	d.Dispatch("boom")
	t.Fatal("Dispatch(boom) returned, want panic")
}

func TestIndex_Query(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"help", "hello", "hidden", "heap", "Hex", "cls"} {
		var opts []Option
		if name == "hidden" {
			opts = append(opts, WithoutAutoComplete())
		}
		r.Register(mustCommand(t, name, opts...))
	}

	tests := []struct {
		name   string
		prefix string
		max    int
		want   []string
	}{
		{"empty prefix", "", 3, nil},
		{"zero max", "h", 0, nil},
		{"sorted and truncated", "he", 3, []string{"heap", "hello", "help"}},
		{"truncated to two", "he", 2, []string{"heap", "hello"}},
		{"case-sensitive", "He", 3, []string{"Hex"}},
		{"skips hidden", "hi", 3, nil},
		{"exact name", "cls", 3, []string{"cls"}},
		{"no match", "zz", 3, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(NewIndex(r, tt.max).Query(tt.prefix))
			if len(got) != len(tt.want) {
				t.Fatalf("Query(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Query(%q) = %q, want %q", tt.prefix, got, tt.want)
				}
			}
		})
	}
}

func TestIndex_NegativeMaxPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewIndex(-1) did not panic")
		}
	}()
	NewIndex(NewRegistry(), -1)
}

func TestIndex_QueryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := NewRegistry()
		cmdNames := rapid.SliceOfDistinct(rapid.StringMatching(`[a-c]{1,4}`), func(s string) string { return s }).Draw(t, "names")
		for _, n := range cmdNames {
			cmd, _ := New(n, noop)
			r.Register(cmd)
		}
		prefix := rapid.StringMatching(`[a-c]{1,2}`).Draw(t, "prefix")
		maxResults := rapid.IntRange(0, 5).Draw(t, "maxResults")

		got := NewIndex(r, maxResults).Query(prefix)
		if len(got) > maxResults {
			t.Fatalf("Query returned %d results, max %d", len(got), maxResults)
		}
		for i, cmd := range got {
			if !strings.HasPrefix(cmd.Name(), prefix) {
				t.Fatalf("result %q lacks prefix %q", cmd.Name(), prefix)
			}
			if i > 0 && got[i-1].Name() >= cmd.Name() {
				t.Fatalf("results not sorted: %q", names(got))
			}
		}
	})
}
