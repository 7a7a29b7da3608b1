package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"gameconsole/pkg/console"
	"gameconsole/pkg/engine/textedit"
)

func TestHost_LoopRunsTypedCommand(t *testing.T) {
	c, err := console.New(console.Options{
		Font:       Font{},
		AdjustSkin: CellSkin,
		Padding:    -1,
		Clipboard:  &textedit.MemoryClipboard{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Skin().ScrollBarWidth != 1 {
		t.Errorf("ScrollBarWidth = %v, want 1 cell", c.Skin().ScrollBarWidth)
	}

	var out bytes.Buffer
	h := NewHost(c, Options{In: strings.NewReader("`help\r"), Out: &out})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.loop(ctx); err != nil {
		t.Fatalf("loop: %v", err)
	}

	if !c.IsOpen() {
		t.Error("the grave key did not open the console")
	}
	var ran bool
	for _, e := range c.Output().Entries() {
		if e.Text == "help" {
			ran = true
		}
	}
	if !ran {
		t.Error("typed help command was not run")
	}
	if out.Len() == 0 {
		t.Error("no frames were rendered")
	}
}
