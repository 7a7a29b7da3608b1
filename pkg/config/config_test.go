package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Defaults()
	if p.ToggleKey != want.ToggleKey || p.Skin != want.Skin || p.FontSize != want.FontSize {
		t.Errorf("Load = %+v, want defaults %+v", p, want)
	}
	if p.Path() != path {
		t.Errorf("Path() = %q, want %q", p.Path(), path)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("skin: light\nhistory_limit: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Skin != "light" || p.HistoryLimit != 20 {
		t.Errorf("Load = skin %q history %d, want light 20", p.Skin, p.HistoryLimit)
	}
	if p.ToggleKey != "grave" || p.OutputLimit != 500 {
		t.Errorf("unset keys lost their defaults: %+v", p)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("skin: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML succeeded")
	}

	small := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(small, []byte("font_size: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(small); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load with font_size 2 = %v, want ErrInvalid", err)
	}
}

func TestPreferences_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	p.Skin = "light"
	p.ToggleKey = "f1"
	if err := p.SetFontSize(20); err != nil {
		t.Fatalf("SetFontSize: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if got.Skin != "light" || got.ToggleKey != "f1" || got.FontSize != 20 {
		t.Errorf("reloaded %+v", got)
	}

	if err := p.SetFontSize(200); !errors.Is(err, ErrInvalid) {
		t.Errorf("SetFontSize(200) = %v, want ErrInvalid", err)
	}
}

func TestCurrent(t *testing.T) {
	old := Current()
	t.Cleanup(func() { SetCurrent(old) })

	p := Defaults()
	p.Skin = "light"
	SetCurrent(p)
	if Current() != p {
		t.Error("Current did not return the preferences passed to SetCurrent")
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("skin: dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := Watch(ctx, path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("skin: light\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// A reload may catch the file half-written; wait for the final content.
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case p := <-ch:
			done = p.Skin == "light"
		case <-timeout:
			t.Fatal("no reload with skin light after writing the file")
		}
	}

	cancel()
	for range ch {
	}
}
