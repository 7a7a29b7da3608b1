// Package config loads and saves the console's user preferences as YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the preferences file inside the config directory.
	FileName = "preferences.yaml"

	MinFontSize = 8
	MaxFontSize = 72
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("config: invalid preferences")

// Preferences are the settings a user can change between runs.
type Preferences struct {
	// ToggleKey is the key code that opens and closes the console.
	ToggleKey       string  `yaml:"toggle_key"`
	Skin            string  `yaml:"skin"`
	FontSize        float64 `yaml:"font_size"`
	AutoCompleteMax int     `yaml:"autocomplete_max"`
	HistoryLimit    int     `yaml:"history_limit"`
	OutputLimit     int     `yaml:"output_limit"`
	ShowFPS         bool    `yaml:"show_fps"`

	path string
	mu   sync.Mutex
}

// Defaults returns the preferences used when no file exists.
func Defaults() *Preferences {
	return &Preferences{
		ToggleKey:       "grave",
		Skin:            "dark",
		FontSize:        16,
		AutoCompleteMax: 3,
		HistoryLimit:    100,
		OutputLimit:     500,
		ShowFPS:         true,
	}
}

// DefaultPath returns the preferences file under the user's config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "gameconsole", FileName), nil
}

// Load reads preferences from path. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (*Preferences, error) {
	p := Defaults()
	p.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing preferences %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks value ranges.
func (p *Preferences) Validate() error {
	switch {
	case p.ToggleKey == "":
		return fmt.Errorf("%w: toggle_key is empty", ErrInvalid)
	case p.FontSize < MinFontSize || p.FontSize > MaxFontSize:
		return fmt.Errorf("%w: font_size %v outside [%d, %d]", ErrInvalid, p.FontSize, MinFontSize, MaxFontSize)
	case p.AutoCompleteMax < 0:
		return fmt.Errorf("%w: autocomplete_max is negative", ErrInvalid)
	case p.HistoryLimit < 0:
		return fmt.Errorf("%w: history_limit is negative", ErrInvalid)
	case p.OutputLimit < 0:
		return fmt.Errorf("%w: output_limit is negative", ErrInvalid)
	}
	return nil
}

// Path returns the file the preferences were loaded from.
func (p *Preferences) Path() string {
	return p.path
}

// Save writes the preferences back to the file they were loaded from,
// creating its directory when needed.
func (p *Preferences) Save() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.path == "" {
		return errors.New("config: preferences have no file")
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(p.path, data, 0o644); err != nil {
		return fmt.Errorf("writing preferences: %w", err)
	}
	return nil
}

// SetFontSize changes the font size and saves.
func (p *Preferences) SetFontSize(size float64) error {
	if size < MinFontSize || size > MaxFontSize {
		return fmt.Errorf("%w: font_size %v outside [%d, %d]", ErrInvalid, size, MinFontSize, MaxFontSize)
	}
	p.FontSize = size
	return p.Save()
}

var (
	current   = Defaults()
	currentMu sync.RWMutex
)

// Current returns the process-wide preferences.
func Current() *Preferences {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the process-wide preferences.
func SetCurrent(p *Preferences) {
	currentMu.Lock()
	defer currentMu.Unlock()
	current = p
}
