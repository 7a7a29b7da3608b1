package console

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gameconsole/pkg/renderer"
)

var (
	// ErrUnknownCvar is returned for a cvar name nobody registered.
	ErrUnknownCvar = errors.New("console: unknown cvar")
	// ErrReadOnlyCvar is returned when setting a cvar without a setter.
	ErrReadOnlyCvar = errors.New("console: read-only cvar")
	// ErrInvalidValue is returned when a cvar rejects a value.
	ErrInvalidValue = errors.New("console: invalid cvar value")
)

// cvar is a named console variable backed by accessors.
type cvar struct {
	get func() string
	// set is nil for read-only variables.
	set func(string) error
}

// cvarTable stores configuration variables by lower-case name.
type cvarTable map[string]cvar

func (t cvarTable) define(name string, get func() string, set func(string) error) {
	t[strings.ToLower(name)] = cvar{get: get, set: set}
}

// getCvar retrieves a configuration variable value
func (t cvarTable) getCvar(name string) (string, error) {
	v, ok := t[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCvar, name)
	}
	return v.get(), nil
}

// setCvar sets a configuration variable value
func (t cvarTable) setCvar(name, value string) error {
	v, ok := t[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCvar, name)
	}
	if v.set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnlyCvar, name)
	}
	return v.set(value)
}

// names returns every cvar name in alphabetical order.
func (t cvarTable) names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseColorRGBA parses "R,G,B,A" into color.RGBA. Values 0-255.
func parseColorRGBA(s string) (color.RGBA, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return color.RGBA{}, false
	}
	var vals [4]uint8
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, false
		}
		vals[i] = uint8(n)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, true
}

// formatColorRGBA is the inverse of parseColorRGBA.
func formatColorRGBA(c color.Color) string {
	if c == nil {
		return "0,0,0,0"
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("%d,%d,%d,%d", rgba.R, rgba.G, rgba.B, rgba.A)
}

// initCvars defines the built-in variables of c.
func (c *Console) initCvars() {
	t := c.cvars

	t.define("version", func() string { return renderer.Version }, nil)
	if renderer.Commit != "unknown" && len(renderer.Commit) > 0 {
		t.define("commit", func() string { return renderer.Commit }, nil)
	}

	t.define("skin",
		func() string { return c.skin.Name },
		func(v string) error {
			s, ok := SkinByName(v)
			if !ok {
				return fmt.Errorf("%w: no skin named %q", ErrInvalidValue, v)
			}
			c.SetSkin(s)
			return nil
		})

	t.define("autocomplete.max",
		func() string { return strconv.Itoa(c.index.MaxResults()) },
		func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("%w: %q is not a count", ErrInvalidValue, v)
			}
			c.index.SetMaxResults(n)
			c.refreshSuggestions()
			return nil
		})

	t.define("history.limit",
		func() string { return strconv.Itoa(c.history.Limit) },
		func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
			}
			c.history.Limit = n
			return nil
		})

	colors := map[string]func(s *Skin) *color.Color{
		"colors.background":            func(s *Skin) *color.Color { return &s.Background },
		"colors.highlight":             func(s *Skin) *color.Color { return &s.Highlight },
		"colors.cursor":                func(s *Skin) *color.Color { return &s.Cursor },
		"colors.time":                  func(s *Skin) *color.Color { return &s.Time },
		"colors.warning":               func(s *Skin) *color.Color { return &s.Warning },
		"colors.scrollbar":             func(s *Skin) *color.Color { return &s.ScrollBar },
		"colors.scrollbar_strip":       func(s *Skin) *color.Color { return &s.ScrollBarStrip },
		"colors.input.bg":              func(s *Skin) *color.Color { return &s.Input.Back },
		"colors.input.fg":              func(s *Skin) *color.Color { return &s.Input.Text },
		"colors.history.bg":            func(s *Skin) *color.Color { return &s.History.Back },
		"colors.history.fg":            func(s *Skin) *color.Color { return &s.History.Text },
		"colors.autocomplete.bg":       func(s *Skin) *color.Color { return &s.AutoComplete.Back },
		"colors.autocomplete.fg":       func(s *Skin) *color.Color { return &s.AutoComplete.Text },
		"colors.autocomplete.border":   func(s *Skin) *color.Color { return &s.AutoCompleteBorder },
		"colors.autocomplete.selected": func(s *Skin) *color.Color { return &s.AutoCompleteSelected },
	}
	for name, field := range colors {
		t.define(name,
			func() string { return formatColorRGBA(*field(c.skin)) },
			func(v string) error {
				rgba, ok := parseColorRGBA(v)
				if !ok {
					return fmt.Errorf("%w: %q is not R,G,B,A", ErrInvalidValue, v)
				}
				*field(c.skin) = rgba
				c.dispatcher.WarningColor = c.skin.Warning
				return nil
			})
	}
}

// DefineCvar adds a host variable to the console. A nil set makes it
// read-only. Defining an existing name replaces it.
func (c *Console) DefineCvar(name string, get func() string, set func(string) error) {
	c.cvars.define(name, get, set)
}

// Cvar returns the value of a console variable.
func (c *Console) Cvar(name string) (string, error) {
	return c.cvars.getCvar(name)
}

// SetCvar changes a console variable.
func (c *Console) SetCvar(name, value string) error {
	return c.cvars.setCvar(name, value)
}
