// Package layout holds the text layout helpers used by the console: greedy
// word wrapping against a pixel budget and a smoothly scrolled line window.
package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrGlyphTooWide is returned when a single glyph does not fit the wrap
// width. No amount of wrapping can make such text fit.
var ErrGlyphTooWide = errors.New("layout: glyph wider than wrap width")

// MeasureFunc returns the rendered width of s in pixels.
type MeasureFunc func(s string) float64

// Wrap splits text into lines no wider than width. Lines are broken after
// whole space-separated words where possible and by character when a single
// word is too long. The separators stay at the end of the line they follow,
// so strings.Join(lines, "") == text.
func Wrap(text string, measure MeasureFunc, width float64) ([]string, error) {
	if width < 0 {
		return nil, fmt.Errorf("layout: negative wrap width %.1f", width)
	}

	var lines []string
	rest := text
	for {
		if measure(rest) <= width {
			return append(lines, rest), nil
		}

		n, err := fitPrefix(rest, measure, width)
		if err != nil {
			return nil, err
		}
		lines = append(lines, rest[:n])
		rest = rest[n:]
		if rest == "" {
			return lines, nil
		}
	}
}

// fitPrefix returns the byte length of the longest leading chunk of text
// that should go on the current line.
func fitPrefix(text string, measure MeasureFunc, width float64) (int, error) {
	words := strings.Split(text, " ")

	if measure(words[0]) > width {
		return fitChars(words[0], measure, width)
	}

	// Take words while the next one still fits. The whole text does not fit,
	// so this stops before running out of words.
	n := 1
	for n < len(words) && measure(strings.Join(words[:n+1], " ")) < width {
		n++
	}

	end := len(strings.Join(words[:n], " "))
	if end < len(text) {
		end++ // keep the separating space on this line
	}
	return end, nil
}

// fitChars breaks an over-long word after as many characters as fit. It
// returns a byte offset into word, so invalid UTF-8 bytes count as one
// character each.
func fitChars(word string, measure MeasureFunc, width float64) (int, error) {
	_, end := utf8.DecodeRuneInString(word)
	if first := word[:end]; measure(first) > width {
		return 0, fmt.Errorf("%w: %q is %.1fpx, width is %.1fpx", ErrGlyphTooWide, first, measure(first), width)
	}

	for end < len(word) {
		_, size := utf8.DecodeRuneInString(word[end:])
		if measure(word[:end+size]) >= width {
			break
		}
		end += size
	}
	return end, nil
}
