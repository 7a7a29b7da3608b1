package textedit

import "github.com/zyedidia/generic/mapset"

// wordBoundaries are the runes that separate words for Ctrl-modified
// movement and erasing.
var wordBoundaries = mapset.Of(' ', ',', '.')

// IsWordBoundary reports whether r separates words.
func IsWordBoundary(r rune) bool {
	return wordBoundaries.Has(r)
}

// nextWordBoundary returns the index of the first boundary at or after from.
// A boundary sitting exactly at from is stepped over so repeated calls always
// make progress. Returns len(text) when there is none.
func nextWordBoundary(text []rune, from int) int {
	for {
		idx := -1
		for i := from; i < len(text); i++ {
			if IsWordBoundary(text[i]) {
				idx = i
				break
			}
		}
		if idx == -1 {
			return len(text)
		}
		if idx != from {
			return idx
		}
		from++
	}
}

// prevWordBoundary returns the index of the last boundary before from. A
// boundary immediately left of from is stepped over. Returns 0 when there is
// none.
func prevWordBoundary(text []rune, from int) int {
	if from > len(text) {
		from = len(text)
	}
	for {
		idx := -1
		for i := from - 1; i >= 0; i-- {
			if IsWordBoundary(text[i]) {
				idx = i
				break
			}
		}
		if idx == -1 {
			return 0
		}
		if idx != from-1 {
			return idx
		}
		from--
	}
}
