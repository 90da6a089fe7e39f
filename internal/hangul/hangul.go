// Package hangul romanizes Korean text by decomposing each syllable into
// its jamo and mapping them to revised-romanization letters.
package hangul

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Jamo romanizations indexed by the syllable decomposition formula:
// code = rune - '가', initial = code/588, medial = (code%588)/28,
// final = code%28.
var (
	initials = [...]string{"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h"}
	medials  = [...]string{"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i"}
	finals   = [...]string{"", "k", "k", "k", "n", "n", "n", "t", "l", "k", "m", "p", "t", "t", "ng", "t", "t", "k", "t", "p", "t", "t", "t", "t", "p", "t", "t", "p"}
)

const (
	syllableFirst = '가'
	syllableLast  = '힣'
)

// HasHangul reports whether text contains at least one hangul syllable.
func HasHangul(text string) bool {
	for _, r := range text {
		if r >= syllableFirst && r <= syllableLast {
			return true
		}
	}
	return false
}

// Romanize converts hangul syllables to Latin letters, passing every other
// rune through unchanged.
func Romanize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r < syllableFirst || r > syllableLast {
			b.WriteRune(r)
			continue
		}
		code := int(r - syllableFirst)
		b.WriteString(initials[code/588])
		b.WriteString(medials[(code%588)/28])
		b.WriteString(finals[code%28])
	}
	return b.String()
}

var titleCaser = cases.Title(language.English)

// RomanizeTitle romanizes and title-cases each word, the form used for
// names and team strings shown to readers.
func RomanizeTitle(text string) string {
	return titleCaser.String(Romanize(text))
}
