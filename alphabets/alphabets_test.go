// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package alphabets

import (
	"testing"
	"unicode/utf8"
)

func TestNamedAlphabetsAreNonEmptyValidUTF8(t *testing.T) {
	named := map[string]string{
		"Latin":           Latin,
		"LatinDiacritics": LatinDiacritics,
		"Cyrillic":        Cyrillic,
		"Greek":           Greek,
		"CJK":             CJK,
		"Hiragana":        Hiragana,
		"Katakana":        Katakana,
		"Hangul":          Hangul,
		"Arabic":          Arabic,
		"Devanagari":      Devanagari,
		"Thai":            Thai,
		"Hebrew":          Hebrew,
		"Bengali":         Bengali,
		"Tamil":           Tamil,
		"Telugu":          Telugu,
		"Georgian":        Georgian,
		"Armenian":        Armenian,
		"Ethiopic":        Ethiopic,
		"Myanmar":         Myanmar,
		"Sinhala":         Sinhala,
		"Gujarati":        Gujarati,
		"Gurmukhi":        Gurmukhi,
	}
	for name, alphabet := range named {
		if alphabet == "" {
			t.Errorf("%s is empty", name)
		}
		if !utf8.ValidString(alphabet) {
			t.Errorf("%s is not valid UTF-8", name)
		}
	}
}

func TestWordAlphabetIsNonEmptyAndSorted(t *testing.T) {
	a := WordAlphabet(20)
	if a == "" {
		t.Fatal("WordAlphabet(20) returned an empty string")
	}
	var prev rune
	for i, r := range a {
		if i > 0 && r < prev {
			t.Errorf("WordAlphabet(20) not sorted at rune %d: %q < %q", i, r, prev)
		}
		prev = r
	}
}
