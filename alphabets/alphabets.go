// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package alphabets exposes named alphabet strings for a range of
// scripts, plus a lorem-ipsum-derived word alphabet. These are plain
// constants and one helper function; stringgen never imports meaning
// from them.
package alphabets

import (
	"sort"
	"strings"

	"github.com/go-loremipsum/loremipsum"
)

const (
	// Latin is the plain ASCII Latin alphabet, upper and lower case.
	Latin = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// LatinDiacritics extends Latin with the Latin-1 Supplement and Latin
	// Extended-A letters most commonly seen in Western European text.
	LatinDiacritics = Latin +
		"àáâãäåæçèéêëìíîïðñòóôõöøùúûüýþ" +
		"ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏÐÑÒÓÔÕÖØÙÚÛÜÝÞ"

	// Cyrillic is the modern Russian Cyrillic alphabet.
	Cyrillic = "абвгдежзийклмнопрстуфхцчшщъыьэюя" +
		"АБВГДЕЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"

	// Greek is the modern monotonic Greek alphabet.
	Greek = "αβγδεζηθικλμνξοπρστυφχψω" +
		"ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ"

	// CJK is a sampling of common CJK Unified Ideographs (U+4E00 block).
	CJK = "一二三四五六七八九十百千万上下左右中大小人山水火木金土日月"

	// Hiragana is the Japanese hiragana syllabary.
	Hiragana = "あいうえおかきくけこさしすせそたちつてとなにぬねの" +
		"はひふへほまみむめもやゆよらりるれろわをん"

	// Katakana is the Japanese katakana syllabary.
	Katakana = "アイウエオカキクケコサシスセソタチツテトナニヌネノ" +
		"ハヒフヘホマミムメモヤユヨラリルレロワヲン"

	// Hangul is a set of common modern Hangul syllable blocks.
	Hangul = "가나다라마바사아자차카타파하거너더러머버서어저처커터퍼허"

	// Arabic is the Arabic alphabet, isolated forms.
	Arabic = "ابتثجحخدذرزسشصضطظعغفقكلمنهوي"

	// Devanagari is the Devanagari consonant and vowel inventory used for
	// Hindi.
	Devanagari = "अआइईउऊएऐओऔकखगघङचछजझञटठडढणतथदधनपफबभमयरलवशषसह"

	// Thai is the Thai consonant inventory.
	Thai = "กขฃคฅฆงจฉชซฌญฎฏฐฑฒณดตถทธนบปผฝพฟภมยรลวศษสหฬอฮ"

	// Hebrew is the Hebrew alphabet.
	Hebrew = "אבגדהוזחטיכלמנסעפצקרשת"

	// Bengali is the Bengali consonant and vowel inventory.
	Bengali = "অআইঈউঊএঐওঔকখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযরলশষসহ"

	// Tamil is the Tamil consonant and vowel inventory.
	Tamil = "அஆஇஈஉஊஎஏஐஒஓஔகஙசஞடணதநபமயரலவழளறன"

	// Telugu is the Telugu consonant and vowel inventory.
	Telugu = "అఆఇఈఉఊఎఏఐఒఓఔకఖగఘఙచఛజఝఞటఠడఢణతథదధనపఫబభమయరలవశషసహ"

	// Georgian is the modern Georgian (Mkhedruli) alphabet.
	Georgian = "აბგდევზთიკლმნოპჟრსტუფქღყშჩცძწჭხჯჰ"

	// Armenian is the Armenian alphabet, lower case.
	Armenian = "աբգդեզէըթժիլխծկհձղճմյնշոչպջռսվտրցւփքօֆ"

	// Ethiopic is a sampling of Ge'ez-script base forms used for Amharic.
	Ethiopic = "ሀለሐመሠረሰሸቀበተቸኀነኘአከኸወዐዘዠየደጀገጠጨጰጸፀፈፐ"

	// Myanmar is the Burmese consonant inventory.
	Myanmar = "ကခဂဃငစဆဇဈဉညဋဌဍဎဏတထဒဓနပဖဗဘမယရလဝသဟဠအ"

	// Sinhala is the Sinhala consonant and vowel inventory.
	Sinhala = "අආඇඈඉඊඋඌඑඒඓඔඕකඛගඝඞචඡජඣඤටඨඩඪණතථදධනපඵබභමයරලවශෂසහළ"

	// Gujarati is the Gujarati consonant and vowel inventory.
	Gujarati = "અઆઇઈઉઊએઐઓઔકખગઘઙચછજઝઞટઠડઢણતથદધનપફબભમયરલવશષસહ"

	// Gurmukhi is the Punjabi/Gurmukhi consonant and vowel inventory.
	Gurmukhi = "ਅਆਇਈਉਊਏਐਓਔਕਖਗਘਙਚਛਜਝਞਟਠਡਢਣਤਥਦਧਨਪਫਬਭਮਯਰਲਵਸ਼ਸਹ"
)

// WordAlphabet returns the sorted set of distinct letters (word
// characters only, no spaces or punctuation) appearing across n
// generated lorem-ipsum words. It gives callers a non-trivial source of
// Latin text to derive an alphabet from, instead of hand-listing one; the
// stringgen CLI does not call it.
func WordAlphabet(n int) string {
	li := loremipsum.New()
	text := li.Words(n)
	seen := make(map[rune]struct{})
	for _, r := range text {
		if r == ' ' {
			continue
		}
		seen[r] = struct{}{}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return strings.TrimSpace(string(out))
}
