// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package stringgen

import (
	"errors"
	"regexp"
	"testing"
)

func TestRenderMatchesUnderStandardEngine(t *testing.T) {
	regexps := []string{
		"",
		"a",
		"a*",
		"(abc|def)",
		"[0-9][0-9][a-zA-Z]+",
		".{10,20}",
		"^xy?z$",
		"(A|B)\\d{4}(\\.|-)\\d{1}",
		"\\w{10}",
	}
	for _, re := range regexps {
		gen, err := New(re, WithSeed("fixed-seed"))
		if err != nil {
			t.Fatalf("New(%q) failed: %v", re, err)
		}
		s, err := gen.Render()
		if err != nil {
			t.Fatalf("Render for %q failed: %v", re, err)
		}
		ok, err := regexp.MatchString(re, s)
		if err != nil {
			t.Fatalf("regexp.MatchString(%q, %q) failed: %v", re, s, err)
		}
		if !ok {
			t.Errorf("%q does not match generated string %q", re, s)
		}
	}
}

func TestRenderIsReproducibleForFixedSeed(t *testing.T) {
	gen1, err := New("\\d{4}", WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	gen2, err := New("\\d{4}", WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	s1, err := gen1.Render()
	if err != nil {
		t.Fatal(err)
	}
	s2, err := gen2.Render()
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s2 {
		t.Errorf("same seed produced different output: %q vs %q", s1, s2)
	}
}

func TestAlphabetOverrideRestrictsWordChars(t *testing.T) {
	gen, err := New("\\w{10}", WithAlphabet("αβγδε"), WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	s, err := gen.Render()
	if err != nil {
		t.Fatal(err)
	}
	allowed := map[rune]bool{}
	for _, r := range "αβγδε0123456789_" {
		allowed[r] = true
	}
	for _, r := range s {
		if !allowed[r] {
			t.Errorf("render() produced %q, containing disallowed rune %q", s, r)
		}
	}
}

func TestMaxRepeatBoundsLength(t *testing.T) {
	gen, err := New("\\w+", WithMaxRepeat(10), WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	s, err := gen.Render()
	if err != nil {
		t.Fatal(err)
	}
	if n := len([]rune(s)); n < 1 || n > 10 {
		t.Errorf("len(render()) = %d, want in [1, 10]", n)
	}
}

func TestGroupReference(t *testing.T) {
	gen, err := New(`(?P<x>[ab])-(?P=x)`, WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	s, err := gen.Render()
	if err != nil {
		t.Fatal(err)
	}
	if s != "a-a" && s != "b-b" {
		t.Errorf("render() = %q, want %q or %q", s, "a-a", "b-b")
	}
}

func TestCountScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"[01]{3}", "8"},
		{"\\d+", "+Inf"},
	}
	for _, tt := range tests {
		gen, err := New(tt.pattern)
		if err != nil {
			t.Fatal(err)
		}
		if got := gen.Count().String(); got != tt.want {
			t.Errorf("Count(%q) = %s, want %s", tt.pattern, got, tt.want)
		}
	}
}

func TestCountIsMemoized(t *testing.T) {
	gen, err := New("[01]{3}")
	if err != nil {
		t.Fatal(err)
	}
	c1 := gen.Count()
	gen.ast.Sub = nil // corrupt the tree; a second traversal would panic
	c2 := gen.Count()
	if c1.String() != c2.String() {
		t.Errorf("Count() not memoized: %s then %s", c1, c2)
	}
}

func TestEnumerateOrder(t *testing.T) {
	gen, err := New("[ab]{2}")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for s := range gen.Enumerate() {
		got = append(got, s)
	}
	want := []string{"aa", "ab", "ba", "bb"}
	if len(got) != len(want) {
		t.Fatalf("Enumerate() produced %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Enumerate()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEnumerateBranch(t *testing.T) {
	gen, err := New("(yes|no)")
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for s := range gen.Enumerate() {
		got = append(got, s)
	}
	if len(got) != 2 || got[0] != "yes" || got[1] != "no" {
		t.Errorf("Enumerate() = %v, want [yes no]", got)
	}
}

func TestRenderSetFailsFastWhenUnreachable(t *testing.T) {
	gen, err := New("[ab]")
	if err != nil {
		t.Fatal(err)
	}
	_, err = gen.RenderSet(5)
	var ve *ValueError
	if !errors.As(err, &ve) {
		t.Errorf("RenderSet(5) on a 2-string language: got %v, want *ValueError", err)
	}
}

func TestRenderSetSucceedsWithinCount(t *testing.T) {
	gen, err := New("[abc]", WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}
	set, err := gen.RenderSet(3)
	if err != nil {
		t.Fatalf("RenderSet(3) failed: %v", err)
	}
	if len(set) != 3 {
		t.Errorf("RenderSet(3) returned %d elements, want 3", len(set))
	}
	seen := map[string]bool{}
	for _, s := range set {
		if seen[s] {
			t.Errorf("RenderSet returned duplicate %q", s)
		}
		seen[s] = true
	}
}

func TestConcatStripsAnchors(t *testing.T) {
	a, err := New("^abc$")
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("^def$")
	if err != nil {
		t.Fatal(err)
	}
	c, err := a.Concat(b)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if c.String() != "^abcdef$" {
		t.Errorf("Concat pattern = %q, want %q", c.String(), "^abcdef$")
	}
}

func TestEqualIsPatternSourceOnly(t *testing.T) {
	a, _ := New("abc")
	b, _ := New("abc")
	c, _ := New("abd")
	if !a.Equal(b) {
		t.Error("Equal() = false for identical pattern sources")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for different pattern sources")
	}
}

func TestConfigurePrecedence(t *testing.T) {
	t.Cleanup(Reset)
	if err := Configure(ConfigMaxRepeat(5)); err != nil {
		t.Fatal(err)
	}
	gen, err := New("a*")
	if err != nil {
		t.Fatal(err)
	}
	if gen.MaxRepeat() != 5 {
		t.Errorf("MaxRepeat() = %d, want 5 (from process config)", gen.MaxRepeat())
	}

	gen2, err := New("a*", WithMaxRepeat(2))
	if err != nil {
		t.Fatal(err)
	}
	if gen2.MaxRepeat() != 2 {
		t.Errorf("MaxRepeat() = %d, want 2 (constructor argument wins)", gen2.MaxRepeat())
	}

	Reset()
	gen3, err := New("a*")
	if err != nil {
		t.Fatal(err)
	}
	if gen3.MaxRepeat() != DefaultMaxRepeat {
		t.Errorf("MaxRepeat() = %d, want built-in default %d", gen3.MaxRepeat(), DefaultMaxRepeat)
	}
}
