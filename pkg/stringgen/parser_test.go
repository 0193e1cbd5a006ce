// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package stringgen

import "testing"

func TestParseAccepts(t *testing.T) {
	patterns := []string{
		"", "a", "a*", "a+", "a?", "a{2,4}", "a{2,}", "a{2}",
		"(abc|def)", "[0-9][a-zA-Z]+", ".", "^xy?z$",
		"(?:abc)", "(?=abc)", "(?!abc)", "(?P<x>a)-(?P=x)", `\1`,
		`\w\W\d\D\s\S`, `[^abc]`, `\b`, `\B`,
	}
	for _, p := range patterns {
		if _, err := Parse(p); err != nil {
			t.Errorf("Parse(%q) failed: %v", p, err)
		}
	}
}

func TestParseRejects(t *testing.T) {
	patterns := []string{
		"(", ")", "[", "a**", "a++", "{2,1}", "(?<=abc)", "(?<!abc)",
		"(?>abc)", "(?(1)a|b)", `\p{L}`,
	}
	for _, p := range patterns {
		if _, err := Parse(p); err == nil {
			t.Errorf("Parse(%q) succeeded, want an error", p)
		}
	}
}

func TestBraceIsLiteralWhenNotAQuantifier(t *testing.T) {
	ast, err := Parse("a{x}")
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", "a{x}", err)
	}
	gen := &Generator{pattern: "a{x}", ast: ast}
	alphabet, err := ResolveAlphabet("")
	if err != nil {
		t.Fatal(err)
	}
	classSets, err := resolveClasses(ast, alphabet)
	if err != nil {
		t.Fatal(err)
	}
	gen.alphabet = alphabet
	gen.classSets = classSets
	gen.maxRepeat = DefaultMaxRepeat
	rnd, err := NewRandom(1)
	if err != nil {
		t.Fatal(err)
	}
	gen.rnd = rnd
	s, err := gen.Render()
	if err != nil {
		t.Fatal(err)
	}
	if s != "a{x}" {
		t.Errorf("Render() = %q, want %q", s, "a{x}")
	}
}
