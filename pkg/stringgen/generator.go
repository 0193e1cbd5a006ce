// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

// Package stringgen generates character strings that match a regular
// expression pattern: a single random match, streams and batches of
// matches, sets of distinct matches, the exact (possibly infinite) number
// of distinct strings the pattern can produce, and a deterministic
// enumeration of all of them.
//
// The hard part is a regex-AST interpreter (ast.go, parser.go) that
// supports three modes over one tree — sampling (sampler.go), exact
// cardinality (counter.go), and lexicographic enumeration
// (enumerator.go) — all honoring a parametric alphabet (alphabet.go) that
// rewires the meaning of `\w`, `.`, and negated classes.
package stringgen

import (
	"iter"
	"strings"
)

// DefaultMaxRepeat is the built-in cap substituted for an unbounded
// quantifier's effective max when no instance option and no process
// config value set one.
const DefaultMaxRepeat = 100

// DefaultMaxIter is RenderSet's default iteration budget.
const DefaultMaxIter = 100_000

// Generator owns one pattern's parsed AST, its resolved alphabet and
// max-repeat cap, its random engine, and a memoized Count. It is not
// safe to share across goroutines; distinct Generators are fully
// independent.
type Generator struct {
	pattern   string
	ast       *Node
	alphabet  *Alphabet
	maxRepeat int
	classSets map[*Node][]rune
	rnd       *Random

	count *Count
}

// Option configures a [New] call. Constructor options take precedence
// over the process config, which takes precedence over the built-in
// default.
type Option func(*options)

type options struct {
	alphabet       *string
	forcedAlphabet *Alphabet
	maxRepeat      *int
	seed           any
}

// WithAlphabet overrides the alphabet used to resolve `\w`, `\W`, `.`,
// `\S`, `\D`, and negated classes for this generator only.
func WithAlphabet(alphabet string) Option {
	return func(o *options) { o.alphabet = &alphabet }
}

// WithMaxRepeat overrides the cap substituted for unbounded quantifiers
// for this generator only. n must be positive.
func WithMaxRepeat(n int) Option {
	return func(o *options) { o.maxRepeat = &n }
}

// WithSeed seeds the generator's random engine at construction. See
// [Random] for the accepted seed types.
func WithSeed(seed any) Option {
	return func(o *options) { o.seed = seed }
}

func withForcedAlphabet(a *Alphabet) Option {
	return func(o *options) { o.forcedAlphabet = a }
}

// New parses pattern and builds a Generator. max_repeat is resolved and
// captured now, from the precedence above, and is immune to any later
// [Configure] call — see DESIGN.md.
func New(pattern string, opts ...Option) (*Generator, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxRepeat != nil && *o.maxRepeat <= 0 {
		return nil, valueErrorf("max_repeat must be positive, got %d", *o.maxRepeat)
	}

	ast, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	defaultMaxRepeat, defaultAlphabet := currentDefaults()

	maxRepeat := DefaultMaxRepeat
	if defaultMaxRepeat > 0 {
		maxRepeat = defaultMaxRepeat
	}
	if o.maxRepeat != nil {
		maxRepeat = *o.maxRepeat
	}

	var alphabet *Alphabet
	if o.forcedAlphabet != nil {
		alphabet = o.forcedAlphabet
	} else {
		alphabetSrc := defaultAlphabet
		if o.alphabet != nil {
			alphabetSrc = *o.alphabet
		}
		alphabet, err = ResolveAlphabet(alphabetSrc)
		if err != nil {
			return nil, err
		}
	}

	classSets, err := resolveClasses(ast, alphabet)
	if err != nil {
		return nil, err
	}

	rnd, err := NewRandom(o.seed)
	if err != nil {
		return nil, err
	}

	return &Generator{
		pattern:   pattern,
		ast:       ast,
		alphabet:  alphabet,
		maxRepeat: maxRepeat,
		classSets: classSets,
		rnd:       rnd,
	}, nil
}

// String returns the pattern source.
func (g *Generator) String() string { return g.pattern }

// Pattern returns the pattern source the Generator was built from.
func (g *Generator) Pattern() string { return g.pattern }

// MaxRepeat returns the effective cap this Generator substitutes for
// unbounded quantifiers.
func (g *Generator) MaxRepeat() int { return g.maxRepeat }

// Equal reports whether two generators have equal pattern sources;
// equality is defined purely by pattern source.
func (g *Generator) Equal(other *Generator) bool {
	return other != nil && g.pattern == other.pattern
}

// Seed reseeds the generator's random engine; subsequent Render/Stream/
// RenderList calls replay deterministically from the new state.
func (g *Generator) Seed(seed any) error {
	return g.rnd.Seed(seed)
}

func (g *Generator) ctx() *evalContext {
	return &evalContext{alphabet: g.alphabet, classSets: g.classSets, maxRepeat: g.maxRepeat}
}

// Render produces a single random string matching the pattern.
func (g *Generator) Render() (string, error) {
	var buf strings.Builder
	if err := sample(g.ctx(), g.rnd, g.ast, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderList eagerly produces n samples, which may contain duplicates.
func (g *Generator) RenderList(n int) ([]string, error) {
	if n <= 0 {
		return nil, valueErrorf("n must be positive, got %d", n)
	}
	out := make([]string, n)
	for i := range out {
		s, err := g.Render()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Stream lazily produces exactly n samples.
func (g *Generator) Stream(n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < n; i++ {
			s, err := g.Render()
			if err != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Infinite lazily produces samples forever; the consumer must stop
// pulling.
func (g *Generator) Infinite() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			s, err := g.Render()
			if err != nil {
				return
			}
			if !yield(s) {
				return
			}
		}
	}
}

// RenderSet eagerly collects n distinct samples. It fails fast with a
// *ValueError if Count() proves n is unreachable, and otherwise samples
// until n distinct values are collected or maxIter draws have been made
// (default [DefaultMaxIter]), failing with *MaxIterationsReachedError in
// the latter case.
func (g *Generator) RenderSet(n int, maxIter ...int) ([]string, error) {
	if n <= 0 {
		return nil, valueErrorf("n must be positive, got %d", n)
	}
	limit := DefaultMaxIter
	if len(maxIter) > 0 {
		limit = maxIter[0]
	}

	if g.Count().LessThanInt(n) {
		return nil, valueErrorf("requested %d distinct samples but pattern can produce only %s", n, g.Count())
	}

	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for i := 0; i < limit && len(out) < n; i++ {
		s, err := g.Render()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) < n {
		return nil, &MaxIterationsReachedError{Requested: n, Collected: len(out), MaxIter: limit}
	}
	return out, nil
}

// Count returns the exact number of distinct strings the pattern can
// produce, or [Infinite]. It is computed once and memoized.
func (g *Generator) Count() Count {
	if g.count == nil {
		c := countNode(g.ctx(), g.ast)
		g.count = &c
	}
	return *g.count
}

// Enumerate lazily produces every distinct derivation of the pattern in
// the deterministic order derivations are produced in. limit, if given,
// overrides the cap substituted for unbounded quantifiers during this
// traversal only; it does not change [Generator.MaxRepeat].
func (g *Generator) Enumerate(limit ...int) iter.Seq[string] {
	cap := g.maxRepeat
	if len(limit) > 0 {
		cap = limit[0]
	}
	return enumerate(g.ctx(), g.ast, cap)
}

// Concat builds a new Generator whose pattern source is this generator's
// source with a trailing '$' stripped, concatenated with other's source
// with a leading '^' stripped, then reparsed. The result
// keeps this generator's resolved alphabet and max-repeat.
func (g *Generator) Concat(other *Generator) (*Generator, error) {
	left := strings.TrimSuffix(g.pattern, "$")
	right := strings.TrimPrefix(other.pattern, "^")
	return New(left+right, withForcedAlphabet(g.alphabet), WithMaxRepeat(g.maxRepeat))
}
