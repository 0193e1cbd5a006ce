// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package stringgen

import (
	"strconv"
	"strings"
)

// supported syntax: literals, `.`, classes with ranges and
// negation, shorthand classes, quantifiers `{n}` `{n,m}` `*` `+` `?` with
// lazy variants, groups `(...)` and named groups `(?P<name>...)` /
// backreferences `(?P=name)`, alternation, numbered backreferences `\1`
// through `\99`, anchors `^` `$` `\b` `\B`, positive/negative lookahead
// `(?=...)` `(?!...)`. Lookbehind, conditionals, atomic groups and
// possessive quantifiers are rejected with a PatternError.

// Parse converts a regex source string into its AST. It never depends on
// any host regular-expression library's parser: it is a standalone
// recursive-descent parser over the pattern's runes, so that the AST it
// produces is exactly the opcode set this package defines (see ast.go)
// rather than whatever internal representation a matching engine happens
// to use.
func Parse(pattern string) (*Node, error) {
	p := &parser{lx: newLexer(pattern), nextGroup: 1}
	root, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if !p.lx.eof() {
		r, _ := p.lx.peek()
		return nil, p.lx.errorf("unexpected %q", r)
	}
	return root, nil
}

type parser struct {
	lx        *lexer
	nextGroup int
}

// parseAlternation := concat ('|' concat)*
func (p *parser) parseAlternation() (*Node, error) {
	var alts []*Node
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	alts = append(alts, first)
	for p.lx.accept('|') {
		next, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	return newBranch(alts), nil
}

// parseConcat := term*, stopping at '|', ')', or eof.
func (p *parser) parseConcat() (*Node, error) {
	var terms []*Node
	for {
		r, ok := p.lx.peek()
		if !ok || r == '|' || r == ')' {
			break
		}
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if term != nil {
			terms = append(terms, term)
		}
	}
	return newConcat(terms), nil
}

// parseTerm := atom quantifier?
func (p *parser) parseTerm() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return p.parseQuantifier(atom)
}

func (p *parser) parseAtom() (*Node, error) {
	r, ok := p.lx.next()
	if !ok {
		return nil, p.lx.errorf("unexpected end of pattern")
	}
	switch r {
	case '.':
		return &Node{Op: OpAny}, nil
	case '^':
		return &Node{Op: OpAt, Anchor: AnchorStart}, nil
	case '$':
		return &Node{Op: OpAt, Anchor: AnchorEnd}, nil
	case '(':
		return p.parseGroup()
	case '[':
		return p.parseClass()
	case '\\':
		return p.parseEscape(false)
	case '*', '+', '?':
		return nil, p.lx.errorf("nothing to repeat")
	case '{':
		// A `{` that doesn't open a valid quantifier is a literal brace; one
		// that does has no atom before it to repeat.
		p.lx.pos--
		_, _, isQuant, err := p.tryParseBraceQuantifier()
		if err != nil {
			return nil, err
		}
		if isQuant {
			return nil, p.lx.errorf("nothing to repeat")
		}
		p.lx.pos++
		return &Node{Op: OpLiteral, Literal: r}, nil
	default:
		return &Node{Op: OpLiteral, Literal: r}, nil
	}
}

// parseGroup handles everything that can follow an already-consumed '('.
func (p *parser) parseGroup() (*Node, error) {
	if p.lx.accept('?') {
		switch {
		case p.lx.accept(':'):
			return p.parseGroupBody(0, "")
		case p.lx.accept('='):
			return p.parseAssertion(OpAssert)
		case p.lx.accept('!'):
			return p.parseAssertion(OpAssertNot)
		case p.lx.accept('P'):
			switch {
			case p.lx.accept('<'):
				name, err := p.parseGroupName('>')
				if err != nil {
					return nil, err
				}
				num := p.nextGroup
				p.nextGroup++
				return p.parseGroupBody(num, name)
			case p.lx.accept('='):
				name, err := p.parseGroupName(')')
				if err != nil {
					return nil, err
				}
				// parseGroupName already consumed the closing ')'.
				return &Node{Op: OpGroupRef, GroupName: name}, nil
			default:
				return nil, p.lx.errorf("unsupported group syntax '(?P'")
			}
		case p.peekIs('<', '=') || p.peekIs('<', '!'):
			return nil, p.lx.errorf("lookbehind assertions are not supported")
		case p.peekIs('>', 0):
			return nil, p.lx.errorf("atomic groups are not supported")
		case p.peekIs('(', 0):
			return nil, p.lx.errorf("conditional patterns are not supported")
		default:
			return nil, p.lx.errorf("unsupported group syntax '(?'")
		}
	}
	num := p.nextGroup
	p.nextGroup++
	return p.parseGroupBody(num, "")
}

// peekIs reports whether the next one (or, if b != 0, two) runes equal a
// (and b). It never consumes.
func (p *parser) peekIs(a, b rune) bool {
	r, ok := p.lx.peek()
	if !ok || r != a {
		return false
	}
	if b == 0 {
		return true
	}
	r2, ok := p.lx.peekAt(1)
	return ok && r2 == b
}

func (p *parser) parseGroupName(end rune) (string, error) {
	var sb strings.Builder
	for {
		r, ok := p.lx.next()
		if !ok {
			return "", p.lx.errorf("unterminated group name")
		}
		if r == end {
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

func (p *parser) parseGroupBody(num int, name string) (*Node, error) {
	body, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if err := p.lx.expect(')'); err != nil {
		return nil, err
	}
	return &Node{Op: OpSubpattern, GroupNum: num, GroupName: name, Sub: body}, nil
}

func (p *parser) parseAssertion(op Op) (*Node, error) {
	body, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if err := p.lx.expect(')'); err != nil {
		return nil, err
	}
	return &Node{Op: op, Sub: body}, nil
}

// parseQuantifier applies at most one quantifier (with optional lazy `?`
// suffix) to atom. If no quantifier follows, atom is returned unchanged.
func (p *parser) parseQuantifier(atom *Node) (*Node, error) {
	var min, max int
	switch {
	case p.lx.accept('*'):
		min, max = 0, Unbounded
	case p.lx.accept('+'):
		min, max = 1, Unbounded
	case p.lx.accept('?'):
		min, max = 0, 1
	case p.peekIs('{', 0):
		n, m, ok, err := p.tryParseBraceQuantifier()
		if err != nil {
			return nil, err
		}
		if !ok {
			return atom, nil
		}
		min, max = n, m
	default:
		return atom, nil
	}

	lazy := p.lx.accept('?')
	if p.lx.accept('+') {
		return nil, p.lx.errorf("possessive quantifiers are not supported")
	}

	op := OpMaxRepeat
	if lazy {
		op = OpMinRepeat
	}
	return &Node{Op: op, Min: min, Max: max, Sub: atom}, nil
}

// tryParseBraceQuantifier attempts to parse a `{n}`, `{n,}` or `{n,m}`
// quantifier starting at the current, not-yet-consumed '{'. If the
// contents don't form a valid quantifier it restores the lexer position
// and reports ok=false so the caller treats '{' as a literal.
func (p *parser) tryParseBraceQuantifier() (min, max int, ok bool, err error) {
	start := p.lx.pos
	p.lx.pos++ // consume '{'

	digits := func() (string, bool) {
		s := p.lx.pos
		for {
			r, has := p.lx.peek()
			if !has || !isDigit(r) {
				break
			}
			p.lx.pos++
		}
		if p.lx.pos == s {
			return "", false
		}
		return string(p.lx.src[s:p.lx.pos]), true
	}

	minStr, hasMin := digits()
	if !hasMin {
		p.lx.pos = start
		return 0, 0, false, nil
	}

	maxStr := minStr
	hasComma := p.lx.accept(',')
	if hasComma {
		if m, has := digits(); has {
			maxStr = m
		} else {
			maxStr = ""
		}
	}

	if !p.lx.accept('}') {
		p.lx.pos = start
		return 0, 0, false, nil
	}

	minVal, convErr := strconv.Atoi(minStr)
	if convErr != nil {
		return 0, 0, false, p.lx.errorf("invalid repeat count %q", minStr)
	}
	maxVal := minVal
	if hasComma {
		if maxStr == "" {
			maxVal = Unbounded
		} else if maxVal, convErr = strconv.Atoi(maxStr); convErr != nil {
			return 0, 0, false, p.lx.errorf("invalid repeat count %q", maxStr)
		}
	}
	if maxVal != Unbounded && maxVal < minVal {
		return 0, 0, false, p.lx.errorf("min repeat %d > max repeat %d", minVal, maxVal)
	}
	return minVal, maxVal, true, nil
}

// parseEscape decodes a backslash escape. inClass is true when called from
// inside a character class, where `\b` means backspace rather than a word
// boundary, and where `\B` and `\1`..`\99` are neither anchors nor
// backreferences but stand for their own rune. Shorthand classes build the
// same OpCategory Node either way.
func (p *parser) parseEscape(inClass bool) (*Node, error) {
	r, ok := p.lx.next()
	if !ok {
		return nil, p.lx.errorf("trailing backslash")
	}

	if cat, isCat := shorthandCategory(r); isCat {
		return &Node{Op: OpCategory, Category: cat}, nil
	}

	if !inClass {
		switch r {
		case 'b':
			return &Node{Op: OpAt, Anchor: AnchorWordBoundary}, nil
		case 'B':
			return &Node{Op: OpAt, Anchor: AnchorNotWordBoundary}, nil
		}
		if r >= '1' && r <= '9' {
			numStr := string(r)
			for {
				d, has := p.lx.peek()
				if !has || !isDigit(d) || len(numStr) >= 2 {
					break
				}
				numStr += string(d)
				p.lx.pos++
			}
			n, convErr := strconv.Atoi(numStr)
			if convErr != nil || n < 1 || n > 99 {
				return nil, p.lx.errorf("invalid backreference \\%s", numStr)
			}
			return &Node{Op: OpGroupRef, GroupNum: n}, nil
		}
	}

	if inClass && r == 'b' {
		return &Node{Op: OpLiteral, Literal: '\b'}, nil
	}

	if r == 'p' || r == 'P' {
		return nil, p.lx.errorf("unicode property escapes are not supported")
	}

	if lit, isSimple := simpleEscape(r); isSimple {
		return &Node{Op: OpLiteral, Literal: lit}, nil
	}

	// Any other escaped rune (punctuation, or a letter with no assigned
	// meaning) stands for itself.
	return &Node{Op: OpLiteral, Literal: r}, nil
}

// parseClass parses a `[...]` character class, the opening '[' already
// consumed.
func (p *parser) parseClass() (*Node, error) {
	negated := p.lx.accept('^')

	var members []*Node
	first := true
	for {
		r, ok := p.lx.peek()
		if !ok {
			return nil, p.lx.errorf("unterminated character class")
		}
		if r == ']' && !first {
			p.lx.pos++
			break
		}
		first = false

		var lo *Node
		var err error
		if r == '\\' {
			p.lx.pos++
			lo, err = p.parseEscape(true)
		} else {
			p.lx.pos++
			lo = &Node{Op: OpLiteral, Literal: r}
		}
		if err != nil {
			return nil, err
		}

		if lo.Op == OpLiteral {
			if nr, ok := p.lx.peek(); ok && nr == '-' {
				if afterDash, ok2 := p.lx.peekAt(1); ok2 && afterDash != ']' {
					p.lx.pos++ // consume '-'
					hr, _ := p.lx.next()
					var hi *Node
					if hr == '\\' {
						hi, err = p.parseEscape(true)
						if err != nil {
							return nil, err
						}
					} else {
						hi = &Node{Op: OpLiteral, Literal: hr}
					}
					if hi.Op != OpLiteral {
						return nil, p.lx.errorf("invalid range end in character class")
					}
					if hi.Literal < lo.Literal {
						return nil, p.lx.errorf("range out of order in character class")
					}
					members = append(members, &Node{Op: OpRange, Lo: lo.Literal, Hi: hi.Literal})
					continue
				}
			}
		}
		members = append(members, lo)
	}

	return &Node{Op: OpIn, Children: members, Negated: negated}, nil
}
