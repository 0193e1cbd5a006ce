// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package stringgen

// evalContext carries everything the three interpreters (sampler,
// counter, enumerator) need besides the AST node they're currently
// visiting: the resolved alphabet, the per-generator max-repeat cap, and
// the resolved member set of every OpIn node.
//
// classSets lives outside the AST, in a side table keyed by node
// pointer, rather than as a field on Node, so the AST stays immutable
// after parsing: resolving classes against an alphabet is
// evaluation-time work, not parse-time work, and two Generators built
// from equal patterns but different alphabets never have to share or
// invalidate cached state on the tree itself.
type evalContext struct {
	alphabet  *Alphabet
	classSets map[*Node][]rune
	maxRepeat int
}

// resolveClasses walks root once and resolves every OpIn node's member
// set against alphabet, validating that no resolved class set is empty.
// ANY and NOT_LITERAL sets are not resolved or checked here. By resolving eagerly at
// construction, a Generator can never be built in a state where sampling
// could discover an empty character class later.
func resolveClasses(root *Node, alphabet *Alphabet) (map[*Node][]rune, error) {
	sets := make(map[*Node][]rune)
	var walkErr error
	walk(root, func(n *Node) {
		if walkErr != nil || n.Op != OpIn {
			return
		}
		members := make([]rune, 0, len(n.Children))
		for _, child := range n.Children {
			switch child.Op {
			case OpLiteral:
				members = append(members, child.Literal)
			case OpRange:
				members = append(members, rangeRunes(child.Lo, child.Hi)...)
			case OpCategory:
				members = append(members, alphabet.Category(child.Category)...)
			}
		}
		set := sortedUniqueRunes(string(members))
		if n.Negated {
			set = diffRunes(alphabet.Printable(), set)
		}
		if len(set) == 0 {
			walkErr = &PatternError{Msg: "character class resolves to an empty set"}
			return
		}
		sets[n] = set
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return sets, nil
}

// notLiteral returns the printable set minus r, computed on demand: a
// NOT_LITERAL node's excluded rune is data, not grammar, so (unlike
// OpIn) there's nothing to validate ahead of time — the invariant that
// the default and named alphabets (alphabets.go) all carry far more than
// one printable character makes an empty result here unreachable in
// practice, but the helper still returns what it computes rather than
// asserting non-emptiness.
func (ctx *evalContext) notLiteral(r rune) []rune {
	return diffRunes(ctx.alphabet.Printable(), []rune{r})
}

func effectiveMax(max, cap int) int {
	if max == Unbounded {
		return cap
	}
	return max
}
