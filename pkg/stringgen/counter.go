// This file is Free Software under the Apache-2.0 License
// without warranty, see README.md and LICENSES/Apache-2.0.txt for details.
//
// SPDX-License-Identifier: Apache-2.0

package stringgen

import "math/big"

// Count is an extended non-negative integer: either a concrete count, or
// +∞. The zero value is the finite count 0.
type Count struct {
	infinite bool
	n        big.Int
}

// Infinite is the +∞ count.
var Infinite = Count{infinite: true}

func finiteCount(n int64) Count {
	var c Count
	c.n.SetInt64(n)
	return c
}

// IsInfinite reports whether this count is +∞.
func (c Count) IsInfinite() bool { return c.infinite }

// Int returns the concrete value and true, or (nil, false) if c is +∞.
func (c Count) Int() (*big.Int, bool) {
	if c.infinite {
		return nil, false
	}
	return new(big.Int).Set(&c.n), true
}

// LessThanInt reports whether c is a finite count strictly less than n.
// Infinite counts are never less than anything.
func (c Count) LessThanInt(n int) bool {
	if c.infinite {
		return false
	}
	return c.n.Cmp(big.NewInt(int64(n))) < 0
}

func (c Count) String() string {
	if c.infinite {
		return "+Inf"
	}
	return c.n.String()
}

// countCutoff is the threshold above which a finite-but-astronomical sum
// collapses to +∞ instead of growing an exact big.Int without bound.
var countCutoff = new(big.Int).Lsh(big.NewInt(1), 63)

func countAdd(a, b Count) Count {
	if a.infinite || b.infinite {
		return Infinite
	}
	var sum Count
	sum.n.Add(&a.n, &b.n)
	if sum.n.Cmp(countCutoff) >= 0 {
		return Infinite
	}
	return sum
}

func countMul(a, b Count) Count {
	if (!a.infinite && a.n.Sign() == 0) || (!b.infinite && b.n.Sign() == 0) {
		// A concatenation where one side can produce nothing produces
		// nothing, regardless of whether the other side is infinite.
		return finiteCount(0)
	}
	if a.infinite || b.infinite {
		return Infinite
	}
	var prod Count
	prod.n.Mul(&a.n, &b.n)
	if prod.n.Cmp(countCutoff) >= 0 {
		return Infinite
	}
	return prod
}

// countNode computes the exact (or cutoff-collapsed) cardinality of the
// language n can produce.
func countNode(ctx *evalContext, n *Node) Count {
	switch n.Op {
	case OpLiteral, OpGroupRef:
		return finiteCount(1)

	case OpNotLiteral:
		return finiteCount(int64(len(ctx.alphabet.Printable()) - 1))

	case OpAny:
		return finiteCount(int64(len(ctx.alphabet.Any())))

	case OpRange:
		return finiteCount(int64(n.Hi-n.Lo) + 1)

	case OpIn:
		return finiteCount(int64(len(ctx.classSets[n])))

	case OpCategory:
		return finiteCount(int64(len(ctx.alphabet.Category(n.Category))))

	case OpBranch:
		total := finiteCount(0)
		for _, alt := range n.Children {
			total = countAdd(total, countNode(ctx, alt))
			if total.infinite {
				return Infinite
			}
		}
		return total

	case opConcat:
		total := finiteCount(1)
		for _, child := range n.Children {
			total = countMul(total, countNode(ctx, child))
			if total.n.Sign() == 0 && !total.infinite {
				return total
			}
		}
		return total

	case OpSubpattern:
		return countNode(ctx, n.Sub)

	case OpAssert, OpAssertNot, OpAt:
		return finiteCount(1)

	case OpMaxRepeat, OpMinRepeat:
		return countRepeat(ctx, n)

	default:
		return finiteCount(0)
	}
}

func countRepeat(ctx *evalContext, n *Node) Count {
	effMax := effectiveMax(n.Max, ctx.maxRepeat)
	if effMax == 0 {
		return finiteCount(1)
	}

	inner := countNode(ctx, n.Sub)

	if inner.infinite {
		// Any k >= 1 already yields infinitely many distinct outputs,
		// and min <= effMax with effMax > 0 guarantees some k >= 1 is
		// reachable whenever min == 0 too.
		return Infinite
	}

	if inner.n.Sign() == 0 {
		if n.Min == 0 {
			return finiteCount(1)
		}
		return finiteCount(0)
	}

	if inner.n.Cmp(big.NewInt(1)) == 0 {
		// Repetitions of a single-string sub-language are
		// indistinguishable from one another.
		return finiteCount(1)
	}

	sum := finiteCount(0)
	for k := n.Min; k <= effMax; k++ {
		term := new(big.Int).Exp(&inner.n, big.NewInt(int64(k)), nil)
		var termCount Count
		termCount.n.Set(term)
		sum = countAdd(sum, termCount)
		if sum.infinite {
			return Infinite
		}
	}
	return sum
}
