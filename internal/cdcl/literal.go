package cdcl

import "fmt"

// Var is a dense, non-negative variable identifier assigned at
// registration time by a Registry. Packed into a 32-bit signed Literal,
// variable indices up to 2^30-1 are representable; a larger index
// overflows the packing, and nothing checks for this.
type Var int32

// Literal packs a (variable, polarity) pair into a single word: the low
// bit carries the polarity (1 = positive, 0 = negative) and the
// remaining bits carry the variable index. The packing guarantees
// constant-time inversion (XOR 1) and lets literals index densely into
// per-literal slices (watch lists, assignment arrays).
type Literal int32

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v Var) Literal {
	return Literal(v)<<1 | 1
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v Var) Literal {
	return Literal(v) << 1
}

// Var returns the variable underlying the literal.
func (l Literal) Var() Var {
	return Var(l >> 1)
}

// IsPositive reports whether l is the positive literal of its variable.
func (l Literal) IsPositive() bool {
	return l&1 == 1
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("!%d", l.Var())
}
