package cdcl

import "strings"

// Clause is an ordered, tautology-free sequence of literals. A Clause is
// always allocated as its own heap object and referenced through its
// pointer; because Go's garbage collector never relocates a live heap
// object, a *Clause handed out at any point remains valid for the
// lifetime of the Instance even as later clauses are appended to the
// store.
//
// Clauses of length >= 2 are indexed by watching exactly two of their
// literals: literals[0] and literals[1] are always the watched pair.
// Unit clauses never reach this type — they are resolved directly into
// a forced assignment at construction time (see Instance.AddClause and
// Instance.addLearnt).
type Clause struct {
	literals []Literal

	learnt   bool
	activity float64 // bumped by conflict analysis; the store never deletes, so nothing else reads this
}

// Literals returns the clause's current literals. Callers must not
// retain the slice across a call that might mutate the clause
// (propagate re-watching).
func (c *Clause) Literals() []Literal {
	return c.literals
}

func (c *Clause) Len() int {
	return len(c.literals)
}

func (c *Clause) IsLearnt() bool {
	return c.learnt
}

// newClause builds a clause that is known (by the caller) to already be
// free of tautologies and duplicate literals, and have at least two
// literals. Input clauses arrive with root-falsified literals already
// dropped; learnt clauses from analyze may still contain literals that
// are false at level 0. It registers the two-literal watch
// with ins and, for learnt clauses, primes the second watch on the
// literal with the highest decision level (so the clause becomes unit
// immediately once the trail is unwound to the backjump level).
func newClause(ins *Instance, literals []Literal, learnt bool) *Clause {
	c := &Clause{
		literals: append([]Literal(nil), literals...),
		learnt:   learnt,
	}

	if learnt {
		maxLevel, pos := -1, -1
		for i, l := range c.literals {
			if lvl := ins.trail.VarLevel(l.Var()); lvl > maxLevel {
				maxLevel, pos = lvl, i
			}
		}
		c.literals[1], c.literals[pos] = c.literals[pos], c.literals[1]
	}

	ins.store.watch(c, c.literals[0].Negate(), c.literals[1])
	ins.store.watch(c, c.literals[1].Negate(), c.literals[0])
	return c
}

// propagate is invoked when the watched literal l (i.e. the negation of
// one of c's watches) has just become true, i.e. the watch itself
// became false. It returns true if the clause is still satisfied, has
// been re-watched on a fresh unassigned/true literal, or is now unit and
// its remaining literal has been enqueued; it returns false only when
// that remaining literal is already false, i.e. the clause conflicts
// (Instance.enqueue's return value, passed through unchanged).
func (c *Clause) propagate(ins *Instance, l Literal) bool {
	falseWatch := l.Negate()
	if c.literals[0] == falseWatch {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if ins.trail.Value(c.literals[0]) == True {
		ins.store.watch(c, l, c.literals[0])
		return true
	}

	for i := 2; i < len(c.literals); i++ {
		if ins.trail.Value(c.literals[i]) != False {
			c.literals[1], c.literals[i] = c.literals[i], falseWatch
			ins.store.watch(c, c.literals[1].Negate(), c.literals[0])
			return true
		}
	}

	// All literals but literals[0] are false: the clause is unit (or,
	// if literals[0] is itself already false, a conflict).
	ins.store.watch(c, l, c.literals[0])
	return ins.enqueue(c.literals[0], c)
}

// explainFailure returns the reason a falsified clause conflicts: the
// negation of every one of its literals, all of which must be false.
func (c *Clause) explainFailure() []Literal {
	out := make([]Literal, len(c.literals))
	for i, l := range c.literals {
		out[i] = l.Negate()
	}
	return out
}

// explainAssign returns the reason literals[0] was forced true: the
// negation of every other literal.
func (c *Clause) explainAssign() []Literal {
	out := make([]Literal, 0, len(c.literals)-1)
	for _, l := range c.literals[1:] {
		out = append(out, l.Negate())
	}
	return out
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	var sb strings.Builder
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
