// Package builder is a programmatic front end to internal/cdcl: it lets
// a caller assemble a Boolean formula out of named variables and logic
// gates instead of hand-writing CNF, performing an in-place Tseitin
// transform as each gate is combined.
package builder

import "github.com/tannerwright/satcore/internal/cdcl"

// Handle is an opaque reference to a Boolean expression under
// construction. A Handle is either a bare variable or its negation;
// negating a Handle never allocates a fresh variable, it just flips a
// bit, mirroring the literal-level polarity bit the core itself uses.
type Handle struct {
	v        cdcl.Var
	positive bool
}

func (h Handle) literal() cdcl.Literal {
	if h.positive {
		return cdcl.PositiveLiteral(h.v)
	}
	return cdcl.NegativeLiteral(h.v)
}

// Builder accumulates named variables and Tseitin clauses until Build
// hands the result off to a fresh cdcl.Instance. A Builder is not safe
// for concurrent use.
type Builder struct {
	ins     *cdcl.Instance
	names   map[string]cdcl.Var
	clauses [][]cdcl.Literal
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		ins:   cdcl.NewDefaultInstance(),
		names: map[string]cdcl.Var{},
	}
}

// Var returns the Handle for the named variable, registering it as an
// original variable on first use. Calling Var again with a name already
// seen returns a Handle for the same variable.
func (b *Builder) Var(name string) Handle {
	v, ok := b.names[name]
	if !ok {
		v = b.ins.NewVariable(name)
		b.names[name] = v
	}
	return Handle{v: v, positive: true}
}

// Not returns the negation of h. It never introduces a new variable.
func (b *Builder) Not(h Handle) Handle {
	return Handle{v: h.v, positive: !h.positive}
}

// Or returns a Handle for a ∨ b, introducing one auxiliary variable e
// and the three clauses that make e equivalent to a ∨ b:
//
//	(¬e ∨ a ∨ b) ∧ (e ∨ ¬a) ∧ (e ∨ ¬b)
func (b *Builder) Or(a, b2 Handle) Handle {
	e := b.ins.NewAuxiliary()
	eLit := cdcl.PositiveLiteral(e)

	b.addClause(eLit.Negate(), a.literal(), b2.literal())
	b.addClause(eLit, a.literal().Negate())
	b.addClause(eLit, b2.literal().Negate())

	return Handle{v: e, positive: true}
}

// And returns a Handle for a ∧ b, introducing one auxiliary variable e
// and the three clauses that make e equivalent to a ∧ b:
//
//	(e ∨ ¬a ∨ ¬b) ∧ (¬e ∨ a) ∧ (¬e ∨ b)
func (b *Builder) And(a, b2 Handle) Handle {
	e := b.ins.NewAuxiliary()
	eLit := cdcl.PositiveLiteral(e)

	b.addClause(eLit, a.literal().Negate(), b2.literal().Negate())
	b.addClause(eLit.Negate(), a.literal())
	b.addClause(eLit.Negate(), b2.literal())

	return Handle{v: e, positive: true}
}

// Require asserts h: a unit clause containing only h's literal is added
// to the formula.
func (b *Builder) Require(h Handle) {
	b.addClause(h.literal())
}

func (b *Builder) addClause(literals ...cdcl.Literal) {
	cp := append([]cdcl.Literal(nil), literals...)
	b.clauses = append(b.clauses, cp)
}

// Build finalizes the formula, adding every accumulated clause to a
// fresh cdcl.Instance, and returns it along with the name-to-variable
// mapping Var established. Build may be called only once; the Builder
// must not be used afterward.
func (b *Builder) Build() (*cdcl.Instance, map[string]cdcl.Var) {
	for _, c := range b.clauses {
		if err := b.ins.AddClause(c); err != nil {
			panic("builder: " + err.Error())
		}
	}
	return b.ins, b.names
}
