package cdcl

import "testing"

// TestEvaluationSweepFindsNoFalsifiedClauseAfterCleanPropagation checks
// the correctness-net invariant evaluationSweep exists for: once
// propagate reports no conflict, a full scan must agree that nothing is
// falsified under the resulting assignment.
func TestEvaluationSweepFindsNoFalsifiedClauseAfterCleanPropagation(t *testing.T) {
	ins := NewDefaultInstance()
	x, y, z := ins.NewVariable("x"), ins.NewVariable("y"), ins.NewVariable("z")

	clauses := [][]Literal{
		{PositiveLiteral(x), PositiveLiteral(y)},
		{NegativeLiteral(x), PositiveLiteral(z)},
	}
	for _, c := range clauses {
		if err := ins.AddClause(c); err != nil {
			t.Fatalf("AddClause: %v", err)
		}
	}

	if conflict := ins.propagate(); conflict != nil {
		t.Fatalf("propagate() returned an unexpected conflict: %v", conflict)
	}
	if falsified := ins.evaluationSweep(); falsified != nil {
		t.Errorf("evaluationSweep() = %v, want nil after conflict-free propagation", falsified)
	}
}

// TestEvaluationSweepFindsClauseMissedByWatches constructs a clause that
// is already falsified under the current assignment at the moment its
// watches are registered, after the relevant literal has already been
// popped off the propagation queue — so the watch-based propagator has
// no further trigger that would notice it. This is exactly the gap
// evaluationSweep exists to catch as a redundant scan, independent of
// the watch bookkeeping.
func TestEvaluationSweepFindsClauseMissedByWatches(t *testing.T) {
	ins := NewDefaultInstance()
	x := ins.NewVariable("x")

	if err := ins.AddClause([]Literal{PositiveLiteral(x)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}
	if conflict := ins.propagate(); conflict != nil {
		t.Fatalf("propagate() returned an unexpected conflict: %v", conflict)
	}

	c := newClause(ins, []Literal{NegativeLiteral(x), NegativeLiteral(x)}, false)
	ins.store.constraints = append(ins.store.constraints, c)

	falsified := ins.evaluationSweep()
	if falsified == nil {
		t.Fatalf("evaluationSweep() = nil, want the falsified clause to be reported")
	}
	if falsified != c {
		t.Errorf("evaluationSweep() returned a different clause than expected")
	}
}
