package cdcl

import "testing"

// satisfies reports whether assignment satisfies every one of clauses,
// where clauses are given directly against the Instance's registered
// variables.
func satisfies(ins *Instance, clauses [][]Literal, sol Solution) bool {
	for _, c := range clauses {
		ok := false
		for _, l := range c {
			v := l.Var()
			val, known := sol.Assignment[v]
			if known && val == l.IsPositive() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func TestSolveEmptyFormulaIsSatisfiable(t *testing.T) {
	ins := NewDefaultInstance()
	sol := ins.Solve()
	if !sol.Satisfiable {
		t.Fatalf("empty formula reported UNSAT")
	}
	if len(sol.Assignment) != 0 {
		t.Errorf("empty formula's assignment is non-empty: %v", sol.Assignment)
	}
}

func TestSolveSingleUnitClause(t *testing.T) {
	ins := NewDefaultInstance()
	x := ins.NewVariable("x")
	if err := ins.AddClause([]Literal{PositiveLiteral(x)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}

	sol := ins.Solve()
	if !sol.Satisfiable {
		t.Fatalf("unit clause x reported UNSAT")
	}
	if !sol.Assignment[x] {
		t.Errorf("x = %v, want true", sol.Assignment[x])
	}
}

func TestSolveContradictoryUnitPairIsUnsat(t *testing.T) {
	ins := NewDefaultInstance()
	x := ins.NewVariable("x")
	if err := ins.AddClause([]Literal{PositiveLiteral(x)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}
	if err := ins.AddClause([]Literal{NegativeLiteral(x)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}

	sol := ins.Solve()
	if sol.Satisfiable {
		t.Fatalf("contradictory unit clauses reported SAT")
	}
}

func TestAddClauseRejectsTautology(t *testing.T) {
	ins := NewDefaultInstance()
	x := ins.NewVariable("x")

	defer func() {
		if recover() == nil {
			t.Fatalf("AddClause with a tautological clause did not panic")
		}
	}()
	ins.AddClause([]Literal{PositiveLiteral(x), NegativeLiteral(x)})
}

func TestAddClauseRejectsEmptyClause(t *testing.T) {
	ins := NewDefaultInstance()

	defer func() {
		if recover() == nil {
			t.Fatalf("AddClause with no literals did not panic")
		}
	}()
	ins.AddClause(nil)
}

// TestSolveScenario1 covers p cnf 3 2 / 1 2 0 / -1 3 0, a small
// satisfiable instance with no forced unit propagation.
func TestSolveScenario1(t *testing.T) {
	ins := NewDefaultInstance()
	v1, v2, v3 := ins.NewVariable("1"), ins.NewVariable("2"), ins.NewVariable("3")
	clauses := [][]Literal{
		{PositiveLiteral(v1), PositiveLiteral(v2)},
		{NegativeLiteral(v1), PositiveLiteral(v3)},
	}
	for _, c := range clauses {
		if err := ins.AddClause(c); err != nil {
			t.Fatalf("AddClause: %v", err)
		}
	}

	sol := ins.Solve()
	if !sol.Satisfiable {
		t.Fatalf("scenario 1 reported UNSAT, want SAT")
	}
	if !satisfies(ins, clauses, sol) {
		t.Errorf("assignment %v does not satisfy %v", sol.Assignment, clauses)
	}
}

// TestSolveScenario2 covers p cnf 1 2 / 1 0 / -1 0, a level-0
// contradiction.
func TestSolveScenario2(t *testing.T) {
	ins := NewDefaultInstance()
	v1 := ins.NewVariable("1")
	if err := ins.AddClause([]Literal{PositiveLiteral(v1)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}
	if err := ins.AddClause([]Literal{NegativeLiteral(v1)}); err != nil {
		t.Fatalf("AddClause: %v", err)
	}

	sol := ins.Solve()
	if sol.Satisfiable {
		t.Fatalf("scenario 2 reported SAT, want UNSAT")
	}
}

// TestSolveScenario3 covers p cnf 3 3 / -1 -2 0 / -1 -3 0 / 2 3 0 —
// satisfiable, and the instance that most directly exercises
// conflict-driven backjumping when the decision heuristic tries 1=true
// first.
func TestSolveScenario3(t *testing.T) {
	ins := NewDefaultInstance()
	v1, v2, v3 := ins.NewVariable("1"), ins.NewVariable("2"), ins.NewVariable("3")
	clauses := [][]Literal{
		{NegativeLiteral(v1), NegativeLiteral(v2)},
		{NegativeLiteral(v1), NegativeLiteral(v3)},
		{PositiveLiteral(v2), PositiveLiteral(v3)},
	}
	for _, c := range clauses {
		if err := ins.AddClause(c); err != nil {
			t.Fatalf("AddClause: %v", err)
		}
	}

	sol := ins.Solve()
	if !sol.Satisfiable {
		t.Fatalf("scenario 3 reported UNSAT, want SAT")
	}
	if !satisfies(ins, clauses, sol) {
		t.Errorf("assignment %v does not satisfy %v", sol.Assignment, clauses)
	}
	// Whether this scenario actually triggers a conflict/backjump depends
	// on which variable the decision heuristic tries first (VSIDS starts
	// every variable at equal activity, and the tie-break order is a
	// property of the heap, not of this search loop) — only the
	// resulting assignment's validity is asserted.
}

func TestAddClauseAfterDecisionIsRejected(t *testing.T) {
	ins := NewDefaultInstance()
	x := ins.NewVariable("x")
	ins.decide(PositiveLiteral(x))

	if err := ins.AddClause([]Literal{PositiveLiteral(x)}); err == nil {
		t.Fatalf("AddClause after a decision returned nil error, want an error")
	}
}
