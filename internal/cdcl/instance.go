package cdcl

import "fmt"

// Options configures the search driver's decision heuristic. The core
// loop is otherwise parameter-free: there is no stop-condition knob
// here, no timeout, no restart schedule — a caller wanting a wall-clock
// bound runs Solve on a worker goroutine and discards the Instance on
// timeout.
type Options struct {
	// ClauseDecay and VariableDecay tune how quickly VSIDS/clause
	// activity favors recently-involved-in-conflict variables/clauses
	// over older ones. These are MiniSAT-derived defaults.
	ClauseDecay   float64
	VariableDecay float64
	// PhaseSaving reuses a variable's last assigned polarity as its next
	// default instead of always guessing positive. Off by default.
	PhaseSaving bool
}

// DefaultOptions holds MiniSAT-derived defaults that work well across a
// broad range of instances without tuning.
var DefaultOptions = Options{
	ClauseDecay:   0.999,
	VariableDecay: 0.95,
	PhaseSaving:   false,
}

// Stats are the informational counters exposed alongside a Solution.
type Stats struct {
	Decisions    int64
	InitialUnits int64
	Propagations int64
	Backjumps    int64
	Learnts      int64
}

// Solution is the result of a Solve call.
type Solution struct {
	Satisfiable bool
	// Assignment maps each original variable (per the Registry, i.e.
	// excluding Tseitin auxiliaries) to the polarity it holds. Only
	// populated when Satisfiable is true.
	Assignment map[Var]bool
	Stats      Stats
}

// Instance is the single mutable owner of a problem's clause store,
// trail, implication graph, and decision order. Solve takes exclusive
// access for its duration; nothing in this package is safe for
// concurrent use from multiple goroutines.
type Instance struct {
	registry *Registry
	trail    *Trail
	graph    *ImplicationGraph
	store    *ClauseStore
	order    *VarOrder

	propQueue *litQueue
	seen      *varSet

	tmpWatchers []watcher
	tmpLearnt   []Literal

	unsat  bool
	solved bool
	stats  Stats
}

// NewInstance returns an empty Instance ready to receive variables and
// clauses via NewVariable/NewAuxiliary/AddClause.
func NewInstance(opts Options) *Instance {
	return &Instance{
		registry:  NewRegistry(),
		trail:     NewTrail(),
		graph:     NewImplicationGraph(),
		store:     NewClauseStore(opts.ClauseDecay),
		order:     NewVarOrder(opts.VariableDecay, opts.PhaseSaving),
		propQueue: newLitQueue(128),
		seen:      &varSet{},
	}
}

// NewDefaultInstance returns an Instance configured with DefaultOptions.
func NewDefaultInstance() *Instance {
	return NewInstance(DefaultOptions)
}

// Registry returns the instance's variable registry.
func (ins *Instance) Registry() *Registry {
	return ins.registry
}

// NumVariables returns the number of registered variables, original and
// auxiliary combined.
func (ins *Instance) NumVariables() int {
	return ins.registry.Len()
}

// NewVariable registers an original variable named by the input. Calling
// it again with a name already seen returns the same Var, so the same
// identifier appearing in multiple clauses always refers to the same
// variable.
func (ins *Instance) NewVariable(name string) Var {
	before := ins.registry.Len()
	v := ins.registry.NewOriginal(name)
	if ins.registry.Len() > before {
		ins.expandFor(v)
	}
	return v
}

// NewAuxiliary registers a Tseitin-introduced variable, never reported
// in a Solution.
func (ins *Instance) NewAuxiliary() Var {
	v := ins.registry.NewAuxiliary()
	ins.expandFor(v)
	return v
}

func (ins *Instance) expandFor(Var) {
	ins.trail.expand()
	ins.graph.expand()
	ins.store.expand()
	ins.seen.expand()
	ins.order.AddVar()
}

// AddClause adds an input clause, called incrementally: one call per
// clause, the way a DIMACS or builder front end naturally produces
// them. It sorts literals by variable, rejects an empty clause or a
// syntactic tautology as a fatal precondition error (contract
// violations panic rather than return an error), drops the clause if
// an identical clause (as a literal set) was already added, simplifies
// it against the current root assignment, and either stores it,
// enqueues it as a level-0 unit, or — if it simplifies to empty against
// an already contradictory root assignment — marks the instance UNSAT.
//
// AddClause may only be called at decision level 0, i.e. before Solve
// has made any decision.
func (ins *Instance) AddClause(literals []Literal) error {
	if ins.trail.DecisionLevel() != 0 {
		return fmt.Errorf("cdcl: AddClause called at decision level %d, want 0", ins.trail.DecisionLevel())
	}
	if len(literals) == 0 {
		panic("cdcl: empty clause passed to AddClause")
	}

	norm := normalize(literals) // panics on tautology
	sig := signature(norm)
	if _, dup := ins.store.seen[sig]; dup {
		return nil
	}
	ins.store.seen[sig] = struct{}{}

	kept := make([]Literal, 0, len(norm))
	for _, l := range norm {
		switch ins.trail.Value(l) {
		case True:
			return nil // already satisfied at the root level
		case False:
			// falsified at the root level, drop
		default:
			kept = append(kept, l)
		}
	}

	switch len(kept) {
	case 0:
		ins.unsat = true
	case 1:
		ins.stats.InitialUnits++
		if !ins.enqueue(kept[0], nil) {
			ins.unsat = true
		}
	default:
		c := newClause(ins, kept, false)
		ins.store.constraints = append(ins.store.constraints, c)
	}
	return nil
}

// enqueue is the single point of truth for placing a newly forced
// literal onto the trail. It reports false if l is already falsified (a
// conflict) and true otherwise (including when l was already true, in
// which case nothing changes).
func (ins *Instance) enqueue(l Literal, from *Clause) bool {
	switch ins.trail.Value(l) {
	case False:
		return false
	case True:
		return true
	}

	level := ins.trail.DecisionLevel()
	ins.trail.AddInferred(l)
	if level == 0 {
		ins.graph.RecordInitial(l)
	} else {
		decLit, _ := ins.trail.DecisionLiteral(level)
		ins.graph.RecordInferred(l, from, level, decLit, true)
	}
	ins.propQueue.Push(l)
	ins.stats.Propagations++
	return true
}

// decide pushes l as the decision literal of a new level.
func (ins *Instance) decide(l Literal) {
	ins.trail.AddDecision(l)
	ins.graph.RecordDecision(l, ins.trail.DecisionLevel())
	ins.propQueue.Push(l)
	ins.stats.Decisions++
}

// allResolved reports whether every clause is satisfied: with a
// complete, conflict-free assignment this always holds, because a
// falsified clause would have raised a conflict through its watches
// already.
func (ins *Instance) allResolved() bool {
	return ins.trail.Len() == ins.registry.Len()
}

// addLearnt appends a freshly analyzed clause to the store. Duplicate
// clauses are silently dropped. A unit learnt clause is enqueued
// directly as a level-0 fact; a longer one is built with newClause
// (which also primes its asserting watch) and its UIP literal is then
// enqueued with it as antecedent, immediately detonating the forced
// propagation the backjump set up.
func (ins *Instance) addLearnt(literals []Literal) {
	sig := signature(literals)
	if _, dup := ins.store.seen[sig]; dup {
		return
	}
	ins.store.seen[sig] = struct{}{}
	ins.stats.Learnts++

	if len(literals) == 1 {
		if !ins.enqueue(literals[0], nil) {
			ins.unsat = true
		}
		return
	}

	c := newClause(ins, literals, true)
	ins.store.learnts = append(ins.store.learnts, c)
	if !ins.enqueue(literals[0], c) {
		ins.unsat = true
	}
}

// backjump applies an AnalyzedConflict: it unwinds the trail to
// BackjumpLevel, clearing the implication-graph vertex and reinserting
// into the decision order every literal that was undone, then learns
// the resulting clause.
func (ins *Instance) backjump(ac analyzedConflict) {
	for _, l := range ins.trail.BacktrackTo(ac.BackjumpLevel) {
		ins.graph.Clear(l)
		ins.order.Reinsert(l.Var(), Lift(l.IsPositive()))
	}
	ins.stats.Backjumps++
	ins.store.decayActivity()
	ins.order.Decay()
	ins.addLearnt(ac.Learnt)
}

// Solve runs the CDCL main loop to completion: initial propagation,
// then decide/propagate/(on conflict) analyze-learn-backjump, until
// either every clause is resolved (SAT) or a conflict surfaces at
// decision level 0 (UNSAT). It takes exclusive access to the Instance
// for its duration and is not safe to call concurrently with any other
// method.
func (ins *Instance) Solve() Solution {
	if ins.unsat {
		return ins.result()
	}

	for {
		conflict := ins.propagate()
		if conflict == nil {
			if ins.allResolved() {
				ins.solved = true
				return ins.result()
			}
			l, ok := ins.order.Select(ins.trail.VarValue)
			if !ok {
				panic("cdcl: decision order exhausted before every clause was resolved")
			}
			ins.decide(l)
			continue
		}

		if ins.trail.DecisionLevel() == 0 {
			ins.unsat = true
			return ins.result()
		}

		ac := ins.analyze(conflict)
		ins.backjump(ac)
	}
}

// ConstraintLiterals returns a snapshot of every input clause's current
// literal set (original clauses only, never learnt ones), for callers
// that need to re-serialize the formula (e.g. a DIMACS pretty-printer
// reloading what it wrote). Only meaningful before Solve has run any
// decision: once the search starts, watch bookkeeping reorders a
// clause's literals in place.
func (ins *Instance) ConstraintLiterals() [][]Literal {
	out := make([][]Literal, len(ins.store.constraints))
	for i, c := range ins.store.constraints {
		out[i] = append([]Literal(nil), c.literals...)
	}
	return out
}

func (ins *Instance) result() Solution {
	sol := Solution{Satisfiable: !ins.unsat, Stats: ins.stats}
	if !sol.Satisfiable {
		return sol
	}
	sol.Assignment = make(map[Var]bool, len(ins.registry.Originals()))
	for _, v := range ins.registry.Originals() {
		sol.Assignment[v] = ins.trail.VarValue(v) == True
	}
	return sol
}
