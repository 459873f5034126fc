package cdcl

import "sort"

// watcher is a clause attached to the watch list of a literal: the
// clause is re-examined when that literal is assigned true.
type watcher struct {
	clause *Clause
	// guard is one of the clause's other watched literals. If guard is
	// already true, the clause is already satisfied and can be skipped
	// without touching it, avoiding loading cold clauses into cache
	// during propagation.
	guard Literal
}

// ClauseStore owns every clause's literals and indexes them via
// two-literal watching: each clause watches exactly two of its literals,
// and re-watching happens lazily, driven by Clause.propagate, whenever a
// watched literal becomes false.
type ClauseStore struct {
	constraints []*Clause
	learnts     []*Clause
	watchers    [][]watcher // indexed by Literal

	seen map[string]struct{} // signature of every clause ever added, for dedup

	clauseInc   float64
	clauseDecay float64
}

// NewClauseStore returns an empty store.
func NewClauseStore(clauseDecay float64) *ClauseStore {
	return &ClauseStore{
		seen:        map[string]struct{}{},
		clauseInc:   1,
		clauseDecay: clauseDecay,
	}
}

func (s *ClauseStore) expand() {
	s.watchers = append(s.watchers, nil, nil)
}

func (s *ClauseStore) watch(c *Clause, onFalse Literal, guard Literal) {
	s.watchers[onFalse] = append(s.watchers[onFalse], watcher{clause: c, guard: guard})
}

// signature returns a canonical, order-independent key for a clause's
// literal set, used to detect duplicates: two equal-as-sets clauses are
// never added twice, whether as input clauses or as learnt clauses.
func signature(literals []Literal) string {
	sorted := append([]Literal(nil), literals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	buf := make([]byte, 0, len(sorted)*5)
	for _, l := range sorted {
		buf = append(buf, byte(l), byte(l>>8), byte(l>>16), byte(l>>24), ',')
	}
	return string(buf)
}

// normalize sorts a clause's literals by variable, rejects a clause that
// contains both a literal and its complement (a tautology, which is a
// caller error, not a normal input), and removes duplicate literals
// within the clause. It does not consult the current assignment — that
// happens separately so that the tautology check stays distinct from
// ordinary unit-propagation-time simplification.
func normalize(literals []Literal) []Literal {
	out := append([]Literal(nil), literals...)
	sort.Slice(out, func(i, j int) bool { return out[i].Var() < out[j].Var() })

	k := 0
	for i := 0; i < len(out); i++ {
		if k > 0 && out[k-1].Var() == out[i].Var() {
			if out[k-1] != out[i] {
				panic("cdcl: tautological clause passed to construction")
			}
			continue // duplicate literal, drop
		}
		out[k] = out[i]
		k++
	}
	return out[:k]
}

// bumpActivity increases c's activity, rescaling the whole learnt
// database if any activity grows unreasonably large (MiniSAT-style
// floating point rescaling).
func (s *ClauseStore) bumpActivity(c *Clause) {
	c.activity += s.clauseInc
	if c.activity <= 1e100 {
		return
	}
	s.clauseInc *= 1e-100
	for _, l := range s.learnts {
		l.activity *= 1e-100
	}
}

func (s *ClauseStore) decayActivity() {
	s.clauseInc /= s.clauseDecay
}
