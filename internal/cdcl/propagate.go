package cdcl

// propagate runs unit propagation to saturation: it drains the work
// queue seeded by every literal placed on the trail since the last call,
// waking each clause watching the literal's negation. It returns the
// clause that conflicted, or nil once the queue empties with no
// conflict. This is the one BCP engine used both for the initial
// propagation pass seeded by input unit clauses and for every
// subsequent decision — the two are not distinguished internally, only
// by which decision level is current when a conflict surfaces.
func (ins *Instance) propagate() *Clause {
	for ins.propQueue.Len() > 0 {
		l := ins.propQueue.Pop()

		watchers := ins.store.watchers[l]
		ins.tmpWatchers = append(ins.tmpWatchers[:0], watchers...)
		ins.store.watchers[l] = ins.store.watchers[l][:0]

		for i, w := range ins.tmpWatchers {
			// Skip loading a clause whose guard literal is already true:
			// the clause is satisfied and does not need to be
			// re-examined, at the cost of leaving its watch list slightly
			// stale (it is re-validated the next time this literal fires).
			if ins.trail.Value(w.guard) == True {
				ins.store.watchers[l] = append(ins.store.watchers[l], w)
				continue
			}

			if w.clause.propagate(ins, l) {
				continue
			}

			// w.clause is conflicting: restore the watchers not yet
			// examined and report the conflict. The clause itself was
			// already re-added to this literal's list by propagate, so
			// it keeps its watch after the conflict is undone.
			ins.store.watchers[l] = append(ins.store.watchers[l], ins.tmpWatchers[i+1:]...)
			ins.propQueue.Clear()
			return w.clause
		}
	}
	return nil
}

// evaluationSweep is an optional correctness net: a full scan confirming
// no clause is falsified under the current assignment. The watch-based
// propagator above is complete on its own, so this is never called from
// the search loop; it exists so tests can assert the post-propagation
// invariant directly (after propagation with no conflict, no clause is
// falsified).
func (ins *Instance) evaluationSweep() *Clause {
	for _, clauses := range [][]*Clause{ins.store.constraints, ins.store.learnts} {
		for _, c := range clauses {
			trueCount, unknownCount := 0, 0
			for _, l := range c.literals {
				switch ins.trail.Value(l) {
				case True:
					trueCount++
				case Unknown:
					unknownCount++
				}
			}
			if trueCount == 0 && unknownCount == 0 {
				return c
			}
		}
	}
	return nil
}
