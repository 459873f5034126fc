package cdcl

// analyzedConflict is the output of conflict analysis: the learnt clause
// (its first literal is always the first-UIP literal, the convention
// newClause relies on to prime the asserting watch), the backjump level,
// and the UIP literal itself.
type analyzedConflict struct {
	Learnt        []Literal
	BackjumpLevel int
	UIP           Literal
}

// analyze performs first-UIP resolution: starting from the falsified
// clause, it walks the trail of the current decision level in reverse,
// resolving the cut against each encountered variable's antecedent,
// until exactly one cut variable remains at the current level — the
// first unique implication point. It is a literal-sentinel walk that
// counts pending current-level literals instead of materializing the
// cut as an explicit set union at every step.
func (ins *Instance) analyze(conflict *Clause) analyzedConflict {
	currentLevel := ins.trail.DecisionLevel()
	ins.seen.Clear()
	ins.tmpLearnt = append(ins.tmpLearnt[:0], 0) // placeholder for the UIP literal

	pending := 0
	nextIdx := ins.trail.Len() - 1
	backjump := 0

	var l Literal = -1 // -1 denotes "explain the conflict itself", not an assignment
	confl := conflict

	for {
		var reason []Literal
		if l == -1 {
			reason = confl.explainFailure()
		} else {
			reason = confl.explainAssign()
		}
		if confl.learnt {
			ins.store.bumpActivity(confl)
		}

		for _, q := range reason {
			v := q.Var()
			if ins.seen.Contains(v) {
				continue
			}
			ins.seen.Add(v)
			ins.order.Bump(v)

			if ins.trail.VarLevel(v) == currentLevel {
				pending++
				continue
			}
			ins.tmpLearnt = append(ins.tmpLearnt, q.Negate())
			if lvl := ins.trail.VarLevel(v); lvl > backjump {
				backjump = lvl
			}
		}

		// Walk backwards to the next trail literal whose variable is in
		// the cut; its antecedent drives the next resolution step.
		for {
			l = ins.trail.Literals()[nextIdx]
			nextIdx--
			if ins.seen.Contains(l.Var()) {
				confl, _, _, _ = ins.graph.Vertex(l.Var())
				break
			}
		}

		pending--
		if pending <= 0 {
			break
		}
	}

	ins.tmpLearnt[0] = l.Negate()
	learnt := append([]Literal(nil), ins.tmpLearnt...)
	return analyzedConflict{Learnt: learnt, BackjumpLevel: backjump, UIP: l.Negate()}
}
