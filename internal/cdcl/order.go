package cdcl

import "github.com/rhartert/yagh"

// VarOrder maintains the decision heuristic: VSIDS activity scores kept
// in a binary heap so the next unassigned variable with the highest
// score can be popped in O(log n).
type VarOrder struct {
	heap *yagh.IntMap[float64]

	scores   []float64
	scoreInc float64
	decay    float64

	phases      []LBool
	phaseSaving bool
}

// NewVarOrder returns an empty VarOrder. decay is the VSIDS score decay
// factor and phaseSaving controls whether a variable's last assigned
// polarity is reused as its next default, rather than always defaulting
// to positive.
func NewVarOrder(decay float64, phaseSaving bool) *VarOrder {
	return &VarOrder{
		heap:        yagh.New[float64](0),
		scoreInc:    1,
		decay:       decay,
		phaseSaving: phaseSaving,
	}
}

// AddVar registers a new variable with zero initial score and a default
// positive phase.
func (o *VarOrder) AddVar() {
	v := len(o.scores)
	o.scores = append(o.scores, 0)
	o.phases = append(o.phases, True)
	o.heap.GrowBy(1)
	o.heap.Put(v, 0)
}

// Reinsert makes v a candidate again after it is unassigned by a
// backtrack. val is the value v held before being unassigned, saved as
// its next default phase when phase saving is enabled.
func (o *VarOrder) Reinsert(v Var, val LBool) {
	if o.phaseSaving {
		o.phases[v] = val
	}
	o.heap.Put(int(v), -o.scores[v])
}

// Bump increases v's VSIDS score, rescaling every score if any grows
// unreasonably large (MiniSAT-style floating point rescaling).
func (o *VarOrder) Bump(v Var) {
	o.scores[v] += o.scoreInc
	if o.heap.Contains(int(v)) {
		o.heap.Put(int(v), -o.scores[v])
	}
	if o.scores[v] > 1e100 {
		o.rescale()
	}
}

// Decay slightly increases future bumps relative to past ones, so that
// recently-involved-in-conflict variables dominate the order.
func (o *VarOrder) Decay() {
	o.scoreInc /= o.decay
	if o.scoreInc > 1e100 {
		o.rescale()
	}
}

func (o *VarOrder) rescale() {
	o.scoreInc *= 1e-100
	for v, sc := range o.scores {
		o.scores[v] = sc * 1e-100
		if o.heap.Contains(v) {
			o.heap.Put(v, -o.scores[v])
		}
	}
}

// Select pops the next candidate variable per the decision heuristic
// and returns its literal under the default/saved phase. value reports
// whether a variable is already assigned, so Select can pop and discard
// heap entries for variables assigned by propagation, which are never
// removed from the heap on assignment.
func (o *VarOrder) Select(value func(Var) LBool) (Literal, bool) {
	for {
		v, ok := o.heap.Pop()
		if !ok {
			return 0, false
		}
		if value(Var(v.Elem)) != Unknown {
			continue
		}
		if o.phases[v.Elem] == False {
			return NegativeLiteral(Var(v.Elem)), true
		}
		return PositiveLiteral(Var(v.Elem)), true
	}
}
