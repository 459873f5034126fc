package cdcl

// Registry is the variable namespace for an Instance. It hands out dense
// Var identifiers on registration and remembers which ones were named by
// the input ("original") versus introduced by CNF encoding
// ("auxiliary"/Tseitin). Only original variables are reported in a
// Solution. The registry is immutable once problem construction
// finishes; nothing in search mutates it.
type Registry struct {
	names     []string // names[v] is the caller-supplied name, or "" for auxiliaries
	original  []bool   // original[v] is true iff v was created by NewOriginal
	byName    map[string]Var
	originals []Var
}

// NewRegistry returns an empty variable registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Var{}}
}

// NewOriginal registers a variable named by the input (a DIMACS integer
// stringified by the caller, or a builder-supplied name). Calling it
// again with the same name returns the previously registered Var rather
// than minting a new one, matching DIMACS semantics where the same
// identifier in multiple clauses refers to the same variable.
func (r *Registry) NewOriginal(name string) Var {
	if v, ok := r.byName[name]; ok {
		return v
	}
	v := r.expand()
	r.names[v] = name
	r.original[v] = true
	r.byName[name] = v
	r.originals = append(r.originals, v)
	return v
}

// NewAuxiliary registers a Tseitin-introduced variable. It is never
// reported in a Solution and is never deduplicated by name.
func (r *Registry) NewAuxiliary() Var {
	return r.expand()
}

func (r *Registry) expand() Var {
	v := Var(len(r.names))
	r.names = append(r.names, "")
	r.original = append(r.original, false)
	return v
}

// IsOriginal reports whether v was created by NewOriginal.
func (r *Registry) IsOriginal(v Var) bool {
	return r.original[v]
}

// Name returns the caller-supplied name of v, if any.
func (r *Registry) Name(v Var) (string, bool) {
	if !r.original[v] {
		return "", false
	}
	return r.names[v], true
}

// Originals returns the variables registered via NewOriginal, in
// registration order.
func (r *Registry) Originals() []Var {
	return r.originals
}

// Len returns the number of registered variables, original and
// auxiliary combined.
func (r *Registry) Len() int {
	return len(r.names)
}
