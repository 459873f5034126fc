package cdcl

import "testing"

func TestRegistryNewOriginalDedupesByName(t *testing.T) {
	r := NewRegistry()

	x := r.NewOriginal("x")
	y := r.NewOriginal("y")
	if x == y {
		t.Fatalf("distinct names produced the same Var")
	}

	xAgain := r.NewOriginal("x")
	if x != xAgain {
		t.Fatalf("NewOriginal(%q) returned %d on second call, want %d", "x", xAgain, x)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistryAuxiliaryIsNeverOriginal(t *testing.T) {
	r := NewRegistry()

	orig := r.NewOriginal("x")
	aux := r.NewAuxiliary()

	if !r.IsOriginal(orig) {
		t.Errorf("IsOriginal(%d) = false, want true", orig)
	}
	if r.IsOriginal(aux) {
		t.Errorf("IsOriginal(%d) = true, want false", aux)
	}
	if name, ok := r.Name(aux); ok {
		t.Errorf("Name(%d) = (%q, true), want ok=false", aux, name)
	}
	if name, ok := r.Name(orig); !ok || name != "x" {
		t.Errorf("Name(%d) = (%q, %v), want (\"x\", true)", orig, name, ok)
	}
}

func TestRegistryOriginalsOrder(t *testing.T) {
	r := NewRegistry()

	x := r.NewOriginal("x")
	r.NewAuxiliary()
	y := r.NewOriginal("y")

	got := r.Originals()
	want := []Var{x, y}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Originals() = %v, want %v", got, want)
	}
}
