package cdcl

import "testing"

func TestLBoolOpposite(t *testing.T) {
	tests := []struct {
		in   LBool
		want LBool
	}{
		{True, False},
		{False, True},
		{Unknown, Unknown},
	}
	for _, tt := range tests {
		if got := tt.in.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLift(t *testing.T) {
	if Lift(true) != True {
		t.Errorf("Lift(true) = %v, want True", Lift(true))
	}
	if Lift(false) != False {
		t.Errorf("Lift(false) = %v, want False", Lift(false))
	}
}

func TestLBoolString(t *testing.T) {
	tests := map[LBool]string{True: "true", False: "false", Unknown: "unknown"}
	for l, want := range tests {
		if got := l.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", l, got, want)
		}
	}
}
