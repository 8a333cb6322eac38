package sat

import "testing"

var backendNames = []string{Gophersat, Gini}

func TestBackendSat(t *testing.T) {
	for _, name := range backendNames {
		t.Run(name, func(t *testing.T) {
			b, err := New(name)
			if err != nil {
				t.Fatalf("could not create backend: %v", err)
			}
			b.EnsureVars(2)
			b.AddClause([]int{1, 2})
			b.AddClause([]int{-1})
			if got := b.Solve(); got != Sat {
				t.Fatalf("expected SAT, got %v", got)
			}
			if b.Value(1) {
				t.Error("variable 1 is forced false")
			}
			if !b.Value(2) {
				t.Error("variable 2 is forced true")
			}
		})
	}
}

func TestBackendUnsat(t *testing.T) {
	for _, name := range backendNames {
		t.Run(name, func(t *testing.T) {
			b, err := New(name)
			if err != nil {
				t.Fatalf("could not create backend: %v", err)
			}
			b.EnsureVars(1)
			b.AddClause([]int{1})
			b.AddClause([]int{-1})
			if got := b.Solve(); got != Unsat {
				t.Errorf("expected UNSAT, got %v", got)
			}
		})
	}
}

func TestBackendEmptyClause(t *testing.T) {
	for _, name := range backendNames {
		t.Run(name, func(t *testing.T) {
			b, err := New(name)
			if err != nil {
				t.Fatalf("could not create backend: %v", err)
			}
			b.EnsureVars(1)
			b.AddClause([]int{1})
			b.AddClause(nil)
			if got := b.Solve(); got != Unsat {
				t.Errorf("an empty clause makes the problem UNSAT, got %v", got)
			}
		})
	}
}

func TestBackendUnconstrainedValue(t *testing.T) {
	for _, name := range backendNames {
		t.Run(name, func(t *testing.T) {
			b, err := New(name)
			if err != nil {
				t.Fatalf("could not create backend: %v", err)
			}
			b.EnsureVars(10)
			b.AddClause([]int{1})
			if got := b.Solve(); got != Sat {
				t.Fatalf("expected SAT, got %v", got)
			}
			if b.Value(100) {
				t.Error("a variable never declared nor constrained reads as false")
			}
		})
	}
}

func TestNewBackend(t *testing.T) {
	if _, err := New(""); err != nil {
		t.Errorf("the empty name selects the default backend: %v", err)
	}
	if _, err := New("minisat"); err == nil {
		t.Error("expected an error for an unknown backend name")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Sat, "SAT"},
		{Unsat, "UNSAT"},
		{Unknown, "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
