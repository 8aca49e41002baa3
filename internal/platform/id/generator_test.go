package id

import "testing"

func TestRandomGenerator_NewID(t *testing.T) {
	gen := NewRandomGenerator(0)

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(first) != 2*defaultSize {
		t.Fatalf("expected %d hex chars, got %q", 2*defaultSize, first)
	}

	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}

	if got, _ := NewRandomGenerator(4).NewID(); len(got) != 8 {
		t.Fatalf("expected 8 hex chars for size 4, got %q", got)
	}
}
