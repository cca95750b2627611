package id

import "testing"

func TestUUIDGenerator_NewID(t *testing.T) {
	g := NewUUIDGenerator()

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}

	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
	if !Valid(first) || len(first) != 36 {
		t.Fatalf("expected canonical uuid, got %q", first)
	}
}

func TestValid(t *testing.T) {
	if Valid("not-a-uuid") {
		t.Fatalf("expected invalid id")
	}
	if !Valid("0b6f6d8a-58b4-4a52-9e59-3b5d8f0c2a11") {
		t.Fatalf("expected valid id")
	}
}
