package search

import (
	"errors"
	"testing"
)

func TestFrontierFIFOOrder(t *testing.T) {
	f := NewFrontier()
	f.Add(&Node{State: "a"})
	f.Add(&Node{State: "b"})
	f.Add(&Node{State: "c"})

	for _, want := range []string{"a", "b", "c"} {
		n, err := f.RemoveOldest()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if n.State != want {
			t.Fatalf("expected state %q, got %q", want, n.State)
		}
	}
	if !f.IsEmpty() {
		t.Fatalf("expected frontier to be empty after draining")
	}
}

func TestFrontierRemoveOldestWhenEmpty(t *testing.T) {
	f := NewFrontier()
	if _, err := f.RemoveOldest(); !errors.Is(err, ErrEmptyFrontier) {
		t.Fatalf("expected ErrEmptyFrontier, got %v", err)
	}
}

func TestFrontierContainsState(t *testing.T) {
	f := NewFrontier()
	if f.ContainsState("a") {
		t.Fatalf("empty frontier should contain no states")
	}

	f.Add(&Node{State: "a"})
	f.Add(&Node{State: "b"})
	if !f.ContainsState("a") || !f.ContainsState("b") {
		t.Fatalf("expected queued states to be reported")
	}

	if _, err := f.RemoveOldest(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.ContainsState("a") {
		t.Fatalf("state a should be gone after removal")
	}
	if !f.ContainsState("b") {
		t.Fatalf("state b should still be queued")
	}
}

func TestFrontierDuplicateStates(t *testing.T) {
	f := NewFrontier()
	f.Add(&Node{State: "a"})
	f.Add(&Node{State: "a"})

	if _, err := f.RemoveOldest(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !f.ContainsState("a") {
		t.Fatalf("second copy of state a should still be queued")
	}
	if _, err := f.RemoveOldest(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.ContainsState("a") {
		t.Fatalf("state a should be gone after both copies are removed")
	}
}
