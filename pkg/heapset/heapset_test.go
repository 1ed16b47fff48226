package heapset

import (
	"errors"
	"testing"
)

func identity(x int) float64 { return float64(x) }

func TestPopOrdersByPriority(t *testing.T) {
	h := New(identity)
	for _, x := range []int{5, 1, 4, 2, 3} {
		h.Add(x)
	}

	for want := 1; want <= 5; want++ {
		got, err := h.Pop()
		if err != nil {
			t.Fatalf("Pop error: %v", err)
		}
		if got != want {
			t.Errorf("Pop = %d, want %d", got, want)
		}
	}
}

func TestAddDeduplicates(t *testing.T) {
	h := New(identity)
	if !h.Add(7) {
		t.Error("first Add should insert")
	}
	if h.Add(7) {
		t.Error("second Add of same element should be a no-op")
	}
	if h.Len() != 1 {
		t.Errorf("Len = %d, want 1", h.Len())
	}

	// Re-adding after Pop must work again.
	if _, err := h.Pop(); err != nil {
		t.Fatalf("Pop error: %v", err)
	}
	if !h.Add(7) {
		t.Error("Add after Pop should insert")
	}
}

func TestPopEmpty(t *testing.T) {
	h := New(identity)
	if _, err := h.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Pop on empty set = %v, want ErrEmpty", err)
	}
}

func TestContains(t *testing.T) {
	h := New(identity)
	h.Add(3)
	if !h.Contains(3) {
		t.Error("Contains should report added element")
	}
	if h.Contains(4) {
		t.Error("Contains should not report missing element")
	}
	_, _ = h.Pop()
	if h.Contains(3) {
		t.Error("Contains should not report popped element")
	}
}

func TestCustomPriorityFunction(t *testing.T) {
	// Order strings by an external rank, not lexicographically.
	rank := map[string]float64{"c": 0, "a": 1, "b": 2}
	h := New(func(s string) float64 { return rank[s] })
	h.Add("a")
	h.Add("b")
	h.Add("c")

	want := []string{"c", "a", "b"}
	for _, w := range want {
		got, err := h.Pop()
		if err != nil {
			t.Fatalf("Pop error: %v", err)
		}
		if got != w {
			t.Errorf("Pop = %q, want %q", got, w)
		}
	}
}

func TestInterleavedAddPop(t *testing.T) {
	h := New(identity)
	h.Add(10)
	h.Add(2)

	got, _ := h.Pop()
	if got != 2 {
		t.Fatalf("Pop = %d, want 2", got)
	}

	h.Add(1)
	h.Add(5)
	got, _ = h.Pop()
	if got != 1 {
		t.Fatalf("Pop = %d, want 1", got)
	}
	got, _ = h.Pop()
	if got != 5 {
		t.Fatalf("Pop = %d, want 5", got)
	}
	got, _ = h.Pop()
	if got != 10 {
		t.Fatalf("Pop = %d, want 10", got)
	}
}
