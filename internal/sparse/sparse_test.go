package sparse

import "testing"

func TestSparseSetInsertContains(t *testing.T) {
	s := NewSparseSet(10)

	if s.Contains(3) {
		t.Fatal("empty set should not contain 3")
	}

	s.Insert(3)
	s.Insert(7)
	s.Insert(3) // duplicate, no-op

	if !s.Contains(3) || !s.Contains(7) {
		t.Fatal("expected 3 and 7 to be present")
	}
	if s.Len() != 2 {
		t.Fatalf("expected Len()=2, got %d", s.Len())
	}
	if s.Size() != s.Len() {
		t.Fatalf("Size() and Len() should agree: %d vs %d", s.Size(), s.Len())
	}
}

func TestSparseSetOutOfRange(t *testing.T) {
	s := NewSparseSet(4)
	if s.Contains(100) {
		t.Fatal("out-of-range value should never be contained")
	}
}

func TestSparseSetRemove(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Fatal("2 should have been removed")
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Fatal("removing 2 should not disturb 1 or 3")
	}
	if s.Len() != 2 {
		t.Fatalf("expected Len()=2 after remove, got %d", s.Len())
	}

	s.Remove(99) // no-op, not present
	if s.Len() != 2 {
		t.Fatal("removing an absent value should be a no-op")
	}
}

func TestSparseSetClear(t *testing.T) {
	s := NewSparseSet(5)
	s.Insert(0)
	s.Insert(1)
	s.Clear()

	if !s.IsEmpty() {
		t.Fatal("expected empty set after Clear")
	}
	s.Insert(0)
	if !s.Contains(0) {
		t.Fatal("set should be reusable after Clear")
	}
}

func TestSparseSetIterOrder(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(7)
	s.Insert(2)
	s.Insert(5)

	var collected []uint32
	s.Iter(func(v uint32) {
		collected = append(collected, v)
	})

	if len(collected) != 3 {
		t.Fatalf("expected 3 items, got %d", len(collected))
	}
	if collected[0] != 7 || collected[1] != 2 || collected[2] != 5 {
		t.Errorf("expected insertion order [7,2,5], got %v", collected)
	}
}

func TestSparseSetUnion(t *testing.T) {
	a := NewSparseSet(10)
	a.Insert(1)
	a.Insert(2)

	b := NewSparseSet(10)
	b.Insert(2)
	b.Insert(3)

	a.Union(b)

	for _, v := range []uint32{1, 2, 3} {
		if !a.Contains(v) {
			t.Errorf("expected union to contain %d", v)
		}
	}
	if a.Len() != 3 {
		t.Fatalf("expected Len()=3 after union, got %d", a.Len())
	}
}

func TestSparseSetClone(t *testing.T) {
	a := NewSparseSet(10)
	a.Insert(4)
	a.Insert(9)

	b := a.Clone()
	b.Insert(1)

	if a.Contains(1) {
		t.Fatal("mutating clone should not affect original")
	}
	if !b.Contains(4) || !b.Contains(9) || !b.Contains(1) {
		t.Fatal("clone should contain original elements plus new insert")
	}
}
