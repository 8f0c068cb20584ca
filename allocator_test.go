package ecs

import "testing"

// TestAllocatorCreateDestroyLifecycle checks that IsAlive tracks exactly
// the current alive set, and that a recycled index comes back as a
// distinct handle (no stale copy of the old handle should ever compare
// alive again).
func TestAllocatorCreateDestroyLifecycle(t *testing.T) {
	a := NewEntityAllocator()

	e1, err := a.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !a.IsAlive(e1) {
		t.Fatalf("expected %v alive", e1)
	}

	if err := a.Destroy(e1); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if a.IsAlive(e1) {
		t.Fatalf("expected %v not alive after destroy", e1)
	}

	e2, err := a.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e1 == e2 {
		t.Fatalf("recycled handle %v should not equal original %v", e2, e1)
	}
	if !a.IsAlive(e2) {
		t.Fatalf("expected %v alive", e2)
	}
	if a.IsAlive(e1) {
		t.Fatalf("stale handle %v must not report alive", e1)
	}
	if e2.Index() != e1.Index() {
		t.Fatalf("expected LIFO reuse of index %d, got %d", e1.Index(), e2.Index())
	}
}

func TestAllocatorDestroyNotAlive(t *testing.T) {
	a := NewEntityAllocator()
	e, _ := a.Create()
	if err := a.Destroy(e); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if err := a.Destroy(e); err == nil {
		t.Fatalf("expected error destroying an already-dead entity")
	}
}

func TestAllocatorDestroyUnknownIndex(t *testing.T) {
	a := NewEntityAllocator()
	if err := a.Destroy(newEntity(42, 0)); err == nil {
		t.Fatalf("expected error destroying a never-allocated index")
	}
}

func TestAllocatorLIFOOrdering(t *testing.T) {
	a := NewEntityAllocator()
	e1, _ := a.Create()
	e2, _ := a.Create()
	e3, _ := a.Create()

	a.Destroy(e2)
	a.Destroy(e3)

	// Most recently freed (e3's index) should come back first.
	r1, _ := a.Create()
	if r1.Index() != e3.Index() {
		t.Fatalf("expected LIFO reuse of e3's index %d, got %d", e3.Index(), r1.Index())
	}
	r2, _ := a.Create()
	if r2.Index() != e2.Index() {
		t.Fatalf("expected LIFO reuse of e2's index %d, got %d", e2.Index(), r2.Index())
	}
	_ = e1
}

func TestAllocatorReserveDoesNotCreate(t *testing.T) {
	a := NewEntityAllocator()
	a.Reserve(1000)
	if a.Live() != 0 {
		t.Fatalf("Reserve must not create entities, got Live()=%d", a.Live())
	}
}

func TestAllocatorCapacityExhausted(t *testing.T) {
	a := &EntityAllocator{versions: make([]uint32, maxEntityIndex)}
	if _, err := a.Create(); err != ErrCapacityExhausted {
		t.Fatalf("expected ErrCapacityExhausted, got %v", err)
	}
}
