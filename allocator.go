package ecs

// EntityAllocator issues and recycles entity handles. Recycled indices
// carry a bumped version so stale copies of a handle are rejected by
// IsAlive. It is the sole owner of the index/version namespace for one
// World; callers never construct an Entity directly.
type EntityAllocator struct {
	versions []uint32
	freeList []uint32
}

// NewEntityAllocator returns an allocator with no live entities.
func NewEntityAllocator() *EntityAllocator {
	return &EntityAllocator{}
}

// Create issues a fresh entity, preferring the most recently freed index
// (LIFO) over growing the index space. It fails only once the index space
// (2^20 slots) is exhausted.
func (a *EntityAllocator) Create() (Entity, error) {
	if n := len(a.freeList); n > 0 {
		idx := a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		return newEntity(idx, a.versions[idx]), nil
	}
	if len(a.versions) >= maxEntityIndex {
		return InvalidEntity, ErrCapacityExhausted
	}
	idx := uint32(len(a.versions))
	a.versions = append(a.versions, 0)
	return newEntity(idx, 0), nil
}

// Destroy invalidates e. Its index becomes available for reuse, and any
// previously issued handle for that index (including e itself) no longer
// reports alive.
func (a *EntityAllocator) Destroy(e Entity) error {
	if !a.IsAlive(e) {
		return NotAliveError{Entity: e}
	}
	idx := e.Index()
	next := (a.versions[idx] + 1) % maxEntityVersion
	if newEntity(idx, next) == InvalidEntity {
		next = 0
	}
	a.versions[idx] = next
	a.freeList = append(a.freeList, idx)
	return nil
}

// IsAlive reports whether e's index is in range and its version matches
// the allocator's current version for that slot.
func (a *EntityAllocator) IsAlive(e Entity) bool {
	idx := e.Index()
	if int(idx) >= len(a.versions) {
		return false
	}
	return a.versions[idx] == e.Version()
}

// Reserve grows the allocator's backing storage to accommodate at least n
// live entities without further reallocation. It never fails and never
// creates entities.
func (a *EntityAllocator) Reserve(n int) {
	if cap(a.versions) < n {
		grown := make([]uint32, len(a.versions), n)
		copy(grown, a.versions)
		a.versions = grown
	}
}

// Live returns the number of currently alive entities.
func (a *EntityAllocator) Live() int {
	return len(a.versions) - len(a.freeList)
}
