package ecs

// pageSize is the number of sparse slots per lazily-allocated page.
const pageSize = 2048

// npos marks a sparse slot with no associated dense position.
const npos = -1

// Pool is the sparse-set storage for every component of type T: a dense,
// packed array of values, a parallel dense array of owning entities, and a
// paged sparse index from entity index to dense position. All operations
// below are O(1) amortized except Reserve and Clear.
type Pool[T any] struct {
	dense         []T
	denseEntities []Entity
	sparsePages   [][]int32
	structVersion uint64
}

// NewPool returns an empty pool for component type T.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// Size returns the number of components currently stored.
func (p *Pool[T]) Size() int {
	return len(p.dense)
}

// StructVersion returns the pool's monotonic structural-version counter,
// bumped on every insert (overwrites included), every actual remove, and
// every clear. Views use it to detect staleness.
func (p *Pool[T]) StructVersion() uint64 {
	return p.structVersion
}

// EntityAt returns the entity owning the component at dense position i.
// The caller must supply 0 <= i < Size().
func (p *Pool[T]) EntityAt(i int) Entity {
	return p.denseEntities[i]
}

// sparseSlot returns a pointer to the sparse slot for entity index idx,
// allocating the backing page on first write. alloc controls whether a
// missing page is created (true for write paths) or treated as "no
// component" without materializing anything (false for read-only checks).
func (p *Pool[T]) sparseSlot(idx uint32, alloc bool) *int32 {
	page := int(idx) / pageSize
	for len(p.sparsePages) <= page {
		if !alloc {
			return nil
		}
		p.sparsePages = append(p.sparsePages, nil)
	}
	if p.sparsePages[page] == nil {
		if !alloc {
			return nil
		}
		fresh := make([]int32, pageSize)
		for i := range fresh {
			fresh[i] = npos
		}
		p.sparsePages[page] = fresh
	}
	return &p.sparsePages[page][int(idx)%pageSize]
}

// Has reports whether e currently owns a component in this pool. It does
// not check liveness — a handle for a recycled index may happen to report
// Has == true; combine with World.IsAlive (World.Has already does).
func (p *Pool[T]) Has(e Entity) bool {
	slot := p.sparseSlot(e.Index(), false)
	return slot != nil && *slot != npos
}

// Get returns a pointer into the pool's dense storage for e's component,
// or (nil, false) if e has none. The returned pointer is valid until the
// next mutating call on this pool (an Insert of a new entity, any Remove,
// or Clear).
func (p *Pool[T]) Get(e Entity) (*T, bool) {
	slot := p.sparseSlot(e.Index(), false)
	if slot == nil || *slot == npos {
		return nil, false
	}
	return &p.dense[*slot], true
}

// Insert attaches v to e. If e already has a component, the dense value is
// overwritten in place and the dense layout is unchanged; otherwise a new
// dense slot is appended. structVersion is bumped unconditionally, even on
// a plain overwrite. An overwrite does not change membership, so the only
// effect of that bump is one redundant view rebuild, O(driver size).
func (p *Pool[T]) Insert(e Entity, v T) {
	slot := p.sparseSlot(e.Index(), true)
	if *slot != npos {
		p.dense[*slot] = v
		p.structVersion++
		return
	}
	d := int32(len(p.dense))
	p.dense = append(p.dense, v)
	p.denseEntities = append(p.denseEntities, e)
	*slot = d
	p.structVersion++
}

// Remove detaches e's component if present. It is a silent no-op if e has
// no component in this pool. Swap-remove keeps the dense arrays packed:
// the tail element moves into the removed slot and the swapped entity's
// sparse slot is repointed.
func (p *Pool[T]) Remove(e Entity) bool {
	slot := p.sparseSlot(e.Index(), false)
	if slot == nil || *slot == npos {
		return false
	}
	removed := *slot
	last := int32(len(p.dense) - 1)
	if removed != last {
		p.dense[removed] = p.dense[last]
		movedEntity := p.denseEntities[last]
		p.denseEntities[removed] = movedEntity
		if movedSlot := p.sparseSlot(movedEntity.Index(), false); movedSlot != nil {
			*movedSlot = removed
		}
	}
	var zero T
	p.dense[last] = zero
	p.dense = p.dense[:last]
	p.denseEntities = p.denseEntities[:last]
	*slot = npos
	p.structVersion++
	return true
}

// Reserve grows dense capacity to at least n and pre-allocates the sparse
// pages needed to address n entity indices, all filled with npos.
func (p *Pool[T]) Reserve(n int) {
	if cap(p.dense) < n {
		grownDense := make([]T, len(p.dense), n)
		copy(grownDense, p.dense)
		p.dense = grownDense

		grownEntities := make([]Entity, len(p.denseEntities), n)
		copy(grownEntities, p.denseEntities)
		p.denseEntities = grownEntities
	}
	pages := (n + pageSize - 1) / pageSize
	for i := 0; i < pages; i++ {
		p.sparseSlot(uint32(i*pageSize), true)
	}
}

// Clear empties the pool: every allocated page is reset to npos and the
// dense arrays are truncated to zero length.
func (p *Pool[T]) Clear() {
	for _, page := range p.sparsePages {
		for i := range page {
			page[i] = npos
		}
	}
	p.dense = p.dense[:0]
	p.denseEntities = p.denseEntities[:0]
	p.structVersion++
}
