package ecs

// sizedPool is the narrow face of Pool[T] the view cache-rebuild algorithm
// needs: membership testing and dense iteration, without committing to a
// concrete component type.
type sizedPool interface {
	Size() int
	Has(Entity) bool
	EntityAt(int) Entity
}

// rebuildIntersection recomputes the set of entities present in every pool
// in pools. It drives the scan off the smallest pool (intersection size is
// bounded by the smallest operand), breaking ties by pools' position in
// the caller's declared type order — the first-encountered minimum wins.
// The tie-break is arbitrary but stable, which is all correctness needs
// here.
func rebuildIntersection(pools []sizedPool, cache []Entity) []Entity {
	cache = cache[:0]
	driver := 0
	for i := 1; i < len(pools); i++ {
		if pools[i].Size() < pools[driver].Size() {
			driver = i
		}
	}
	n := pools[driver].Size()
	for i := 0; i < n; i++ {
		e := pools[driver].EntityAt(i)
		ok := true
		for j, p := range pools {
			if j == driver {
				continue
			}
			if !p.Has(e) {
				ok = false
				break
			}
		}
		if ok {
			cache = append(cache, e)
		}
	}
	return cache
}

// viewState is the shared bookkeeping every view arity embeds: the cache
// itself, the filter list, and the staleness flag. Each concrete view adds
// its own pool references and per-pool version snapshots, since the
// snapshot width is fixed by arity (Go generics have no variadic type
// parameters).
type viewState struct {
	cache      []Entity
	filters    []func(Entity) bool
	cacheBuilt bool
}

func (vs *viewState) addFilter(pred func(Entity) bool) {
	vs.filters = append(vs.filters, pred)
	vs.cacheBuilt = false
}

// runEach drives the common tail of Each once the caller has ensured the
// cache is fresh: apply one-shot filters, invoke fn per surviving entity,
// then clear the filters so the next call rebuilds cleanly if any fired.
func (vs *viewState) runEach(fn func(Entity)) {
	hadFilters := len(vs.filters) > 0
	for _, e := range vs.cache {
		if hadFilters {
			pass := true
			for _, f := range vs.filters {
				if !f(e) {
					pass = false
					break
				}
			}
			if !pass {
				continue
			}
		}
		fn(e)
	}
	if hadFilters {
		vs.filters = vs.filters[:0]
		vs.cacheBuilt = false
	}
}

// View1 is a cached query over a single component pool.
type View1[A any] struct {
	world *World
	pa    *Pool[A]

	seenA uint64
	viewState
}

// NewView1 returns a view over every entity carrying an A component.
func NewView1[A any](w *World) *View1[A] {
	return &View1[A]{world: w, pa: Register[A](w)}
}

// With adds a membership predicate, invalidating the cache.
func (v *View1[A]) With(pred func(Entity) bool) *View1[A] {
	v.addFilter(pred)
	return v
}

// Without adds an absence predicate, invalidating the cache. Callers
// typically pass ecs.NotComponent[T](world).
func (v *View1[A]) Without(pred func(Entity) bool) *View1[A] {
	v.addFilter(pred)
	return v
}

// Reserve grows the view's cache capacity.
func (v *View1[A]) Reserve(n int) {
	if cap(v.cache) < n {
		v.cache = make([]Entity, 0, n)
	}
}

func (v *View1[A]) ensureFresh() {
	if v.cacheBuilt && v.seenA == v.pa.StructVersion() {
		return
	}
	v.cache = rebuildIntersection([]sizedPool{v.pa}, v.cache)
	v.seenA = v.pa.StructVersion()
	v.cacheBuilt = true
	v.world.cfg.metrics.incViewRebuild("View1")
}

// Each rebuilds the cache if stale, then invokes fn once per matching
// entity with a mutable pointer to its A component.
func (v *View1[A]) Each(fn func(Entity, *A)) {
	v.ensureFresh()
	v.runEach(func(e Entity) {
		a, _ := v.pa.Get(e)
		fn(e, a)
	})
}

// View2 is a cached query over the intersection of two component pools.
type View2[A, B any] struct {
	world  *World
	pa     *Pool[A]
	pb     *Pool[B]
	seenA  uint64
	seenB  uint64
	viewState
}

// NewView2 returns a view over every entity carrying both an A and a B.
func NewView2[A, B any](w *World) *View2[A, B] {
	return &View2[A, B]{world: w, pa: Register[A](w), pb: Register[B](w)}
}

func (v *View2[A, B]) With(pred func(Entity) bool) *View2[A, B] {
	v.addFilter(pred)
	return v
}

func (v *View2[A, B]) Without(pred func(Entity) bool) *View2[A, B] {
	v.addFilter(pred)
	return v
}

func (v *View2[A, B]) Reserve(n int) {
	if cap(v.cache) < n {
		v.cache = make([]Entity, 0, n)
	}
}

func (v *View2[A, B]) ensureFresh() {
	if v.cacheBuilt && v.seenA == v.pa.StructVersion() && v.seenB == v.pb.StructVersion() {
		return
	}
	v.cache = rebuildIntersection([]sizedPool{v.pa, v.pb}, v.cache)
	v.seenA = v.pa.StructVersion()
	v.seenB = v.pb.StructVersion()
	v.cacheBuilt = true
	v.world.cfg.metrics.incViewRebuild("View2")
}

// Each rebuilds the cache if stale, then invokes fn once per matching
// entity with mutable pointers to its A and B components.
func (v *View2[A, B]) Each(fn func(Entity, *A, *B)) {
	v.ensureFresh()
	v.runEach(func(e Entity) {
		a, _ := v.pa.Get(e)
		b, _ := v.pb.Get(e)
		fn(e, a, b)
	})
}

// View3 is a cached query over the intersection of three component pools.
type View3[A, B, C any] struct {
	world  *World
	pa     *Pool[A]
	pb     *Pool[B]
	pc     *Pool[C]
	seenA  uint64
	seenB  uint64
	seenC  uint64
	viewState
}

// NewView3 returns a view over every entity carrying an A, a B, and a C.
func NewView3[A, B, C any](w *World) *View3[A, B, C] {
	return &View3[A, B, C]{world: w, pa: Register[A](w), pb: Register[B](w), pc: Register[C](w)}
}

func (v *View3[A, B, C]) With(pred func(Entity) bool) *View3[A, B, C] {
	v.addFilter(pred)
	return v
}

func (v *View3[A, B, C]) Without(pred func(Entity) bool) *View3[A, B, C] {
	v.addFilter(pred)
	return v
}

func (v *View3[A, B, C]) Reserve(n int) {
	if cap(v.cache) < n {
		v.cache = make([]Entity, 0, n)
	}
}

func (v *View3[A, B, C]) ensureFresh() {
	if v.cacheBuilt && v.seenA == v.pa.StructVersion() && v.seenB == v.pb.StructVersion() && v.seenC == v.pc.StructVersion() {
		return
	}
	v.cache = rebuildIntersection([]sizedPool{v.pa, v.pb, v.pc}, v.cache)
	v.seenA = v.pa.StructVersion()
	v.seenB = v.pb.StructVersion()
	v.seenC = v.pc.StructVersion()
	v.cacheBuilt = true
	v.world.cfg.metrics.incViewRebuild("View3")
}

// Each rebuilds the cache if stale, then invokes fn once per matching
// entity with mutable pointers to its A, B, and C components.
func (v *View3[A, B, C]) Each(fn func(Entity, *A, *B, *C)) {
	v.ensureFresh()
	v.runEach(func(e Entity) {
		a, _ := v.pa.Get(e)
		b, _ := v.pb.Get(e)
		c, _ := v.pc.Get(e)
		fn(e, a, b, c)
	})
}
