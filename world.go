package ecs

import (
	"reflect"

	"github.com/TheBitDrifter/mask"
	"go.uber.org/zap"
)

// maxTrackedComponentTypes bounds how many distinct component types a
// single World can register a fast per-entity membership bit for. Beyond
// this the mask-based fast path is simply skipped (has() still works
// correctly via the pool itself; only the View.Without fast-reject is
// unavailable for the overflow types).
const maxTrackedComponentTypes = 256

// poolHandle is the type-erased face every *Pool[T] is stored behind in
// the World's directory. Go has no existential "any Pool[T]" type, so the
// directory holds this narrow interface instead of reaching for
// reflection on every call.
type poolHandle interface {
	size() int
	remove(e Entity) bool
	reserve(n int)
	clearAll()
}

func (p *Pool[T]) size() int            { return p.Size() }
func (p *Pool[T]) remove(e Entity) bool { return p.Remove(e) }
func (p *Pool[T]) reserve(n int)        { p.Reserve(n) }
func (p *Pool[T]) clearAll()            { p.Clear() }

// World is the façade over one allocator and a type-indexed directory of
// pools. It owns exactly one Pool[T] per component type, looked up in O(1)
// via its type identity, and carries no package-level state, so a program
// can hold multiple independent Worlds side by side.
type World struct {
	allocator *EntityAllocator

	pools       map[reflect.Type]poolHandle
	componentID map[reflect.Type]uint32
	nextBit     uint32

	entityMasks []mask.Mask256

	globalVersion uint64

	cfg config
}

// NewWorld constructs an empty World, applying any supplied Options.
func NewWorld(opts ...Option) *World {
	w := &World{
		allocator:   NewEntityAllocator(),
		pools:       make(map[reflect.Type]poolHandle),
		componentID: make(map[reflect.Type]uint32),
		cfg:         defaultConfig(),
	}
	applyOptions(&w.cfg, opts)
	if w.cfg.capacityHint > 0 {
		w.Reserve(w.cfg.capacityHint)
	}
	return w
}

func componentType[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// Register ensures the pool for T exists and returns it. It is idempotent:
// calling it again for the same T returns the same *Pool[T], stable for
// the World's lifetime.
func Register[T any](w *World) *Pool[T] {
	t := componentType[T]()
	if existing, ok := w.pools[t]; ok {
		return existing.(*Pool[T])
	}
	p := NewPool[T]()
	w.pools[t] = p
	if w.nextBit < maxTrackedComponentTypes {
		w.componentID[t] = w.nextBit
		w.nextBit++
	}
	w.cfg.logger.Debug("registered component pool", zap.String("type", t.String()))
	return p
}

func poolOf[T any](w *World) *Pool[T] {
	return Register[T](w)
}

// CreateEntity allocates a fresh entity. It never fails except once the
// allocator's 2^20-slot index space is exhausted.
func (w *World) CreateEntity() (Entity, error) {
	e, err := w.allocator.Create()
	if err != nil {
		return InvalidEntity, err
	}
	idx := int(e.Index())
	for len(w.entityMasks) <= idx {
		w.entityMasks = append(w.entityMasks, mask.Mask256{})
	}
	w.entityMasks[idx] = mask.Mask256{}
	w.recordEntityCount()
	return e, nil
}

// IsAlive reports whether e is alive in this World.
func (w *World) IsAlive(e Entity) bool {
	return w.allocator.IsAlive(e)
}

// DestroyEntity removes e from every registered pool, bumps the World's
// global structural-version, and only then invalidates e in the allocator.
// That ordering matters: any view rebuild or pool lookup triggered between
// the pool removals and the allocator invalidation still sees a
// consistent, fully-detached entity rather than one that is half torn
// down. After it returns, IsAlive(e) is false and Has[T](e) is false for
// every T.
func (w *World) DestroyEntity(e Entity) error {
	if !w.allocator.IsAlive(e) {
		return NotAliveError{Entity: e}
	}
	for _, p := range w.pools {
		p.remove(e)
	}
	if idx := int(e.Index()); idx < len(w.entityMasks) {
		w.entityMasks[idx] = mask.Mask256{}
	}
	w.globalVersion++
	err := w.allocator.Destroy(e)
	w.cfg.metrics.incEntityDestruction()
	w.recordEntityCount()
	return err
}

// Reserve propagates a capacity hint to the allocator and to every
// already-registered pool.
func (w *World) Reserve(n int) {
	w.allocator.Reserve(n)
	for len(w.entityMasks) < n {
		w.entityMasks = append(w.entityMasks, mask.Mask256{})
	}
	for _, p := range w.pools {
		p.reserve(n)
	}
}

func (w *World) recordEntityCount() {
	w.cfg.metrics.setLiveEntities(float64(w.allocator.Live()))
}

func (w *World) entityMaskBit(t reflect.Type) (uint32, bool) {
	bit, ok := w.componentID[t]
	return bit, ok
}

// Attach binds component v to e, creating the pool for T on first use.
// If e already carries a T, its value is overwritten in place — this is
// not an error.
func Attach[T any](w *World, e Entity, v T) error {
	if !w.allocator.IsAlive(e) {
		return NotAliveError{Entity: e}
	}
	p := Register[T](w)
	p.Insert(e, v)
	if bit, ok := w.entityMaskBit(componentType[T]()); ok {
		w.entityMasks[e.Index()].Mark(bit)
	}
	w.cfg.metrics.setPoolSize(componentType[T]().String(), float64(p.Size()))
	return nil
}

// Detach removes T from e, if present. It is idempotent — detaching an
// absent component is not an error.
func Detach[T any](w *World, e Entity) error {
	if !w.allocator.IsAlive(e) {
		return NotAliveError{Entity: e}
	}
	p := Register[T](w)
	p.Remove(e)
	if bit, ok := w.entityMaskBit(componentType[T]()); ok {
		w.entityMasks[e.Index()].Unmark(bit)
	}
	w.cfg.metrics.setPoolSize(componentType[T]().String(), float64(p.Size()))
	return nil
}

// Has reports whether e, which must be alive, carries a component of type
// T. An entity that is not alive always reports false. When T's type has a
// tracked mask bit, the check is a single Mask256.ContainsAll test instead
// of a pool lookup; otherwise it falls back to the pool directly.
func Has[T any](w *World, e Entity) bool {
	if !w.allocator.IsAlive(e) {
		return false
	}
	if bit, ok := w.entityMaskBit(componentType[T]()); ok {
		var want mask.Mask256
		want.Mark(bit)
		return w.entityMasks[e.Index()].ContainsAll(want)
	}
	return poolOf[T](w).Has(e)
}

// Get returns a mutable pointer to e's T component. It fails with
// NotAliveError if e is not alive, or NotPresentError if e is alive but
// lacks T.
func Get[T any](w *World, e Entity) (*T, error) {
	if !w.allocator.IsAlive(e) {
		return nil, NotAliveError{Entity: e}
	}
	v, ok := poolOf[T](w).Get(e)
	if !ok {
		return nil, NotPresentError{Entity: e, Type: componentType[T]()}
	}
	return v, nil
}

// MustGet is Get, panicking (with a bark-traced error) instead of
// returning one. Intended for call sites where a missing entity or
// component indicates a programmer error rather than a condition the
// caller should handle.
func MustGet[T any](w *World, e Entity) *T {
	v, err := Get[T](w, e)
	mustNoError(err)
	return v
}

// GetOrAttach returns e's T component, attaching v first if absent. The
// returned pointer follows the same reference-stability contract as Get.
func GetOrAttach[T any](w *World, e Entity, v T) (*T, error) {
	if !w.allocator.IsAlive(e) {
		return nil, NotAliveError{Entity: e}
	}
	p := Register[T](w)
	if existing, ok := p.Get(e); ok {
		return existing, nil
	}
	if err := Attach(w, e, v); err != nil {
		return nil, err
	}
	existing, _ := p.Get(e)
	return existing, nil
}

// Singleton returns the sole component of type T, failing with
// SingletonViolationError if the pool for T does not hold exactly one.
func Singleton[T any](w *World) (*T, error) {
	p := Register[T](w)
	if p.Size() != 1 {
		violation := SingletonViolationError{Type: componentType[T](), Count: p.Size()}
		w.cfg.logger.Warn("singleton violation", zap.String("type", violation.Type.String()), zap.Int("count", violation.Count))
		return nil, violation
	}
	return &p.dense[0], nil
}

// SingletonEntity returns the entity owning the sole component of type T,
// failing with SingletonViolationError otherwise.
func SingletonEntity[T any](w *World) (Entity, error) {
	p := Register[T](w)
	if p.Size() != 1 {
		violation := SingletonViolationError{Type: componentType[T](), Count: p.Size()}
		w.cfg.logger.Warn("singleton violation", zap.String("type", violation.Type.String()), zap.Int("count", violation.Count))
		return InvalidEntity, violation
	}
	return p.denseEntities[0], nil
}

// HasComponent builds a View.With/Without predicate testing for the
// presence of T, so callers can write
// view.With(ecs.HasComponent[Health](w)) instead of a bespoke closure.
func HasComponent[T any](w *World) func(Entity) bool {
	return func(e Entity) bool { return Has[T](w, e) }
}

// NotComponent is the negated counterpart of HasComponent, convenient for
// View.Without.
func NotComponent[T any](w *World) func(Entity) bool {
	return func(e Entity) bool { return !Has[T](w, e) }
}
