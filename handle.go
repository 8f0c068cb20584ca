package ecs

// Handle bundles an Entity with its owning World for ergonomic chaining
// (h.Destroy() instead of w.DestroyEntity(h.E)). It is a borrowed,
// non-canonical convenience wrapper: the plain Entity remains the
// canonical, serializable, copyable value, while Handle is constructed on
// demand at call sites that want method-style chaining and is never
// stored inside World or Pool.
type Handle struct {
	E Entity
	W *World
}

// Of builds a Handle bundling e with w. It does not check e's liveness.
func Of(w *World, e Entity) Handle {
	return Handle{E: e, W: w}
}

// IsAlive reports whether the underlying entity is alive in its world.
func (h Handle) IsAlive() bool {
	return h.W.IsAlive(h.E)
}

// Destroy destroys the underlying entity.
func (h Handle) Destroy() error {
	return h.W.DestroyEntity(h.E)
}

// HandleAttach attaches a component to the underlying entity. Methods cannot
// introduce new type parameters in Go, so this is a function taking the
// handle, not a generic method on Handle.
func HandleAttach[T any](h Handle, v T) error {
	return Attach(h.W, h.E, v)
}

// HandleDetach removes a component from the underlying entity.
func HandleDetach[T any](h Handle) error {
	return Detach[T](h.W, h.E)
}

// HandleGet returns a mutable pointer to the underlying entity's T
// component.
func HandleGet[T any](h Handle) (*T, error) {
	return Get[T](h.W, h.E)
}

// HandleHas reports whether the underlying entity carries a T component.
func HandleHas[T any](h Handle) bool {
	return Has[T](h.W, h.E)
}
