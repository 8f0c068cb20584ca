/*
Package ecs provides a small, in-process Entity-Component-System runtime.

It manages a world of lightweight entity handles, attaches typed component
values to those entities through per-type sparse-set storage, and lets
callers iterate — with mutable access — over every entity that carries a
given combination of components.

Core Concepts:

  - Entity: a packed 32-bit handle (index + version) identifying a game object.
  - Pool[T]: the sparse-set storage for every component of type T.
  - World: the façade; owns the entity allocator and the pool directory.
  - View: a cached query over one or more pools' intersection.

Basic Usage:

	w := ecs.NewWorld()

	e, _ := w.CreateEntity()
	ecs.Attach(w, e, Position{X: 1, Y: 2})
	ecs.Attach(w, e, Velocity{X: 1, Y: 0})

	view := ecs.NewView2[Position, Velocity](w)
	view.Each(func(e ecs.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

ecs is single-threaded and cooperative: the world, its allocator, its pools,
and its views are only ever safe to mutate from the goroutine that created
them.
*/
package ecs
