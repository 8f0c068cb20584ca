package ecs_test

import (
	"fmt"

	"github.com/TheBitDrifter/ecs"
)

// Position is a simple component for 2D coordinates.
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement.
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification.
type Name struct {
	Value string
}

// Example_basic shows basic ecs usage: creating entities, attaching
// components, and iterating a view.
func Example_basic() {
	w := ecs.NewWorld()

	for i := 0; i < 5; i++ {
		e, _ := w.CreateEntity()
		ecs.Attach(w, e, Position{})
	}
	for i := 0; i < 3; i++ {
		e, _ := w.CreateEntity()
		ecs.Attach(w, e, Position{})
		ecs.Attach(w, e, Velocity{})
	}

	player, _ := w.CreateEntity()
	ecs.Attach(w, player, Position{X: 10, Y: 20})
	ecs.Attach(w, player, Velocity{X: 1, Y: 2})
	ecs.Attach(w, player, Name{Value: "Player"})

	view := ecs.NewView2[Position, Velocity](w)

	matchCount := 0
	view.Each(func(e ecs.Entity, pos *Position, vel *Velocity) {
		matchCount++
	})
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	named := ecs.NewView2[Position, Velocity](w)
	named.With(ecs.HasComponent[Name](w))
	named.Each(func(e ecs.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
		name, _ := ecs.Get[Name](w, e)
		fmt.Printf("Updated %s to position (%.1f, %.1f)\n", name.Value, pos.X, pos.Y)
	})

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_queries shows With/Without filtering.
func Example_queries() {
	w := ecs.NewWorld()

	newEntities := func(n int, attach func(ecs.Entity)) {
		for i := 0; i < n; i++ {
			e, _ := w.CreateEntity()
			attach(e)
		}
	}

	newEntities(3, func(e ecs.Entity) {
		ecs.Attach(w, e, Position{})
	})
	newEntities(3, func(e ecs.Entity) {
		ecs.Attach(w, e, Position{})
		ecs.Attach(w, e, Velocity{})
	})
	newEntities(3, func(e ecs.Entity) {
		ecs.Attach(w, e, Position{})
		ecs.Attach(w, e, Name{})
	})
	newEntities(3, func(e ecs.Entity) {
		ecs.Attach(w, e, Position{})
		ecs.Attach(w, e, Velocity{})
		ecs.Attach(w, e, Name{})
	})

	withVelocity := ecs.NewView1[Position](w)
	withVelocity.With(ecs.HasComponent[Velocity](w))
	count := 0
	withVelocity.Each(func(ecs.Entity, *Position) { count++ })
	fmt.Printf("With-velocity query matched %d entities\n", count)

	withoutVelocity := ecs.NewView1[Position](w)
	withoutVelocity.Without(ecs.NotComponent[Velocity](w))
	count = 0
	withoutVelocity.Each(func(ecs.Entity, *Position) { count++ })
	fmt.Printf("Without-velocity query matched %d entities\n", count)

	// Output:
	// With-velocity query matched 6 entities
	// Without-velocity query matched 6 entities
}
