package ecs

import (
	"sort"

	"github.com/pkg/errors"
)

// System runs a callback once per tick for every entity present in all
// of its tuple components, in ascending entity order. Grounded on the
// vi-fighter's System interface and World.UpdateLocked (engine/world.go),
// generalized from vi-fighter's fixed per-system struct into a
// component-tuple driven callback.
type System struct {
	name       string
	components []presence
	run        func(e Entity) error
}

// NewSystem declares a system over an arbitrary tuple of components: run
// is invoked once per entity present in every one of components, in
// ascending entity order.
func NewSystem(name string, run func(e Entity) error, components ...presence) System {
	return System{name: name, run: run, components: components}
}

// candidates returns, in ascending order, the entities present in every
// one of the system's components. It drives the smallest column first
// to keep the intersection cheap.
func (s System) candidates() []Entity {
	if len(s.components) == 0 {
		return nil
	}

	smallest := s.components[0].entities()
	for _, c := range s.components[1:] {
		if es := c.entities(); len(es) < len(smallest) {
			smallest = es
		}
	}

	out := smallest[:0:0]
	for _, e := range smallest {
		inAll := true
		for _, c := range s.components {
			if !c.has(e) {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddSystem registers system to run on every Tick, in registration
// order.
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = append(w.systems, system)
}

// Tick runs every registered system once, in registration order, over
// its tuple's matching entities in ascending order. It halts at the
// first system whose callback returns an error for any entity, wrapping
// that error with the system's name and the entity it failed on.
func (w *World) Tick() error {
	w.mu.Lock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.Unlock()

	for _, system := range systems {
		for _, e := range system.candidates() {
			if err := system.run(e); err != nil {
				return errors.Wrapf(err, "ecs: system %q failed on entity %d", system.name, e)
			}
		}
	}
	return nil
}
