package stockpile

import "iter"

// Entity is a transient view: the set of components registered under one id
// at the moment the view was materialized. Views are reconstructed on demand
// and never stored; mutating one does not touch the storage.
type Entity struct {
	id         int64
	components map[string]Component
}

// ID returns the entity identifier the view was built for.
func (e Entity) ID() int64 {
	return e.id
}

// Component returns the named component and whether it was attached when the
// view was materialized.
func (e Entity) Component(name string) (Component, bool) {
	c, ok := e.components[name]
	return c, ok
}

// Components iterates over the view's (name, component) pairs.
func (e Entity) Components() iter.Seq2[string, Component] {
	return func(yield func(string, Component) bool) {
		for name, c := range e.components {
			if !yield(name, c) {
				return
			}
		}
	}
}

// Len reports how many components the view holds.
func (e Entity) Len() int {
	return len(e.components)
}

// Field returns the named field from the named component, if both exist.
func (e Entity) Field(component, field string) (FieldValue, bool) {
	c, ok := e.components[component]
	if !ok {
		return FieldValue{}, false
	}
	v, ok := c[field]
	return v, ok
}
