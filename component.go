package stockpile

// Component is a named bag of fields attached to an entity at runtime.
// Any string is a legal field name; iteration order carries no meaning.
type Component map[string]FieldValue

// Clone returns an independent copy of the component. Cloning a nil
// component yields an empty one.
func (c Component) Clone() Component {
	clone := make(Component, len(c))
	for name, value := range c {
		clone[name] = value
	}
	return clone
}
