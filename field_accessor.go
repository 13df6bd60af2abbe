package stockpile

// GetFromStorage retrieves the bound field for the given entity.
func (a FieldAccessor) GetFromStorage(sto Storage, id int64) (FieldValue, bool) {
	return sto.Field(id, a.Component, a.Field)
}

// GetFromEntity retrieves the bound field from a materialized view.
func (a FieldAccessor) GetFromEntity(e Entity) (FieldValue, bool) {
	return e.Field(a.Component, a.Field)
}

// GetFromCursor retrieves the bound field for the entity at the cursor position.
func (a FieldAccessor) GetFromCursor(c *Cursor) (FieldValue, bool) {
	return c.storage.Field(c.CurrentID(), a.Component, a.Field)
}

// CheckCursor determines if the bound component exists at the cursor position.
func (a FieldAccessor) CheckCursor(c *Cursor) bool {
	_, ok := c.storage.Entity(c.CurrentID()).Component(a.Component)
	return ok
}

// SetFromStorage writes the bound field, reporting whether the component exists.
func (a FieldAccessor) SetFromStorage(sto Storage, id int64, value FieldValue) bool {
	return sto.UpdateField(id, a.Component, a.Field, value)
}

// IncFromStorage combines delta into the bound field, reporting success.
func (a FieldAccessor) IncFromStorage(sto Storage, id int64, delta FieldValue) bool {
	return sto.IncrementField(id, a.Component, a.Field, delta)
}
