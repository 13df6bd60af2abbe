package stockpile

import "iter"

var _ iCursor = &Cursor{}

// A Cursor walks every created entity matching its query, in creation order.
// The storage is locked from first use until the cursor is exhausted or Reset,
// so structural mutations issued mid-iteration must go through the Enqueue
// variants; they apply when the lock releases.
func newCursor(query QueryNode, storage Storage) *Cursor {
	return &Cursor{
		query:   query,
		storage: storage,
	}
}

func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.entityIndex < len(c.matched) {
		c.entityIndex++
		return true
	}
	c.Reset()
	return false
}

func (c *Cursor) Entities() iter.Seq2[int64, Entity] {
	return func(yield func(int64, Entity) bool) {
		c.initialize()

		for c.entityIndex < len(c.matched) {
			id := c.matched[c.entityIndex]
			c.entityIndex++
			if !yield(id, c.storage.Entity(id)) {
				c.Reset()
				return
			}
		}
		c.Reset()
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.storage.Lock()
	c.matched = make([]int64, 0)

	// Snapshot all matching ids up front
	sto := c.storage.(*storage)
	for _, id := range sto.created {
		if c.query.Evaluate(sto.masks[id], c.storage) {
			c.matched = append(c.matched, id)
		}
	}
	c.initialized = true
}

func (c *Cursor) Reset() {
	c.matched = nil
	c.entityIndex = 0
	c.initialized = false
	c.storage.Unlock()
}

// CurrentID returns the id at the cursor position.
func (c *Cursor) CurrentID() int64 {
	return c.matched[c.entityIndex-1]
}

// CurrentEntity materializes the view at the cursor position.
func (c *Cursor) CurrentEntity() Entity {
	return c.storage.Entity(c.CurrentID())
}

func (c *Cursor) Remaining() int {
	return len(c.matched) - c.entityIndex
}

func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	return len(c.matched)
}
