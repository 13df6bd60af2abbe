package stockpile

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

type Storage interface {
	NewEntity(components map[string]Component) (int64, error)
	EnqueueNewEntity(components map[string]Component) error
	AttachComponent(id int64, name string, c Component) error
	EnqueueAttachComponent(id int64, name string, c Component) error
	Entity(id int64) Entity
	EntitiesWith(names ...string) []Entity
	UpdateField(id int64, component, field string, value FieldValue) bool
	Field(id int64, component, field string) (FieldValue, bool)
	IncrementField(id int64, component, field string, delta FieldValue) bool
	CategoryBit(name string) (uint32, bool)
	Locked() bool
	Lock()
	Unlock()
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(entityMask mask.Mask, storage Storage) bool
}

type iCursor interface {
	Entities() iter.Seq2[int64, Entity]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
}

// Warning: internal dependencies abound!
type Cursor struct {
	// The query to filter entities
	query QueryNode

	// The storage to iterate over
	storage Storage

	// Current iteration state
	matched     []int64
	entityIndex int

	// Initialization state
	initialized bool
}

// FieldAccessor binds a (component name, field name) pair for repeated typed access.
type FieldAccessor struct {
	Component string
	Field     string
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
