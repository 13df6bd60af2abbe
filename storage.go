package stockpile

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
	"go.uber.org/zap"
)

var _ Storage = &storage{}

// defaultSchemaCapacity bounds how many distinct component names the query
// engine can track; it matches the default mask build width. EntitiesWith is
// map-based and unaffected by this bound.
const defaultSchemaCapacity = 64

type storage struct {
	locked  bool
	nextID  int64
	created []int64

	// categories is the registry: component name -> entity id -> component.
	categories map[string]map[int64]Component

	// schema interns component names to mask bits for the query engine.
	schema Cache[string]
	masks  map[int64]mask.Mask

	opQueue opQueue
	log     *zap.Logger
}

// StorageOption configures a storage at construction time.
type StorageOption func(*storage)

// WithLogger attaches a logger; storages are silent by default.
func WithLogger(log *zap.Logger) StorageOption {
	return func(sto *storage) {
		if log != nil {
			sto.log = log
		}
	}
}

// WithCapacity pre-sizes the creation-order list for n entities.
func WithCapacity(n int) StorageOption {
	return func(sto *storage) {
		if n > 0 {
			sto.created = make([]int64, 0, n)
		}
	}
}

func newStorage(opts ...StorageOption) Storage {
	sto := &storage{
		nextID:     1,
		categories: make(map[string]map[int64]Component),
		schema:     FactoryNewCache[string](defaultSchemaCapacity),
		masks:      make(map[int64]mask.Mask),
		opQueue:    newOpQueue(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(sto)
	}
	return sto
}

// NewEntity allocates the next id, attaches every supplied component under it
// (first-write-wins), and records the id in creation order. Ids start at 1,
// strictly increase, and are never reused. Component contents are not
// validated; any field set is accepted.
func (sto *storage) NewEntity(components map[string]Component) (int64, error) {
	if sto.locked {
		return 0, LockedStorageError{}
	}
	id := sto.nextID
	sto.nextID++
	for name, c := range components {
		sto.attach(id, name, c)
	}
	sto.created = append(sto.created, id)
	sto.log.Debug("entity created",
		zap.Int64("entity", id),
		zap.Int("components", len(components)),
	)
	if Config.events.OnEntityCreated != nil {
		Config.events.OnEntityCreated(id)
	}
	return id, nil
}

// AttachComponent stores c under (id, name) unless that slot is already
// occupied, in which case the call is silently ignored and the original is
// retained. Any id is a legal key; ids attached here without a prior NewEntity
// call are not added to the creation-order list and therefore never surface
// from EntitiesWith.
func (sto *storage) AttachComponent(id int64, name string, c Component) error {
	if sto.locked {
		return LockedStorageError{}
	}
	sto.attach(id, name, c)
	return nil
}

func (sto *storage) attach(id int64, name string, c Component) {
	cat, ok := sto.categories[name]
	if !ok {
		cat = make(map[int64]Component)
		sto.categories[name] = cat
		sto.registerCategory(name)
	}
	if _, exists := cat[id]; exists {
		sto.log.Debug("component already attached, original retained",
			zap.Int64("entity", id),
			zap.String("component", name),
		)
		return
	}
	cat[id] = c.Clone()
	if bit, tracked := sto.schema.GetIndex(name); tracked {
		m := sto.masks[id]
		m.Mark(uint32(bit))
		sto.masks[id] = m
	}
	if Config.events.OnComponentAttached != nil {
		Config.events.OnComponentAttached(id, name)
	}
}

func (sto *storage) registerCategory(name string) {
	if _, ok := sto.schema.GetIndex(name); ok {
		return
	}
	if _, err := sto.schema.Register(name, name); err != nil {
		// Past the mask width the category still works through the map
		// registry; it just can't be matched by the composite query engine.
		sto.log.Warn("component name not trackable by queries",
			zap.String("component", name),
			zap.Error(err),
		)
	}
}

// CategoryBit returns the mask bit interned for a component name. The second
// result is false for names never attached anywhere or past the schema bound.
func (sto *storage) CategoryBit(name string) (uint32, bool) {
	bit, ok := sto.schema.GetIndex(name)
	return uint32(bit), ok
}

// Entity materializes the view for id by scanning every registered category.
// Cost is proportional to the number of distinct component names ever seen,
// not the number of entities. An unknown id yields a view with zero
// components; that is not an error.
func (sto *storage) Entity(id int64) Entity {
	e := Entity{id: id, components: make(map[string]Component)}
	for name, cat := range sto.categories {
		if c, ok := cat[id]; ok {
			e.components[name] = c.Clone()
		}
	}
	return e
}

// EntitiesWith returns views for every created entity carrying all of the
// named components. An empty name list matches every entity. A name that was
// never registered anywhere forces an empty result regardless of the other
// names. Result ordering is unspecified; callers must treat it as a set.
func (sto *storage) EntitiesWith(names ...string) []Entity {
	return iter_util.Collect(sto.matching(names))
}

func (sto *storage) matching(names []string) iter.Seq[Entity] {
	candidates := make(map[int64]struct{}, len(sto.created))
	for _, id := range sto.created {
		candidates[id] = struct{}{}
	}
	for _, name := range names {
		cat, registered := sto.categories[name]
		if !registered {
			clear(candidates)
			continue
		}
		for id := range candidates {
			if _, ok := cat[id]; !ok {
				delete(candidates, id)
			}
		}
	}
	return func(yield func(Entity) bool) {
		for _, id := range sto.created {
			if _, ok := candidates[id]; !ok {
				continue
			}
			if !yield(sto.Entity(id)) {
				return
			}
		}
	}
}

// UpdateField inserts or overwrites a field inside the component stored under
// (id, component). It reports false, with no side effect, when the component
// name was never registered or the entity lacks it. Field writes are
// unconditional once the component exists, unlike component attachment.
func (sto *storage) UpdateField(id int64, component, field string, value FieldValue) bool {
	cat, ok := sto.categories[component]
	if !ok {
		sto.log.Debug("field update rejected: unknown component category",
			zap.Int64("entity", id),
			zap.String("component", component),
		)
		return false
	}
	c, ok := cat[id]
	if !ok {
		sto.log.Debug("field update rejected: entity lacks component",
			zap.Int64("entity", id),
			zap.String("component", component),
		)
		return false
	}
	c[field] = value
	return true
}

// Field returns the stored value for (id, component, field). Absence at any
// level is reported through the second result, never as an error.
func (sto *storage) Field(id int64, component, field string) (FieldValue, bool) {
	cat, ok := sto.categories[component]
	if !ok {
		return FieldValue{}, false
	}
	c, ok := cat[id]
	if !ok {
		return FieldValue{}, false
	}
	v, ok := c[field]
	return v, ok
}

// IncrementField combines the current field value with delta per the Combine
// promotion rule and writes the result back. A field that was never set
// reports false and leaves the storage untouched.
func (sto *storage) IncrementField(id int64, component, field string, delta FieldValue) bool {
	current, ok := sto.Field(id, component, field)
	if !ok {
		return false
	}
	return sto.UpdateField(id, component, field, Combine(current, delta))
}

func (sto *storage) Locked() bool {
	return sto.locked
}

func (sto *storage) Lock() {
	sto.locked = true
}

func (sto *storage) Unlock() {
	sto.locked = false
	err := sto.processOperationQueue()
	if err != nil {
		panic(err)
	}
}

func (s *storage) EnqueueNewEntity(components map[string]Component) error {
	if !s.locked {
		_, err := s.NewEntity(components)
		return err
	}
	s.opQueue.createOps = append(s.opQueue.createOps, operation{
		components: components,
	})
	return nil
}

func (s *storage) EnqueueAttachComponent(id int64, name string, c Component) error {
	if !s.locked {
		return s.AttachComponent(id, name, c)
	}
	s.opQueue.EnqueueAttach(id, name, c)
	return nil
}
