// Package ecs provides the ordered entity store used for collections that
// only shrink while a scene is running.
package ecs

// EntityID is the unique identifier of an entity. Zero is reserved as the
// invalid ID.
type EntityID uint64

// EntityManager stores entities in insertion order.
//
// Destruction is two-phase: DestroyEntity only marks an entity, and
// RemoveMarkedEntities compacts the store once the caller has finished
// iterating. Marked entities stay visible to GetEntity and Entities until
// then, so a scan in progress never observes a shifted slice.
type EntityManager[T any] struct {
	nextID uint64
	order  []EntityID
	// EntityID -> entity value
	entities map[EntityID]T
	// IDs waiting for RemoveMarkedEntities
	entitiesToDestroy map[EntityID]struct{}
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID:            1, // 0 is reserved as the invalid ID
		order:             make([]EntityID, 0),
		entities:          make(map[EntityID]T),
		entitiesToDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity appends an entity and returns its ID.
func (em *EntityManager[T]) CreateEntity(value T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.order = append(em.order, id)
	em.entities[id] = value
	return id
}

// DestroyEntity marks an entity for removal (it is not removed immediately).
// Unknown IDs are ignored.
func (em *EntityManager[T]) DestroyEntity(id EntityID) {
	if _, exists := em.entities[id]; !exists {
		return
	}
	em.entitiesToDestroy[id] = struct{}{}
}

// IsMarked reports whether the entity is waiting for removal.
func (em *EntityManager[T]) IsMarked(id EntityID) bool {
	_, marked := em.entitiesToDestroy[id]
	return marked
}

// GetEntity returns the entity stored under id.
func (em *EntityManager[T]) GetEntity(id EntityID) (T, bool) {
	value, found := em.entities[id]
	return value, found
}

// RemoveMarkedEntities drops every marked entity, keeping the relative order
// of the survivors. It returns the number of removed entities.
func (em *EntityManager[T]) RemoveMarkedEntities() int {
	if len(em.entitiesToDestroy) == 0 {
		return 0
	}

	kept := em.order[:0]
	for _, id := range em.order {
		if _, marked := em.entitiesToDestroy[id]; marked {
			delete(em.entities, id)
			continue
		}
		kept = append(kept, id)
	}
	removed := len(em.order) - len(kept)
	em.order = kept
	clear(em.entitiesToDestroy)
	return removed
}

// Len returns the number of stored entities, marked ones included.
func (em *EntityManager[T]) Len() int {
	return len(em.order)
}

// Entities returns the IDs in insertion order.
// The returned slice is a copy and may be kept by the caller.
func (em *EntityManager[T]) Entities() []EntityID {
	result := make([]EntityID, len(em.order))
	copy(result, em.order)
	return result
}

// Values returns the stored values in insertion order.
func (em *EntityManager[T]) Values() []T {
	result := make([]T, 0, len(em.order))
	for _, id := range em.order {
		result = append(result, em.entities[id])
	}
	return result
}
