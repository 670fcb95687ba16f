package game

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// Swarm is the ordered collection of live aliens.
//
// Insertion order is row-major grid order and is preserved for the whole
// game. After population the swarm only shrinks: MarkDestroyed flags an
// alien and Compact removes every flagged alien once the caller's scan is
// over.
type Swarm struct {
	em *ecs.EntityManager[*components.Alien]
}

// NewSwarm creates an empty swarm.
func NewSwarm() *Swarm {
	return &Swarm{em: ecs.NewEntityManager[*components.Alien]()}
}

// Add appends an alien. Only entity factories call this while populating.
func (s *Swarm) Add(alien *components.Alien) ecs.EntityID {
	return s.em.CreateEntity(alien)
}

// Len returns the number of aliens, including ones marked but not yet
// compacted.
func (s *Swarm) Len() int {
	return s.em.Len()
}

// IDs returns alien IDs in swarm order.
func (s *Swarm) IDs() []ecs.EntityID {
	return s.em.Entities()
}

// Aliens returns the aliens in swarm order.
func (s *Swarm) Aliens() []*components.Alien {
	return s.em.Values()
}

// Get returns the alien with the given ID.
func (s *Swarm) Get(id ecs.EntityID) (*components.Alien, bool) {
	return s.em.GetEntity(id)
}

// MarkDestroyed flags an alien as destroyed and schedules its removal.
// Its live bullet, if any, is released with it.
func (s *Swarm) MarkDestroyed(id ecs.EntityID) {
	alien, ok := s.em.GetEntity(id)
	if !ok {
		return
	}
	alien.Destroyed = true
	alien.Gun.Release()
	s.em.DestroyEntity(id)
}

// Compact removes every alien marked by MarkDestroyed and returns how many
// were removed.
func (s *Swarm) Compact() int {
	return s.em.RemoveMarkedEntities()
}
