// internal/room/store.go
package room

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/cardtable/uno/internal/metrics"
)

// Store holds all live rooms in memory, keyed by room id. Rooms are
// created lazily on first join and torn down when their last connection
// leaves.
type Store struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	logger *logrus.Logger

	Metrics *metrics.Metrics

	// Configure is applied to every newly created room, used at startup
	// to wire the optional history/result sinks.
	Configure func(r *Room)
}

// NewStore creates an empty store.
func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		rooms:  make(map[string]*Room),
		logger: logger,
	}
}

// GetOrCreate returns the room with the given id, creating it on first
// use.
func (s *Store) GetOrCreate(id string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.rooms[id]; ok {
		return r
	}
	r := New(id, s.logger)
	r.OnEmpty = s.Delete
	r.Metrics = s.Metrics
	if s.Configure != nil {
		s.Configure(r)
	}
	s.rooms[id] = r
	s.Metrics.SetActiveRooms(len(s.rooms))
	return r
}

// Get returns the room with the given id, if it exists.
func (s *Store) Get(id string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	return r, ok
}

// Delete removes a room from the store.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	s.Metrics.SetActiveRooms(len(s.rooms))
}

// Rooms returns a snapshot of all live rooms.
func (s *Store) Rooms() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		rooms = append(rooms, r)
	}
	return rooms
}

// Count returns the number of live rooms.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}
