package heroapi

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"heroes/internal/domain"
)

// firstID is assigned to the first hero created in an empty store.
const firstID domain.HeroID = 11

var (
	// ErrNotFound is returned when no hero has the requested id.
	ErrNotFound = errors.New("hero not found")
	// ErrConflict is returned when creating a hero whose id is already taken.
	ErrConflict = errors.New("hero id already exists")
)

// Store is an in-memory hero table, safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	heroes map[domain.HeroID]domain.Hero
}

// NewStore returns a store holding seed.
func NewStore(seed []domain.Hero) *Store {
	s := &Store{heroes: make(map[domain.HeroID]domain.Hero, len(seed))}
	for _, h := range seed {
		s.heroes[h.ID] = h
	}
	return s
}

// List returns heroes ordered by id. A non-empty name keeps only heroes whose
// name contains it, ignoring case.
func (s *Store) List(name string) []domain.Hero {
	needle := strings.ToLower(name)

	s.mu.RLock()
	out := make([]domain.Hero, 0, len(s.heroes))
	for _, h := range s.heroes {
		if needle == "" || strings.Contains(strings.ToLower(h.Name), needle) {
			out = append(out, h)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Get(id domain.HeroID) (domain.Hero, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.heroes[id]
	if !ok {
		return domain.Hero{}, ErrNotFound
	}
	return h, nil
}

// Create stores h. A zero id is replaced with the next free one.
func (s *Store) Create(h domain.Hero) (domain.Hero, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h.ID == 0 {
		h.ID = s.nextID()
	} else if _, ok := s.heroes[h.ID]; ok {
		return domain.Hero{}, ErrConflict
	}
	s.heroes[h.ID] = h
	return h, nil
}

func (s *Store) Update(h domain.Hero) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.heroes[h.ID]; !ok {
		return ErrNotFound
	}
	s.heroes[h.ID] = h
	return nil
}

func (s *Store) Delete(id domain.HeroID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.heroes[id]; !ok {
		return ErrNotFound
	}
	delete(s.heroes, id)
	return nil
}

// nextID must be called with mu held.
func (s *Store) nextID() domain.HeroID {
	if len(s.heroes) == 0 {
		return firstID
	}
	var highest domain.HeroID
	for id := range s.heroes {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}
