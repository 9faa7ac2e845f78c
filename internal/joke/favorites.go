package joke

import "sync"

// Favorites is an ordered, duplicate-free list of jokes. Values are treated
// as immutable; With returns a new list.
type Favorites []Joke

// Contains reports whether j is already in the list.
func (f Favorites) Contains(j Joke) bool {
	for _, existing := range f {
		if existing == j {
			return true
		}
	}
	return false
}

// Len returns the number of favorites.
func (f Favorites) Len() int {
	return len(f)
}

// Slice returns a copy of the underlying jokes.
func (f Favorites) Slice() []Joke {
	if len(f) == 0 {
		return nil
	}
	out := make([]Joke, len(f))
	copy(out, f)
	return out
}

// With returns a copy of f with j appended. The bool is false and f is
// returned unchanged when j is already present.
func (f Favorites) With(j Joke) (Favorites, bool) {
	if f.Contains(j) {
		return f, false
	}
	out := make(Favorites, len(f), len(f)+1)
	copy(out, f)
	return append(out, j), true
}

// FavoriteStore holds the favorites collection for the controller.
type FavoriteStore interface {
	Favorites() Favorites
	Add(j Joke) bool
}

// MemoryStore keeps favorites for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	items Favorites
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Favorites returns a snapshot of the stored jokes.
func (s *MemoryStore) Favorites() Favorites {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Favorites(s.items.Slice())
}

// Add appends j unless it is already stored and reports whether it did.
func (s *MemoryStore) Add(j Joke) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, added := s.items.With(j)
	s.items = next
	return added
}
