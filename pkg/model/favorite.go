package model

import "sync"

// Favorite is a named recall slot.
type Favorite struct {
	mu sync.Mutex

	id   int
	name cell[string]
}

// newFavorite creates the favorite with the given 1-based identifier.
func newFavorite(id int) *Favorite {
	return &Favorite{id: id}
}

// ID returns the favorite's 1-based identifier.
func (f *Favorite) ID() int { return f.id }

// Name returns the favorite name.
func (f *Favorite) Name() (string, Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name.get()
}

// SetName sets the favorite name.
func (f *Favorite) SetName(name string) Status {
	if st := validateName(name); st != StatusSuccess {
		return st
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name.put(name)
}

// applyDefaults initialises the favorite to its reset value.
func (f *Favorite) applyDefaults() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name.reset(defaultFavoriteName(f.id))
}

// snapshot captures the favorite state for persistence.
func (f *Favorite) snapshot() FavoriteState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FavoriteState{Name: f.name.snapshot()}
}

// restore applies a persisted favorite state.
func (f *Favorite) restore(s FavoriteState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name.restore(s.Name)
}
