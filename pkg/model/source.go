package model

import "sync"

// Source is a selectable input (line input, streamer, and so on).
type Source struct {
	mu sync.Mutex

	id   int
	name cell[string]
}

// newSource creates the source with the given 1-based identifier.
func newSource(id int) *Source {
	return &Source{id: id}
}

// ID returns the source's 1-based identifier.
func (s *Source) ID() int { return s.id }

// Name returns the source name.
func (s *Source) Name() (string, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name.get()
}

// SetName sets the source name.
func (s *Source) SetName(name string) Status {
	if st := validateName(name); st != StatusSuccess {
		return st
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name.put(name)
}

// applyDefaults initialises the source to its reset value.
func (s *Source) applyDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name.reset(defaultSourceName(s.id))
}

// snapshot captures the source state for persistence.
func (s *Source) snapshot() SourceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SourceState{Name: s.name.snapshot()}
}

// restore applies a persisted source state.
func (s *Source) restore(state SourceState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name.restore(state.Name)
}
