package model

import "sync"

// Infrared is the remote-control receiver state.
type Infrared struct {
	mu sync.Mutex

	disabled cell[bool]
}

// newInfrared creates the infrared state.
func newInfrared() *Infrared {
	return &Infrared{}
}

// Disabled returns the disabled flag.
func (i *Infrared) Disabled() (bool, Status) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.disabled.get()
}

// SetDisabled sets the disabled flag.
func (i *Infrared) SetDisabled(disabled bool) Status {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.disabled.put(disabled)
}

// applyDefaults initialises the infrared state to its reset value.
func (i *Infrared) applyDefaults() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.disabled.reset(false)
}

// snapshot captures the infrared state for persistence.
func (i *Infrared) snapshot() InfraredState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return InfraredState{Disabled: i.disabled.snapshot()}
}

// restore applies a persisted infrared state.
func (i *Infrared) restore(s InfraredState) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.disabled.restore(s.Disabled)
}
