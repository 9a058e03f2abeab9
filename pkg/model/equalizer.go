package model

import "sync"

// EqualizerPreset is a named tuple of band levels applicable to any
// zone operating in preset-equalizer sound mode.
type EqualizerPreset struct {
	mu sync.Mutex

	id    int
	name  cell[string]
	bands [EqualizerBandCount]cell[int]
}

// newEqualizerPreset creates the preset with the given 1-based identifier.
func newEqualizerPreset(id int) *EqualizerPreset {
	return &EqualizerPreset{id: id}
}

// ID returns the preset's 1-based identifier.
func (p *EqualizerPreset) ID() int { return p.id }

// Name returns the preset name.
func (p *EqualizerPreset) Name() (string, Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name.get()
}

// SetName sets the preset name.
func (p *EqualizerPreset) SetName(name string) Status {
	if st := validateName(name); st != StatusSuccess {
		return st
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name.put(name)
}

// Band returns the level of the given 1-based band.
func (p *EqualizerPreset) Band(band int) (int, Status) {
	if !ValidBandID(band) {
		return 0, StatusOutOfRange
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bands[band-1].get()
}

// SetBand sets the level of the given 1-based band. Levels outside the
// band model are refused with StatusOutOfRange.
func (p *EqualizerPreset) SetBand(band, level int) Status {
	if !ValidBandID(band) {
		return StatusOutOfRange
	}
	if level < -EqualizerBandMax || level > EqualizerBandMax {
		return StatusOutOfRange
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bands[band-1].put(level)
}

// AdjustBand moves a band level one step and returns the new level.
// At either extreme it refuses with StatusOutOfRange.
func (p *EqualizerPreset) AdjustBand(band, delta int) (int, Status) {
	if !ValidBandID(band) {
		return 0, StatusOutOfRange
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	current, st := p.bands[band-1].get()
	if st != StatusSuccess {
		return 0, st
	}
	level := current + delta
	if level < -EqualizerBandMax || level > EqualizerBandMax {
		return current, StatusOutOfRange
	}
	return level, p.bands[band-1].put(level)
}

// applyDefaults initialises the preset to its reset value (flat bands).
func (p *EqualizerPreset) applyDefaults() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name.reset(defaultPresetName(p.id))
	for i := range p.bands {
		p.bands[i].reset(0)
	}
}

// snapshot captures the preset state for persistence.
func (p *EqualizerPreset) snapshot() EqualizerPresetState {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := EqualizerPresetState{Name: p.name.snapshot()}
	for i := range p.bands {
		s.Bands[i] = p.bands[i].snapshot()
	}
	return s
}

// restore applies a persisted preset state.
func (p *EqualizerPreset) restore(s EqualizerPresetState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name.restore(s.Name)
	for i := range p.bands {
		p.bands[i].restore(s.Bands[i])
	}
}
