package model

import "sync/atomic"

// Repository owns every entity for the process lifetime. Entities are
// created at construction and never added or removed. Controllers hold
// borrowed references to their slice of the repository; the repository
// is the only place state changes.
type Repository struct {
	zones      [MaxZones]*Zone
	groups     [MaxGroups]*Group
	sources    [MaxSources]*Source
	presets    [MaxEqualizerPresets]*EqualizerPreset
	favorites  [MaxFavorites]*Favorite
	frontPanel *FrontPanel
	infrared   *Infrared
	network    *Network

	// dirty tracks un-persisted mutations for the configuration
	// controller's save trigger.
	dirty atomic.Bool
}

// NewRepository creates a repository with every field not-initialised.
func NewRepository() *Repository {
	r := &Repository{
		frontPanel: newFrontPanel(),
		infrared:   newInfrared(),
		network:    newNetwork(),
	}
	for i := range r.zones {
		r.zones[i] = newZone(i + 1)
	}
	for i := range r.groups {
		r.groups[i] = newGroup(i + 1)
	}
	for i := range r.sources {
		r.sources[i] = newSource(i + 1)
	}
	for i := range r.presets {
		r.presets[i] = newEqualizerPreset(i + 1)
	}
	for i := range r.favorites {
		r.favorites[i] = newFavorite(i + 1)
	}
	return r
}

// NewDefaultRepository creates a repository with every field set to its
// reset value, the state a factory-fresh chassis reports.
func NewDefaultRepository() *Repository {
	r := NewRepository()
	r.Reset()
	return r
}

// Zone returns the zone with the given 1-based identifier.
func (r *Repository) Zone(id int) (*Zone, Status) {
	if !ValidZoneID(id) {
		return nil, StatusOutOfRange
	}
	return r.zones[id-1], StatusSuccess
}

// Group returns the group with the given 1-based identifier.
func (r *Repository) Group(id int) (*Group, Status) {
	if !ValidGroupID(id) {
		return nil, StatusOutOfRange
	}
	return r.groups[id-1], StatusSuccess
}

// Source returns the source with the given 1-based identifier.
func (r *Repository) Source(id int) (*Source, Status) {
	if !ValidSourceID(id) {
		return nil, StatusOutOfRange
	}
	return r.sources[id-1], StatusSuccess
}

// EqualizerPreset returns the preset with the given 1-based identifier.
func (r *Repository) EqualizerPreset(id int) (*EqualizerPreset, Status) {
	if !ValidEqualizerPresetID(id) {
		return nil, StatusOutOfRange
	}
	return r.presets[id-1], StatusSuccess
}

// Favorite returns the favorite with the given 1-based identifier.
func (r *Repository) Favorite(id int) (*Favorite, Status) {
	if !ValidFavoriteID(id) {
		return nil, StatusOutOfRange
	}
	return r.favorites[id-1], StatusSuccess
}

// FrontPanel returns the front panel state.
func (r *Repository) FrontPanel() *FrontPanel { return r.frontPanel }

// Infrared returns the infrared state.
func (r *Repository) Infrared() *Infrared { return r.infrared }

// Network returns the network state.
func (r *Repository) Network() *Network { return r.network }

// ZoneByName returns the first zone with the given name. The search is
// case-sensitive and linear; the model does not enforce name uniqueness.
func (r *Repository) ZoneByName(name string) (*Zone, Status) {
	for _, z := range r.zones {
		if n, st := z.Name(); st == StatusSuccess && n == name {
			return z, StatusSuccess
		}
	}
	return nil, StatusNotFound
}

// GroupByName returns the first group with the given name.
func (r *Repository) GroupByName(name string) (*Group, Status) {
	for _, g := range r.groups {
		if n, st := g.Name(); st == StatusSuccess && n == name {
			return g, StatusSuccess
		}
	}
	return nil, StatusNotFound
}

// SourceByName returns the first source with the given name.
func (r *Repository) SourceByName(name string) (*Source, Status) {
	for _, s := range r.sources {
		if n, st := s.Name(); st == StatusSuccess && n == name {
			return s, StatusSuccess
		}
	}
	return nil, StatusNotFound
}

// Reset restores every entity to its reset value and clears the dirty
// flag. Network state is host-owned and left untouched.
func (r *Repository) Reset() {
	for _, z := range r.zones {
		z.applyDefaults()
	}
	for _, g := range r.groups {
		g.applyDefaults()
	}
	for _, s := range r.sources {
		s.applyDefaults()
	}
	for _, p := range r.presets {
		p.applyDefaults()
	}
	for _, f := range r.favorites {
		f.applyDefaults()
	}
	r.frontPanel.applyDefaults()
	r.infrared.applyDefaults()
	r.dirty.Store(false)
}

// Snapshot captures the persistable repository state.
func (r *Repository) Snapshot() State {
	var s State
	for i, z := range r.zones {
		s.Zones[i] = z.snapshot()
	}
	for i, g := range r.groups {
		s.Groups[i] = g.snapshot()
	}
	for i, src := range r.sources {
		s.Sources[i] = src.snapshot()
	}
	for i, p := range r.presets {
		s.Presets[i] = p.snapshot()
	}
	for i, f := range r.favorites {
		s.Favorites[i] = f.snapshot()
	}
	s.FrontPanel = r.frontPanel.snapshot()
	s.Infrared = r.infrared.snapshot()
	return s
}

// Restore applies a persisted snapshot and clears the dirty flag.
func (r *Repository) Restore(s State) {
	for i, z := range r.zones {
		z.restore(s.Zones[i])
	}
	for i, g := range r.groups {
		g.restore(s.Groups[i])
	}
	for i, src := range r.sources {
		src.restore(s.Sources[i])
	}
	for i, p := range r.presets {
		p.restore(s.Presets[i])
	}
	for i, f := range r.favorites {
		f.restore(s.Favorites[i])
	}
	r.frontPanel.restore(s.FrontPanel)
	r.infrared.restore(s.Infrared)
	r.dirty.Store(false)
}

// MarkDirty records an un-persisted mutation.
func (r *Repository) MarkDirty() { r.dirty.Store(true) }

// ClearDirty records a completed save.
func (r *Repository) ClearDirty() { r.dirty.Store(false) }

// IsDirty reports whether un-persisted mutations exist.
func (r *Repository) IsDirty() bool { return r.dirty.Load() }
