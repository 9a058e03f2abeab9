package model

import (
	"sort"
	"sync"
)

// Group is a named set of zones treated as a unit for mutations. It is
// not an independent audio entity: the wire protocol never addresses a
// group directly for audio state, the group controller expands each
// mutation to the member zones. The group still records its own
// aggregate volume, mute, and source so observers can track it.
type Group struct {
	mu sync.Mutex

	id int

	name    cell[string]
	source  cell[int]
	volume  cell[int]
	muted   cell[bool]
	members []int // ascending zone ids
}

// newGroup creates the group with the given 1-based identifier.
func newGroup(id int) *Group {
	return &Group{id: id}
}

// ID returns the group's 1-based identifier.
func (g *Group) ID() int { return g.id }

// Name returns the group name.
func (g *Group) Name() (string, Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.name.get()
}

// SetName sets the group name.
func (g *Group) SetName(name string) Status {
	if st := validateName(name); st != StatusSuccess {
		return st
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.name.put(name)
}

// Source returns the group's aggregate source selection.
func (g *Group) Source() (int, Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.source.get()
}

// SetSource records the group's aggregate source selection.
func (g *Group) SetSource(sourceID int) Status {
	if !ValidSourceID(sourceID) {
		return StatusOutOfRange
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.source.put(sourceID)
}

// Volume returns the group's aggregate volume level.
func (g *Group) Volume() (int, Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.volume.get()
}

// SetVolume records the group's aggregate volume level.
func (g *Group) SetVolume(level int) Status {
	if level < VolumeMin || level > VolumeMax {
		return StatusOutOfRange
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.volume.put(level)
}

// Muted returns the group's aggregate mute state.
func (g *Group) Muted() (bool, Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.muted.get()
}

// SetMuted records the group's aggregate mute state.
func (g *Group) SetMuted(muted bool) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.muted.put(muted)
}

// Members returns the membership as an ascending slice of zone ids.
// The returned slice is a copy.
func (g *Group) Members() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]int, len(g.members))
	copy(out, g.members)
	return out
}

// ContainsZone reports whether the zone is a member.
func (g *Group) ContainsZone(zoneID int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.indexOf(zoneID) >= 0
}

// AddZone adds a zone to the membership. Adding a present member
// returns StatusAlreadySet. Membership stays sorted for stable
// serialisation.
func (g *Group) AddZone(zoneID int) Status {
	if !ValidZoneID(zoneID) {
		return StatusOutOfRange
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.indexOf(zoneID) >= 0 {
		return StatusAlreadySet
	}
	g.members = append(g.members, zoneID)
	sort.Ints(g.members)
	return StatusSuccess
}

// RemoveZone removes a zone from the membership. Removing an absent
// zone returns StatusNotFound.
func (g *Group) RemoveZone(zoneID int) Status {
	if !ValidZoneID(zoneID) {
		return StatusOutOfRange
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	i := g.indexOf(zoneID)
	if i < 0 {
		return StatusNotFound
	}
	g.members = append(g.members[:i], g.members[i+1:]...)
	return StatusSuccess
}

// ClearZones removes every member. Clearing an empty membership
// returns StatusAlreadySet.
func (g *Group) ClearZones() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.members) == 0 {
		return StatusAlreadySet
	}
	g.members = nil
	return StatusSuccess
}

// indexOf returns the index of zoneID in the sorted membership, or -1.
// Caller holds the lock.
func (g *Group) indexOf(zoneID int) int {
	i := sort.SearchInts(g.members, zoneID)
	if i < len(g.members) && g.members[i] == zoneID {
		return i
	}
	return -1
}

// applyDefaults initialises every field to its reset value. Default
// membership is empty.
func (g *Group) applyDefaults() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.name.reset(defaultGroupName(g.id))
	g.source.reset(1)
	g.volume.reset(VolumeDefault)
	g.muted.reset(true)
	g.members = nil
}

// snapshot captures the group state for persistence.
func (g *Group) snapshot() GroupState {
	g.mu.Lock()
	defer g.mu.Unlock()
	members := make([]int, len(g.members))
	copy(members, g.members)
	return GroupState{
		Name:    g.name.snapshot(),
		Source:  g.source.snapshot(),
		Volume:  g.volume.snapshot(),
		Muted:   g.muted.snapshot(),
		Members: members,
	}
}

// restore applies a persisted group state.
func (g *Group) restore(s GroupState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.name.restore(s.Name)
	g.source.restore(s.Source)
	g.volume.restore(s.Volume)
	g.muted.restore(s.Muted)
	g.members = make([]int, len(s.Members))
	copy(g.members, s.Members)
	sort.Ints(g.members)
}
