package model

import "fmt"

// State is the persistable snapshot of the repository. Nil pointers
// mark fields that were never initialised. The CBOR tags keep the
// backup blob compact; the blob format itself is internal to this
// implementation, only the save/load trigger protocol is contractual.
type State struct {
	Zones      [MaxZones]ZoneState                      `cbor:"1,keyasint"`
	Groups     [MaxGroups]GroupState                    `cbor:"2,keyasint"`
	Sources    [MaxSources]SourceState                  `cbor:"3,keyasint"`
	Presets    [MaxEqualizerPresets]EqualizerPresetState `cbor:"4,keyasint"`
	Favorites  [MaxFavorites]FavoriteState              `cbor:"5,keyasint"`
	FrontPanel FrontPanelState                          `cbor:"6,keyasint"`
	Infrared   InfraredState                            `cbor:"7,keyasint"`
}

// ZoneState is the persistable snapshot of one zone.
type ZoneState struct {
	Name         *string                       `cbor:"1,keyasint,omitempty"`
	Source       *int                          `cbor:"2,keyasint,omitempty"`
	Volume       *int                          `cbor:"3,keyasint,omitempty"`
	Muted        *bool                         `cbor:"4,keyasint,omitempty"`
	VolumeLocked *bool                         `cbor:"5,keyasint,omitempty"`
	Balance      *int                          `cbor:"6,keyasint,omitempty"`
	SoundMode    *SoundMode                    `cbor:"7,keyasint,omitempty"`
	ChannelMode  *ChannelMode                  `cbor:"8,keyasint,omitempty"`
	Preset       *int                          `cbor:"9,keyasint,omitempty"`
	Bands        [EqualizerBandCount]*int      `cbor:"10,keyasint"`
	Bass         *int                          `cbor:"11,keyasint,omitempty"`
	Treble       *int                          `cbor:"12,keyasint,omitempty"`
	HighpassHz   *int                          `cbor:"13,keyasint,omitempty"`
	LowpassHz    *int                          `cbor:"14,keyasint,omitempty"`
}

// GroupState is the persistable snapshot of one group.
type GroupState struct {
	Name    *string `cbor:"1,keyasint,omitempty"`
	Source  *int    `cbor:"2,keyasint,omitempty"`
	Volume  *int    `cbor:"3,keyasint,omitempty"`
	Muted   *bool   `cbor:"4,keyasint,omitempty"`
	Members []int   `cbor:"5,keyasint,omitempty"`
}

// SourceState is the persistable snapshot of one source.
type SourceState struct {
	Name *string `cbor:"1,keyasint,omitempty"`
}

// EqualizerPresetState is the persistable snapshot of one preset.
type EqualizerPresetState struct {
	Name  *string                  `cbor:"1,keyasint,omitempty"`
	Bands [EqualizerBandCount]*int `cbor:"2,keyasint"`
}

// FavoriteState is the persistable snapshot of one favorite.
type FavoriteState struct {
	Name *string `cbor:"1,keyasint,omitempty"`
}

// FrontPanelState is the persistable snapshot of the front panel.
type FrontPanelState struct {
	Brightness *int  `cbor:"1,keyasint,omitempty"`
	Locked     *bool `cbor:"2,keyasint,omitempty"`
}

// InfraredState is the persistable snapshot of the infrared receiver.
type InfraredState struct {
	Disabled *bool `cbor:"1,keyasint,omitempty"`
}

// Default entity names used on reset.

func defaultZoneName(id int) string     { return fmt.Sprintf("Zone %d", id) }
func defaultGroupName(id int) string    { return fmt.Sprintf("Group %d", id) }
func defaultSourceName(id int) string   { return fmt.Sprintf("Source %d", id) }
func defaultPresetName(id int) string   { return fmt.Sprintf("Preset %d", id) }
func defaultFavoriteName(id int) string { return fmt.Sprintf("Favorite %d", id) }
