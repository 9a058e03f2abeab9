package subscription

import (
	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/model"
)

// Event is a typed state-change notification. The concrete types below
// are the full set of observable changes.
type Event interface {
	event()
}

// Zone events.

type ZoneVolumeChanged struct {
	Zone  int
	Level int
}

type ZoneMuteChanged struct {
	Zone  int
	Muted bool
}

type ZoneVolumeLockChanged struct {
	Zone   int
	Locked bool
}

type ZoneSourceChanged struct {
	Zone   int
	Source int
}

type ZoneNameChanged struct {
	Zone int
	Name string
}

type ZoneBalanceChanged struct {
	Zone    int
	Balance int
}

type ZoneToneChanged struct {
	Zone   int
	Bass   int
	Treble int
}

type ZoneSoundModeChanged struct {
	Zone int
	Mode model.SoundMode
}

type ZoneBandChanged struct {
	Zone  int
	Band  int
	Level int
}

type ZonePresetChanged struct {
	Zone   int
	Preset int
}

// ZoneCrossoverChanged reports a highpass or lowpass frequency change.
type ZoneCrossoverChanged struct {
	Zone     int
	Highpass bool
	Hz       int
}

// Group events.

type GroupVolumeChanged struct {
	Group int
	Level int
}

type GroupMuteChanged struct {
	Group int
	Muted bool
}

type GroupSourceChanged struct {
	Group  int
	Source int
}

type GroupNameChanged struct {
	Group int
	Name  string
}

// GroupMembershipChanged reports one membership mutation. Exactly one
// of Added, Removed or Cleared is meaningful.
type GroupMembershipChanged struct {
	Group   int
	Added   int
	Removed int
	Cleared bool
}

// Other entities.

type SourceNameChanged struct {
	Source int
	Name   string
}

type PresetNameChanged struct {
	Preset int
	Name   string
}

type PresetBandChanged struct {
	Preset int
	Band   int
	Level  int
}

type FavoriteNameChanged struct {
	Favorite int
	Name     string
}

type BrightnessChanged struct {
	Brightness int
}

type PanelLockChanged struct {
	Locked bool
}

type InfraredChanged struct {
	Disabled bool
}

// NetworkField identifies one network state line.
type NetworkField uint8

const (
	NetworkDHCP NetworkField = iota
	NetworkSDDP
	NetworkMAC
	NetworkIP
	NetworkNetmask
	NetworkGateway
)

// String returns the field name.
func (f NetworkField) String() string {
	switch f {
	case NetworkDHCP:
		return "DHCP"
	case NetworkSDDP:
		return "SDDP"
	case NetworkMAC:
		return "MAC"
	case NetworkIP:
		return "IP"
	case NetworkNetmask:
		return "NETMASK"
	case NetworkGateway:
		return "GATEWAY"
	default:
		return "UNKNOWN"
	}
}

// NetworkChanged reports one network state line. Flag carries the
// value for DHCP/SDDP, Value for the address fields.
type NetworkChanged struct {
	Field NetworkField
	Flag  bool
	Value string
}

// LifecyclePhase is the position within a configuration operation.
type LifecyclePhase uint8

const (
	PhaseWill LifecyclePhase = iota
	PhaseInProgress
	PhaseDid
	PhaseDidNot
)

// String returns the phase name.
func (p LifecyclePhase) String() string {
	switch p {
	case PhaseWill:
		return "WILL"
	case PhaseInProgress:
		return "IN_PROGRESS"
	case PhaseDid:
		return "DID"
	case PhaseDidNot:
		return "DID_NOT"
	default:
		return "UNKNOWN"
	}
}

// ConfigLifecycle reports one configuration lifecycle notification.
// Percent is meaningful in PhaseInProgress only.
type ConfigLifecycle struct {
	Op      command.ConfigOp
	Phase   LifecyclePhase
	Percent int
}

func (ZoneVolumeChanged) event()      {}
func (ZoneMuteChanged) event()        {}
func (ZoneVolumeLockChanged) event()  {}
func (ZoneSourceChanged) event()      {}
func (ZoneNameChanged) event()        {}
func (ZoneBalanceChanged) event()     {}
func (ZoneToneChanged) event()        {}
func (ZoneSoundModeChanged) event()   {}
func (ZoneBandChanged) event()        {}
func (ZonePresetChanged) event()      {}
func (ZoneCrossoverChanged) event()   {}
func (GroupVolumeChanged) event()     {}
func (GroupMuteChanged) event()       {}
func (GroupSourceChanged) event()     {}
func (GroupNameChanged) event()       {}
func (GroupMembershipChanged) event() {}
func (SourceNameChanged) event()      {}
func (PresetNameChanged) event()      {}
func (PresetBandChanged) event()      {}
func (FavoriteNameChanged) event()    {}
func (BrightnessChanged) event()      {}
func (PanelLockChanged) event()       {}
func (InfraredChanged) event()        {}
func (NetworkChanged) event()         {}
func (ConfigLifecycle) event()        {}
