package service

import (
	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/subscription"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// apply folds one announced state line into the mirror repository and
// publishes the matching typed event. The amplifier is authoritative,
// so mirror statuses are not surfaced; a malformed capture is logged
// and dropped.
func (c *Client) apply(kind command.Kind, payload string, m *wire.Match) {
	ev, err := c.fold(kind, payload, m)
	if err != nil {
		c.logDropped(err.Error(), payload)
		return
	}
	if ev != nil {
		c.bus.Publish(ev)
	}
}

func (c *Client) fold(kind command.Kind, payload string, m *wire.Match) (subscription.Event, error) {
	switch kind {
	case command.KindZoneVolume:
		zone, level, err := captureTwoInts(payload, m)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetVolume(level)
		}
		return subscription.ZoneVolumeChanged{Zone: zone, Level: level}, nil

	case command.KindGroupVolume:
		group, level, err := captureTwoInts(payload, m)
		if err != nil {
			return nil, err
		}
		if g, st := c.mirror.Group(group); st.OK() {
			g.SetVolume(level)
		}
		return subscription.GroupVolumeChanged{Group: group, Level: level}, nil

	case command.KindZoneMute:
		zone, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		muted, err := command.CaptureMuteTag(payload, m, 2)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetMuted(muted)
		}
		return subscription.ZoneMuteChanged{Zone: zone, Muted: muted}, nil

	case command.KindGroupMute:
		group, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		muted, err := command.CaptureMuteTag(payload, m, 2)
		if err != nil {
			return nil, err
		}
		if g, st := c.mirror.Group(group); st.OK() {
			g.SetMuted(muted)
		}
		return subscription.GroupMuteChanged{Group: group, Muted: muted}, nil

	case command.KindZoneVolumeLock:
		zone, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		locked, err := command.CaptureBool(payload, m, 2)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetVolumeLocked(locked)
		}
		return subscription.ZoneVolumeLockChanged{Zone: zone, Locked: locked}, nil

	case command.KindZoneSource:
		zone, source, err := captureTwoInts(payload, m)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetSource(source)
		}
		return subscription.ZoneSourceChanged{Zone: zone, Source: source}, nil

	case command.KindGroupSource:
		group, source, err := captureTwoInts(payload, m)
		if err != nil {
			return nil, err
		}
		if g, st := c.mirror.Group(group); st.OK() {
			g.SetSource(source)
		}
		return subscription.GroupSourceChanged{Group: group, Source: source}, nil

	case command.KindZoneName:
		zone, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		name := command.CaptureName(payload, m, 2)
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetName(name)
		}
		return subscription.ZoneNameChanged{Zone: zone, Name: name}, nil

	case command.KindGroupName:
		group, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		name := command.CaptureName(payload, m, 2)
		if g, st := c.mirror.Group(group); st.OK() {
			g.SetName(name)
		}
		return subscription.GroupNameChanged{Group: group, Name: name}, nil

	case command.KindSourceName:
		source, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		name := command.CaptureName(payload, m, 2)
		if s, st := c.mirror.Source(source); st.OK() {
			s.SetName(name)
		}
		return subscription.SourceNameChanged{Source: source, Name: name}, nil

	case command.KindPresetName:
		preset, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		name := command.CaptureName(payload, m, 2)
		if p, st := c.mirror.EqualizerPreset(preset); st.OK() {
			p.SetName(name)
		}
		return subscription.PresetNameChanged{Preset: preset, Name: name}, nil

	case command.KindFavoriteName:
		favorite, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		name := command.CaptureName(payload, m, 2)
		if f, st := c.mirror.Favorite(favorite); st.OK() {
			f.SetName(name)
		}
		return subscription.FavoriteNameChanged{Favorite: favorite, Name: name}, nil

	case command.KindZoneBalance:
		zone, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		balance, err := command.CaptureBalance(payload, m, 2)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetBalance(balance)
		}
		return subscription.ZoneBalanceChanged{Zone: zone, Balance: balance}, nil

	case command.KindZoneTone:
		zone, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		bass, err := command.CaptureInt(payload, m, 2)
		if err != nil {
			return nil, err
		}
		treble, err := command.CaptureInt(payload, m, 3)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetTone(bass, treble)
		}
		return subscription.ZoneToneChanged{Zone: zone, Bass: bass, Treble: treble}, nil

	case command.KindZoneSoundMode:
		zone, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		mode, err := command.CaptureSoundMode(payload, m, 2)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetSoundMode(mode)
		}
		return subscription.ZoneSoundModeChanged{Zone: zone, Mode: mode}, nil

	case command.KindZoneBand:
		zone, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		band, level, err := captureIntPair(payload, m, 2, 3)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetBand(band, level)
		}
		return subscription.ZoneBandChanged{Zone: zone, Band: band, Level: level}, nil

	case command.KindZonePreset:
		zone, preset, err := captureTwoInts(payload, m)
		if err != nil {
			return nil, err
		}
		if z, st := c.mirror.Zone(zone); st.OK() {
			z.SetPreset(preset)
		}
		return subscription.ZonePresetChanged{Zone: zone, Preset: preset}, nil

	case command.KindPresetBand:
		preset, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		band, level, err := captureIntPair(payload, m, 2, 3)
		if err != nil {
			return nil, err
		}
		if p, st := c.mirror.EqualizerPreset(preset); st.OK() {
			p.SetBand(band, level)
		}
		return subscription.PresetBandChanged{Preset: preset, Band: band, Level: level}, nil

	case command.KindZoneHighpass, command.KindZoneLowpass:
		zone, hz, err := captureTwoInts(payload, m)
		if err != nil {
			return nil, err
		}
		highpass := kind == command.KindZoneHighpass
		if z, st := c.mirror.Zone(zone); st.OK() {
			if highpass {
				z.SetHighpassFrequency(hz)
			} else {
				z.SetLowpassFrequency(hz)
			}
		}
		return subscription.ZoneCrossoverChanged{Zone: zone, Highpass: highpass, Hz: hz}, nil

	case command.KindGroupAddZone:
		group, zone, err := captureTwoInts(payload, m)
		if err != nil {
			return nil, err
		}
		if g, st := c.mirror.Group(group); st.OK() {
			g.AddZone(zone)
		}
		return subscription.GroupMembershipChanged{Group: group, Added: zone}, nil

	case command.KindGroupRemoveZone:
		group, zone, err := captureTwoInts(payload, m)
		if err != nil {
			return nil, err
		}
		if g, st := c.mirror.Group(group); st.OK() {
			g.RemoveZone(zone)
		}
		return subscription.GroupMembershipChanged{Group: group, Removed: zone}, nil

	case command.KindGroupClearZones:
		group, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		if g, st := c.mirror.Group(group); st.OK() {
			g.ClearZones()
		}
		return subscription.GroupMembershipChanged{Group: group, Cleared: true}, nil

	case command.KindBrightness:
		brightness, err := command.CaptureInt(payload, m, 1)
		if err != nil {
			return nil, err
		}
		c.mirror.FrontPanel().SetBrightness(brightness)
		return subscription.BrightnessChanged{Brightness: brightness}, nil

	case command.KindPanelLock:
		locked, err := command.CaptureBool(payload, m, 1)
		if err != nil {
			return nil, err
		}
		c.mirror.FrontPanel().SetLocked(locked)
		return subscription.PanelLockChanged{Locked: locked}, nil

	case command.KindInfrared:
		disabled, err := command.CaptureBool(payload, m, 1)
		if err != nil {
			return nil, err
		}
		c.mirror.Infrared().SetDisabled(disabled)
		return subscription.InfraredChanged{Disabled: disabled}, nil

	case command.KindNetworkDHCP, command.KindNetworkSDDP:
		enabled, err := command.CaptureBool(payload, m, 1)
		if err != nil {
			return nil, err
		}
		field := subscription.NetworkDHCP
		if kind == command.KindNetworkSDDP {
			field = subscription.NetworkSDDP
		}
		net := c.mirror.Network()
		if field == subscription.NetworkDHCP {
			net.SetDHCPEnabled(enabled)
		} else {
			net.SetSDDPEnabled(enabled)
		}
		return subscription.NetworkChanged{Field: field, Flag: enabled}, nil

	case command.KindNetworkMAC, command.KindNetworkIP,
		command.KindNetworkNetmask, command.KindNetworkGateway:
		value := m.Capture(payload, 1)
		net := c.mirror.Network()
		var field subscription.NetworkField
		switch kind {
		case command.KindNetworkMAC:
			field = subscription.NetworkMAC
			net.SetMACAddress(value)
		case command.KindNetworkIP:
			field = subscription.NetworkIP
			net.SetHostIP(value)
		case command.KindNetworkNetmask:
			field = subscription.NetworkNetmask
			net.SetNetmask(value)
		case command.KindNetworkGateway:
			field = subscription.NetworkGateway
			net.SetGatewayIP(value)
		}
		return subscription.NetworkChanged{Field: field, Value: value}, nil

	case command.KindConfigWill:
		op, err := command.CaptureConfigOp(payload, m, 1)
		if err != nil {
			return nil, err
		}
		return subscription.ConfigLifecycle{Op: op, Phase: subscription.PhaseWill}, nil

	case command.KindConfigProgress:
		op, err := command.CaptureConfigOp(payload, m, 1)
		if err != nil {
			return nil, err
		}
		pct, err := command.CaptureInt(payload, m, 2)
		if err != nil {
			return nil, err
		}
		return subscription.ConfigLifecycle{Op: op, Phase: subscription.PhaseInProgress, Percent: pct}, nil

	case command.KindConfigDone:
		op, err := command.CaptureConfigOp(payload, m, 1)
		if err != nil {
			return nil, err
		}
		if m.Capture(payload, 2) == "E" {
			return subscription.ConfigLifecycle{Op: op, Phase: subscription.PhaseDidNot}, nil
		}
		return subscription.ConfigLifecycle{Op: op, Phase: subscription.PhaseDid}, nil
	}

	// Query echoes and anything else carry no state.
	return nil, nil
}

func captureTwoInts(payload string, m *wire.Match) (int, int, error) {
	return captureIntPair(payload, m, 1, 2)
}

func captureIntPair(payload string, m *wire.Match, i, j int) (int, int, error) {
	a, err := command.CaptureInt(payload, m, i)
	if err != nil {
		return 0, 0, err
	}
	b, err := command.CaptureInt(payload, m, j)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
