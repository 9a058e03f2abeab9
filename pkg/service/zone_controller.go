package service

import (
	"fmt"

	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/interaction"
	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// zoneController owns every per-zone request form.
type zoneController struct {
	s *Server
}

func (c *zoneController) register() {
	cm := c.s.commands
	cm.MustRegister(command.ReqQueryZone, c.query)
	cm.MustRegister(command.ReqZoneVolumeSet, c.volumeSet)
	cm.MustRegister(command.ReqZoneVolumeAdjust, c.volumeAdjust)
	cm.MustRegister(command.FormZoneMute, c.mute)
	cm.MustRegister(command.FormZoneVolumeLock, c.volumeLock)
	cm.MustRegister(command.FormZoneSource, c.source)
	cm.MustRegister(command.FormZoneName, c.name)
	cm.MustRegister(command.FormZoneBalance, c.balance)
	cm.MustRegister(command.FormZoneTone, c.tone)
	cm.MustRegister(command.FormZoneSoundMode, c.soundMode)
	cm.MustRegister(command.ReqZoneBandAdjust, c.bandAdjust)
	cm.MustRegister(command.FormZoneBand, c.bandSet)
	cm.MustRegister(command.FormZonePreset, c.preset)
	cm.MustRegister(command.FormZoneHighpass, c.highpass)
	cm.MustRegister(command.FormZoneLowpass, c.lowpass)
}

func (c *zoneController) zone(payload string, m *wire.Match) (*model.Zone, error) {
	id, err := command.CaptureInt(payload, m, 1)
	if err != nil {
		return nil, err
	}
	zone, st := c.s.repo.Zone(id)
	if !st.OK() {
		return nil, fmt.Errorf("zone %d: %s", id, st)
	}
	return zone, nil
}

func (c *zoneController) volumeSet(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	level, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetVolume(level), fmt.Sprintf("VO%d%d", zone.ID(), level))
}

func (c *zoneController) volumeAdjust(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	delta, err := command.CaptureDelta(payload, m, 2)
	if err != nil {
		return err
	}

	var level int
	var st model.Status
	if delta > 0 {
		level, st = zone.IncreaseVolume()
	} else {
		level, st = zone.DecreaseVolume()
	}
	return c.s.resolve(conn, st, fmt.Sprintf("VO%d%d", zone.ID(), level))
}

func (c *zoneController) mute(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	muted, err := command.CaptureMuteTag(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetMuted(muted), payload)
}

func (c *zoneController) volumeLock(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	locked, err := command.CaptureBool(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetVolumeLocked(locked), payload)
}

func (c *zoneController) source(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	source, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	if !model.ValidSourceID(source) {
		return fmt.Errorf("source %d: %s", source, model.StatusOutOfRange)
	}
	return c.s.resolve(conn, zone.SetSource(source), payload)
}

func (c *zoneController) name(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	name := model.TruncateName(command.CaptureName(payload, m, 2))
	echo := fmt.Sprintf("NO%d%s", zone.ID(), command.QuoteName(name))
	return c.s.resolve(conn, zone.SetName(name), echo)
}

func (c *zoneController) balance(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	balance, err := command.CaptureBalance(payload, m, 2)
	if err != nil {
		return err
	}
	tag, err := command.FormatBalance(balance)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetBalance(balance), fmt.Sprintf("BO%d%s", zone.ID(), tag))
}

func (c *zoneController) tone(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	bass, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	treble, err := command.CaptureInt(payload, m, 3)
	if err != nil {
		return err
	}
	echo := fmt.Sprintf("TO%dB%dT%d", zone.ID(), bass, treble)
	return c.s.resolve(conn, zone.SetTone(bass, treble), echo)
}

func (c *zoneController) soundMode(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	mode, err := command.CaptureSoundMode(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetSoundMode(mode), payload)
}

func (c *zoneController) bandAdjust(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	band, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	delta, err := command.CaptureDelta(payload, m, 3)
	if err != nil {
		return err
	}
	level, st := zone.AdjustBand(band, delta)
	return c.s.resolve(conn, st, fmt.Sprintf("EO%dB%dL%d", zone.ID(), band, level))
}

func (c *zoneController) bandSet(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	band, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	level, err := command.CaptureInt(payload, m, 3)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetBand(band, level), payload)
}

func (c *zoneController) preset(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	preset, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetPreset(preset), payload)
}

func (c *zoneController) highpass(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	hz, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetHighpassFrequency(hz), payload)
}

func (c *zoneController) lowpass(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}
	hz, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, zone.SetLowpassFrequency(hz), payload)
}

// query answers with the zone's state lines, then echoes the query
// payload to close the reply. Query replies go to the initiator only.
func (c *zoneController) query(conn interaction.Responder, payload string, m *wire.Match) error {
	zone, err := c.zone(payload, m)
	if err != nil {
		return err
	}

	id := zone.ID()
	if name, st := zone.Name(); st.OK() {
		conn.SendResponse(fmt.Sprintf("NO%d%s", id, command.QuoteName(name)))
	}
	if source, st := zone.Source(); st.OK() {
		conn.SendResponse(fmt.Sprintf("CO%dI%d", id, source))
	}
	if level, st := zone.Volume(); st.OK() {
		conn.SendResponse(fmt.Sprintf("VO%d%d", id, level))
	}
	if muted, st := zone.Muted(); st.OK() {
		conn.SendResponse(fmt.Sprintf("VMO%d%s", id, muteTag(muted)))
	}
	if locked, st := zone.VolumeLocked(); st.OK() {
		conn.SendResponse(fmt.Sprintf("VLO%d%s", id, boolTag(locked)))
	}
	if balance, st := zone.Balance(); st.OK() {
		if tag, err := command.FormatBalance(balance); err == nil {
			conn.SendResponse(fmt.Sprintf("BO%d%s", id, tag))
		}
	}
	if bass, treble, st := zone.Tone(); st.OK() {
		conn.SendResponse(fmt.Sprintf("TO%dB%dT%d", id, bass, treble))
	}
	if mode, st := zone.SoundModeState(); st.OK() {
		conn.SendResponse(fmt.Sprintf("SMO%d%d", id, mode))
	}
	if preset, st := zone.Preset(); st.OK() {
		conn.SendResponse(fmt.Sprintf("EO%dP%d", id, preset))
	}
	for band := 1; band <= model.EqualizerBandCount; band++ {
		if level, st := zone.Band(band); st.OK() {
			conn.SendResponse(fmt.Sprintf("EO%dB%dL%d", id, band, level))
		}
	}
	if hz, st := zone.HighpassFrequency(); st.OK() {
		conn.SendResponse(fmt.Sprintf("HO%dF%d", id, hz))
	}
	if hz, st := zone.LowpassFrequency(); st.OK() {
		conn.SendResponse(fmt.Sprintf("LO%dF%d", id, hz))
	}
	return conn.SendResponse(payload)
}

func muteTag(muted bool) string {
	if muted {
		return "M"
	}
	return "U"
}

func boolTag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
