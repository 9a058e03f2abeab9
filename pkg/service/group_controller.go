package service

import (
	"fmt"

	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/interaction"
	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// groupController owns the group forms. A group mutation does not live
// on the group alone: it expands to the current membership in ascending
// zone id, then echoes the group-level response so clients can track
// the aggregate. Volume-locked zones are skipped by volume mutations
// only.
type groupController struct {
	s *Server
}

func (c *groupController) register() {
	cm := c.s.commands
	cm.MustRegister(command.ReqGroupVolumeSet, c.volumeSet)
	cm.MustRegister(command.ReqGroupVolumeAdjust, c.volumeAdjust)
	cm.MustRegister(command.FormGroupMute, c.mute)
	cm.MustRegister(command.FormGroupSource, c.source)
	cm.MustRegister(command.FormGroupName, c.name)
	cm.MustRegister(command.FormGroupAdd, c.addZone)
	cm.MustRegister(command.FormGroupRemove, c.removeZone)
	cm.MustRegister(command.FormGroupClear, c.clearZones)
}

func (c *groupController) group(payload string, m *wire.Match) (*model.Group, error) {
	id, err := command.CaptureInt(payload, m, 1)
	if err != nil {
		return nil, err
	}
	group, st := c.s.repo.Group(id)
	if !st.OK() {
		return nil, fmt.Errorf("group %d: %s", id, st)
	}
	return group, nil
}

// memberZones resolves the membership to zone handles, ascending id.
func (c *groupController) memberZones(group *model.Group) []*model.Zone {
	members := group.Members()
	zones := make([]*model.Zone, 0, len(members))
	for _, id := range members {
		if zone, st := c.s.repo.Zone(id); st.OK() {
			zones = append(zones, zone)
		}
	}
	return zones
}

func (c *groupController) volumeSet(conn interaction.Responder, payload string, m *wire.Match) error {
	group, err := c.group(payload, m)
	if err != nil {
		return err
	}
	level, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}

	for _, zone := range c.memberZones(group) {
		if locked, st := zone.VolumeLocked(); st.OK() && locked {
			continue
		}
		if zone.SetVolume(level).Changed() {
			c.s.repo.MarkDirty()
			c.s.commands.Broadcast(fmt.Sprintf("VO%d%d", zone.ID(), level))
		}
	}
	return c.s.resolve(conn, group.SetVolume(level), fmt.Sprintf("VG%d%d", group.ID(), level))
}

func (c *groupController) volumeAdjust(conn interaction.Responder, payload string, m *wire.Match) error {
	group, err := c.group(payload, m)
	if err != nil {
		return err
	}
	delta, err := command.CaptureDelta(payload, m, 2)
	if err != nil {
		return err
	}

	for _, zone := range c.memberZones(group) {
		if locked, st := zone.VolumeLocked(); st.OK() && locked {
			continue
		}
		var level int
		var st model.Status
		if delta > 0 {
			level, st = zone.IncreaseVolume()
		} else {
			level, st = zone.DecreaseVolume()
		}
		if st.Changed() {
			c.s.repo.MarkDirty()
			c.s.commands.Broadcast(fmt.Sprintf("VO%d%d", zone.ID(), level))
		}
	}

	current, st := group.Volume()
	if !st.OK() {
		return fmt.Errorf("group %d volume: %s", group.ID(), st)
	}
	level := current + delta
	return c.s.resolve(conn, group.SetVolume(level), fmt.Sprintf("VG%d%d", group.ID(), level))
}

func (c *groupController) mute(conn interaction.Responder, payload string, m *wire.Match) error {
	group, err := c.group(payload, m)
	if err != nil {
		return err
	}
	muted, err := command.CaptureMuteTag(payload, m, 2)
	if err != nil {
		return err
	}

	tag := muteTag(muted)
	for _, zone := range c.memberZones(group) {
		if zone.SetMuted(muted).Changed() {
			c.s.repo.MarkDirty()
			c.s.commands.Broadcast(fmt.Sprintf("VMO%d%s", zone.ID(), tag))
		}
	}
	return c.s.resolve(conn, group.SetMuted(muted), payload)
}

func (c *groupController) source(conn interaction.Responder, payload string, m *wire.Match) error {
	group, err := c.group(payload, m)
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

	for _, zone := range c.memberZones(group) {
		if zone.SetSource(source).Changed() {
			c.s.repo.MarkDirty()
			c.s.commands.Broadcast(fmt.Sprintf("CO%dI%d", zone.ID(), source))
		}
	}
	return c.s.resolve(conn, group.SetSource(source), payload)
}

func (c *groupController) name(conn interaction.Responder, payload string, m *wire.Match) error {
	group, err := c.group(payload, m)
	if err != nil {
		return err
	}
	name := model.TruncateName(command.CaptureName(payload, m, 2))
	echo := fmt.Sprintf("NG%d%s", group.ID(), command.QuoteName(name))
	return c.s.resolve(conn, group.SetName(name), echo)
}

// Membership mutations do not touch zone state.

func (c *groupController) addZone(conn interaction.Responder, payload string, m *wire.Match) error {
	group, err := c.group(payload, m)
	if err != nil {
		return err
	}
	zone, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, group.AddZone(zone), payload)
}

func (c *groupController) removeZone(conn interaction.Responder, payload string, m *wire.Match) error {
	group, err := c.group(payload, m)
	if err != nil {
		return err
	}
	zone, err := command.CaptureInt(payload, m, 2)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, group.RemoveZone(zone), payload)
}

func (c *groupController) clearZones(conn interaction.Responder, payload string, m *wire.Match) error {
	group, err := c.group(payload, m)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, group.ClearZones(), payload)
}
