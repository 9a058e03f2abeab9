package service

import (
	"fmt"

	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/interaction"
	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// sourceController owns the source name form.
type sourceController struct {
	s *Server
}

func (c *sourceController) register() {
	c.s.commands.MustRegister(command.FormSourceName, c.name)
}

func (c *sourceController) name(conn interaction.Responder, payload string, m *wire.Match) error {
	id, err := command.CaptureInt(payload, m, 1)
	if err != nil {
		return err
	}
	source, st := c.s.repo.Source(id)
	if !st.OK() {
		return fmt.Errorf("source %d: %s", id, st)
	}
	name := model.TruncateName(command.CaptureName(payload, m, 2))
	echo := fmt.Sprintf("NI%d%s", id, command.QuoteName(name))
	return c.s.resolve(conn, source.SetName(name), echo)
}

// presetController owns the equalizer preset forms.
type presetController struct {
	s *Server
}

func (c *presetController) register() {
	cm := c.s.commands
	cm.MustRegister(command.ReqQueryPreset, c.query)
	cm.MustRegister(command.FormPresetName, c.name)
	cm.MustRegister(command.ReqPresetBandAdjust, c.bandAdjust)
	cm.MustRegister(command.FormPresetBand, c.bandSet)
}

func (c *presetController) preset(payload string, m *wire.Match) (*model.EqualizerPreset, error) {
	id, err := command.CaptureInt(payload, m, 1)
	if err != nil {
		return nil, err
	}
	preset, st := c.s.repo.EqualizerPreset(id)
	if !st.OK() {
		return nil, fmt.Errorf("preset %d: %s", id, st)
	}
	return preset, nil
}

func (c *presetController) name(conn interaction.Responder, payload string, m *wire.Match) error {
	preset, err := c.preset(payload, m)
	if err != nil {
		return err
	}
	name := model.TruncateName(command.CaptureName(payload, m, 2))
	echo := fmt.Sprintf("NEP%d%s", preset.ID(), command.QuoteName(name))
	return c.s.resolve(conn, preset.SetName(name), echo)
}

func (c *presetController) bandAdjust(conn interaction.Responder, payload string, m *wire.Match) error {
	preset, err := c.preset(payload, m)
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
	level, st := preset.AdjustBand(band, delta)
	return c.s.resolve(conn, st, fmt.Sprintf("EP%dB%dL%d", preset.ID(), band, level))
}

func (c *presetController) bandSet(conn interaction.Responder, payload string, m *wire.Match) error {
	preset, err := c.preset(payload, m)
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
	return c.s.resolve(conn, preset.SetBand(band, level), payload)
}

func (c *presetController) query(conn interaction.Responder, payload string, m *wire.Match) error {
	preset, err := c.preset(payload, m)
	if err != nil {
		return err
	}

	id := preset.ID()
	if name, st := preset.Name(); st.OK() {
		conn.SendResponse(fmt.Sprintf("NEP%d%s", id, command.QuoteName(name)))
	}
	for band := 1; band <= model.EqualizerBandCount; band++ {
		if level, st := preset.Band(band); st.OK() {
			conn.SendResponse(fmt.Sprintf("EP%dB%dL%d", id, band, level))
		}
	}
	return conn.SendResponse(payload)
}

// favoriteController owns the favorite forms.
type favoriteController struct {
	s *Server
}

func (c *favoriteController) register() {
	cm := c.s.commands
	cm.MustRegister(command.ReqQueryFavorite, c.query)
	cm.MustRegister(command.FormFavoriteName, c.name)
}

func (c *favoriteController) favorite(payload string, m *wire.Match) (*model.Favorite, error) {
	id, err := command.CaptureInt(payload, m, 1)
	if err != nil {
		return nil, err
	}
	favorite, st := c.s.repo.Favorite(id)
	if !st.OK() {
		return nil, fmt.Errorf("favorite %d: %s", id, st)
	}
	return favorite, nil
}

func (c *favoriteController) name(conn interaction.Responder, payload string, m *wire.Match) error {
	favorite, err := c.favorite(payload, m)
	if err != nil {
		return err
	}
	name := model.TruncateName(command.CaptureName(payload, m, 2))
	echo := fmt.Sprintf("NF%d%s", favorite.ID(), command.QuoteName(name))
	return c.s.resolve(conn, favorite.SetName(name), echo)
}

func (c *favoriteController) query(conn interaction.Responder, payload string, m *wire.Match) error {
	favorite, err := c.favorite(payload, m)
	if err != nil {
		return err
	}
	if name, st := favorite.Name(); st.OK() {
		conn.SendResponse(fmt.Sprintf("NF%d%s", favorite.ID(), command.QuoteName(name)))
	}
	return conn.SendResponse(payload)
}

// frontPanelController owns brightness and panel lock.
type frontPanelController struct {
	s *Server
}

func (c *frontPanelController) register() {
	cm := c.s.commands
	cm.MustRegister(command.FormBrightness, c.brightness)
	cm.MustRegister(command.FormPanelLock, c.lock)
	cm.MustRegister(command.ReqQueryBright, c.queryBrightness)
	cm.MustRegister(command.ReqQueryPanelLock, c.queryLock)
}

func (c *frontPanelController) brightness(conn interaction.Responder, payload string, m *wire.Match) error {
	brightness, err := command.CaptureInt(payload, m, 1)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, c.s.repo.FrontPanel().SetBrightness(brightness), payload)
}

func (c *frontPanelController) lock(conn interaction.Responder, payload string, m *wire.Match) error {
	locked, err := command.CaptureBool(payload, m, 1)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, c.s.repo.FrontPanel().SetLocked(locked), payload)
}

func (c *frontPanelController) queryBrightness(conn interaction.Responder, payload string, m *wire.Match) error {
	if brightness, st := c.s.repo.FrontPanel().Brightness(); st.OK() {
		conn.SendResponse(fmt.Sprintf("SD%d", brightness))
	}
	return conn.SendResponse(payload)
}

func (c *frontPanelController) queryLock(conn interaction.Responder, payload string, m *wire.Match) error {
	if locked, st := c.s.repo.FrontPanel().Locked(); st.OK() {
		conn.SendResponse("FPL" + boolTag(locked))
	}
	return conn.SendResponse(payload)
}

// infraredController owns the infrared disable flag. The query reply is
// the bare state notification with no query echo.
type infraredController struct {
	s *Server
}

func (c *infraredController) register() {
	cm := c.s.commands
	cm.MustRegister(command.FormInfrared, c.set)
	cm.MustRegister(command.ReqQueryInfrared, c.query)
}

func (c *infraredController) set(conn interaction.Responder, payload string, m *wire.Match) error {
	disabled, err := command.CaptureBool(payload, m, 1)
	if err != nil {
		return err
	}
	return c.s.resolve(conn, c.s.repo.Infrared().SetDisabled(disabled), payload)
}

func (c *infraredController) query(conn interaction.Responder, payload string, m *wire.Match) error {
	disabled, st := c.s.repo.Infrared().Disabled()
	if !st.OK() {
		return fmt.Errorf("infrared: %s", st)
	}
	return conn.SendResponse("IRL" + boolTag(disabled))
}

// networkController answers the network state query. The network block
// is read-only on the control plane.
type networkController struct {
	s *Server
}

func (c *networkController) register() {
	c.s.commands.MustRegister(command.ReqQueryNetwork, c.query)
}

func (c *networkController) query(conn interaction.Responder, payload string, m *wire.Match) error {
	net := c.s.repo.Network()
	if enabled, st := net.DHCPEnabled(); st.OK() {
		conn.SendResponse("EDHCP" + boolTag(enabled))
	}
	if enabled, st := net.SDDPEnabled(); st.OK() {
		conn.SendResponse("ESDDP" + boolTag(enabled))
	}
	if mac, st := net.MACAddress(); st.OK() {
		conn.SendResponse("EMAC" + mac)
	}
	if ip, st := net.HostIP(); st.OK() {
		conn.SendResponse("EIP" + ip)
	}
	if mask, st := net.Netmask(); st.OK() {
		conn.SendResponse("ENM" + mask)
	}
	if gw, st := net.GatewayIP(); st.OK() {
		conn.SendResponse("EGW" + gw)
	}
	return conn.SendResponse(payload)
}
