package service

import (
	"context"
	"fmt"

	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/interaction"
	"github.com/hlx-protocol/hlx-go/pkg/model"
)

// Typed operations. Each submits one exchange and folds the completed
// response into the mirror before returning. The response to the
// initiator is the same broadcast line every other client sees.

func (c *Client) submit(ctx context.Context, req command.Request) (interaction.Result, error) {
	res, err := c.exchanges.Submit(ctx, req)
	if err != nil {
		return res, err
	}
	c.apply(res.Kind, res.Payload, res.Match)
	return res, nil
}

// submitLevel runs an exchange whose response carries the new level in
// capture 2.
func (c *Client) submitLevel(ctx context.Context, req command.Request) (int, error) {
	res, err := c.submit(ctx, req)
	if err != nil {
		return 0, err
	}
	return command.CaptureInt(res.Payload, res.Match, 2)
}

// Zone operations.

func (c *Client) SetZoneVolume(ctx context.Context, zone, level int) (int, error) {
	return c.submitLevel(ctx, command.SetZoneVolume(zone, level))
}

func (c *Client) ZoneVolumeUp(ctx context.Context, zone int) (int, error) {
	return c.submitLevel(ctx, command.ZoneVolumeUp(zone))
}

func (c *Client) ZoneVolumeDown(ctx context.Context, zone int) (int, error) {
	return c.submitLevel(ctx, command.ZoneVolumeDown(zone))
}

func (c *Client) SetZoneMuted(ctx context.Context, zone int, muted bool) error {
	_, err := c.submit(ctx, command.SetZoneMuted(zone, muted))
	return err
}

func (c *Client) SetZoneVolumeLocked(ctx context.Context, zone int, locked bool) error {
	_, err := c.submit(ctx, command.SetZoneVolumeLocked(zone, locked))
	return err
}

func (c *Client) SetZoneSource(ctx context.Context, zone, source int) error {
	_, err := c.submit(ctx, command.SetZoneSource(zone, source))
	return err
}

// SetZoneName returns the name as the amplifier stored it, which may be
// a truncation of the requested name.
func (c *Client) SetZoneName(ctx context.Context, zone int, name string) (string, error) {
	res, err := c.submit(ctx, command.SetZoneName(zone, name))
	if err != nil {
		return "", err
	}
	return command.CaptureName(res.Payload, res.Match, 2), nil
}

func (c *Client) SetZoneBalance(ctx context.Context, zone, balance int) error {
	req, err := command.SetZoneBalance(zone, balance)
	if err != nil {
		return err
	}
	_, err = c.submit(ctx, req)
	return err
}

func (c *Client) SetZoneTone(ctx context.Context, zone, bass, treble int) error {
	_, err := c.submit(ctx, command.SetZoneTone(zone, bass, treble))
	return err
}

func (c *Client) SetZoneSoundMode(ctx context.Context, zone int, mode model.SoundMode) error {
	_, err := c.submit(ctx, command.SetZoneSoundMode(zone, mode))
	return err
}

func (c *Client) SetZoneBand(ctx context.Context, zone, band, level int) error {
	_, err := c.submit(ctx, command.SetZoneBand(zone, band, level))
	return err
}

// ZoneBandUp returns the new band level.
func (c *Client) ZoneBandUp(ctx context.Context, zone, band int) (int, error) {
	res, err := c.submit(ctx, command.ZoneBandUp(zone, band))
	if err != nil {
		return 0, err
	}
	return command.CaptureInt(res.Payload, res.Match, 3)
}

// ZoneBandDown returns the new band level.
func (c *Client) ZoneBandDown(ctx context.Context, zone, band int) (int, error) {
	res, err := c.submit(ctx, command.ZoneBandDown(zone, band))
	if err != nil {
		return 0, err
	}
	return command.CaptureInt(res.Payload, res.Match, 3)
}

func (c *Client) SetZonePreset(ctx context.Context, zone, preset int) error {
	_, err := c.submit(ctx, command.SetZonePreset(zone, preset))
	return err
}

func (c *Client) SetZoneHighpass(ctx context.Context, zone, hz int) error {
	_, err := c.submit(ctx, command.SetZoneHighpass(zone, hz))
	return err
}

func (c *Client) SetZoneLowpass(ctx context.Context, zone, hz int) error {
	_, err := c.submit(ctx, command.SetZoneLowpass(zone, hz))
	return err
}

// QueryZone refreshes the mirror's view of one zone. The state lines
// arrive as notifications; the echo completes the exchange.
func (c *Client) QueryZone(ctx context.Context, zone int) error {
	_, err := c.submit(ctx, command.QueryZone(zone))
	return err
}

// Group operations.

func (c *Client) SetGroupVolume(ctx context.Context, group, level int) (int, error) {
	return c.submitLevel(ctx, command.SetGroupVolume(group, level))
}

func (c *Client) GroupVolumeUp(ctx context.Context, group int) (int, error) {
	return c.submitLevel(ctx, command.GroupVolumeUp(group))
}

func (c *Client) GroupVolumeDown(ctx context.Context, group int) (int, error) {
	return c.submitLevel(ctx, command.GroupVolumeDown(group))
}

func (c *Client) SetGroupMuted(ctx context.Context, group int, muted bool) error {
	_, err := c.submit(ctx, command.SetGroupMuted(group, muted))
	return err
}

func (c *Client) SetGroupSource(ctx context.Context, group, source int) error {
	_, err := c.submit(ctx, command.SetGroupSource(group, source))
	return err
}

func (c *Client) SetGroupName(ctx context.Context, group int, name string) (string, error) {
	res, err := c.submit(ctx, command.SetGroupName(group, name))
	if err != nil {
		return "", err
	}
	return command.CaptureName(res.Payload, res.Match, 2), nil
}

func (c *Client) GroupAddZone(ctx context.Context, group, zone int) error {
	_, err := c.submit(ctx, command.GroupAddZone(group, zone))
	return err
}

func (c *Client) GroupRemoveZone(ctx context.Context, group, zone int) error {
	_, err := c.submit(ctx, command.GroupRemoveZone(group, zone))
	return err
}

func (c *Client) GroupClearZones(ctx context.Context, group int) error {
	_, err := c.submit(ctx, command.GroupClearZones(group))
	return err
}

// Source, preset and favorite operations.

func (c *Client) SetSourceName(ctx context.Context, source int, name string) (string, error) {
	res, err := c.submit(ctx, command.SetSourceName(source, name))
	if err != nil {
		return "", err
	}
	return command.CaptureName(res.Payload, res.Match, 2), nil
}

func (c *Client) SetPresetName(ctx context.Context, preset int, name string) (string, error) {
	res, err := c.submit(ctx, command.SetPresetName(preset, name))
	if err != nil {
		return "", err
	}
	return command.CaptureName(res.Payload, res.Match, 2), nil
}

func (c *Client) SetPresetBand(ctx context.Context, preset, band, level int) error {
	_, err := c.submit(ctx, command.SetPresetBand(preset, band, level))
	return err
}

func (c *Client) PresetBandUp(ctx context.Context, preset, band int) (int, error) {
	res, err := c.submit(ctx, command.PresetBandUp(preset, band))
	if err != nil {
		return 0, err
	}
	return command.CaptureInt(res.Payload, res.Match, 3)
}

func (c *Client) PresetBandDown(ctx context.Context, preset, band int) (int, error) {
	res, err := c.submit(ctx, command.PresetBandDown(preset, band))
	if err != nil {
		return 0, err
	}
	return command.CaptureInt(res.Payload, res.Match, 3)
}

func (c *Client) QueryPreset(ctx context.Context, preset int) error {
	_, err := c.submit(ctx, command.QueryPreset(preset))
	return err
}

func (c *Client) SetFavoriteName(ctx context.Context, favorite int, name string) (string, error) {
	res, err := c.submit(ctx, command.SetFavoriteName(favorite, name))
	if err != nil {
		return "", err
	}
	return command.CaptureName(res.Payload, res.Match, 2), nil
}

func (c *Client) QueryFavorite(ctx context.Context, favorite int) error {
	_, err := c.submit(ctx, command.QueryFavorite(favorite))
	return err
}

// Front panel, infrared and network.

func (c *Client) SetBrightness(ctx context.Context, brightness int) error {
	_, err := c.submit(ctx, command.SetBrightness(brightness))
	return err
}

func (c *Client) SetPanelLocked(ctx context.Context, locked bool) error {
	_, err := c.submit(ctx, command.SetPanelLocked(locked))
	return err
}

func (c *Client) QueryBrightness(ctx context.Context) (int, error) {
	if err := c.querySimple(ctx, command.QueryBrightness()); err != nil {
		return 0, err
	}
	brightness, st := c.mirror.FrontPanel().Brightness()
	if !st.OK() {
		return 0, fmt.Errorf("brightness not announced: %s", st)
	}
	return brightness, nil
}

func (c *Client) QueryPanelLock(ctx context.Context) (bool, error) {
	if err := c.querySimple(ctx, command.QueryPanelLock()); err != nil {
		return false, err
	}
	locked, st := c.mirror.FrontPanel().Locked()
	if !st.OK() {
		return false, fmt.Errorf("panel lock not announced: %s", st)
	}
	return locked, nil
}

func (c *Client) SetInfraredDisabled(ctx context.Context, disabled bool) error {
	_, err := c.submit(ctx, command.SetInfraredDisabled(disabled))
	return err
}

// QueryInfrared completes on the bare state notification; there is no
// query echo for this property.
func (c *Client) QueryInfrared(ctx context.Context) (bool, error) {
	res, err := c.submit(ctx, command.QueryInfrared())
	if err != nil {
		return false, err
	}
	return command.CaptureBool(res.Payload, res.Match, 1)
}

func (c *Client) QueryNetwork(ctx context.Context) error {
	return c.querySimple(ctx, command.QueryNetwork())
}

func (c *Client) querySimple(ctx context.Context, req command.Request) error {
	_, err := c.submit(ctx, req)
	return err
}

// Configuration control. The exchange completes on the terminal
// lifecycle notification; a failure notification surfaces as an error.

func (c *Client) ConfigLoad(ctx context.Context) error {
	return c.configOp(ctx, command.ConfigLoad())
}

func (c *Client) ConfigSave(ctx context.Context) error {
	return c.configOp(ctx, command.ConfigSave())
}

func (c *Client) ConfigReset(ctx context.Context) error {
	return c.configOp(ctx, command.ConfigReset())
}

func (c *Client) ConfigQuery(ctx context.Context) error {
	return c.configOp(ctx, command.ConfigQuery())
}

func (c *Client) configOp(ctx context.Context, req command.Request) error {
	res, err := c.submit(ctx, req)
	if err != nil {
		return err
	}
	if res.Match.Capture(res.Payload, 2) == "E" {
		op, opErr := command.CaptureConfigOp(res.Payload, res.Match, 1)
		if opErr != nil {
			return opErr
		}
		return fmt.Errorf("%s did not complete", op)
	}
	return nil
}
