package command

import (
	"fmt"

	"github.com/hlx-protocol/hlx-go/pkg/model"
)

// Request is a composed payload together with the response form that
// completes its exchange. Group mutations complete on the trailing
// group-level echo; the per-zone fan-out arrives as unsolicited
// notifications first.
type Request struct {
	Payload  string
	Response Form
}

// Queries. A compound query reply is a run of state notifications
// closed by an echo of the query payload, which completes the exchange.

func QueryZone(zone int) Request {
	return Request{fmt.Sprintf("QO%d", zone), RespQueryZone}
}

func QueryPreset(preset int) Request {
	return Request{fmt.Sprintf("QEP%d", preset), RespQueryPreset}
}

func QueryFavorite(favorite int) Request {
	return Request{fmt.Sprintf("QF%d", favorite), RespQueryFavorite}
}

// QueryInfrared completes on the IRL notification itself; the server
// sends no QIRL echo.
func QueryInfrared() Request {
	return Request{"QIRL", FormInfrared}
}

func QueryBrightness() Request {
	return Request{"QSD", RespQueryBright}
}

func QueryPanelLock() Request {
	return Request{"QFPL", RespQueryPanelLock}
}

func QueryNetwork() Request {
	return Request{"QE", RespQueryNetwork}
}

// Volume.

func SetZoneVolume(zone, level int) Request {
	return Request{fmt.Sprintf("VO%dS%d", zone, level), RespZoneVolume}
}

func ZoneVolumeUp(zone int) Request {
	return Request{fmt.Sprintf("VO%dU", zone), RespZoneVolume}
}

func ZoneVolumeDown(zone int) Request {
	return Request{fmt.Sprintf("VO%dD", zone), RespZoneVolume}
}

func SetGroupVolume(group, level int) Request {
	return Request{fmt.Sprintf("VG%dS%d", group, level), RespGroupVolume}
}

func GroupVolumeUp(group int) Request {
	return Request{fmt.Sprintf("VG%dU", group), RespGroupVolume}
}

func GroupVolumeDown(group int) Request {
	return Request{fmt.Sprintf("VG%dD", group), RespGroupVolume}
}

func SetZoneMuted(zone int, muted bool) Request {
	return Request{fmt.Sprintf("VMO%d%s", zone, muteTag(muted)), FormZoneMute}
}

func SetGroupMuted(group int, muted bool) Request {
	return Request{fmt.Sprintf("VMG%d%s", group, muteTag(muted)), FormGroupMute}
}

func SetZoneVolumeLocked(zone int, locked bool) Request {
	return Request{fmt.Sprintf("VLO%d%s", zone, boolTag(locked)), FormZoneVolumeLock}
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

// Source selection.

func SetZoneSource(zone, source int) Request {
	return Request{fmt.Sprintf("CO%dI%d", zone, source), FormZoneSource}
}

func SetGroupSource(group, source int) Request {
	return Request{fmt.Sprintf("CG%dI%d", group, source), FormGroupSource}
}

// Names. The composer truncates; the server echoes the truncated form.

func SetZoneName(zone int, name string) Request {
	return Request{fmt.Sprintf("NO%d%s", zone, QuoteName(name)), FormZoneName}
}

func SetGroupName(group int, name string) Request {
	return Request{fmt.Sprintf("NG%d%s", group, QuoteName(name)), FormGroupName}
}

func SetSourceName(source int, name string) Request {
	return Request{fmt.Sprintf("NI%d%s", source, QuoteName(name)), FormSourceName}
}

func SetPresetName(preset int, name string) Request {
	return Request{fmt.Sprintf("NEP%d%s", preset, QuoteName(name)), FormPresetName}
}

func SetFavoriteName(favorite int, name string) Request {
	return Request{fmt.Sprintf("NF%d%s", favorite, QuoteName(name)), FormFavoriteName}
}

// DSP.

func SetZoneBalance(zone, balance int) (Request, error) {
	tag, err := FormatBalance(balance)
	if err != nil {
		return Request{}, err
	}
	return Request{fmt.Sprintf("BO%d%s", zone, tag), FormZoneBalance}, nil
}

func SetZoneTone(zone, bass, treble int) Request {
	return Request{fmt.Sprintf("TO%dB%dT%d", zone, bass, treble), FormZoneTone}
}

func SetZoneSoundMode(zone int, mode model.SoundMode) Request {
	return Request{fmt.Sprintf("SMO%d%d", zone, mode), FormZoneSoundMode}
}

func SetZoneBand(zone, band, level int) Request {
	return Request{fmt.Sprintf("EO%dB%dL%d", zone, band, level), FormZoneBand}
}

func ZoneBandUp(zone, band int) Request {
	return Request{fmt.Sprintf("EO%dB%dU", zone, band), FormZoneBand}
}

func ZoneBandDown(zone, band int) Request {
	return Request{fmt.Sprintf("EO%dB%dD", zone, band), FormZoneBand}
}

func SetZonePreset(zone, preset int) Request {
	return Request{fmt.Sprintf("EO%dP%d", zone, preset), FormZonePreset}
}

func SetPresetBand(preset, band, level int) Request {
	return Request{fmt.Sprintf("EP%dB%dL%d", preset, band, level), FormPresetBand}
}

func PresetBandUp(preset, band int) Request {
	return Request{fmt.Sprintf("EP%dB%dU", preset, band), FormPresetBand}
}

func PresetBandDown(preset, band int) Request {
	return Request{fmt.Sprintf("EP%dB%dD", preset, band), FormPresetBand}
}

func SetZoneHighpass(zone, hz int) Request {
	return Request{fmt.Sprintf("HO%dF%d", zone, hz), FormZoneHighpass}
}

func SetZoneLowpass(zone, hz int) Request {
	return Request{fmt.Sprintf("LO%dF%d", zone, hz), FormZoneLowpass}
}

// Group membership.

func GroupAddZone(group, zone int) Request {
	return Request{fmt.Sprintf("G%dAO%d", group, zone), FormGroupAdd}
}

func GroupRemoveZone(group, zone int) Request {
	return Request{fmt.Sprintf("G%dRO%d", group, zone), FormGroupRemove}
}

func GroupClearZones(group int) Request {
	return Request{fmt.Sprintf("G%dAR", group), FormGroupClear}
}

// Front panel and infrared.

func SetBrightness(brightness int) Request {
	return Request{fmt.Sprintf("SD%d", brightness), FormBrightness}
}

func SetPanelLocked(locked bool) Request {
	return Request{"FPL" + boolTag(locked), FormPanelLock}
}

func SetInfraredDisabled(disabled bool) Request {
	return Request{"IRL" + boolTag(disabled), FormInfrared}
}

// Configuration control. The exchange completes on the terminal
// lifecycle notification, <OP>D or <OP>E.

func ConfigLoad() Request {
	return Request{"LOAD", RespConfigDone}
}

func ConfigSave() Request {
	return Request{"SAVE", RespConfigDone}
}

func ConfigReset() Request {
	return Request{"RESET", RespConfigDone}
}

func ConfigQuery() Request {
	return Request{"QX", RespConfigDone}
}
