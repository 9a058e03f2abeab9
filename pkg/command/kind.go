package command

// Kind identifies the semantic form of a payload, independent of its
// direction. Echo-style mutations share one kind between the request
// and the response; forms that differ per direction (volume set versus
// volume echo) have distinct kinds.
type Kind uint8

const (
	KindUnknown Kind = iota

	// Queries.
	KindQueryZone
	KindQueryPreset
	KindQueryFavorite
	KindQueryInfrared
	KindQueryBrightness
	KindQueryPanelLock
	KindQueryNetwork

	// Volume.
	KindZoneVolumeSet
	KindZoneVolumeAdjust
	KindZoneVolume
	KindGroupVolumeSet
	KindGroupVolumeAdjust
	KindGroupVolume
	KindZoneMute
	KindGroupMute
	KindZoneVolumeLock

	// Source selection.
	KindZoneSource
	KindGroupSource

	// Names.
	KindZoneName
	KindGroupName
	KindSourceName
	KindPresetName
	KindFavoriteName

	// DSP.
	KindZoneBalance
	KindZoneTone
	KindZoneSoundMode
	KindZoneBandAdjust
	KindZoneBand
	KindZonePreset
	KindPresetBandAdjust
	KindPresetBand
	KindZoneHighpass
	KindZoneLowpass

	// Group membership.
	KindGroupAddZone
	KindGroupRemoveZone
	KindGroupClearZones

	// Front panel and infrared.
	KindBrightness
	KindPanelLock
	KindInfrared

	// Network state lines.
	KindNetworkDHCP
	KindNetworkSDDP
	KindNetworkMAC
	KindNetworkIP
	KindNetworkNetmask
	KindNetworkGateway

	// Configuration control and lifecycle.
	KindConfigLoad
	KindConfigSave
	KindConfigReset
	KindConfigQuery
	KindConfigWill
	KindConfigProgress
	KindConfigDone
)

var kindNames = map[Kind]string{
	KindUnknown:           "UNKNOWN",
	KindQueryZone:         "QUERY_ZONE",
	KindQueryPreset:       "QUERY_PRESET",
	KindQueryFavorite:     "QUERY_FAVORITE",
	KindQueryInfrared:     "QUERY_INFRARED",
	KindQueryBrightness:   "QUERY_BRIGHTNESS",
	KindQueryPanelLock:    "QUERY_PANEL_LOCK",
	KindQueryNetwork:      "QUERY_NETWORK",
	KindZoneVolumeSet:     "ZONE_VOLUME_SET",
	KindZoneVolumeAdjust:  "ZONE_VOLUME_ADJUST",
	KindZoneVolume:        "ZONE_VOLUME",
	KindGroupVolumeSet:    "GROUP_VOLUME_SET",
	KindGroupVolumeAdjust: "GROUP_VOLUME_ADJUST",
	KindGroupVolume:       "GROUP_VOLUME",
	KindZoneMute:          "ZONE_MUTE",
	KindGroupMute:         "GROUP_MUTE",
	KindZoneVolumeLock:    "ZONE_VOLUME_LOCK",
	KindZoneSource:        "ZONE_SOURCE",
	KindGroupSource:       "GROUP_SOURCE",
	KindZoneName:          "ZONE_NAME",
	KindGroupName:         "GROUP_NAME",
	KindSourceName:        "SOURCE_NAME",
	KindPresetName:        "PRESET_NAME",
	KindFavoriteName:      "FAVORITE_NAME",
	KindZoneBalance:       "ZONE_BALANCE",
	KindZoneTone:          "ZONE_TONE",
	KindZoneSoundMode:     "ZONE_SOUND_MODE",
	KindZoneBandAdjust:    "ZONE_BAND_ADJUST",
	KindZoneBand:          "ZONE_BAND",
	KindZonePreset:        "ZONE_PRESET",
	KindPresetBandAdjust:  "PRESET_BAND_ADJUST",
	KindPresetBand:        "PRESET_BAND",
	KindZoneHighpass:      "ZONE_HIGHPASS",
	KindZoneLowpass:       "ZONE_LOWPASS",
	KindGroupAddZone:      "GROUP_ADD_ZONE",
	KindGroupRemoveZone:   "GROUP_REMOVE_ZONE",
	KindGroupClearZones:   "GROUP_CLEAR_ZONES",
	KindBrightness:        "BRIGHTNESS",
	KindPanelLock:         "PANEL_LOCK",
	KindInfrared:          "INFRARED",
	KindNetworkDHCP:       "NETWORK_DHCP",
	KindNetworkSDDP:       "NETWORK_SDDP",
	KindNetworkMAC:        "NETWORK_MAC",
	KindNetworkIP:         "NETWORK_IP",
	KindNetworkNetmask:    "NETWORK_NETMASK",
	KindNetworkGateway:    "NETWORK_GATEWAY",
	KindConfigLoad:        "CONFIG_LOAD",
	KindConfigSave:        "CONFIG_SAVE",
	KindConfigReset:       "CONFIG_RESET",
	KindConfigQuery:       "CONFIG_QUERY",
	KindConfigWill:        "CONFIG_WILL",
	KindConfigProgress:    "CONFIG_PROGRESS",
	KindConfigDone:        "CONFIG_DONE",
}

// String returns the kind name.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UNKNOWN"
}
