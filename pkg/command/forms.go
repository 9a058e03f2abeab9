package command

// Form pairs a payload pattern with its declared capture count
// (including the whole-match group) and the kind a match means.
type Form struct {
	Kind     Kind
	Expr     string
	Captures int
}

// Volume levels are attenuation values in [-80, 0], so a level capture
// is either exactly "0" or a negative number. This keeps the adjacent
// identifier and level decimals unambiguous.
const levelExpr = `(0|-[0-9]+)`

// Request forms, in registration order.
var (
	ReqQueryZone      = Form{KindQueryZone, `QO([0-9]+)`, 2}
	ReqQueryPreset    = Form{KindQueryPreset, `QEP([0-9]+)`, 2}
	ReqQueryFavorite  = Form{KindQueryFavorite, `QF([0-9]+)`, 2}
	ReqQueryInfrared  = Form{KindQueryInfrared, `QIRL`, 1}
	ReqQueryBright    = Form{KindQueryBrightness, `QSD`, 1}
	ReqQueryPanelLock = Form{KindQueryPanelLock, `QFPL`, 1}
	ReqQueryNetwork   = Form{KindQueryNetwork, `QE`, 1}

	ReqZoneVolumeSet     = Form{KindZoneVolumeSet, `VO([0-9]+)S` + levelExpr, 3}
	ReqZoneVolumeAdjust  = Form{KindZoneVolumeAdjust, `VO([0-9]+)(U|D)`, 3}
	ReqGroupVolumeSet    = Form{KindGroupVolumeSet, `VG([0-9]+)S` + levelExpr, 3}
	ReqGroupVolumeAdjust = Form{KindGroupVolumeAdjust, `VG([0-9]+)(U|D)`, 3}

	ReqZoneBandAdjust   = Form{KindZoneBandAdjust, `EO([0-9]+)B([0-9]+)(U|D)`, 4}
	ReqPresetBandAdjust = Form{KindPresetBandAdjust, `EP([0-9]+)B([0-9]+)(U|D)`, 4}

	ReqConfigLoad  = Form{KindConfigLoad, `LOAD`, 1}
	ReqConfigSave  = Form{KindConfigSave, `SAVE`, 1}
	ReqConfigReset = Form{KindConfigReset, `RESET`, 1}
	ReqConfigQuery = Form{KindConfigQuery, `QX`, 1}
)

// Echo forms, used as both request and response. The server announces a
// mutation by echoing the new state in exactly the request shape.
var (
	FormZoneMute       = Form{KindZoneMute, `VMO([0-9]+)(M|U)`, 3}
	FormGroupMute      = Form{KindGroupMute, `VMG([0-9]+)(M|U)`, 3}
	FormZoneVolumeLock = Form{KindZoneVolumeLock, `VLO([0-9]+)(0|1)`, 3}
	FormZoneSource     = Form{KindZoneSource, `CO([0-9]+)I([0-9]+)`, 3}
	FormGroupSource    = Form{KindGroupSource, `CG([0-9]+)I([0-9]+)`, 3}
	FormZoneName       = Form{KindZoneName, `NO([0-9]+)"(.*)"`, 3}
	FormGroupName      = Form{KindGroupName, `NG([0-9]+)"(.*)"`, 3}
	FormSourceName     = Form{KindSourceName, `NI([0-9]+)"(.*)"`, 3}
	FormPresetName     = Form{KindPresetName, `NEP([0-9]+)"(.*)"`, 3}
	FormFavoriteName   = Form{KindFavoriteName, `NF([0-9]+)"(.*)"`, 3}
	FormZoneBalance    = Form{KindZoneBalance, `BO([0-9]+)(L[0-9]+|R[0-9]+|C)`, 3}
	FormZoneTone       = Form{KindZoneTone, `TO([0-9]+)B(-?[0-9]+)T(-?[0-9]+)`, 4}
	FormZoneSoundMode  = Form{KindZoneSoundMode, `SMO([0-9]+)([0-5])`, 3}
	FormZoneBand       = Form{KindZoneBand, `EO([0-9]+)B([0-9]+)L(-?[0-9]+)`, 4}
	FormZonePreset     = Form{KindZonePreset, `EO([0-9]+)P([0-9]+)`, 3}
	FormPresetBand     = Form{KindPresetBand, `EP([0-9]+)B([0-9]+)L(-?[0-9]+)`, 4}
	FormZoneHighpass   = Form{KindZoneHighpass, `HO([0-9]+)F([0-9]+)`, 3}
	FormZoneLowpass    = Form{KindZoneLowpass, `LO([0-9]+)F([0-9]+)`, 3}
	FormGroupAdd       = Form{KindGroupAddZone, `G([0-9]+)AO([0-9]+)`, 3}
	FormGroupRemove    = Form{KindGroupRemoveZone, `G([0-9]+)RO([0-9]+)`, 3}
	FormGroupClear     = Form{KindGroupClearZones, `G([0-9]+)AR`, 2}
	FormBrightness     = Form{KindBrightness, `SD([0-3])`, 2}
	FormPanelLock      = Form{KindPanelLock, `FPL(0|1)`, 2}
	FormInfrared       = Form{KindInfrared, `IRL(0|1)`, 2}
)

// Response-only forms.
var (
	RespZoneVolume  = Form{KindZoneVolume, `VO([0-9]+)` + levelExpr, 3}
	RespGroupVolume = Form{KindGroupVolume, `VG([0-9]+)` + levelExpr, 3}

	RespNetworkDHCP    = Form{KindNetworkDHCP, `EDHCP(0|1)`, 2}
	RespNetworkSDDP    = Form{KindNetworkSDDP, `ESDDP(0|1)`, 2}
	RespNetworkMAC     = Form{KindNetworkMAC, `EMAC([0-9A-F-]+)`, 2}
	RespNetworkIP      = Form{KindNetworkIP, `EIP([0-9.]+)`, 2}
	RespNetworkNetmask = Form{KindNetworkNetmask, `ENM([0-9.]+)`, 2}
	RespNetworkGateway = Form{KindNetworkGateway, `EGW([0-9.]+)`, 2}

	// Query echoes close a compound query reply. The infrared query has
	// no echo; its reply is the plain IRL notification.
	RespQueryZone      = Form{KindQueryZone, `QO([0-9]+)`, 2}
	RespQueryPreset    = Form{KindQueryPreset, `QEP([0-9]+)`, 2}
	RespQueryFavorite  = Form{KindQueryFavorite, `QF([0-9]+)`, 2}
	RespQueryBright    = Form{KindQueryBrightness, `QSD`, 1}
	RespQueryPanelLock = Form{KindQueryPanelLock, `QFPL`, 1}
	RespQueryNetwork   = Form{KindQueryNetwork, `QE`, 1}

	// Configuration lifecycle: <OP>W announces, <OP>P<pct> reports
	// progress, <OP>D completes, <OP>E fails.
	RespConfigWill     = Form{KindConfigWill, `(LOAD|SAVE|RESET|QX)W`, 2}
	RespConfigProgress = Form{KindConfigProgress, `(LOAD|SAVE|RESET|QX)P([0-9]+)`, 3}
	RespConfigDone     = Form{KindConfigDone, `(LOAD|SAVE|RESET|QX)(D|E)`, 3}
)

// RequestForms lists every request form the server dispatches, in
// canonical registration order. More specific forms precede forms they
// would otherwise shadow.
var RequestForms = []Form{
	ReqQueryZone,
	ReqQueryPreset,
	ReqQueryFavorite,
	ReqQueryInfrared,
	ReqQueryBright,
	ReqQueryPanelLock,
	ReqQueryNetwork,
	ReqConfigQuery,
	ReqZoneVolumeSet,
	ReqZoneVolumeAdjust,
	ReqGroupVolumeSet,
	ReqGroupVolumeAdjust,
	FormZoneMute,
	FormGroupMute,
	FormZoneVolumeLock,
	FormZoneSource,
	FormGroupSource,
	FormZoneName,
	FormGroupName,
	FormSourceName,
	FormPresetName,
	FormFavoriteName,
	FormZoneBalance,
	FormZoneTone,
	FormZoneSoundMode,
	ReqZoneBandAdjust,
	FormZoneBand,
	FormZonePreset,
	ReqPresetBandAdjust,
	FormPresetBand,
	FormZoneHighpass,
	FormZoneLowpass,
	FormGroupAdd,
	FormGroupRemove,
	FormGroupClear,
	FormBrightness,
	FormPanelLock,
	FormInfrared,
	ReqConfigLoad,
	ReqConfigSave,
	ReqConfigReset,
}

// ResponseForms lists every response form the client recognises, in
// canonical registration order. The error form is registered first by
// the exchange layer, not listed here.
var ResponseForms = []Form{
	RespZoneVolume,
	RespGroupVolume,
	FormZoneMute,
	FormGroupMute,
	FormZoneVolumeLock,
	FormZoneSource,
	FormGroupSource,
	FormZoneName,
	FormGroupName,
	FormSourceName,
	FormPresetName,
	FormFavoriteName,
	FormZoneBalance,
	FormZoneTone,
	FormZoneSoundMode,
	FormZoneBand,
	FormZonePreset,
	FormPresetBand,
	FormZoneHighpass,
	FormZoneLowpass,
	FormGroupAdd,
	FormGroupRemove,
	FormGroupClear,
	FormBrightness,
	FormPanelLock,
	FormInfrared,
	RespNetworkDHCP,
	RespNetworkSDDP,
	RespNetworkMAC,
	RespNetworkIP,
	RespNetworkNetmask,
	RespNetworkGateway,
	RespQueryZone,
	RespQueryPreset,
	RespQueryFavorite,
	RespQueryBright,
	RespQueryPanelLock,
	RespQueryNetwork,
	RespConfigWill,
	RespConfigProgress,
	RespConfigDone,
}
