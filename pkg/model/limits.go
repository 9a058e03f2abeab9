package model

// Fixed entity caps. Entities are created at startup and never added or
// removed dynamically; identifiers are 1-based.
const (
	// MaxZones is the number of zones in an HLX chassis.
	MaxZones = 24

	// MaxGroups is the number of zone groups.
	MaxGroups = 10

	// MaxSources is the number of selectable inputs.
	MaxSources = 8

	// MaxEqualizerPresets is the number of equalizer presets.
	MaxEqualizerPresets = 10

	// MaxFavorites is the number of favorites.
	MaxFavorites = 10

	// EqualizerBandCount is the number of bands per preset or zone.
	EqualizerBandCount = 10

	// MaxNameLength is the maximum entity name length in bytes.
	MaxNameLength = 16
)

// Value models. Limits are part of the model construction contract;
// writes outside them return StatusOutOfRange.
const (
	// VolumeMin is the lowest volume level (full attenuation).
	VolumeMin = -80

	// VolumeMax is the highest volume level (unity).
	VolumeMax = 0

	// VolumeDefault is the level assigned on reset. The signed volume
	// range is anchored at 0 (unity); attenuation is negative.
	VolumeDefault = 0

	// BalanceMax bounds balance at |BalanceMax|; 0 is centre, negative
	// is left.
	BalanceMax = 80

	// ToneMax bounds bass and treble at +/-ToneMax.
	ToneMax = 10

	// EqualizerBandMax bounds band levels at +/-EqualizerBandMax.
	EqualizerBandMax = 10

	// CrossoverMinHz is the lowest crossover frequency.
	CrossoverMinHz = 100

	// CrossoverMaxHz is the highest crossover frequency.
	CrossoverMaxHz = 20000

	// BrightnessMax is the highest front panel brightness step.
	BrightnessMax = 3
)

// validID reports whether a 1-based identifier is within [1, max].
func validID(id, max int) bool {
	return id >= 1 && id <= max
}

// ValidZoneID reports whether id addresses a zone.
func ValidZoneID(id int) bool { return validID(id, MaxZones) }

// ValidGroupID reports whether id addresses a group.
func ValidGroupID(id int) bool { return validID(id, MaxGroups) }

// ValidSourceID reports whether id addresses a source.
func ValidSourceID(id int) bool { return validID(id, MaxSources) }

// ValidEqualizerPresetID reports whether id addresses an equalizer preset.
func ValidEqualizerPresetID(id int) bool { return validID(id, MaxEqualizerPresets) }

// ValidFavoriteID reports whether id addresses a favorite.
func ValidFavoriteID(id int) bool { return validID(id, MaxFavorites) }

// ValidBandID reports whether id addresses an equalizer band.
func ValidBandID(id int) bool { return validID(id, EqualizerBandCount) }
