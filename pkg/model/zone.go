package model

import "sync"

// SoundMode selects the DSP profile applied to a zone.
type SoundMode uint8

const (
	// SoundModeDisabled bypasses all zone DSP.
	SoundModeDisabled SoundMode = 0

	// SoundModeZoneEqualizer applies the zone's own band levels.
	SoundModeZoneEqualizer SoundMode = 1

	// SoundModePresetEqualizer applies the assigned equalizer preset.
	SoundModePresetEqualizer SoundMode = 2

	// SoundModeTone applies the bass/treble tone controls.
	SoundModeTone SoundMode = 3

	// SoundModeLowpass applies the lowpass crossover. Lowpass implies
	// mono channel mode.
	SoundModeLowpass SoundMode = 4

	// SoundModeHighpass applies the highpass crossover.
	SoundModeHighpass SoundMode = 5
)

// String returns the sound mode name.
func (m SoundMode) String() string {
	switch m {
	case SoundModeDisabled:
		return "DISABLED"
	case SoundModeZoneEqualizer:
		return "ZONE_EQUALIZER"
	case SoundModePresetEqualizer:
		return "PRESET_EQUALIZER"
	case SoundModeTone:
		return "TONE"
	case SoundModeLowpass:
		return "LOWPASS"
	case SoundModeHighpass:
		return "HIGHPASS"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the sound mode is a known value.
func (m SoundMode) Valid() bool {
	return m <= SoundModeHighpass
}

// ChannelMode selects stereo or mono output for a zone.
type ChannelMode uint8

const (
	// ChannelModeStereo is two-channel output.
	ChannelModeStereo ChannelMode = 0

	// ChannelModeMono is summed single-channel output.
	ChannelModeMono ChannelMode = 1
)

// String returns the channel mode name.
func (m ChannelMode) String() string {
	switch m {
	case ChannelModeStereo:
		return "STEREO"
	case ChannelModeMono:
		return "MONO"
	default:
		return "UNKNOWN"
	}
}

// Zone is one addressable audio output with its own volume, mute,
// source selection, and DSP state.
type Zone struct {
	mu sync.Mutex

	id int

	name         cell[string]
	source       cell[int]
	volume       cell[int]
	muted        cell[bool]
	volumeLocked cell[bool]
	balance      cell[int]
	soundMode    cell[SoundMode]
	channelMode  cell[ChannelMode]
	preset       cell[int]
	bands        [EqualizerBandCount]cell[int]
	bass         cell[int]
	treble       cell[int]
	highpassHz   cell[int]
	lowpassHz    cell[int]
}

// newZone creates the zone with the given 1-based identifier.
// All fields start not-initialised.
func newZone(id int) *Zone {
	return &Zone{id: id}
}

// ID returns the zone's 1-based identifier.
func (z *Zone) ID() int { return z.id }

// Name returns the zone name.
func (z *Zone) Name() (string, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.name.get()
}

// SetName sets the zone name. The name must be printable ASCII and at
// most MaxNameLength bytes; callers truncate over-long wire input first.
func (z *Zone) SetName(name string) Status {
	if st := validateName(name); st != StatusSuccess {
		return st
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.name.put(name)
}

// Source returns the selected source identifier.
func (z *Zone) Source() (int, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.source.get()
}

// SetSource selects the source with the given identifier.
func (z *Zone) SetSource(sourceID int) Status {
	if !ValidSourceID(sourceID) {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.source.put(sourceID)
}

// Volume returns the volume level.
func (z *Zone) Volume() (int, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.volume.get()
}

// SetVolume sets the volume level. Levels outside the volume model are
// refused with StatusOutOfRange rather than clamped.
func (z *Zone) SetVolume(level int) Status {
	if level < VolumeMin || level > VolumeMax {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.volume.put(level)
}

// IncreaseVolume raises the volume one step and returns the new level.
// At the top of the range it refuses with StatusOutOfRange.
func (z *Zone) IncreaseVolume() (int, Status) {
	return z.adjustVolume(1)
}

// DecreaseVolume lowers the volume one step and returns the new level.
func (z *Zone) DecreaseVolume() (int, Status) {
	return z.adjustVolume(-1)
}

func (z *Zone) adjustVolume(delta int) (int, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	current, st := z.volume.get()
	if st != StatusSuccess {
		return 0, st
	}
	level := current + delta
	if level < VolumeMin || level > VolumeMax {
		return current, StatusOutOfRange
	}
	return level, z.volume.put(level)
}

// Muted returns the mute state.
func (z *Zone) Muted() (bool, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.muted.get()
}

// SetMuted sets the mute state.
func (z *Zone) SetMuted(muted bool) Status {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.muted.put(muted)
}

// VolumeLocked returns the volume-lock flag.
func (z *Zone) VolumeLocked() (bool, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.volumeLocked.get()
}

// SetVolumeLocked sets the volume-lock flag. A locked zone refuses
// volume mutations issued through group expansion.
func (z *Zone) SetVolumeLocked(locked bool) Status {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.volumeLocked.put(locked)
}

// Balance returns the balance (-BalanceMax left .. +BalanceMax right,
// 0 centre).
func (z *Zone) Balance() (int, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.balance.get()
}

// SetBalance sets the balance.
func (z *Zone) SetBalance(balance int) Status {
	if balance < -BalanceMax || balance > BalanceMax {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.balance.put(balance)
}

// SoundModeState returns the sound mode.
func (z *Zone) SoundModeState() (SoundMode, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.soundMode.get()
}

// SetSoundMode sets the sound mode. Selecting lowpass forces the
// channel mode to mono (model invariant).
func (z *Zone) SetSoundMode(mode SoundMode) Status {
	if !mode.Valid() {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	st := z.soundMode.put(mode)
	if st == StatusSuccess && mode == SoundModeLowpass {
		z.channelMode.reset(ChannelModeMono)
	}
	return st
}

// ChannelModeState returns the channel mode.
func (z *Zone) ChannelModeState() (ChannelMode, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.channelMode.get()
}

// SetChannelMode sets the channel mode. A zone in lowpass mode is
// pinned to mono.
func (z *Zone) SetChannelMode(mode ChannelMode) Status {
	if mode != ChannelModeStereo && mode != ChannelModeMono {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	if sm, st := z.soundMode.get(); st == StatusSuccess && sm == SoundModeLowpass && mode != ChannelModeMono {
		return StatusInvalidArgument
	}
	return z.channelMode.put(mode)
}

// Preset returns the assigned equalizer preset identifier.
func (z *Zone) Preset() (int, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.preset.get()
}

// SetPreset assigns an equalizer preset to the zone.
func (z *Zone) SetPreset(presetID int) Status {
	if !ValidEqualizerPresetID(presetID) {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.preset.put(presetID)
}

// Band returns the level of the given 1-based equalizer band.
func (z *Zone) Band(band int) (int, Status) {
	if !ValidBandID(band) {
		return 0, StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.bands[band-1].get()
}

// SetBand sets the level of the given 1-based equalizer band.
func (z *Zone) SetBand(band, level int) Status {
	if !ValidBandID(band) {
		return StatusOutOfRange
	}
	if level < -EqualizerBandMax || level > EqualizerBandMax {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.bands[band-1].put(level)
}

// AdjustBand moves a band level one step and returns the new level.
func (z *Zone) AdjustBand(band, delta int) (int, Status) {
	if !ValidBandID(band) {
		return 0, StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	current, st := z.bands[band-1].get()
	if st != StatusSuccess {
		return 0, st
	}
	level := current + delta
	if level < -EqualizerBandMax || level > EqualizerBandMax {
		return current, StatusOutOfRange
	}
	return level, z.bands[band-1].put(level)
}

// Tone returns the bass and treble levels.
func (z *Zone) Tone() (bass, treble int, st Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	b, st := z.bass.get()
	if st != StatusSuccess {
		return 0, 0, st
	}
	t, st := z.treble.get()
	if st != StatusSuccess {
		return 0, 0, st
	}
	return b, t, StatusSuccess
}

// SetTone sets the bass and treble levels together.
func (z *Zone) SetTone(bass, treble int) Status {
	if bass < -ToneMax || bass > ToneMax || treble < -ToneMax || treble > ToneMax {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	sb := z.bass.put(bass)
	st := z.treble.put(treble)
	if sb == StatusSuccess || st == StatusSuccess {
		return StatusSuccess
	}
	return StatusAlreadySet
}

// HighpassFrequency returns the highpass crossover frequency in Hz.
func (z *Zone) HighpassFrequency() (int, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.highpassHz.get()
}

// SetHighpassFrequency sets the highpass crossover frequency.
func (z *Zone) SetHighpassFrequency(hz int) Status {
	if hz < CrossoverMinHz || hz > CrossoverMaxHz {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.highpassHz.put(hz)
}

// LowpassFrequency returns the lowpass crossover frequency in Hz.
func (z *Zone) LowpassFrequency() (int, Status) {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.lowpassHz.get()
}

// SetLowpassFrequency sets the lowpass crossover frequency.
func (z *Zone) SetLowpassFrequency(hz int) Status {
	if hz < CrossoverMinHz || hz > CrossoverMaxHz {
		return StatusOutOfRange
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.lowpassHz.put(hz)
}

// applyDefaults initialises every field to its reset value.
func (z *Zone) applyDefaults() {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.name.reset(defaultZoneName(z.id))
	z.source.reset(1)
	z.volume.reset(VolumeDefault)
	z.muted.reset(true)
	z.volumeLocked.reset(false)
	z.balance.reset(0)
	z.soundMode.reset(SoundModeDisabled)
	z.channelMode.reset(ChannelModeStereo)
	z.preset.reset(1)
	for i := range z.bands {
		z.bands[i].reset(0)
	}
	z.bass.reset(0)
	z.treble.reset(0)
	z.highpassHz.reset(CrossoverMinHz)
	z.lowpassHz.reset(CrossoverMaxHz)
}

// snapshot captures the zone state for persistence.
func (z *Zone) snapshot() ZoneState {
	z.mu.Lock()
	defer z.mu.Unlock()
	s := ZoneState{
		Name:         z.name.snapshot(),
		Source:       z.source.snapshot(),
		Volume:       z.volume.snapshot(),
		Muted:        z.muted.snapshot(),
		VolumeLocked: z.volumeLocked.snapshot(),
		Balance:      z.balance.snapshot(),
		SoundMode:    z.soundMode.snapshot(),
		ChannelMode:  z.channelMode.snapshot(),
		Preset:       z.preset.snapshot(),
		Bass:         z.bass.snapshot(),
		Treble:       z.treble.snapshot(),
		HighpassHz:   z.highpassHz.snapshot(),
		LowpassHz:    z.lowpassHz.snapshot(),
	}
	for i := range z.bands {
		s.Bands[i] = z.bands[i].snapshot()
	}
	return s
}

// restore applies a persisted zone state.
func (z *Zone) restore(s ZoneState) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.name.restore(s.Name)
	z.source.restore(s.Source)
	z.volume.restore(s.Volume)
	z.muted.restore(s.Muted)
	z.volumeLocked.restore(s.VolumeLocked)
	z.balance.restore(s.Balance)
	z.soundMode.restore(s.SoundMode)
	z.channelMode.restore(s.ChannelMode)
	z.preset.restore(s.Preset)
	for i := range z.bands {
		z.bands[i].restore(s.Bands[i])
	}
	z.bass.restore(s.Bass)
	z.treble.restore(s.Treble)
	z.highpassHz.restore(s.HighpassHz)
	z.lowpassHz.restore(s.LowpassHz)
}
