package model

import (
	"reflect"
	"testing"
)

func TestZoneIdentifierBounds(t *testing.T) {
	r := NewRepository()

	tests := []struct {
		name string
		id   int
		want Status
	}{
		{"zero is invalid", 0, StatusOutOfRange},
		{"first zone", 1, StatusSuccess},
		{"last zone", MaxZones, StatusSuccess},
		{"one past last", MaxZones + 1, StatusOutOfRange},
		{"negative", -3, StatusOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, st := r.Zone(tt.id)
			if st != tt.want {
				t.Errorf("Zone(%d) status = %v, want %v", tt.id, st, tt.want)
			}
		})
	}
}

func TestEntityIdentifierBounds(t *testing.T) {
	r := NewRepository()

	if _, st := r.Group(MaxGroups + 1); st != StatusOutOfRange {
		t.Errorf("Group(%d) status = %v, want OUT_OF_RANGE", MaxGroups+1, st)
	}
	if _, st := r.Source(0); st != StatusOutOfRange {
		t.Errorf("Source(0) status = %v, want OUT_OF_RANGE", st)
	}
	if _, st := r.EqualizerPreset(MaxEqualizerPresets); st != StatusSuccess {
		t.Errorf("EqualizerPreset(%d) status = %v, want SUCCESS", MaxEqualizerPresets, st)
	}
	if _, st := r.Favorite(MaxFavorites + 1); st != StatusOutOfRange {
		t.Errorf("Favorite(%d) status = %v, want OUT_OF_RANGE", MaxFavorites+1, st)
	}
}

func TestNotInitialisedThenSetGetAlreadySet(t *testing.T) {
	r := NewRepository()
	z, _ := r.Zone(3)

	if _, st := z.Volume(); st != StatusNotInitialised {
		t.Fatalf("read before write status = %v, want NOT_INITIALISED", st)
	}

	if st := z.SetVolume(-10); st != StatusSuccess {
		t.Fatalf("first SetVolume status = %v, want SUCCESS", st)
	}

	v, st := z.Volume()
	if st != StatusSuccess || v != -10 {
		t.Fatalf("Volume() = %d/%v, want -10/SUCCESS", v, st)
	}

	if st := z.SetVolume(-10); st != StatusAlreadySet {
		t.Errorf("repeated SetVolume status = %v, want ALREADY_SET", st)
	}
	if st := z.SetVolume(-11); st != StatusSuccess {
		t.Errorf("changed SetVolume status = %v, want SUCCESS", st)
	}
}

func TestVolumeRangeRefusal(t *testing.T) {
	r := NewRepository()
	z, _ := r.Zone(1)

	if st := z.SetVolume(VolumeMin - 1); st != StatusOutOfRange {
		t.Errorf("below-min status = %v, want OUT_OF_RANGE", st)
	}
	if st := z.SetVolume(VolumeMax + 1); st != StatusOutOfRange {
		t.Errorf("above-max status = %v, want OUT_OF_RANGE", st)
	}
	if st := z.SetVolume(VolumeMin); st != StatusSuccess {
		t.Errorf("at-min status = %v, want SUCCESS", st)
	}
	if st := z.SetVolume(VolumeMax); st != StatusSuccess {
		t.Errorf("at-max status = %v, want SUCCESS", st)
	}

	// Adjustment refuses past the top rather than clamping.
	if _, st := z.IncreaseVolume(); st != StatusOutOfRange {
		t.Errorf("increase at max status = %v, want OUT_OF_RANGE", st)
	}
	if v, st := z.DecreaseVolume(); st != StatusSuccess || v != VolumeMax-1 {
		t.Errorf("decrease = %d/%v, want %d/SUCCESS", v, st, VolumeMax-1)
	}
}

func TestZoneNameValidation(t *testing.T) {
	r := NewRepository()
	z, _ := r.Zone(2)

	tests := []struct {
		name  string
		value string
		want  Status
	}{
		{"plain", "Kitchen", StatusSuccess},
		{"same again", "Kitchen", StatusAlreadySet},
		{"sixteen bytes", "0123456789abcdef", StatusSuccess},
		{"seventeen bytes", "0123456789abcdefg", StatusInvalidArgument},
		{"empty", "", StatusInvalidArgument},
		{"control char", "Kit\tchen", StatusInvalidArgument},
		{"high byte", "Caf\xc3\xa9", StatusInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if st := z.SetName(tt.value); st != tt.want {
				t.Errorf("SetName(%q) = %v, want %v", tt.value, st, tt.want)
			}
		})
	}
}

func TestNameTruncationLaw(t *testing.T) {
	long := "Kitchen & Dining Area"
	truncated := TruncateName(long)
	if truncated != "Kitchen & Dinin" {
		t.Fatalf("TruncateName = %q, want %q", truncated, "Kitchen & Dinin")
	}
	if len(truncated) > MaxNameLength {
		t.Fatalf("truncated length = %d, want <= %d", len(truncated), MaxNameLength)
	}

	r := NewRepository()
	s, _ := r.Source(1)
	if st := s.SetName(truncated); st != StatusSuccess {
		t.Fatalf("SetName(truncated) = %v, want SUCCESS", st)
	}
	// Setting the truncated form again is idempotent.
	if st := s.SetName(TruncateName(long)); st != StatusAlreadySet {
		t.Errorf("second SetName(truncated) = %v, want ALREADY_SET", st)
	}
}

func TestGroupMembership(t *testing.T) {
	r := NewRepository()
	g, _ := r.Group(2)

	for _, z := range []int{9, 5, 7} {
		if st := g.AddZone(z); st != StatusSuccess {
			t.Fatalf("AddZone(%d) = %v, want SUCCESS", z, st)
		}
	}

	if got := g.Members(); !reflect.DeepEqual(got, []int{5, 7, 9}) {
		t.Fatalf("Members() = %v, want sorted [5 7 9]", got)
	}

	if st := g.AddZone(7); st != StatusAlreadySet {
		t.Errorf("duplicate AddZone = %v, want ALREADY_SET", st)
	}
	if st := g.RemoveZone(6); st != StatusNotFound {
		t.Errorf("absent RemoveZone = %v, want NOT_FOUND", st)
	}
	if st := g.RemoveZone(7); st != StatusSuccess {
		t.Errorf("RemoveZone(7) = %v, want SUCCESS", st)
	}
	if got := g.Members(); !reflect.DeepEqual(got, []int{5, 9}) {
		t.Fatalf("Members() after removal = %v, want [5 9]", got)
	}

	if st := g.ClearZones(); st != StatusSuccess {
		t.Errorf("ClearZones = %v, want SUCCESS", st)
	}
	if st := g.ClearZones(); st != StatusAlreadySet {
		t.Errorf("second ClearZones = %v, want ALREADY_SET", st)
	}
	if st := g.AddZone(0); st != StatusOutOfRange {
		t.Errorf("AddZone(0) = %v, want OUT_OF_RANGE", st)
	}
	if st := g.AddZone(MaxZones + 1); st != StatusOutOfRange {
		t.Errorf("AddZone(%d) = %v, want OUT_OF_RANGE", MaxZones+1, st)
	}
}

func TestLowpassImpliesMono(t *testing.T) {
	r := NewRepository()
	z, _ := r.Zone(4)

	if st := z.SetChannelMode(ChannelModeStereo); st != StatusSuccess {
		t.Fatalf("SetChannelMode = %v, want SUCCESS", st)
	}
	if st := z.SetSoundMode(SoundModeLowpass); st != StatusSuccess {
		t.Fatalf("SetSoundMode(lowpass) = %v, want SUCCESS", st)
	}

	cm, st := z.ChannelModeState()
	if st != StatusSuccess || cm != ChannelModeMono {
		t.Fatalf("ChannelModeState = %v/%v, want MONO/SUCCESS", cm, st)
	}

	// Stereo cannot be re-selected while lowpass is active.
	if st := z.SetChannelMode(ChannelModeStereo); st != StatusInvalidArgument {
		t.Errorf("SetChannelMode(stereo) under lowpass = %v, want INVALID_ARGUMENT", st)
	}
}

func TestFrontPanelBrightnessBounds(t *testing.T) {
	r := NewRepository()
	fp := r.FrontPanel()

	if st := fp.SetBrightness(BrightnessMax + 1); st != StatusOutOfRange {
		t.Errorf("SetBrightness(4) = %v, want OUT_OF_RANGE", st)
	}
	if st := fp.SetBrightness(BrightnessMax); st != StatusSuccess {
		t.Errorf("SetBrightness(3) = %v, want SUCCESS", st)
	}
	if st := fp.SetBrightness(-1); st != StatusOutOfRange {
		t.Errorf("SetBrightness(-1) = %v, want OUT_OF_RANGE", st)
	}
}

func TestEqualizerBandExtremes(t *testing.T) {
	r := NewRepository()
	p, _ := r.EqualizerPreset(4)

	if st := p.SetBand(7, EqualizerBandMax); st != StatusSuccess {
		t.Errorf("SetBand(+max) = %v, want SUCCESS", st)
	}
	if st := p.SetBand(7, -EqualizerBandMax); st != StatusSuccess {
		t.Errorf("SetBand(-max) = %v, want SUCCESS", st)
	}
	if st := p.SetBand(7, EqualizerBandMax+1); st != StatusOutOfRange {
		t.Errorf("SetBand(+max+1) = %v, want OUT_OF_RANGE", st)
	}
	if st := p.SetBand(0, 0); st != StatusOutOfRange {
		t.Errorf("SetBand(band 0) = %v, want OUT_OF_RANGE", st)
	}
	if st := p.SetBand(EqualizerBandCount+1, 0); st != StatusOutOfRange {
		t.Errorf("SetBand(band 11) = %v, want OUT_OF_RANGE", st)
	}

	// Adjust refuses at either extreme.
	if _, st := p.AdjustBand(7, -1); st != StatusOutOfRange {
		t.Errorf("AdjustBand below min = %v, want OUT_OF_RANGE", st)
	}
	if lvl, st := p.AdjustBand(7, 1); st != StatusSuccess || lvl != -EqualizerBandMax+1 {
		t.Errorf("AdjustBand = %d/%v, want %d/SUCCESS", lvl, st, -EqualizerBandMax+1)
	}
}

func TestNameLookupIsCaseSensitive(t *testing.T) {
	r := NewRepository()
	z, _ := r.Zone(1)
	z.SetName("Patio")

	if _, st := r.ZoneByName("Patio"); st != StatusSuccess {
		t.Errorf("ZoneByName exact = %v, want SUCCESS", st)
	}
	if _, st := r.ZoneByName("patio"); st != StatusNotFound {
		t.Errorf("ZoneByName lowercase = %v, want NOT_FOUND", st)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	r := NewDefaultRepository()
	z, _ := r.Zone(3)
	z.SetName("Den")
	z.SetVolume(-25)
	z.SetSource(4)
	g, _ := r.Group(1)
	g.AddZone(3)
	g.AddZone(5)
	r.FrontPanel().SetBrightness(1)
	r.Infrared().SetDisabled(true)

	snap := r.Snapshot()

	other := NewRepository()
	other.Restore(snap)

	oz, _ := other.Zone(3)
	if name, st := oz.Name(); st != StatusSuccess || name != "Den" {
		t.Errorf("restored name = %q/%v, want Den/SUCCESS", name, st)
	}
	if v, st := oz.Volume(); st != StatusSuccess || v != -25 {
		t.Errorf("restored volume = %d/%v, want -25/SUCCESS", v, st)
	}
	og, _ := other.Group(1)
	if got := og.Members(); !reflect.DeepEqual(got, []int{3, 5}) {
		t.Errorf("restored members = %v, want [3 5]", got)
	}
	if b, st := other.FrontPanel().Brightness(); st != StatusSuccess || b != 1 {
		t.Errorf("restored brightness = %d/%v, want 1/SUCCESS", b, st)
	}
	if d, st := other.Infrared().Disabled(); st != StatusSuccess || !d {
		t.Errorf("restored infrared disabled = %v/%v, want true/SUCCESS", d, st)
	}
}

func TestDirtyTracking(t *testing.T) {
	r := NewDefaultRepository()
	if r.IsDirty() {
		t.Fatal("fresh repository is dirty")
	}
	r.MarkDirty()
	if !r.IsDirty() {
		t.Fatal("MarkDirty did not take")
	}
	r.ClearDirty()
	if r.IsDirty() {
		t.Fatal("ClearDirty did not take")
	}
	r.MarkDirty()
	r.Reset()
	if r.IsDirty() {
		t.Fatal("Reset did not clear dirty")
	}
}

func TestToneAndCrossoverBounds(t *testing.T) {
	r := NewRepository()
	z, _ := r.Zone(6)

	if st := z.SetTone(ToneMax+1, 0); st != StatusOutOfRange {
		t.Errorf("bass out of range = %v, want OUT_OF_RANGE", st)
	}
	if st := z.SetTone(5, -2); st != StatusSuccess {
		t.Errorf("SetTone = %v, want SUCCESS", st)
	}
	if st := z.SetTone(5, -2); st != StatusAlreadySet {
		t.Errorf("repeat SetTone = %v, want ALREADY_SET", st)
	}
	bass, treble, st := z.Tone()
	if st != StatusSuccess || bass != 5 || treble != -2 {
		t.Errorf("Tone = %d/%d/%v, want 5/-2/SUCCESS", bass, treble, st)
	}

	if st := z.SetHighpassFrequency(CrossoverMinHz - 1); st != StatusOutOfRange {
		t.Errorf("highpass below min = %v, want OUT_OF_RANGE", st)
	}
	if st := z.SetLowpassFrequency(CrossoverMaxHz); st != StatusSuccess {
		t.Errorf("lowpass at max = %v, want SUCCESS", st)
	}
}
