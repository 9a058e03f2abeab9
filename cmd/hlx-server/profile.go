package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hlx-protocol/hlx-go/pkg/model"
)

// Profile seeds the repository before the service starts. Every section
// is optional; entities not named keep their reset values.
type Profile struct {
	Zones     []ZoneProfile     `yaml:"zones"`
	Groups    []GroupProfile    `yaml:"groups"`
	Sources   []SourceProfile   `yaml:"sources"`
	Presets   []PresetProfile   `yaml:"presets"`
	Favorites []FavoriteProfile `yaml:"favorites"`
}

// ZoneProfile seeds one zone. Pointer fields distinguish "absent" from
// a zero value; absent fields keep the reset value.
type ZoneProfile struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Source  *int   `yaml:"source"`
	Volume  *int   `yaml:"volume"`
	Muted   *bool  `yaml:"muted"`
	Locked  *bool  `yaml:"locked"`
	Balance *int   `yaml:"balance"`
	Preset  *int   `yaml:"preset"`
	Bass    *int   `yaml:"bass"`
	Treble  *int   `yaml:"treble"`
}

// GroupProfile seeds one group.
type GroupProfile struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Zones []int  `yaml:"zones"`
}

// SourceProfile seeds one source name.
type SourceProfile struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// PresetProfile seeds one equalizer preset.
type PresetProfile struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Bands []int  `yaml:"bands"`
}

// FavoriteProfile seeds one favorite name.
type FavoriteProfile struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// LoadProfile reads and parses a YAML profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &p, nil
}

// Apply seeds the repository from the profile. The first refused write
// aborts with an error naming the entity.
func (p *Profile) Apply(repo *model.Repository) error {
	for _, zp := range p.Zones {
		if err := zp.apply(repo); err != nil {
			return err
		}
	}
	for _, gp := range p.Groups {
		if err := gp.apply(repo); err != nil {
			return err
		}
	}
	for _, sp := range p.Sources {
		if err := sp.apply(repo); err != nil {
			return err
		}
	}
	for _, pp := range p.Presets {
		if err := pp.apply(repo); err != nil {
			return err
		}
	}
	for _, fp := range p.Favorites {
		if err := fp.apply(repo); err != nil {
			return err
		}
	}
	return nil
}

func (zp ZoneProfile) apply(repo *model.Repository) error {
	zone, st := repo.Zone(zp.ID)
	if !st.Changed() {
		return fmt.Errorf("zone %d: %s", zp.ID, st)
	}
	if zp.Name != "" {
		if st := zone.SetName(model.TruncateName(zp.Name)); !st.OK() {
			return fmt.Errorf("zone %d name: %s", zp.ID, st)
		}
	}
	if zp.Source != nil {
		if st := zone.SetSource(*zp.Source); !st.OK() {
			return fmt.Errorf("zone %d source: %s", zp.ID, st)
		}
	}
	if zp.Volume != nil {
		if st := zone.SetVolume(*zp.Volume); !st.OK() {
			return fmt.Errorf("zone %d volume: %s", zp.ID, st)
		}
	}
	if zp.Muted != nil {
		if st := zone.SetMuted(*zp.Muted); !st.OK() {
			return fmt.Errorf("zone %d mute: %s", zp.ID, st)
		}
	}
	if zp.Locked != nil {
		if st := zone.SetVolumeLocked(*zp.Locked); !st.OK() {
			return fmt.Errorf("zone %d volume lock: %s", zp.ID, st)
		}
	}
	if zp.Balance != nil {
		if st := zone.SetBalance(*zp.Balance); !st.OK() {
			return fmt.Errorf("zone %d balance: %s", zp.ID, st)
		}
	}
	if zp.Preset != nil {
		if st := zone.SetPreset(*zp.Preset); !st.OK() {
			return fmt.Errorf("zone %d preset: %s", zp.ID, st)
		}
	}
	if zp.Bass != nil || zp.Treble != nil {
		bass, treble, _ := zone.Tone()
		if zp.Bass != nil {
			bass = *zp.Bass
		}
		if zp.Treble != nil {
			treble = *zp.Treble
		}
		if st := zone.SetTone(bass, treble); !st.OK() {
			return fmt.Errorf("zone %d tone: %s", zp.ID, st)
		}
	}
	return nil
}

func (gp GroupProfile) apply(repo *model.Repository) error {
	group, st := repo.Group(gp.ID)
	if !st.Changed() {
		return fmt.Errorf("group %d: %s", gp.ID, st)
	}
	if gp.Name != "" {
		if st := group.SetName(model.TruncateName(gp.Name)); !st.OK() {
			return fmt.Errorf("group %d name: %s", gp.ID, st)
		}
	}
	for _, zoneID := range gp.Zones {
		if st := group.AddZone(zoneID); !st.OK() {
			return fmt.Errorf("group %d zone %d: %s", gp.ID, zoneID, st)
		}
	}
	return nil
}

func (sp SourceProfile) apply(repo *model.Repository) error {
	source, st := repo.Source(sp.ID)
	if !st.Changed() {
		return fmt.Errorf("source %d: %s", sp.ID, st)
	}
	if sp.Name != "" {
		if st := source.SetName(model.TruncateName(sp.Name)); !st.OK() {
			return fmt.Errorf("source %d name: %s", sp.ID, st)
		}
	}
	return nil
}

func (pp PresetProfile) apply(repo *model.Repository) error {
	preset, st := repo.EqualizerPreset(pp.ID)
	if !st.Changed() {
		return fmt.Errorf("preset %d: %s", pp.ID, st)
	}
	if pp.Name != "" {
		if st := preset.SetName(model.TruncateName(pp.Name)); !st.OK() {
			return fmt.Errorf("preset %d name: %s", pp.ID, st)
		}
	}
	if len(pp.Bands) > model.EqualizerBandCount {
		return fmt.Errorf("preset %d: %d bands exceed %d", pp.ID, len(pp.Bands), model.EqualizerBandCount)
	}
	for i, level := range pp.Bands {
		if st := preset.SetBand(i+1, level); !st.OK() {
			return fmt.Errorf("preset %d band %d: %s", pp.ID, i+1, st)
		}
	}
	return nil
}

func (fp FavoriteProfile) apply(repo *model.Repository) error {
	favorite, st := repo.Favorite(fp.ID)
	if !st.Changed() {
		return fmt.Errorf("favorite %d: %s", fp.ID, st)
	}
	if fp.Name != "" {
		if st := favorite.SetName(model.TruncateName(fp.Name)); !st.OK() {
			return fmt.Errorf("favorite %d name: %s", fp.ID, st)
		}
	}
	return nil
}
