package persist

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hlx-protocol/hlx-go/pkg/model"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "backup.cbor"))

	repo := model.NewDefaultRepository()
	zone, _ := repo.Zone(3)
	zone.SetVolume(-24)
	zone.SetName("Patio")
	group, _ := repo.Group(2)
	group.AddZone(5)
	group.AddZone(7)

	if err := store.Save(repo.Snapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	restored := model.NewRepository()
	restored.Restore(loaded)

	z, _ := restored.Zone(3)
	if level, st := z.Volume(); !st.OK() || level != -24 {
		t.Errorf("zone 3 volume = %d (%v)", level, st)
	}
	if name, st := z.Name(); !st.OK() || name != "Patio" {
		t.Errorf("zone 3 name = %q (%v)", name, st)
	}
	g, _ := restored.Group(2)
	members := g.Members()
	if len(members) != 2 || members[0] != 5 || members[1] != 7 {
		t.Errorf("group 2 members = %v", members)
	}
}

func TestLoadMissingBlob(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.cbor"))
	if _, err := store.Load(); !errors.Is(err, ErrNoBackup) {
		t.Errorf("Load() error = %v, want ErrNoBackup", err)
	}
}

func TestResetRemovesBlob(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "backup.cbor"))

	repo := model.NewDefaultRepository()
	if err := store.Save(repo.Snapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !store.Exists() {
		t.Fatal("blob missing after save")
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if store.Exists() {
		t.Error("blob still present after reset")
	}
	if err := store.Reset(); err != nil {
		t.Errorf("second Reset() error = %v", err)
	}
}

func TestUninitialisedFieldsSurviveRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "backup.cbor"))

	// A bare repository has every cell uninitialised.
	repo := model.NewRepository()
	if err := store.Save(repo.Snapshot()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	restored := model.NewRepository()
	restored.Restore(loaded)

	z, _ := restored.Zone(1)
	if _, st := z.Volume(); st != model.StatusNotInitialised {
		t.Errorf("zone 1 volume status = %v, want NOT_INITIALISED", st)
	}
}
