package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/hlx-protocol/hlx-go/pkg/model"
)

// BlobVersion is the current backup blob format version.
const BlobVersion = 1

// ErrNoBackup is returned by Load when no backup blob exists.
var ErrNoBackup = errors.New("no backup blob")

// blob is the on-disk envelope around the model snapshot.
type blob struct {
	Version int         `cbor:"1,keyasint"`
	SavedAt time.Time   `cbor:"2,keyasint"`
	State   model.State `cbor:"3,keyasint"`
}

var blobEncMode cbor.EncMode

func init() {
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	var err error
	blobEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create backup CBOR encoder mode: %v", err))
	}
}

// Store manages the backup blob file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes a snapshot as the new backup blob. The write goes through
// a temporary file and a rename so a crash never leaves a torn blob.
func (s *Store) Save(state model.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := blobEncMode.Marshal(blob{
		Version: BlobVersion,
		SavedAt: time.Now(),
		State:   state,
	})
	if err != nil {
		return fmt.Errorf("failed to encode backup blob: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup blob: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace backup blob: %w", err)
	}
	return nil
}

// Load reads the backup blob. ErrNoBackup means the file does not
// exist; any other error means the blob is unreadable.
func (s *Store) Load() (model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.State{}, ErrNoBackup
	}
	if err != nil {
		return model.State{}, fmt.Errorf("failed to read backup blob: %w", err)
	}

	var b blob
	if err := cbor.Unmarshal(data, &b); err != nil {
		return model.State{}, fmt.Errorf("failed to decode backup blob: %w", err)
	}
	if b.Version != BlobVersion {
		return model.State{}, fmt.Errorf("unsupported backup blob version %d", b.Version)
	}
	return b.State, nil
}

// Reset removes the backup blob. A missing file is not an error.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Exists reports whether a backup blob is present.
func (s *Store) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	return err == nil
}
