package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmarques/hiredash/internal/types"
)

// sessionFile is the well-known name of the cached identity inside the
// state directory.
const sessionFile = "session.json"

// Storage persists the session identity across process restarts.
type Storage interface {
	// LoadIdentity returns the cached identity, or (nil, nil) when none is
	// cached.
	LoadIdentity() (*types.Identity, error)
	SaveIdentity(identity *types.Identity) error
	ClearIdentity() error
}

// FileStorage stores the identity as a JSON file under the state directory,
// readable only by the owning user.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage rooted at the given state directory.
func NewFileStorage(stateDir string) *FileStorage {
	return &FileStorage{path: filepath.Join(stateDir, sessionFile)}
}

// LoadIdentity reads the cached identity. A missing file means no cached
// session.
func (f *FileStorage) LoadIdentity() (*types.Identity, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session cache: %w", err)
	}

	var identity types.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("failed to parse session cache: %w", err)
	}
	if identity.Email == "" {
		return nil, nil
	}
	return &identity, nil
}

// SaveIdentity writes the identity to the cache file with owner-only
// permissions.
func (f *FileStorage) SaveIdentity(identity *types.Identity) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}
	data, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session cache: %w", err)
	}
	return nil
}

// ClearIdentity removes the cache file. A missing file is not an error.
func (f *FileStorage) ClearIdentity() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session cache: %w", err)
	}
	return nil
}
