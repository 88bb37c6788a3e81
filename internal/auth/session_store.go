package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/virgilvox/launchcue-sub001/pkg/sdk"
)

const sessionFile = "session.json"

// FileStore implements sdk.Store using a JSON file in the user's home
// directory. The whole snapshot (identity, token, roster, current team) lives
// in one file so the records are always written and cleared together.
type FileStore struct {
	path string
}

// Ensure FileStore implements sdk.Store at compile time.
var _ sdk.Store = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at ~/.launchcue.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(home, ".launchcue")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create .launchcue directory: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, sessionFile)}, nil
}

// NewFileStoreAt creates a FileStore backed by an explicit path. Used in tests.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the session snapshot to the file.
func (s *FileStore) Save(state *sdk.SessionState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

// Load reads the session snapshot, returning (nil, nil) when none is stored.
func (s *FileStore) Load() (*sdk.SessionState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var state sdk.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session file: %w", err)
	}
	return &state, nil
}

// Clear removes the session file. Clearing an absent file is not an error.
func (s *FileStore) Clear() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}
