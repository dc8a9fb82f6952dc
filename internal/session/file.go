package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/inkwell/inkwell-client/internal/types"
)

// FileSlot persists the session as a single JSON file, mode 0600.
type FileSlot struct {
	Path string
}

// DefaultPath returns the conventional session file location under the
// user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "inkwell", "session.json"), nil
}

// Load reads the persisted session. A missing file is an empty session,
// not an error.
func (f FileSlot) Load() (types.Session, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Session{}, nil
		}
		return types.Session{}, err
	}
	var sess types.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// A corrupt slot is treated as absent; the next Establish
		// overwrites it.
		return types.Session{}, nil
	}
	return sess, nil
}

// Save writes the session, creating the parent directory as needed.
func (f FileSlot) Save(sess types.Session) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o600)
}

// Clear removes the slot. Removing an absent slot is not an error.
func (f FileSlot) Clear() error {
	err := os.Remove(f.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
