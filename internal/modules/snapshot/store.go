package snapshot

import (
	"encoding/json"
	"os"
	"time"
)

// Store persists the last good snapshot across restarts.
type Store interface {
	Load() (*Snapshot, error)
	Save(s *Snapshot) error
}

type envelope struct {
	SavedAt time.Time `json:"savedAt"`
	Data    *Snapshot `json:"data"`
}

// FileStore keeps the snapshot in a JSON file next to the binary. A
// missing or corrupt file reads as no snapshot, not an error.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (*Snapshot, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil
	}
	return env.Data, nil
}

func (f *FileStore) Save(s *Snapshot) error {
	raw, err := json.Marshal(envelope{SavedAt: time.Now().UTC(), Data: s})
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o644)
}
