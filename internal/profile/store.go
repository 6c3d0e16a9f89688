// internal/profile/store.go

// Package profile persists the single piece of session identity: the user's
// name. The store is injected into the dialogue manager behind a narrow
// read/write interface.
package profile

import (
	"encoding/json"
	"os"

	"movie-chatbot/internal/common/errors"
	"movie-chatbot/internal/common/logger"
)

// Store reads and overwrites the persisted user name. Load returns the empty
// string when no name is known; Save with the empty string clears the record.
type Store interface {
	Load() (string, error)
	Save(name string) error
}

type record struct {
	Name string `json:"name"`
}

// FileStore keeps the record in a small JSON file. A corrupt file is renamed
// with a ".bak" suffix and treated as absent.
type FileStore struct {
	path   string
	logger logger.Logger
}

func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{
		path: path,
		logger: log.With(map[string]interface{}{
			"component": "profile-store",
			"path":      path,
		}),
	}
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.NewProfileReadFailedError(err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("profile file is corrupt, moving it aside", map[string]interface{}{
			"error": err.Error(),
		})
		if renameErr := os.Rename(s.path, s.path+".bak"); renameErr != nil {
			s.logger.Error("failed to move corrupt profile aside", map[string]interface{}{
				"error": renameErr.Error(),
			})
		}
		return "", nil
	}

	return rec.Name, nil
}

func (s *FileStore) Save(name string) error {
	data, err := json.Marshal(record{Name: name})
	if err != nil {
		return errors.NewProfileWriteFailedError(err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.NewProfileWriteFailedError(err)
	}
	return nil
}
