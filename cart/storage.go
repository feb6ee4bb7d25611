package cart

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
)

// Store persists cart snapshots between visits. It plays the role browser
// local storage plays for the shopper: best-effort, single-device.
type Store interface {
	Load(token string) ([]byte, error)
	Save(token string, data []byte) error
	Delete(token string) error
}

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

var errBadToken = errors.New("cart: invalid snapshot token")

// FileStore keeps one JSON file per cart token under dir.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(token string) (string, error) {
	if !tokenPattern.MatchString(token) {
		return "", errBadToken
	}
	return filepath.Join(s.dir, token+".json"), nil
}

// Load returns nil data (no error) for a cart that was never saved.
func (s *FileStore) Load(token string) ([]byte, error) {
	p, err := s.path(token)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (s *FileStore) Save(token string, data []byte) error {
	p, err := s.path(token)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

func (s *FileStore) Delete(token string) error {
	p, err := s.path(token)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
