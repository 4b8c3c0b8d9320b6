package artifact

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Networkcaretaker/sebastians-sub000/pkg/apperr"
)

// Store is the narrow contract the publication pipeline needs: put a
// document and get back a retrievable URL, delete it again, read it back
// for the public endpoint.
type Store interface {
	Put(path string, data []byte) (string, error)
	Get(path string) ([]byte, error)
	Delete(path string) error
}

// LocalStore writes artifacts under a directory served statically by the
// HTTP layer.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Put(path string, data []byte) (string, error) {
	full := filepath.Join(s.Dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", apperr.Storage("put "+path, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", apperr.Storage("put "+path, err)
	}
	return s.BaseURL + "/" + path, nil
}

func (s *LocalStore) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NotFound("artifact", 0)
		}
		return nil, apperr.Storage("get "+path, err)
	}
	return data, nil
}

// Delete is idempotent: removing a missing artifact is not an error.
func (s *LocalStore) Delete(path string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(path)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperr.Storage("delete "+path, err)
	}
	return nil
}
