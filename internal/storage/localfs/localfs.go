// Package localfs は storage.Storage のローカルディスク実装。
package localfs

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	root      string
	urlPrefix string
}

// New はdirをルートとするストアを作る。保存パスはurlPrefix配下で配信される。
func New(dir, urlPrefix string) *Store {
	return &Store{root: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

func (s *Store) abs(p string) string {
	return filepath.Join(s.root, filepath.FromSlash(p))
}

func (s *Store) Exists(path string) bool {
	_, err := os.Stat(s.abs(path))
	return err == nil
}

func (s *Store) Put(path string, r io.Reader) (string, error) {
	abs := s.abs(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) Move(oldPath, newPath string) error {
	newAbs := s.abs(newPath)
	if err := os.MkdirAll(filepath.Dir(newAbs), 0o755); err != nil {
		return err
	}
	return os.Rename(s.abs(oldPath), newAbs)
}

func (s *Store) Delete(path string) error {
	return os.Remove(s.abs(path))
}

func (s *Store) DeleteDirectory(path string) error {
	return os.RemoveAll(s.abs(path))
}

func (s *Store) URL(path string) string {
	return s.urlPrefix + "/" + strings.TrimPrefix(path, "/")
}
