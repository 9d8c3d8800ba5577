package storage

import (
	"context"
	"os"
	"path"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/officebook/service-booking/internal/domain"
)

// FileStore is the afero-backed DocumentStore. In production it runs over
// a BasePathFs rooted at the configured data directory; tests run it over
// a MemMapFs. The wrapped Fs is the process-wide connection handle: it is
// created once at startup and shared by every request, which is safe
// because afero filesystems are usable from concurrent goroutines.
type FileStore struct {
	fs  afero.Fs
	log *zap.Logger
}

// NewFileStore creates a FileStore over the given filesystem.
func NewFileStore(fs afero.Fs, log *zap.Logger) *FileStore {
	return &FileStore{fs: fs, log: log}
}

// NewOsFileStore creates a FileStore rooted at dir on the local
// filesystem, creating dir if needed.
func NewOsFileStore(dir string, log *zap.Logger) (*FileStore, error) {
	base := afero.NewOsFs()
	if err := base.MkdirAll(dir, 0o755); err != nil {
		return nil, domain.NewStoreError("init", dir, err)
	}
	return NewFileStore(afero.NewBasePathFs(base, dir), log), nil
}

// Put writes data at p, creating missing parents and overwriting any
// existing document.
func (s *FileStore) Put(_ context.Context, p string, data []byte) error {
	if dir := path.Dir(p); dir != "." && dir != "/" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return domain.NewStoreError("mkdir", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, p, data, 0o644); err != nil {
		return domain.NewStoreError("put", p, err)
	}
	s.log.Debug("document written", zap.String("path", p), zap.Int("bytes", len(data)))
	return nil
}

// Get reads the full contents at p.
func (s *FileStore) Get(_ context.Context, p string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewNotFoundError("document", p)
		}
		return nil, domain.NewStoreError("get", p, err)
	}
	return data, nil
}

// Delete removes the document at p. Absence is reported as (false, nil).
// Removing a non-empty directory fails at the filesystem level, so the
// store never wipes a partition through this call.
func (s *FileStore) Delete(_ context.Context, p string) (bool, error) {
	if _, err := s.fs.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, domain.NewStoreError("stat", p, err)
	}
	if err := s.fs.Remove(p); err != nil {
		return false, domain.NewStoreError("delete", p, err)
	}
	s.log.Debug("document deleted", zap.String("path", p))
	return true, nil
}

// Exists reports whether anything exists at p.
func (s *FileStore) Exists(_ context.Context, p string) (bool, error) {
	ok, err := afero.Exists(s.fs, p)
	if err != nil {
		return false, domain.NewStoreError("stat", p, err)
	}
	return ok, nil
}

// ListFiles recursively enumerates every file under prefix.
func (s *FileStore) ListFiles(_ context.Context, prefix string) ([]string, error) {
	exists, err := afero.DirExists(s.fs, prefix)
	if err != nil {
		return nil, domain.NewStoreError("stat", prefix, err)
	}
	if !exists {
		return []string{}, nil
	}

	seen := make(map[string]struct{})
	walkErr := afero.Walk(s.fs, prefix, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			seen[p] = struct{}{}
		}
		return nil
	})
	if walkErr != nil {
		return nil, domain.NewStoreError("list", prefix, walkErr)
	}

	files := make([]string, 0, len(seen))
	for p := range seen {
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}
