package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZubairHyd/Namaaz-Tracker/internal/config"
)

// FilePersister keeps the prayer log blob in a single JSON file under the
// user's config directory.
type FilePersister struct {
	Path string
}

// NewFilePersister resolves the platform config directory and ensures the
// application subdirectory exists with restricted permissions.
func NewFilePersister() (*FilePersister, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrConfigDir, err)
	}

	appDir := filepath.Join(configDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return &FilePersister{Path: filepath.Join(appDir, config.StoreFileName)}, nil
}

// Load reads the blob. A file that does not exist yet is not an error; it is
// simply an empty store.
func (p *FilePersister) Load() ([]byte, error) {
	data, err := os.ReadFile(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrStoreLoad, err)
	}
	return data, nil
}

// Save writes the blob atomically: a temp file in the same directory is
// written, synced, then renamed over the target. A crash mid-write leaves
// the previous blob intact rather than a truncated one.
func (p *FilePersister) Save(data []byte) error {
	dir := filepath.Dir(p.Path)

	tmp, err := os.CreateTemp(dir, config.StoreFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	if err := tmp.Chmod(config.FilePermUserRW); err != nil {
		cleanup()
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}

	if err := os.Rename(tmpName, p.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", config.ErrStoreSave, err)
	}
	return nil
}
