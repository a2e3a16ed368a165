package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"applauncher/internal/models"

	"github.com/pelletier/go-toml/v2"
)

/**
 * Load the install manifest
 * @param {string} path - Manifest file path
 * @returns {(*models.InstallManifest, bool, error)} Manifest, whether the file existed, error
 * @description
 * - A missing file yields an empty manifest and found=false
 * - A file that cannot be decoded is reported as models.ErrManifestCorrupt
 */
func Load(path string) (*models.InstallManifest, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.NewInstallManifest(), false, nil
		}
		return nil, false, fmt.Errorf("read manifest '%s': %w", path, err)
	}
	m := models.NewInstallManifest()
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, true, fmt.Errorf("%w: '%s': %v", models.ErrManifestCorrupt, path, err)
	}
	if m.Games == nil {
		m.Games = make(map[string]models.InstallEntry)
	}
	return m, true, nil
}

/**
 * Save the install manifest
 * @param {string} path - Manifest file path
 * @param {*models.InstallManifest} m - Manifest to persist
 * @returns {error} models.ErrManifestWriteFailed on any failure
 * @description
 * - Creates parent directories
 * - Writes a temp file next to the target, syncs it, then renames it over the target,
 *   so a crash never leaves a half-written manifest behind
 */
func Save(path string, m *models.InstallManifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", models.ErrManifestWriteFailed, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: MkdirAll('%s'): %v", models.ErrManifestWriteFailed, dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrManifestWriteFailed, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write '%s': %v", models.ErrManifestWriteFailed, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync '%s': %v", models.ErrManifestWriteFailed, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close '%s': %v", models.ErrManifestWriteFailed, tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename to '%s': %v", models.ErrManifestWriteFailed, path, err)
	}
	committed = true
	return nil
}

// Store binds Load and Save to one manifest file.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

func (s *Store) Load() (*models.InstallManifest, bool, error) {
	return Load(s.Path)
}

func (s *Store) Save(m *models.InstallManifest) error {
	return Save(s.Path, m)
}
