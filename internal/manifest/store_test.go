package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"applauncher/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	m, found, err := Load(filepath.Join(t.TempDir(), "install.manifest"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, m.Len())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.manifest")
	require.NoError(t, os.WriteFile(path, []byte("[games.x\ndir = "), 0644))

	_, found, err := Load(path)
	assert.True(t, found)
	assert.True(t, errors.Is(err, models.ErrManifestCorrupt))
}

func TestLoadOriginalFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.manifest")
	content := "[games.unnamed-sdvx-clone]\ndir = 'C:\\Games\\usc'\npatch = 7\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	entry, ok := m.Get("unnamed-sdvx-clone")
	require.True(t, ok)
	assert.Equal(t, `C:\Games\usc`, entry.Dir)
	assert.Equal(t, uint16(7), entry.Patch)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cases := map[string][]struct {
		name  string
		entry models.InstallEntry
	}{
		"empty": nil,
		"single": {
			{"unnamed-sdvx-clone", models.InstallEntry{Dir: "/opt/usc", Patch: 9}},
		},
		"several": {
			{"a", models.InstallEntry{Dir: "/games/a", Patch: 1}},
			{"b b", models.InstallEntry{Dir: `D:\Games\b "quoted"`, Patch: 65535}},
			{"c.d", models.InstallEntry{Dir: "/games/c", Patch: 0}},
		},
		"duplicate name keeps later": {
			{"a", models.InstallEntry{Dir: "/first", Patch: 1}},
			{"a", models.InstallEntry{Dir: "/second", Patch: 2}},
		},
	}
	for name, entries := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "dir", "install.manifest")
			m := models.NewInstallManifest()
			for _, e := range entries {
				m.Put(e.name, e.entry)
			}
			require.NoError(t, Save(path, m))

			loaded, found, err := Load(path)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, m.Games, loaded.Games)
		})
	}

	m := models.NewInstallManifest()
	m.Put("a", models.InstallEntry{Dir: "/first", Patch: 1})
	m.Put("a", models.InstallEntry{Dir: "/second", Patch: 2})
	entry, _ := m.Get("a")
	assert.Equal(t, "/second", entry.Dir)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "install.manifest")
	m := models.NewInstallManifest()
	m.Put("x", models.InstallEntry{Dir: "/x", Patch: 3})
	require.NoError(t, Save(path, m))
	m.Put("x", models.InstallEntry{Dir: "/x", Patch: 4})
	require.NoError(t, Save(path, m))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "install.manifest", files[0].Name())

	loaded, _, err := Load(path)
	require.NoError(t, err)
	entry, _ := loaded.Get("x")
	assert.Equal(t, uint16(4), entry.Patch)
}

func TestSaveFailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := Save(filepath.Join(blocker, "install.manifest"), models.NewInstallManifest())
	assert.True(t, errors.Is(err, models.ErrManifestWriteFailed))
}

func TestStore(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "install.manifest"))
	m := models.NewInstallManifest()
	m.Put("game", models.InstallEntry{Dir: "/g", Patch: 2})
	require.NoError(t, s.Save(m))
	loaded, found, err := s.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, m.Games, loaded.Games)
}
