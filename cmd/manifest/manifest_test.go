package manifest

import (
	"bytes"
	"path/filepath"
	"testing"

	"applauncher/internal/env"
	"applauncher/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDataDir(t *testing.T) {
	old := env.DataDir
	env.DataDir = t.TempDir()
	t.Cleanup(func() { env.DataDir = old })
}

func TestSetAndRemove(t *testing.T) {
	useDataDir(t)
	dir := t.TempDir()

	require.NoError(t, setEntry("unnamed-sdvx-clone", dir, 9))
	require.NoError(t, setEntry("other", dir, 1))
	require.NoError(t, setEntry("other", dir, 2))

	m, found, err := store().Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, m.Len())
	e, _ := m.Get("other")
	assert.Equal(t, models.InstallEntry{Dir: dir, Patch: 2}, e)

	require.NoError(t, removeEntry("other"))
	assert.Error(t, removeEntry("other"))

	m, _, err = store().Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"unnamed-sdvx-clone"}, m.Names())
}

func TestPrintManifest(t *testing.T) {
	m := models.NewInstallManifest()
	m.Put("b-game", models.InstallEntry{Dir: filepath.FromSlash("/games/b"), Patch: 12})
	m.Put("a-game", models.InstallEntry{Dir: filepath.FromSlash("/games/a"), Patch: 3})

	var out bytes.Buffer
	printManifest(&out, m)
	assert.Equal(t,
		"NAME    PATCH  DIR\n"+
			"a-game  3      "+filepath.FromSlash("/games/a")+"\n"+
			"b-game  12     "+filepath.FromSlash("/games/b")+"\n",
		out.String())
}
