package server

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListenAddr(t *testing.T) {
	assert.Equal(t, ListenAddr{Network: "tcp", Address: "127.0.0.1:8999"}, ParseListenAddr("127.0.0.1:8999"))
	assert.Equal(t, ListenAddr{Network: "unix", Address: "/run/applauncher.sock"}, ParseListenAddr("unix:///run/applauncher.sock"))
}

func TestCreateListeners(t *testing.T) {
	addrs := []ListenAddr{{Network: "tcp", Address: "127.0.0.1:0"}}
	if runtime.GOOS != "windows" {
		addrs = append(addrs, ListenAddr{Network: "unix", Address: filepath.Join(t.TempDir(), "a.sock")})
	}
	listeners, err := CreateListeners(addrs)
	require.NoError(t, err)
	require.Len(t, listeners, len(addrs))
	for _, l := range listeners {
		l.Close()
	}

	_, err = CreateListeners([]ListenAddr{{Network: "tcp", Address: "256.0.0.1:99999"}})
	assert.Error(t, err)
}
