package update

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"applauncher/cmd/root"
	"applauncher/internal/config"
	"applauncher/internal/env"

	"github.com/stretchr/testify/assert"
)

func TestUpdateExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		dir    bool
		want   int
	}{
		{name: "no install directory", status: http.StatusOK, want: root.ExitNoInstallDir},
		{name: "catalog failure", status: http.StatusInternalServerError, dir: true, want: root.ExitFailed},
		{name: "up to date", status: http.StatusOK, dir: true, want: root.ExitOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("[]"))
			}))
			defer catalog.Close()

			oldConfig, oldDataDir, oldDir := config.Config, env.DataDir, installDir
			defer func() {
				config.Config, env.DataDir, installDir = oldConfig, oldDataDir, oldDir
			}()
			env.DataDir = t.TempDir()
			cfg := config.AppConfig{}
			cfg.App.Name = "unnamed-sdvx-clone"
			cfg.App.Platform = "win32"
			cfg.Catalog.URL = catalog.URL
			cfg.Patcher.Path = filepath.Join(t.TempDir(), "butler")
			cfg.Patcher.WorkDir = t.TempDir()
			cfg.UI.Tick = time.Millisecond
			config.Config = cfg
			installDir = ""
			if tt.dir {
				installDir = t.TempDir()
			}

			err := update()
			code := root.ExitOK
			var exit *root.ExitError
			if errors.As(err, &exit) {
				code = exit.Code
			} else if err != nil {
				code = -1
			}
			assert.Equal(t, tt.want, code, "error: %v", err)
		})
	}
}
