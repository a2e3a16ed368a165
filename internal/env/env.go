package env

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	Qualifier    = "fm"
	Organization = "Orchestra FM"
	Application  = "AppLauncher"

	ManifestFileName = "install.manifest"
)

// Set by main.go from build flags
var Version string = "0.1.4"

// (default: %LOCALAPPDATA%\Orchestra FM\AppLauncher\data on Windows, $XDG_DATA_HOME/applauncher on Linux)
var DataDir string = GetDataDir()

/**
 * Get the per-user local data directory of the launcher
 * @returns {string} Returns data directory path
 * @description
 * - APPLAUNCHER_DATA_DIR overrides the platform default
 * - Windows: %LOCALAPPDATA%\Orchestra FM\AppLauncher\data
 * - macOS: ~/Library/Application Support/fm.Orchestra-FM.AppLauncher
 * - Others: $XDG_DATA_HOME/applauncher, falling back to ~/.local/share/applauncher
 */
func GetDataDir() string {
	if dir := os.Getenv("APPLAUNCHER_DATA_DIR"); dir != "" {
		return dir
	}
	return platformDataDir(runtime.GOOS, os.Getenv, homeDir())
}

func platformDataDir(goos string, getenv func(string) string, home string) string {
	switch goos {
	case "windows":
		base := getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, Organization, Application, "data")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support",
			Qualifier+".Orchestra-FM."+Application)
	default:
		base := getenv("XDG_DATA_HOME")
		if base == "" || !filepath.IsAbs(base) {
			base = filepath.Join(home, ".local", "share")
		}
		return filepath.Join(base, "applauncher")
	}
}

// ManifestPath returns the location of install.manifest inside the data directory.
func ManifestPath() string {
	return filepath.Join(DataDir, ManifestFileName)
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
