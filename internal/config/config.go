package config

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"applauncher/internal/env"

	"github.com/spf13/viper"
)

/**
 * Application identity
 * @property {string} name - Application name, key of the manifest entry
 * @property {string} platform - Platform sent to the patch catalog
 * @property {string} executable - Program started after a successful update
 */
type AppSection struct {
	Name       string `mapstructure:"name"`
	Platform   string `mapstructure:"platform"`
	Executable string `mapstructure:"executable"`
}

/**
 * Remote patch catalog
 * @property {string} url - Catalog endpoint
 * @property {string} method - HTTP method of the catalog request
 * @property {Duration} timeout - HTTP client timeout, zero means no timeout
 */
type CatalogConfig struct {
	URL     string        `mapstructure:"url"`
	Method  string        `mapstructure:"method"`
	Timeout time.Duration `mapstructure:"timeout"`
}

/**
 * External patch tool
 * @property {string} path - Path of the butler executable
 * @property {string} work_dir - Directory holding downloads and the staging directory
 */
type PatcherConfig struct {
	Path    string `mapstructure:"path"`
	WorkDir string `mapstructure:"work_dir"`
}

/**
 * Launcher self-check
 * @property {string} version - Version of this launcher build
 * @property {string} release_url - Latest-release feed, empty disables the check
 */
type LauncherConfig struct {
	Version    string `mapstructure:"version"`
	ReleaseURL string `mapstructure:"release_url"`
}

/**
 * Logging configuration
 * @property {string} level - Log level (debug/info/warn/error)
 * @property {string} path - Log file path, "console" logs to stderr
 * @property {int} max_size - Rotation size of the log file in megabytes
 */
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Path    string `mapstructure:"path"`
	MaxSize int    `mapstructure:"max_size"`
}

/**
 * Server configuration parameters
 * @property {string} address - Server listening address (e.g. "127.0.0.1:8999")
 * @property {string} mode - gin mode (debug/release/test)
 */
type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"`
}

/**
 * Metrics configuration
 * @property {string} pushgateway - Pushgateway address, empty disables pushing
 */
type MetricsConfig struct {
	Pushgateway string `mapstructure:"pushgateway"`
}

// UIConfig controls the progress consumer.
type UIConfig struct {
	Tick time.Duration `mapstructure:"tick"`
}

type AppConfig struct {
	App      AppSection     `mapstructure:"app"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Patcher  PatcherConfig  `mapstructure:"patcher"`
	Launcher LauncherConfig `mapstructure:"launcher"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	UI       UIConfig       `mapstructure:"ui"`
}

var Config AppConfig

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "unnamed-sdvx-clone")
	v.SetDefault("app.platform", defaultPlatform())
	v.SetDefault("app.executable", "usc-game")
	v.SetDefault("catalog.url", "https://orchestra.fm/api/v0/patch")
	v.SetDefault("catalog.method", "GET")
	v.SetDefault("catalog.timeout", 0)
	v.SetDefault("patcher.path", filepath.Join("tools", "butler"))
	v.SetDefault("patcher.work_dir", ".")
	v.SetDefault("launcher.version", env.Version)
	v.SetDefault("launcher.release_url", "https://api.github.com/repos/orchestrafm/applauncher/releases/latest")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.path", "console")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("server.address", "127.0.0.1:8999")
	v.SetDefault("server.mode", "release")
	v.SetDefault("ui.tick", 16*time.Millisecond)
}

func defaultPlatform() string {
	if runtime.GOOS == "windows" {
		return "win32"
	}
	return runtime.GOOS
}

/**
 * Load application configuration
 * @param {string} path - Explicit config file, empty searches "." and the data directory
 * @returns {(*AppConfig, error)} Loaded configuration
 * @description
 * - A missing config file is not an error, defaults are used
 * - Environment variables APPLAUNCHER_<SECTION>_<KEY> override file values
 */
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("APPLAUNCHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(env.DataDir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

/**
 * Load configuration into the package-level Config
 */
func Init(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	Config = *cfg
	return nil
}
