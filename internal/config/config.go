package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the optional JSON config file looked up in the config dir.
const FileName = "ligres.cfg.json"

// Settings is the typed view of the loaded configuration.
type Settings struct {
	LogLevel string        `mapstructure:"logLevel"`
	LogsDir  string        `mapstructure:"logsDir"`
	Layout   LayoutConfig  `mapstructure:"layout"`
	Storage  StorageConfig `mapstructure:"storage"`
	Export   ExportConfig  `mapstructure:"export"`
	Window   WindowConfig  `mapstructure:"window"`
	Match    MatchDefaults `mapstructure:"match"`
}

// LayoutConfig holds initial-layout settings.
type LayoutConfig struct {
	EdgePadding float64 `mapstructure:"edgePadding"`
	IDBase      int     `mapstructure:"idBase"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // sqlite | memory
	Path    string `mapstructure:"path"`
}

// ExportConfig holds export destinations.
type ExportConfig struct {
	Dir   string `mapstructure:"dir"`
	Scale int    `mapstructure:"scale"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Scale float64 `mapstructure:"scale"`
}

// MatchDefaults apply when a setup file leaves them out.
type MatchDefaults struct {
	FeePerPlayer int64 `mapstructure:"feePerPlayer"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logsDir", "")

	v.SetDefault("layout.edgePadding", 2.0)
	v.SetDefault("layout.idBase", 100)

	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.path", "./ligres.db")

	v.SetDefault("export.dir", ".")
	v.SetDefault("export.scale", 3)

	v.SetDefault("window.scale", 1.0)

	v.SetDefault("match.feePerPlayer", 0)
}

// Load reads configuration from the JSON file in configDir, if present,
// over the defaults. Environment variables prefixed LIGRES_ override both
// (LIGRES_STORAGE_PATH for storage.path). A missing file is not an error;
// a malformed one is.
func Load(configDir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("LIGRES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(FileName)
	v.SetConfigType("json")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.Layout.EdgePadding < 0 || s.Layout.EdgePadding >= 50 {
		return fmt.Errorf("config: layout.edgePadding must be in [0, 50), got %g", s.Layout.EdgePadding)
	}
	switch s.Storage.Backend {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("config: unknown storage.backend %q", s.Storage.Backend)
	}
	if s.Export.Scale < 1 {
		return fmt.Errorf("config: export.scale must be >= 1, got %d", s.Export.Scale)
	}
	if s.Match.FeePerPlayer < 0 {
		return fmt.Errorf("config: match.feePerPlayer must not be negative")
	}
	return nil
}
