// Package config reads and writes the global settings file.
//
// The file lives at $XDG_CONFIG_HOME/plinth/config.toml and holds the
// per-user defaults: author identity, default license and version
// control tool, the template catalog location, and free-form custom
// keys. Every field is optional; a missing or malformed file degrades
// to the zero configuration with a warning rather than failing, so a
// fresh machine can run plinth without any setup.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"plinth/pkg/errors"
	"plinth/pkg/logging"
	"plinth/pkg/types"
)

// Filename is the name of the settings file inside the plinth config
// directory.
const Filename = "config.toml"

// Config is the global settings file. Pointer fields distinguish
// "absent" from a zero value so resolution can fall through to
// project-level settings.
type Config struct {
	VersionControl *types.VersionControl `toml:"version_control,omitempty"`
	Author         *types.Author         `toml:"author,omitempty"`
	License        *types.License        `toml:"license,omitempty"`
	CustomKeys     *types.CustomKeys     `toml:"custom_keys,omitempty"`

	// TemplatesRepository points at the template catalog used by
	// `plinth git`, either a URL prefix or a filesystem path.
	TemplatesRepository string `toml:"templates_repository,omitempty"`
}

// Path returns the settings file location,
// $XDG_CONFIG_HOME/plinth/config.toml by default.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "plinth", Filename)
}

// Load reads the settings file at path. A missing, unreadable, or
// malformed file yields the zero configuration with a warning; the
// settings file is never a reason to stop.
func Load(path string) Config {
	logger := logging.GetLogger("config")

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Str("path", path).Msg("Settings file not found, using default configuration")
		return Config{}
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		logger.Warn().Str("path", path).Err(err).Msg("Settings file was not properly formatted, using default configuration")
		return Config{}
	}

	return cfg
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to encode settings").
			WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create settings directory").
			WithDetail("path", path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write settings file").
			WithDetail("path", path)
	}

	return nil
}
