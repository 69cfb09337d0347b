// Package manifest loads template manifests.
//
// A manifest is a template.toml file describing the project tree to
// materialize: directories and empty files to create, template and
// script sources to render, plus optional project-level settings that
// override the global configuration. Manifests resolve locally first
// and fall back to the per-user template directory, so `plinth new
// rust-lib foo` works from anywhere once the template is installed.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"plinth/pkg/errors"
	"plinth/pkg/logging"
	"plinth/pkg/types"
)

// Filename is the manifest file name inside a template directory.
const Filename = "template.toml"

// FileTree lists the tree entries a template materializes, under the
// manifest's [files] table. All paths are relative to the project root
// and may contain substitution tags.
type FileTree struct {
	// Files are created empty.
	Files []string `toml:"files,omitempty"`

	// Directories are created before any file.
	Directories []string `toml:"directories,omitempty"`

	// Templates are rendered from sources inside the template directory.
	Templates []string `toml:"templates,omitempty"`

	// Scripts render like templates and are marked executable.
	Scripts []string `toml:"scripts,omitempty"`
}

// ProjectConfig is the manifest's [config] table: project-level settings
// that take precedence over the global configuration.
type ProjectConfig struct {
	VersionControl *types.VersionControl `toml:"version_control,omitempty"`
	Version        string                `toml:"version,omitempty"`
}

// Manifest is a parsed template.toml.
type Manifest struct {
	License    *types.License    `toml:"license,omitempty"`
	WithReadme bool              `toml:"with_readme,omitempty"`
	Files      FileTree          `toml:"files"`
	Config     *ProjectConfig    `toml:"config,omitempty"`
	CustomKeys *types.CustomKeys `toml:"custom_keys,omitempty"`

	// BasePath is the directory the manifest was loaded from. Template
	// and script sources resolve relative to it.
	BasePath string `toml:"-"`
}

// GlobalTemplatesDir returns the per-user template directory,
// $XDG_DATA_HOME/plinth/templates by default. Templates installed there
// are usable from any working directory.
func GlobalTemplatesDir() string {
	return filepath.Join(xdg.DataHome, "plinth", "templates")
}

// FindDir resolves a template name to the directory holding its
// manifest. The name is tried as a local path first, then under
// globalDir. Returns ErrConfigNotFound when neither location has a
// manifest.
func FindDir(name, globalDir string) (string, error) {
	logger := logging.GetLogger("manifest")

	if _, err := os.Stat(filepath.Join(name, Filename)); err == nil {
		logger.Debug().Str("dir", name).Msg("Using local template")
		return name, nil
	}

	globalPath := filepath.Join(globalDir, name)
	if _, err := os.Stat(filepath.Join(globalPath, Filename)); err == nil {
		logger.Debug().Str("dir", globalPath).Msg("Using installed template")
		return globalPath, nil
	}

	return "", errors.Newf(errors.ErrConfigNotFound,
		"template %q not found, does it exist?", name).
		WithDetail("local", name).
		WithDetail("global", globalPath)
}

// Load parses the manifest inside dir. Unlike the global settings file,
// a manifest is mandatory: a missing or malformed one is an error.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, Filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigNotFound,
			"file %s could not be opened, does it exist?", path)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "error parsing %s", path)
	}

	m.BasePath = dir
	return &m, nil
}
