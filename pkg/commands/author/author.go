// Package author implements updating the author identity in the global
// settings file.
package author

import (
	"plinth/pkg/config"
	"plinth/pkg/errors"
	"plinth/pkg/logging"
	"plinth/pkg/types"
)

// Options defines the options for the SetAuthor command.
type Options struct {
	// ConfigPath overrides the settings file location. Empty means the
	// default per-user path.
	ConfigPath string
	// Author is the identity to record.
	Author types.Author
}

// Result reports the recorded identity and where it was written.
type Result struct {
	Path   string
	Author types.Author
}

// SetAuthor records the author identity in the global settings file,
// preserving every other setting already present.
func SetAuthor(opts Options) (*Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "SetAuthor").Str("name", opts.Author.Name).Msg("Executing command")

	if opts.Author.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "author name cannot be empty")
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.Path()
	}

	cfg := config.Load(path)
	author := opts.Author
	cfg.Author = &author

	if err := config.Save(path, cfg); err != nil {
		return nil, err
	}

	log.Info().Str("path", path).Msg("Author settings saved")
	return &Result{Path: path, Author: author}, nil
}
