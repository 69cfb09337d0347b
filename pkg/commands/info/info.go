// Package info implements template inspection.
package info

import (
	"os"
	"path/filepath"

	"plinth/pkg/errors"
	"plinth/pkg/logging"
	"plinth/pkg/manifest"
)

// Options defines the options for the TemplateInfo command.
type Options struct {
	// Name is the template to inspect, resolved like `plinth new`:
	// locally first, then in the template directory.
	Name string
	// TemplatesDir overrides the per-user template directory. Empty
	// means the default.
	TemplatesDir string
}

// Result describes a template.
type Result struct {
	// Name is the template name as requested.
	Name string
	// Path is the resolved template directory.
	Path string
	// Manifest is the parsed manifest.
	Manifest *manifest.Manifest
	// Readme is the raw content of the template's own README.md, empty
	// when it has none.
	Readme string
}

// TemplateInfo resolves a template and reports its manifest along with
// its README, if present.
func TemplateInfo(opts Options) (*Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "TemplateInfo").Str("template", opts.Name).Msg("Executing command")

	if opts.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "template name cannot be empty")
	}

	templatesDir := opts.TemplatesDir
	if templatesDir == "" {
		templatesDir = manifest.GlobalTemplatesDir()
	}

	dir, err := manifest.FindDir(opts.Name, templatesDir)
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(dir)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name:     opts.Name,
		Path:     dir,
		Manifest: m,
	}

	// The template's README documents the template itself, as opposed
	// to the rendered one a manifest can request for new projects.
	if readme, err := os.ReadFile(filepath.Join(dir, "README.md")); err == nil {
		result.Readme = string(readme)
	}

	return result, nil
}
