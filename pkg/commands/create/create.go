// Package create implements project materialization, the core plinth
// operation: it turns a template manifest plus the global settings into
// a populated project directory.
package create

import (
	"os"
	"time"

	"plinth/pkg/config"
	"plinth/pkg/errors"
	"plinth/pkg/includes"
	"plinth/pkg/logging"
	"plinth/pkg/manifest"
	"plinth/pkg/render"
	"plinth/pkg/repo"
	"plinth/pkg/resolve"
)

// Options defines the options for the CreateProject command.
type Options struct {
	// Name is the project name, used as-is for the target directory.
	Name string
	// Manifest is the parsed template manifest.
	Manifest *manifest.Manifest
	// Config is the global settings.
	Config config.Config
	// Force materializes into a target that already exists.
	Force bool
	// Now is the timestamp behind the date and year keys; the zero
	// value means the current UTC time.
	Now time.Time
}

// Result reports what CreateProject materialized. Path lists are the
// substituted paths relative to the project root, in declaration order.
type Result struct {
	Name        string
	Directories []string
	Files       []string
	Templates   []string
	Scripts     []string

	LicenseWritten bool
	ReadmeWritten  bool

	// VersionControl names the tool that was initialized, empty when
	// none was.
	VersionControl string
}

// CreateProject materializes a project from a manifest. The pipeline
// order is fixed: directories, empty files, license and README,
// templates, scripts, version control. The target is checked before
// anything is written; a failure later in the pipeline leaves whatever
// was already materialized.
func CreateProject(opts Options) (*Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "CreateProject").Str("project", opts.Name).Msg("Executing command")

	if opts.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "project name cannot be empty")
	}
	if opts.Manifest == nil {
		return nil, errors.New(errors.ErrInvalidInput, "manifest is required")
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	// 1. Merge settings and build the substitution context.
	res := resolve.Settings(opts.Config, opts.Manifest)
	ctx := resolve.BuildContext(opts.Name, res, now)

	// 2. Refuse to touch an existing target unless forced.
	if _, err := os.Stat(opts.Name); err == nil && !opts.Force {
		return nil, errors.Newf(errors.ErrTargetExists,
			"path '%s' already exists, rerun with -f or --force to overwrite", opts.Name)
	}

	// 3. Create the project root.
	if err := os.Mkdir(opts.Name, 0755); err != nil && !os.IsExist(err) {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create project directory %s", opts.Name)
	}

	result := &Result{Name: opts.Name}
	tree := opts.Manifest.Files

	// 4. Declared directories, then declared empty files.
	var err error
	if result.Directories, err = render.Dirs(tree.Directories, ctx, opts.Name); err != nil {
		return nil, err
	}
	if result.Files, err = render.Files(tree.Files, ctx, opts.Name); err != nil {
		return nil, err
	}

	// 5. License and README. These render before the files key exists,
	// so the bundled texts cannot reference it.
	if res.License != nil {
		if text, ok := includes.LicenseText(*res.License); ok {
			if err := render.Static(text, ctx, opts.Name, "LICENSE"); err != nil {
				return nil, err
			}
			result.LicenseWritten = true
		}
	}
	if opts.Manifest.WithReadme {
		if err := render.Static(includes.Readme, ctx, opts.Name, "README.md"); err != nil {
			return nil, err
		}
		result.ReadmeWritten = true
	}

	// 6. Expose the created files to templates and scripts.
	ctx.SetList("files", result.Files)

	if result.Templates, err = render.Templates(tree.Templates, ctx, opts.Manifest.BasePath, opts.Name, false); err != nil {
		return nil, err
	}
	if result.Scripts, err = render.Templates(tree.Scripts, ctx, opts.Manifest.BasePath, opts.Name, true); err != nil {
		return nil, err
	}

	// 7. Version control, over the finished tree.
	if err := repo.Initialize(res.VersionControl, opts.Name); err != nil {
		return nil, err
	}
	if res.VersionControl != nil && res.VersionControl.Known() {
		result.VersionControl = res.VersionControl.String()
	}

	log.Info().Str("project", opts.Name).Msg("Project created")

	return result, nil
}
