package create

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"plinth/pkg/config"
	"plinth/pkg/errors"
	"plinth/pkg/logging"
	"plinth/pkg/manifest"
	"plinth/pkg/repo"
)

// RepositoryOptions defines the options for the CreateFromRepository
// command.
type RepositoryOptions struct {
	// Repository is the template catalog location templates resolve
	// against: a URL such as "https://github.com", or a filesystem
	// path.
	Repository string
	// Template is the template reference inside the catalog, for
	// example "user/repo".
	Template string
	// Name is the project name, used as-is for the target directory.
	Name string
	// Config is the global settings.
	Config config.Config
	// Force materializes into a target that already exists.
	Force bool
	// Now is the timestamp behind the date and year keys; the zero
	// value means the current UTC time.
	Now time.Time
}

// CreateFromRepository fetches a template from the catalog into a
// temporary directory and materializes a project from it. The fetched
// copy is removed afterwards; only the materialized project remains.
func CreateFromRepository(opts RepositoryOptions) (*Result, error) {
	log := logging.GetLogger("commands")
	log.Debug().
		Str("command", "CreateFromRepository").
		Str("template", opts.Template).
		Str("project", opts.Name).
		Msg("Executing command")

	if opts.Template == "" {
		return nil, errors.New(errors.ErrInvalidInput, "template reference cannot be empty")
	}

	source := templateSource(opts.Repository, opts.Template)

	tmp, err := os.MkdirTemp("", "plinth-"+strings.ReplaceAll(opts.Template, "/", "-")+"-")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create temporary directory")
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	if err := repo.CloneTemplate(source, tmp); err != nil {
		return nil, err
	}

	m, err := manifest.Load(tmp)
	if err != nil {
		return nil, err
	}

	return CreateProject(Options{
		Name:     opts.Name,
		Manifest: m,
		Config:   opts.Config,
		Force:    opts.Force,
		Now:      opts.Now,
	})
}

// templateSource resolves a template reference against the catalog
// location. URL catalogs join the reference as path segments; anything
// else is treated as a filesystem path.
func templateSource(repository, template string) string {
	u, err := url.Parse(repository)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return filepath.Join(repository, template)
	}

	return u.JoinPath(template).String()
}
