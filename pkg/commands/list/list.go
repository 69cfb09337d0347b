// Package list implements template discovery.
package list

import (
	"net/url"
	"os"
	"path/filepath"
	"sort"

	"plinth/pkg/errors"
	"plinth/pkg/logging"
	"plinth/pkg/manifest"
)

// Options defines the options for the ListTemplates command.
type Options struct {
	// TemplatesDir is the directory scanned for installed templates.
	// Empty means the per-user template directory.
	TemplatesDir string
	// Catalog is the templates_repository setting. When it points at a
	// local directory its templates are listed as well; remote catalogs
	// are not enumerated.
	Catalog string
}

// Result holds the discovered template names, sorted per source.
type Result struct {
	TemplatesDir string
	Templates    []string

	// CatalogDir is the local catalog directory that was scanned, empty
	// when the catalog is remote or unset.
	CatalogDir       string
	CatalogTemplates []string
}

// ListTemplates returns the names of installed templates: the
// subdirectories of the template directory that carry a manifest, plus
// those of the catalog when it is a local directory. A missing directory
// yields an empty listing.
func ListTemplates(opts Options) (*Result, error) {
	log := logging.GetLogger("commands")

	dir := opts.TemplatesDir
	if dir == "" {
		dir = manifest.GlobalTemplatesDir()
	}
	log.Debug().Str("command", "ListTemplates").Str("dir", dir).Msg("Executing command")

	result := &Result{TemplatesDir: dir}

	templates, err := scanTemplates(dir)
	if err != nil {
		return nil, err
	}
	result.Templates = templates

	if catalogDir := localCatalogDir(opts.Catalog); catalogDir != "" && catalogDir != dir {
		catalogTemplates, err := scanTemplates(catalogDir)
		if err != nil {
			return nil, err
		}
		result.CatalogDir = catalogDir
		result.CatalogTemplates = catalogTemplates
	}

	return result, nil
}

// scanTemplates lists the subdirectories of dir carrying a manifest,
// sorted. A missing dir is an empty listing, not an error.
func scanTemplates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead,
			"failed to read template directory %s", dir)
	}

	var templates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), manifest.Filename)); err != nil {
			continue
		}
		templates = append(templates, entry.Name())
	}

	sort.Strings(templates)
	return templates, nil
}

// localCatalogDir returns the catalog as a directory path, or "" when it
// is a remote URL or unset.
func localCatalogDir(catalog string) string {
	if catalog == "" {
		return ""
	}
	u, err := url.Parse(catalog)
	if err == nil && u.Scheme != "" && u.Host != "" {
		return ""
	}
	return catalog
}
