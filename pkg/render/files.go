package render

import (
	"os"
	"path/filepath"

	"plinth/pkg/errors"
	"plinth/pkg/mustache"
)

// Files creates the declared files empty under root, substituting into
// their names, and returns the rendered relative paths in declaration
// order. The returned list is what the pipeline later exposes to
// templates under the "files" key.
func Files(files []string, ctx *mustache.Context, root string) ([]string, error) {
	created := make([]string, 0, len(files))
	for _, file := range files {
		rendered, err := renderPath(file, ctx)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(root, rendered)
		f, err := os.Create(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite,
				"failed to create file %s, check that the directory is included in your template.toml", path)
		}
		_ = f.Close()

		created = append(created, rendered)
	}

	return created, nil
}
