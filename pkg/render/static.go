package render

import (
	"os"
	"path/filepath"

	"plinth/pkg/errors"
	"plinth/pkg/mustache"
)

// Static renders an in-memory template and writes it to filename
// directly under root. The filename is used as given; only the content
// is substituted. License texts and the bundled README render through
// here.
func Static(content string, ctx *mustache.Context, root, filename string) error {
	path := filepath.Join(root, filename)

	if err := os.WriteFile(path, []byte(mustache.Render(content, ctx)), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to create file %s, check that the directory is included in your template.toml", path)
	}

	return nil
}
