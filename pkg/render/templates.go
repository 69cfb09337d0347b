package render

import (
	"os"
	"path/filepath"

	"plinth/pkg/errors"
	"plinth/pkg/logging"
	"plinth/pkg/mustache"
)

// Templates renders the named template sources into root and returns
// the rendered relative paths in declaration order. Sources are read
// verbatim from base; only the destination path and the content are
// substituted. When executable is set the rendered files are marked
// 0755.
func Templates(sources []string, ctx *mustache.Context, base, root string, executable bool) ([]string, error) {
	logger := logging.GetLogger("render")

	rendered := make([]string, 0, len(sources))
	for _, src := range sources {
		srcPath := filepath.Join(base, src)
		content, err := os.ReadFile(srcPath)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead,
				"failed to open file %s", srcPath)
		}

		rel, err := renderPath(src, ctx)
		if err != nil {
			return nil, err
		}

		dest := filepath.Join(root, rel)
		if err := os.WriteFile(dest, []byte(mustache.Render(string(content), ctx)), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite,
				"failed to create file %s, check that the directory is included in your template.toml", dest)
		}

		if executable {
			if err := os.Chmod(dest, 0755); err != nil {
				logger.Debug().Str("path", dest).Err(err).Msg("Could not mark file executable")
			}
		}

		rendered = append(rendered, rel)
	}

	return rendered, nil
}
