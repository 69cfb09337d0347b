package render

import (
	"os"
	"path/filepath"

	"plinth/pkg/logging"
	"plinth/pkg/mustache"
)

// Dirs creates the declared directories under root after substituting
// into their names, and returns the rendered names in declaration
// order. Creation is not recursive: a parent must be declared before
// its children. A directory that cannot be created is logged and
// skipped.
func Dirs(directories []string, ctx *mustache.Context, root string) ([]string, error) {
	logger := logging.GetLogger("render")

	created := make([]string, 0, len(directories))
	for _, dir := range directories {
		rendered, err := renderPath(dir, ctx)
		if err != nil {
			return nil, err
		}

		if err := os.Mkdir(filepath.Join(root, rendered), 0755); err != nil {
			logger.Debug().Str("dir", rendered).Err(err).Msg("Directory not created")
		}
		created = append(created, rendered)
	}

	return created, nil
}
