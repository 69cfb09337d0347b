// Package render materializes a project tree from manifest entries.
//
// Each function covers one pipeline stage: Dirs creates declared
// directories, Files creates declared empty files, Templates renders
// template and script sources, and Static writes in-memory templates
// such as license texts. Substitution applies to both path names and
// file contents; entries are processed in declaration order.
package render

import (
	"strings"

	"plinth/pkg/errors"
	"plinth/pkg/mustache"
)

// renderPath substitutes into a manifest path and validates the result.
func renderPath(path string, ctx *mustache.Context) (string, error) {
	rendered := mustache.Render(path, ctx)
	if strings.ContainsRune(rendered, 0) {
		return "", errors.Newf(errors.ErrPathSubstitution,
			"substituted path for %q is not a valid path", path).
			WithDetail("source", path)
	}
	return rendered, nil
}
