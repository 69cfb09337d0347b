// Package resolve merges project and global settings and builds the
// substitution context handed to the render pipeline.
//
// Precedence is fixed: manifest settings win over global settings,
// except custom keys, where a key present in both tables resolves to
// the global value. Reserved keys are inserted after all custom keys
// and therefore cannot be shadowed.
package resolve

import (
	"fmt"
	"sort"
	"time"

	"plinth/pkg/config"
	"plinth/pkg/logging"
	"plinth/pkg/manifest"
	"plinth/pkg/mustache"
	"plinth/pkg/types"
)

// DefaultVersion is substituted when neither the manifest nor its
// [config] table carries a version.
const DefaultVersion = "0.1.0"

// Resolution is the outcome of merging a manifest with the global
// settings: the effective license, version, version control tool, and
// author identity, plus the custom key tables from both sources.
type Resolution struct {
	// License is nil when neither source names one. An unknown license
	// still resolves so its name can be substituted, but no license
	// file is generated for it.
	License *types.License

	Version        string
	VersionControl *types.VersionControl
	Author         types.Author

	manifestKeys map[string]string
	globalKeys   map[string]string
}

// Settings merges the manifest with the global configuration. It never
// fails; absent settings degrade to defaults with a warning.
func Settings(cfg config.Config, m *manifest.Manifest) Resolution {
	logger := logging.GetLogger("resolve")

	res := Resolution{
		manifestKeys: m.CustomKeys.Strings(),
		globalKeys:   cfg.CustomKeys.Strings(),
	}

	// Project license wins over the global default.
	res.License = m.License
	if res.License == nil {
		res.License = cfg.License
	}
	switch {
	case res.License == nil:
		logger.Warn().Msg("Requested license not specified, license file not generated")
	case !res.License.Known():
		logger.Warn().Str("license", res.License.String()).Msg("Unknown requested license, license file not generated")
	}

	if m.Config != nil && m.Config.Version != "" {
		res.Version = m.Config.Version
	} else {
		logger.Warn().Msgf("No version info found, defaulting to '%s'", DefaultVersion)
		res.Version = DefaultVersion
	}

	if m.Config != nil && m.Config.VersionControl != nil {
		res.VersionControl = m.Config.VersionControl
	} else {
		res.VersionControl = cfg.VersionControl
	}

	if cfg.Author != nil {
		res.Author = *cfg.Author
	} else {
		logger.Warn().Msg("No author found, name and email defaulting to ''")
	}
	if res.Author.GithubUsername == "" {
		logger.Warn().Msg("No github username found, defaulting to ''")
	}

	return res
}

// BuildContext assembles the substitution context for a project named
// name. Custom keys go in first, the manifest table then the global
// table, each in sorted key order. The reserved keys follow, so a
// custom key colliding with a reserved name loses.
//
// The "files" key is not set here; the pipeline adds it after the
// file materialization step, making it visible to templates and
// scripts only.
func BuildContext(name string, res Resolution, now time.Time) *mustache.Context {
	ctx := mustache.NewContext()

	insertSorted(ctx, res.manifestKeys)
	insertSorted(ctx, res.globalKeys)

	ctx.Set("project", name)
	ctx.Set("Project", capitalized(name))
	ctx.Set("ProjectCamelCase", upperCamelCase(name))
	ctx.SetInt("year", now.Year())
	ctx.Set("version", res.Version)
	ctx.Set("github_username", res.Author.GithubUsername)
	ctx.Set("date", zeroBasedDate(now))
	ctx.Set("name", res.Author.Name)
	ctx.Set("email", res.Author.Email)
	if res.License != nil {
		ctx.Set("license", res.License.String())
	}

	return ctx
}

func insertSorted(ctx *mustache.Context, keys map[string]string) {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ctx.Set(name, keys[name])
	}
}

// zeroBasedDate formats now as month-day-year with zero-based month and
// day components: August 21 2026 renders as "7-20-2026".
func zeroBasedDate(now time.Time) string {
	return fmt.Sprintf("%d-%d-%d", int(now.Month())-1, now.Day()-1, now.Year())
}
