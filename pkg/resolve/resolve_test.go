package resolve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plinth/pkg/config"
	"plinth/pkg/manifest"
	"plinth/pkg/mustache"
	"plinth/pkg/resolve"
	"plinth/pkg/types"
)

var testNow = time.Date(2026, time.August, 21, 12, 0, 0, 0, time.UTC)

func stringVal(t *testing.T, ctx *mustache.Context, name string) string {
	t.Helper()
	v, ok := ctx.StringValue(name)
	require.True(t, ok, "expected %q to be bound", name)
	return v
}

func TestSettingsManifestWinsOverGlobal(t *testing.T) {
	cfg := config.Config{
		License:        &types.License{Kind: types.LicenseMIT},
		VersionControl: &types.VersionControl{Kind: types.VCSGit},
	}
	m := &manifest.Manifest{
		License: &types.License{Kind: types.LicenseBSD3},
		Config: &manifest.ProjectConfig{
			Version:        "2.0.0",
			VersionControl: &types.VersionControl{Kind: types.VCSDarcs},
		},
	}

	res := resolve.Settings(cfg, m)

	require.NotNil(t, res.License)
	assert.Equal(t, types.LicenseBSD3, res.License.Kind)
	assert.Equal(t, "2.0.0", res.Version)
	require.NotNil(t, res.VersionControl)
	assert.Equal(t, types.VCSDarcs, res.VersionControl.Kind)
}

func TestSettingsFallsBackToGlobal(t *testing.T) {
	cfg := config.Config{
		License:        &types.License{Kind: types.LicenseMIT},
		VersionControl: &types.VersionControl{Kind: types.VCSGit},
		Author: &types.Author{
			Name:           "Ada Lovelace",
			Email:          "ada@example.com",
			GithubUsername: "ada",
		},
	}
	m := &manifest.Manifest{}

	res := resolve.Settings(cfg, m)

	require.NotNil(t, res.License)
	assert.Equal(t, types.LicenseMIT, res.License.Kind)
	require.NotNil(t, res.VersionControl)
	assert.Equal(t, types.VCSGit, res.VersionControl.Kind)
	assert.Equal(t, "Ada Lovelace", res.Author.Name)
	assert.Equal(t, "ada", res.Author.GithubUsername)
}

func TestSettingsDefaults(t *testing.T) {
	res := resolve.Settings(config.Config{}, &manifest.Manifest{})

	assert.Nil(t, res.License)
	assert.Nil(t, res.VersionControl)
	assert.Equal(t, resolve.DefaultVersion, res.Version)
	assert.Empty(t, res.Author.Name)
	assert.Empty(t, res.Author.Email)
}

func TestSettingsVersionComesFromManifestOnly(t *testing.T) {
	m := &manifest.Manifest{Config: &manifest.ProjectConfig{Version: "0.9.1"}}

	res := resolve.Settings(config.Config{}, m)
	assert.Equal(t, "0.9.1", res.Version)

	// An empty [config] table still falls back to the default.
	res = resolve.Settings(config.Config{}, &manifest.Manifest{Config: &manifest.ProjectConfig{}})
	assert.Equal(t, resolve.DefaultVersion, res.Version)
}

func TestBuildContextReservedKeys(t *testing.T) {
	cfg := config.Config{
		Author: &types.Author{
			Name:           "Ada Lovelace",
			Email:          "ada@example.com",
			GithubUsername: "ada",
		},
	}
	m := &manifest.Manifest{
		License: &types.License{Kind: types.LicenseMIT},
		Config:  &manifest.ProjectConfig{Version: "1.2.3"},
	}

	ctx := resolve.BuildContext("my-awesome-project", resolve.Settings(cfg, m), testNow)

	assert.Equal(t, "my-awesome-project", stringVal(t, ctx, "project"))
	assert.Equal(t, "My-awesome-project", stringVal(t, ctx, "Project"))
	assert.Equal(t, "MyAwesomeProject", stringVal(t, ctx, "ProjectCamelCase"))
	assert.Equal(t, "2026", stringVal(t, ctx, "year"))
	assert.Equal(t, "1.2.3", stringVal(t, ctx, "version"))
	assert.Equal(t, "ada", stringVal(t, ctx, "github_username"))
	assert.Equal(t, "Ada Lovelace", stringVal(t, ctx, "name"))
	assert.Equal(t, "ada@example.com", stringVal(t, ctx, "email"))
	assert.Equal(t, "MIT", stringVal(t, ctx, "license"))
}

func TestBuildContextDateIsZeroBased(t *testing.T) {
	ctx := resolve.BuildContext("p", resolve.Settings(config.Config{}, &manifest.Manifest{}), testNow)

	// August 21 renders with month and day shifted down by one.
	assert.Equal(t, "7-20-2026", stringVal(t, ctx, "date"))

	jan1 := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	ctx = resolve.BuildContext("p", resolve.Settings(config.Config{}, &manifest.Manifest{}), jan1)
	assert.Equal(t, "0-0-2027", stringVal(t, ctx, "date"))
}

func TestBuildContextNoLicenseKey(t *testing.T) {
	ctx := resolve.BuildContext("p", resolve.Settings(config.Config{}, &manifest.Manifest{}), testNow)

	assert.False(t, ctx.Has("license"))
}

func TestBuildContextUnknownLicenseKeepsName(t *testing.T) {
	m := &manifest.Manifest{License: &types.License{Kind: types.LicenseUnknown, Raw: "WTFPL"}}

	ctx := resolve.BuildContext("p", resolve.Settings(config.Config{}, m), testNow)

	assert.Equal(t, "WTFPL", stringVal(t, ctx, "license"))
}

func TestBuildContextCustomKeys(t *testing.T) {
	cfg := config.Config{
		CustomKeys: &types.CustomKeys{Values: map[string]interface{}{
			"ext":    "rs",
			"editor": "hx",
		}},
	}
	m := &manifest.Manifest{
		CustomKeys: &types.CustomKeys{Values: map[string]interface{}{
			"ext":   "toml",
			"build": "cargo",
		}},
	}

	ctx := resolve.BuildContext("p", resolve.Settings(cfg, m), testNow)

	// A key in both tables resolves to the global value.
	assert.Equal(t, "rs", stringVal(t, ctx, "ext"))
	assert.Equal(t, "cargo", stringVal(t, ctx, "build"))
	assert.Equal(t, "hx", stringVal(t, ctx, "editor"))
}

func TestBuildContextReservedKeysCannotBeShadowed(t *testing.T) {
	cfg := config.Config{
		CustomKeys: &types.CustomKeys{Values: map[string]interface{}{
			"year": "1984",
		}},
	}
	m := &manifest.Manifest{
		CustomKeys: &types.CustomKeys{Values: map[string]interface{}{
			"project": "hijacked",
		}},
		Config: &manifest.ProjectConfig{Version: "1.0.0"},
	}

	ctx := resolve.BuildContext("real-name", resolve.Settings(cfg, m), testNow)

	assert.Equal(t, "real-name", stringVal(t, ctx, "project"))
	assert.Equal(t, "2026", stringVal(t, ctx, "year"))
}

func TestBuildContextSkipsNonStringCustomKeys(t *testing.T) {
	m := &manifest.Manifest{
		CustomKeys: &types.CustomKeys{Values: map[string]interface{}{
			"ext":   "rs",
			"count": int64(3),
			"flags": []interface{}{"a"},
		}},
	}

	ctx := resolve.BuildContext("p", resolve.Settings(config.Config{}, m), testNow)

	assert.Equal(t, "rs", stringVal(t, ctx, "ext"))
	assert.False(t, ctx.Has("count"))
	assert.False(t, ctx.Has("flags"))
}

func TestBuildContextOmitsFilesKey(t *testing.T) {
	ctx := resolve.BuildContext("p", resolve.Settings(config.Config{}, &manifest.Manifest{}), testNow)

	assert.False(t, ctx.Has("files"))
}
