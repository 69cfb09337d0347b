package list_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plinth/pkg/commands/list"
	"plinth/pkg/manifest"
	"plinth/pkg/testutil"
)

func TestListTemplates(t *testing.T) {
	dir := testutil.TempDir(t, "templates")

	for _, name := range []string{"rust-lib", "haskell-app", "python-cli"} {
		sub := testutil.CreateDir(t, dir, name)
		testutil.CreateFile(t, sub, manifest.Filename, "[files]\n")
	}

	// Directories without a manifest and loose files are not templates.
	testutil.CreateDir(t, dir, "not-a-template")
	testutil.CreateFile(t, dir, "stray.txt", "")

	result, err := list.ListTemplates(list.Options{TemplatesDir: dir})
	require.NoError(t, err)

	assert.Equal(t, dir, result.TemplatesDir)
	assert.Equal(t, []string{"haskell-app", "python-cli", "rust-lib"}, result.Templates)
}

func TestListTemplatesMissingDir(t *testing.T) {
	dir := filepath.Join(testutil.TempDir(t, "templates"), "missing")

	result, err := list.ListTemplates(list.Options{TemplatesDir: dir})
	require.NoError(t, err)

	assert.Empty(t, result.Templates)
}

func TestListTemplatesWithLocalCatalog(t *testing.T) {
	root := testutil.TempDir(t, "list-catalog")
	installed := testutil.CreateDir(t, root, "installed")
	catalog := testutil.CreateDir(t, root, "catalog")

	sub := testutil.CreateDir(t, installed, "rust-lib")
	testutil.CreateFile(t, sub, manifest.Filename, "[files]\n")
	sub = testutil.CreateDir(t, catalog, "go-cli")
	testutil.CreateFile(t, sub, manifest.Filename, "[files]\n")

	result, err := list.ListTemplates(list.Options{TemplatesDir: installed, Catalog: catalog})
	require.NoError(t, err)

	assert.Equal(t, []string{"rust-lib"}, result.Templates)
	assert.Equal(t, catalog, result.CatalogDir)
	assert.Equal(t, []string{"go-cli"}, result.CatalogTemplates)
}

func TestListTemplatesSkipsRemoteCatalog(t *testing.T) {
	dir := testutil.TempDir(t, "list-remote")

	result, err := list.ListTemplates(list.Options{
		TemplatesDir: dir,
		Catalog:      "https://github.com",
	})
	require.NoError(t, err)

	assert.Empty(t, result.CatalogDir)
	assert.Empty(t, result.CatalogTemplates)
}
