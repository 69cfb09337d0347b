package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plinth/pkg/errors"
	"plinth/pkg/mustache"
	"plinth/pkg/render"
	"plinth/pkg/testutil"
)

func testContext() *mustache.Context {
	ctx := mustache.NewContext()
	ctx.Set("project", "raven")
	ctx.Set("ext", "rs")
	ctx.SetInt("year", 2026)
	return ctx
}

func TestDirs(t *testing.T) {
	root := testutil.TempDir(t, "render")

	created, err := render.Dirs([]string{"src", "src/{{project}}", "tests"}, testContext(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src", "src/raven", "tests"}, created)
	assert.True(t, testutil.DirExists(t, filepath.Join(root, "src")))
	assert.True(t, testutil.DirExists(t, filepath.Join(root, "src", "raven")))
	assert.True(t, testutil.DirExists(t, filepath.Join(root, "tests")))
}

func TestDirsSkipsUndeclaredParents(t *testing.T) {
	root := testutil.TempDir(t, "render")

	// "deep/nested" has no declared parent, so creation fails and is
	// skipped without failing the run.
	created, err := render.Dirs([]string{"deep/nested", "src"}, testContext(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"deep/nested", "src"}, created)
	assert.False(t, testutil.DirExists(t, filepath.Join(root, "deep", "nested")))
	assert.True(t, testutil.DirExists(t, filepath.Join(root, "src")))
}

func TestFiles(t *testing.T) {
	root := testutil.TempDir(t, "render")
	testutil.CreateDir(t, root, "src")

	created, err := render.Files([]string{"src/lib.{{ext}}", "Makefile"}, testContext(), root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/lib.rs", "Makefile"}, created)
	testutil.AssertFileContent(t, filepath.Join(root, "src", "lib.rs"), "")
	testutil.AssertFileContent(t, filepath.Join(root, "Makefile"), "")
}

func TestFilesMissingDirectoryFails(t *testing.T) {
	root := testutil.TempDir(t, "render")

	_, err := render.Files([]string{"missing/file.txt"}, testContext(), root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, errors.ExitWriteFailure, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "template.toml")
}

func TestFilesInvalidSubstitutedPath(t *testing.T) {
	root := testutil.TempDir(t, "render")

	ctx := testContext()
	ctx.Set("bad", "nul\x00byte")

	_, err := render.Files([]string{"{{bad}}.txt"}, ctx, root)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathSubstitution))
	assert.Equal(t, errors.ExitWriteFailure, errors.ExitCode(err))
}

func TestTemplates(t *testing.T) {
	base := testutil.TempDir(t, "template")
	testutil.CreateFile(t, base, "Cargo.toml", "[package]\nname = \"{{project}}\"\n")

	root := testutil.TempDir(t, "render")

	rendered, err := render.Templates([]string{"Cargo.toml"}, testContext(), base, root, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Cargo.toml"}, rendered)
	testutil.AssertFileContent(t, filepath.Join(root, "Cargo.toml"),
		"[package]\nname = \"raven\"\n")
}

func TestTemplatesSubstitutesDestination(t *testing.T) {
	base := testutil.TempDir(t, "template")
	testutil.CreateFile(t, base, "src/main.{{ext}}", "fn main() {}\n")

	root := testutil.TempDir(t, "render")
	testutil.CreateDir(t, root, "src")

	rendered, err := render.Templates([]string{"src/main.{{ext}}"}, testContext(), base, root, false)
	require.NoError(t, err)

	// The source is read verbatim while the destination substitutes.
	assert.Equal(t, []string{"src/main.rs"}, rendered)
	testutil.AssertFileContent(t, filepath.Join(root, "src", "main.rs"), "fn main() {}\n")
}

func TestTemplatesSeeFilesKey(t *testing.T) {
	base := testutil.TempDir(t, "template")
	testutil.CreateFile(t, base, "MANIFEST", "{{#files}}{{.}}\n{{/files}}")

	root := testutil.TempDir(t, "render")

	ctx := testContext()
	ctx.SetList("files", []string{"src/lib.rs", "Makefile"})

	_, err := render.Templates([]string{"MANIFEST"}, ctx, base, root, false)
	require.NoError(t, err)

	testutil.AssertFileContent(t, filepath.Join(root, "MANIFEST"), "src/lib.rs\nMakefile\n")
}

func TestTemplatesMissingSourceFails(t *testing.T) {
	base := testutil.TempDir(t, "template")
	root := testutil.TempDir(t, "render")

	_, err := render.Templates([]string{"nope.txt"}, testContext(), base, root, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
	assert.Equal(t, errors.ExitNotFound, errors.ExitCode(err))
}

func TestTemplatesUndeclaredDestinationDirFails(t *testing.T) {
	base := testutil.TempDir(t, "template")
	testutil.CreateFile(t, base, "src/main.rs", "fn main() {}\n")

	root := testutil.TempDir(t, "render")

	_, err := render.Templates([]string{"src/main.rs"}, testContext(), base, root, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Contains(t, err.Error(), "template.toml")
}

func TestScriptsAreExecutable(t *testing.T) {
	testutil.SkipOnWindows(t)

	base := testutil.TempDir(t, "template")
	testutil.CreateFile(t, base, "build.sh", "#!/bin/sh\necho {{project}}\n")

	root := testutil.TempDir(t, "render")

	rendered, err := render.Templates([]string{"build.sh"}, testContext(), base, root, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"build.sh"}, rendered)

	info, err := os.Stat(filepath.Join(root, "build.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	testutil.AssertFileContent(t, filepath.Join(root, "build.sh"), "#!/bin/sh\necho raven\n")
}

func TestStatic(t *testing.T) {
	root := testutil.TempDir(t, "render")

	err := render.Static("Copyright (c) {{year}}\n", testContext(), root, "LICENSE")
	require.NoError(t, err)

	testutil.AssertFileContent(t, filepath.Join(root, "LICENSE"), "Copyright (c) 2026\n")
}

func TestStaticMissingRootFails(t *testing.T) {
	root := filepath.Join(testutil.TempDir(t, "render"), "missing")

	err := render.Static("content", testContext(), root, "LICENSE")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, errors.ExitWriteFailure, errors.ExitCode(err))
}
