package author_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plinth/pkg/commands/author"
	"plinth/pkg/config"
	"plinth/pkg/errors"
	"plinth/pkg/testutil"
	"plinth/pkg/types"
)

func TestSetAuthorWritesSettings(t *testing.T) {
	root := testutil.TempDir(t, "author")
	path := filepath.Join(root, "plinth", "config.toml")

	result, err := author.SetAuthor(author.Options{
		ConfigPath: path,
		Author: types.Author{
			Name:           "Ada Lovelace",
			Email:          "ada@example.com",
			GithubUsername: "ada",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, path, result.Path)
	assert.Equal(t, "Ada Lovelace", result.Author.Name)

	cfg := config.Load(path)
	require.NotNil(t, cfg.Author)
	assert.Equal(t, "Ada Lovelace", cfg.Author.Name)
	assert.Equal(t, "ada@example.com", cfg.Author.Email)
	assert.Equal(t, "ada", cfg.Author.GithubUsername)
}

func TestSetAuthorKeepsOtherSettings(t *testing.T) {
	root := testutil.TempDir(t, "author-keep")
	path := filepath.Join(root, "config.toml")
	testutil.CreateFile(t, root, "config.toml", `version_control = "git"
license = "MIT"

[author]
name = "Old Name"
email = "old@example.com"
`)

	_, err := author.SetAuthor(author.Options{
		ConfigPath: path,
		Author:     types.Author{Name: "New Name", Email: "new@example.com"},
	})
	require.NoError(t, err)

	cfg := config.Load(path)
	require.NotNil(t, cfg.Author)
	assert.Equal(t, "New Name", cfg.Author.Name)
	assert.Equal(t, "new@example.com", cfg.Author.Email)
	require.NotNil(t, cfg.VersionControl)
	assert.Equal(t, types.VCSGit, cfg.VersionControl.Kind)
	require.NotNil(t, cfg.License)
	assert.Equal(t, types.LicenseMIT, cfg.License.Kind)
}

func TestSetAuthorRequiresName(t *testing.T) {
	root := testutil.TempDir(t, "author-invalid")

	_, err := author.SetAuthor(author.Options{
		ConfigPath: filepath.Join(root, "config.toml"),
		Author:     types.Author{Email: "nameless@example.com"},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ExitError, errors.ExitCode(err))
	testutil.AssertNoFile(t, filepath.Join(root, "config.toml"))
}
