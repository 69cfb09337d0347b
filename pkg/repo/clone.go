package repo

import (
	git "github.com/go-git/go-git/v5"

	"plinth/pkg/errors"
	"plinth/pkg/logging"
)

// CloneTemplate fetches a template repository into dir. Only the latest
// revision is fetched; template history is of no use locally. The url
// may be anything git understands, including a filesystem path.
func CloneTemplate(url, dir string) error {
	logger := logging.GetLogger("repo")
	logger.Info().Str("url", url).Str("dir", dir).Msg("Fetching template")

	_, err := git.PlainClone(dir, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateFetch,
			"failed to fetch template from %s", url)
	}

	return nil
}
