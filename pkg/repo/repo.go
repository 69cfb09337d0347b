// Package repo initializes version control in freshly materialized
// projects and fetches remote templates.
//
// Git is handled in-process; Mercurial, Darcs, and Pijul run their
// external tools directly with argument vectors, never through a
// shell. A tool that cannot be spawned is fatal, while a tool that
// runs and reports failure is logged and otherwise ignored.
package repo

import (
	"os"
	"os/exec"

	git "github.com/go-git/go-git/v5"

	"plinth/pkg/errors"
	"plinth/pkg/logging"
	"plinth/pkg/types"
)

// Initialize sets up version control in dir. A nil value does nothing;
// an unknown tool warns and does nothing.
func Initialize(vc *types.VersionControl, dir string) error {
	if vc == nil {
		return nil
	}

	switch vc.Kind {
	case types.VCSGit:
		return gitInit(dir)
	case types.VCSMercurial, types.VCSDarcs, types.VCSPijul:
		return toolInit(vc.Kind, dir)
	default:
		logger := logging.GetLogger("repo")
		logger.Warn().
			Str("tool", vc.String()).
			Msg("Version control not supported, supported tools are git, mercurial, darcs, and pijul, ignoring")
		return nil
	}
}

// gitInit creates a git repository in dir and stages everything in it.
// Runs in-process, so it works without a git executable.
func gitInit(dir string) error {
	r, err := git.PlainInit(dir, false)
	if err == git.ErrRepositoryAlreadyExists {
		r, err = git.PlainOpen(dir)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrVCSSpawn, "git failed to initialize in %s", dir)
	}

	wt, err := r.Worktree()
	if err != nil {
		return errors.Wrapf(err, errors.ErrVCSSpawn, "git failed to initialize in %s", dir)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return errors.Wrapf(err, errors.ErrVCSSpawn, "git failed to stage files in %s", dir)
	}

	return nil
}

// toolCommands returns the init-then-add command sequence for an
// external tool.
func toolCommands(kind types.VCSKind) [][]string {
	switch kind {
	case types.VCSMercurial:
		return [][]string{{"hg", "init"}, {"hg", "add"}}
	case types.VCSDarcs:
		return [][]string{{"darcs", "init"}, {"darcs", "add", "--recursive", "."}}
	case types.VCSPijul:
		return [][]string{{"pijul", "init"}, {"pijul", "add", "--recursive", "."}}
	default:
		return nil
	}
}

func toolInit(kind types.VCSKind, dir string) error {
	for _, argv := range toolCommands(kind) {
		if err := runTool(dir, argv); err != nil {
			return err
		}
	}
	return nil
}

// runTool runs one external command inside dir. Spawn failures are
// fatal; the exit status of a tool that did run is not inspected.
func runTool(dir string, argv []string) error {
	logging.LogCommand(argv[0], argv[1:])

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			logger := logging.GetLogger("repo")
			logger.Debug().
				Str("tool", argv[0]).
				Int("status", exitErr.ExitCode()).
				Msg("Version control tool reported failure")
			return nil
		}
		return errors.Wrapf(err, errors.ErrVCSSpawn,
			"%s failed to initialize, is it on your path?", argv[0])
	}

	return nil
}
