package version

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

var ErrRepositoryNotFound = errors.New("could not find a git repository")

// FindRepositoryRoot walks up from start to the first directory that contains a .git entry
func FindRepositoryRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, "invalid path %s", start)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, git.GitDirName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Wrapf(ErrRepositoryNotFound, "searched upwards from %s", start)
		}
		dir = parent
	}
}

// GitState returns the commit checked out in the repository enclosing dir, and whether the
// work tree has changes against it. Ignored files do not count, untracked ones do.
func GitState(dir string) (commit string, dirty bool, err error) {
	root, err := FindRepositoryRoot(dir)
	if err != nil {
		return "", false, err
	}
	repo, err := git.PlainOpen(root)
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to open git repository at %s", root)
	}
	commit, err = LastCommit(repo)
	if err != nil {
		return "", false, err
	}
	dirty, err = IsRepositoryDirty(repo)
	if err != nil {
		return "", false, err
	}
	return commit, dirty, nil
}

func LastCommit(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(err, "couldn't find commit")
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", errors.Wrap(err, "couldn't find commit")
	}
	return commit.Hash.String(), nil
}

func IsRepositoryDirty(repo *git.Repository) (bool, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return false, errors.Wrap(err, "failed to open work tree")
	}
	status, err := worktree.Status()
	if err != nil {
		return false, errors.Wrap(err, "failed to get work tree status")
	}
	return !status.IsClean(), nil
}
