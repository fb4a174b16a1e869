package gitx

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/fyrsmithlabs/repoguard/internal/policy"
)

var (
	// ErrNotARepository means the path is not inside a git working tree.
	ErrNotARepository = errors.New("not inside a git repository")

	// ErrNothingStaged means the staging area holds no changes.
	ErrNothingStaged = errors.New("nothing is staged")

	// ErrBadStatusLine means a name-status line did not parse into the
	// expected (status, path) or rename/copy triple.
	ErrBadStatusLine = errors.New("unparseable name-status line")
)

// Repository is an open git working tree.
type Repository struct {
	repo *git.Repository
	root string
}

// Open opens the repository containing path, searching upward for the .git
// directory the way git itself does.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, path)
		}
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("repository at %s has no working tree: %w", path, err)
	}

	return &Repository{
		repo: repo,
		root: wt.Filesystem.Root(),
	}, nil
}

// Root returns the top level of the working tree.
func (r *Repository) Root() string {
	return r.root
}

// Remotes returns one record per configured remote URL.
func (r *Repository) Remotes() ([]policy.Remote, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}

	var out []policy.Remote
	for _, remote := range remotes {
		cfg := remote.Config()
		for _, url := range cfg.URLs {
			out = append(out, policy.Remote{Name: cfg.Name, URL: url})
		}
	}
	return out, nil
}
