package git

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository
type Repository struct {
	*git.Repository
	root string
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(absPath, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{
		Repository: repo,
		root:       worktree.Filesystem.Root(),
	}, nil
}

// Root returns the root directory of the working tree
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the current branch name, or "" when HEAD is detached
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		if err == plumbing.ErrReferenceNotFound {
			// Unborn branch: read the symbolic ref directly
			ref, refErr := r.Reference(plumbing.HEAD, false)
			if refErr != nil {
				return "", fmt.Errorf("failed to get HEAD: %w", refErr)
			}
			return ref.Target().Short(), nil
		}
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// GetRepoRoot returns the root directory of the repository containing dir
func GetRepoRoot(dir string) (string, error) {
	repo, err := OpenRepository(dir)
	if err != nil {
		return "", err
	}
	return repo.Root(), nil
}
