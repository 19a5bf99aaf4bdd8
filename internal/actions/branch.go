package actions

import (
	"context"
	"fmt"
	"slices"

	"gitramble.dev/gitramble/internal/commits"
	ramblerrors "gitramble.dev/gitramble/internal/errors"
)

// AnnotatedBranches lists local branches with the note or subject of the
// commit each was created from. The checked out branch carries a "* " marker.
// Unless all is set only gitramble branches are listed.
func (s *Session) AnnotatedBranches(ctx context.Context, all bool) ([]string, error) {
	branches, err := s.ctx.Git.ListBranches(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.ctx.Git.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	listing := make([]string, 0, len(branches))
	for _, branch := range branches {
		if !all && !commits.IsGitrambleBranch(branch) {
			continue
		}
		if branch == current {
			branch = "* " + branch
		}
		listing = append(listing, branch)
	}
	return s.ctx.Store.AnnotateBranchList(listing), nil
}

// CreateBranch creates and checks out the branch for a commit, then refreshes.
// Unless force is set the working tree must be clean.
func (s *Session) CreateBranch(ctx context.Context, hash string, force bool) (string, error) {
	rec, err := s.ctx.Store.Resolve(hash)
	if err != nil {
		return "", err
	}
	if err := s.ensureClean(ctx, force); err != nil {
		return "", err
	}

	name := commits.BranchName(rec)
	if err := s.ctx.Git.CreateBranchAt(ctx, name, rec.AbbrevHash); err != nil {
		return "", err
	}
	s.ctx.Splog.Debug("Created %s at %s", name, rec.AbbrevHash)

	if _, err := s.Refresh(ctx); err != nil {
		return name, err
	}
	return name, nil
}

// CheckoutBranch checks out the branch named by an annotated listing entry,
// then refreshes. Unless force is set the working tree must be clean.
func (s *Session) CheckoutBranch(ctx context.Context, annotated string, force bool) (string, error) {
	name := commits.BranchFromAnnotated(annotated)
	if name == "" {
		return "", fmt.Errorf("no branch given")
	}

	current, err := s.ctx.Git.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	if name == current {
		return name, nil
	}
	if err := s.ensureExists(ctx, name); err != nil {
		return "", err
	}
	if err := s.ensureClean(ctx, force); err != nil {
		return "", err
	}

	if err := s.ctx.Git.CheckoutBranch(ctx, name); err != nil {
		return "", err
	}

	if _, err := s.Refresh(ctx); err != nil {
		return name, err
	}
	return name, nil
}

// DeleteBranch deletes the branch named by an annotated listing entry, then
// refreshes. The checked out branch cannot be deleted.
func (s *Session) DeleteBranch(ctx context.Context, annotated string) (string, error) {
	name := commits.BranchFromAnnotated(annotated)
	if name == "" {
		return "", fmt.Errorf("no branch given")
	}

	current, err := s.ctx.Git.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	if name == current {
		return "", fmt.Errorf("cannot delete %s: it is checked out", name)
	}
	if err := s.ensureExists(ctx, name); err != nil {
		return "", err
	}

	if err := s.ctx.Git.DeleteBranch(ctx, name); err != nil {
		return "", err
	}

	if _, err := s.Refresh(ctx); err != nil {
		return name, err
	}
	return name, nil
}

func (s *Session) ensureClean(ctx context.Context, force bool) error {
	if force {
		return nil
	}
	clean, err := s.ctx.Git.IsClean(ctx)
	if err != nil {
		return err
	}
	if !clean {
		return ramblerrors.ErrDirtyWorktree
	}
	return nil
}

func (s *Session) ensureExists(ctx context.Context, name string) error {
	branches, err := s.ctx.Git.ListBranches(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(branches, name) {
		return ramblerrors.NewBranchNotFoundError(name)
	}
	return nil
}
