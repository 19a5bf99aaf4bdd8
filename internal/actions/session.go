package actions

import (
	"context"
	"fmt"

	"gitramble.dev/gitramble/internal/commits"
	ramblerrors "gitramble.dev/gitramble/internal/errors"
	"gitramble.dev/gitramble/internal/runtime"
	"gitramble.dev/gitramble/internal/utils"
)

// openBrowser is swapped out in tests
var openBrowser = utils.OpenBrowser

// Session exposes the operations of one repository to the presentation layer.
// It is not safe for concurrent use.
type Session struct {
	ctx *runtime.Context
}

// NewSession creates a session over ctx
func NewSession(ctx *runtime.Context) *Session {
	return &Session{ctx: ctx}
}

// Context returns the runtime context the session operates on
func (s *Session) Context() *runtime.Context {
	return s.ctx
}

// Current returns the commits in the most recent log, oldest first
func (s *Session) Current() []commits.Record {
	return s.ctx.Store.Current()
}

// Resolve finds a known commit by hash or unique hash prefix
func (s *Session) Resolve(hash string) (commits.Record, error) {
	return s.ctx.Store.Resolve(hash)
}

// SetSelected marks a commit and saves immediately
func (s *Session) SetSelected(hash string, selected bool) error {
	return s.ctx.Store.SetSelected(hash, selected)
}

// SetNote changes a note in memory; see SavePendingChanges
func (s *Session) SetNote(hash, note string) {
	s.ctx.Store.SetNote(hash, note)
}

// SavePendingChanges writes deferred note edits
func (s *Session) SavePendingChanges() error {
	return s.ctx.Store.SavePendingChanges()
}

// Refresh reads the log of the current branch and reconciles the store with it
func (s *Session) Refresh(ctx context.Context) (commits.ReconcileSummary, error) {
	entries, err := s.ctx.Git.Log(ctx)
	if err != nil {
		return commits.ReconcileSummary{}, fmt.Errorf("failed to read log: %w", err)
	}
	summary, err := s.ctx.Store.Reconcile(entries)
	if err != nil {
		return summary, fmt.Errorf("failed to save commits: %w", err)
	}
	return summary, nil
}

// BranchName returns the branch name derived for a commit
func (s *Session) BranchName(hash string) (string, error) {
	rec, err := s.ctx.Store.Resolve(hash)
	if err != nil {
		return "", err
	}
	return commits.BranchName(rec), nil
}

// Match finds the commit a branch was created from
func (s *Session) Match(branch string) (commits.Record, bool) {
	return s.ctx.Store.Match(branch)
}

// CommitURL returns the hosting site link for a commit
func (s *Session) CommitURL(hash string) (string, error) {
	if s.ctx.RepoURL == "" {
		return "", ramblerrors.ErrNoRepoURL
	}
	rec, err := s.ctx.Store.Resolve(hash)
	if err != nil {
		return "", err
	}
	return s.ctx.RepoURL + "/commit/" + rec.AbbrevHash, nil
}

// OpenCommit opens a commit on the hosting site and returns the URL
func (s *Session) OpenCommit(hash string) (string, error) {
	url, err := s.CommitURL(hash)
	if err != nil {
		return "", err
	}
	s.ctx.Splog.Debug("Opening %s", url)
	if err := openBrowser(url); err != nil {
		return url, fmt.Errorf("failed to open browser: %w", err)
	}
	return url, nil
}
