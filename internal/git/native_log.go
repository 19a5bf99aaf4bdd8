package git

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// DefaultAbbrevLength is the abbreviated hash length used by the native backend
const DefaultAbbrevLength = 7

// isoStrictLayout matches git's --date=iso-strict output
const isoStrictLayout = "2006-01-02T15:04:05-07:00"

// NativeLogSource reads history with go-git, without the git binary.
// Commits come back in the same topological order as the git backend, even
// when committer dates are skewed. Hashes are abbreviated to a fixed length,
// so a store built with one backend may use different keys than one built
// with the other in large repositories.
type NativeLogSource struct {
	repo         *Repository
	abbrevLength int
}

// NewNativeLogSource creates a LogSource backed by go-git
func NewNativeLogSource(repo *Repository) *NativeLogSource {
	return &NativeLogSource{repo: repo, abbrevLength: DefaultAbbrevLength}
}

// Log returns the commits reachable from HEAD, oldest first, in the same
// topological order as `git log --topo-order --reverse`.
func (s *NativeLogSource) Log(ctx context.Context) ([]LogEntry, error) {
	head, err := s.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return []LogEntry{}, nil
		}
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := s.repo.Log(&gogit.LogOptions{
		From:  head.Hash(),
		Order: gogit.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	defer iter.Close()

	byHash := make(map[plumbing.Hash]*object.Commit)
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		byHash[c.Hash] = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate log: %w", err)
	}

	ordered := topoOrder(head.Hash(), byHash)
	entries := make([]LogEntry, 0, len(ordered))
	for _, c := range ordered {
		entries = append(entries, s.entryFor(c))
	}

	// topoOrder yields children first
	slices.Reverse(entries)
	return entries, nil
}

// topoOrder sorts the commits reachable from tip so that no parent comes
// before any of its children. Like git, released parents go on a stack, so
// the last parent of a merge is emitted first and side branches are not
// intermixed with the mainline.
func topoOrder(tip plumbing.Hash, byHash map[plumbing.Hash]*object.Commit) []*object.Commit {
	children := make(map[plumbing.Hash]int, len(byHash))
	for _, c := range byHash {
		for _, p := range c.ParentHashes {
			if _, ok := byHash[p]; ok {
				children[p]++
			}
		}
	}

	ordered := make([]*object.Commit, 0, len(byHash))
	stack := []plumbing.Hash{tip}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c, ok := byHash[h]
		if !ok {
			continue
		}
		ordered = append(ordered, c)

		for _, p := range c.ParentHashes {
			if _, ok := byHash[p]; !ok {
				continue
			}
			children[p]--
			if children[p] == 0 {
				stack = append(stack, p)
			}
		}
	}
	return ordered
}

func (s *NativeLogSource) entryFor(c *object.Commit) LogEntry {
	full := c.Hash.String()
	abbrev := full
	if len(full) > s.abbrevLength {
		abbrev = full[:s.abbrevLength]
	}
	return LogEntry{
		CommitHash: full,
		AbbrevHash: abbrev,
		AuthorDate: c.Author.When.Format(isoStrictLayout),
		Subject:    subjectLine(c.Message),
	}
}

// subjectLine returns the first line of a commit message, like %s
func subjectLine(message string) string {
	message = strings.TrimLeft(message, "\n")
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}
