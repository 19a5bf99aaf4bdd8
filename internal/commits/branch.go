package commits

import (
	"fmt"
	"strings"
)

const (
	// BranchPrefix starts every branch name gitramble derives
	BranchPrefix = "gitramble-"

	// AnnotationSeparator joins a branch name and its annotation in listings.
	// Ref names cannot contain spaces, so the first occurrence always ends the name.
	AnnotationSeparator = " | "

	// currentBranchMarker is how `git branch` flags the checked out branch
	currentBranchMarker = "* "

	branchHashLength = 7
)

// BranchName derives the branch name for a record from its sequence and hash.
// Names sort in creation order and map back to exactly one record.
func BranchName(r Record) string {
	hash := r.AbbrevHash
	if len(hash) > branchHashLength {
		hash = hash[:branchHashLength]
	}
	return fmt.Sprintf("%s%05d-%s", BranchPrefix, r.Sequence, hash)
}

// IsGitrambleBranch reports whether a branch name carries the gitramble prefix
func IsGitrambleBranch(branch string) bool {
	return strings.HasPrefix(branch, BranchPrefix)
}

// Match finds the record whose derived branch name equals branch. Records
// that are no longer current are included, since their branches outlive them.
func (s *Store) Match(branch string) (Record, bool) {
	branch = strings.TrimSpace(branch)
	if !IsGitrambleBranch(branch) {
		return Record{}, false
	}
	for _, hash := range s.order {
		rec := s.records[hash]
		if BranchName(*rec) == branch {
			return *rec, true
		}
	}
	return Record{}, false
}

// AnnotateBranchList appends the matching commit's note, or subject when it
// has no note, to every branch that belongs to a known record. Other entries
// are returned unchanged apart from surrounding whitespace.
func (s *Store) AnnotateBranchList(branches []string) []string {
	out := make([]string, 0, len(branches))
	for _, entry := range branches {
		marker, name := splitMarker(strings.TrimSpace(entry))
		line := marker + name
		if rec, ok := s.Match(name); ok {
			if label := rec.Label(); label != "" {
				line += AnnotationSeparator + label
			}
		}
		out = append(out, line)
	}
	return out
}

// BranchFromAnnotated recovers the branch name from an annotated listing entry
func BranchFromAnnotated(line string) string {
	_, name := splitMarker(strings.TrimSpace(line))
	if idx := strings.Index(name, AnnotationSeparator); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

func splitMarker(entry string) (string, string) {
	if strings.HasPrefix(entry, currentBranchMarker) {
		return currentBranchMarker, strings.TrimSpace(entry[len(currentBranchMarker):])
	}
	return "", entry
}
