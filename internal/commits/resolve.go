package commits

import (
	"sort"
	"strings"

	ramblerrors "gitramble.dev/gitramble/internal/errors"
)

// Resolve finds the record for a user-supplied hash. The input may be the
// abbreviated hash itself, a unique prefix of it, or a longer hash that
// starts with it.
func (s *Store) Resolve(hash string) (Record, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if hash == "" {
		return Record{}, ramblerrors.NewCommitNotFoundError(hash)
	}
	if rec, ok := s.records[hash]; ok {
		return *rec, nil
	}

	var matches []string
	for _, key := range s.order {
		if strings.HasPrefix(key, hash) || strings.HasPrefix(hash, key) {
			matches = append(matches, key)
		}
	}

	switch len(matches) {
	case 0:
		return Record{}, ramblerrors.NewCommitNotFoundError(hash)
	case 1:
		return *s.records[matches[0]], nil
	default:
		sort.Strings(matches)
		return Record{}, &ramblerrors.AmbiguousCommitError{Prefix: hash, Matches: matches}
	}
}
