package commits

import (
	"gitramble.dev/gitramble/internal/git"
)

// ReconcileSummary counts what a reconciliation changed
type ReconcileSummary struct {
	Current  int // records present in the log
	Added    int // commits seen for the first time
	Returned int // known commits that were not current before
	Departed int // commits that were current before and are not any more
}

// Reconcile merges a freshly read log into the store and saves it.
//
// Every record loses its current flag, then each entry either refreshes the
// matching record (current=true, subject updated) or creates a new one with
// the next sequence number. Selection, note, author date and sequence of
// existing records are never touched and no record is ever removed.
func (s *Store) Reconcile(entries []git.LogEntry) (ReconcileSummary, error) {
	summary := s.merge(entries)
	s.log.Debug("Reconciled %d log entries: %d new, %d returned, %d departed",
		len(entries), summary.Added, summary.Returned, summary.Departed)

	s.dirty = true
	if err := s.Save(); err != nil {
		return summary, err
	}
	return summary, nil
}

func (s *Store) merge(entries []git.LogEntry) ReconcileSummary {
	var summary ReconcileSummary

	wasCurrent := make(map[string]bool, len(s.records))
	for hash, rec := range s.records {
		wasCurrent[hash] = rec.Current
		rec.Current = false
	}

	for _, entry := range entries {
		if entry.AbbrevHash == "" {
			s.log.Debug("Skipping log entry without abbreviated hash: %q", entry.CommitHash)
			continue
		}

		if rec, ok := s.records[entry.AbbrevHash]; ok {
			if !rec.Current {
				rec.Current = true
				summary.Current++
				if known, seen := wasCurrent[entry.AbbrevHash]; seen && !known {
					summary.Returned++
				}
			}
			rec.Subject = normalizeText(entry.Subject)
			continue
		}

		s.records[entry.AbbrevHash] = &Record{
			AbbrevHash: entry.AbbrevHash,
			AuthorDate: entry.AuthorDate,
			Subject:    normalizeText(entry.Subject),
			Current:    true,
			Sequence:   s.allocSequence(),
		}
		s.order = append(s.order, entry.AbbrevHash)
		summary.Added++
		summary.Current++
	}

	for hash, known := range wasCurrent {
		if known && !s.records[hash].Current {
			summary.Departed++
		}
	}

	return summary
}
