package commits

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"

	"gitramble.dev/gitramble/internal/git"
)

// logGen draws a log from a small hash alphabet so runs revisit known commits
func logGen(t *rapid.T, label string) []git.LogEntry {
	n := rapid.IntRange(0, 12).Draw(t, label+"-len")
	entries := make([]git.LogEntry, 0, n)
	for i := 0; i < n; i++ {
		id := rapid.IntRange(0, 20).Draw(t, fmt.Sprintf("%s-%d", label, i))
		entries = append(entries, git.LogEntry{
			CommitHash: fmt.Sprintf("%040x", id),
			AbbrevHash: fmt.Sprintf("%07x", id),
			AuthorDate: fmt.Sprintf("2024-01-%02dT00:00:00+00:00", id%28+1),
			Subject:    rapid.String().Draw(t, fmt.Sprintf("%s-subject-%d", label, i)),
		})
	}
	return entries
}

// TestProperty_RoundTrip verifies that loading a saved store yields the same records.
func TestProperty_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		path := filepath.Join(dir, "commits.csv")
		_ = os.Remove(path)

		s, err := Open(path, nil)
		if err != nil {
			t.Fatalf("open: %v", err)
		}

		rounds := rapid.IntRange(1, 4).Draw(t, "rounds")
		for r := 0; r < rounds; r++ {
			if _, err := s.Reconcile(logGen(t, fmt.Sprintf("log%d", r))); err != nil {
				t.Fatalf("reconcile: %v", err)
			}
			for _, rec := range s.All() {
				if rapid.Bool().Draw(t, "annotate-"+rec.AbbrevHash) {
					s.SetNote(rec.AbbrevHash, rapid.String().Draw(t, "note-"+rec.AbbrevHash))
					if err := s.SetSelected(rec.AbbrevHash, rapid.Bool().Draw(t, "sel-"+rec.AbbrevHash)); err != nil {
						t.Fatalf("select: %v", err)
					}
				}
			}
		}
		if err := s.SavePendingChanges(); err != nil {
			t.Fatalf("save: %v", err)
		}

		reloaded, err := Open(path, nil)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}

		before, after := s.All(), reloaded.All()
		if len(before) != len(after) {
			t.Fatalf("record count changed: %d != %d", len(before), len(after))
		}
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("record %d changed:\n before %#v\n after  %#v", i, before[i], after[i])
			}
		}
		if s.NextSequence() != reloaded.NextSequence() {
			t.Fatalf("next sequence changed: %d != %d", s.NextSequence(), reloaded.NextSequence())
		}
	})
}

// TestProperty_ReconcileIdempotent verifies that reconciling the same log twice changes nothing.
func TestProperty_ReconcileIdempotent(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		path := filepath.Join(dir, "commits.csv")
		_ = os.Remove(path)
		s, err := Open(path, nil)
		if err != nil {
			t.Fatalf("open: %v", err)
		}

		if _, err := s.Reconcile(logGen(t, "history")); err != nil {
			t.Fatalf("reconcile: %v", err)
		}
		log := logGen(t, "log")

		if _, err := s.Reconcile(log); err != nil {
			t.Fatalf("reconcile: %v", err)
		}
		once := s.All()
		next := s.NextSequence()

		if _, err := s.Reconcile(log); err != nil {
			t.Fatalf("reconcile: %v", err)
		}
		twice := s.All()

		if len(once) != len(twice) || next != s.NextSequence() {
			t.Fatalf("second reconcile changed the store size or counter")
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("record %d changed:\n once  %#v\n twice %#v", i, once[i], twice[i])
			}
		}
	})
}

// TestProperty_NoAnnotationLoss verifies that reconciliation never drops records or user fields.
func TestProperty_NoAnnotationLoss(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		path := filepath.Join(dir, "commits.csv")
		_ = os.Remove(path)
		s, err := Open(path, nil)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if _, err := s.Reconcile(logGen(t, "initial")); err != nil {
			t.Fatalf("reconcile: %v", err)
		}
		for _, rec := range s.All() {
			s.SetNote(rec.AbbrevHash, "note "+rec.AbbrevHash)
		}
		before := map[string]Record{}
		for _, rec := range s.All() {
			before[rec.AbbrevHash] = rec
		}

		log := logGen(t, "next")
		if _, err := s.Reconcile(log); err != nil {
			t.Fatalf("reconcile: %v", err)
		}

		inLog := map[string]bool{}
		for _, e := range log {
			inLog[e.AbbrevHash] = true
		}
		for hash, old := range before {
			now, ok := s.Get(hash)
			if !ok {
				t.Fatalf("record %s was deleted", hash)
			}
			if now.Note != old.Note || now.Selected != old.Selected || now.Sequence != old.Sequence || now.AuthorDate != old.AuthorDate {
				t.Fatalf("record %s lost user state: %#v -> %#v", hash, old, now)
			}
			if now.Current != inLog[hash] {
				t.Fatalf("record %s current=%v, in log=%v", hash, now.Current, inLog[hash])
			}
		}
	})
}
