package commits

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Logger is the logging surface the store needs
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// Store is the persisted mapping from abbreviated hash to Record
type Store struct {
	path    string
	log     Logger
	records map[string]*Record
	order   []string // insertion order, which is also file order
	nextSeq int
	dirty   bool
}

// Open loads the store at path. A missing file yields an empty store.
// A file that cannot be parsed fails with an error matching
// errors.ErrCorruptStore and is left untouched on disk.
func Open(path string, log Logger) (*Store, error) {
	if log == nil {
		log = nopLogger{}
	}
	s := &Store{
		path:    path,
		log:     log,
		records: make(map[string]*Record),
		nextSeq: 1,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("No commit store at %s, starting empty", path)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read commit store: %w", err)
	}
	if len(data) == 0 {
		log.Warn("Commit store %s is empty, starting over", path)
		return s, nil
	}

	records, err := decodeRecords(path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	for i := range records {
		rec := records[i]
		s.records[rec.AbbrevHash] = &rec
		s.order = append(s.order, rec.AbbrevHash)
		if rec.Sequence >= s.nextSeq {
			s.nextSeq = rec.Sequence + 1
		}
	}

	// Rows written without a sequence get one now, in file order
	for _, hash := range s.order {
		if rec := s.records[hash]; rec.Sequence == 0 {
			rec.Sequence = s.allocSequence()
			s.dirty = true
			log.Warn("Commit %s had no sequence, assigned %d", hash, rec.Sequence)
		}
	}

	log.Debug("Loaded %d commits from %s", len(s.order), path)
	return s, nil
}

// Path returns the file the store persists to
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of records, current or not
func (s *Store) Len() int {
	return len(s.order)
}

// Dirty reports whether there are changes that have not been saved
func (s *Store) Dirty() bool {
	return s.dirty
}

// NextSequence returns the sequence the next new commit will receive
func (s *Store) NextSequence() int {
	return s.nextSeq
}

func (s *Store) allocSequence() int {
	seq := s.nextSeq
	s.nextSeq++
	return seq
}

// Save rewrites the whole file. On failure the store stays dirty so a later
// SavePendingChanges can retry.
func (s *Store) Save() error {
	var buf bytes.Buffer
	if err := encodeRecords(&buf, s.All()); err != nil {
		return fmt.Errorf("failed to encode commit store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		s.dirty = true
		return fmt.Errorf("failed to create commit store directory: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0600); err != nil {
		s.dirty = true
		return fmt.Errorf("failed to write commit store: %w", err)
	}

	s.dirty = false
	s.log.Debug("Saved %d commits to %s", len(s.order), s.path)
	return nil
}

// All returns copies of every record in insertion order
func (s *Store) All() []Record {
	out := make([]Record, 0, len(s.order))
	for _, hash := range s.order {
		out = append(out, *s.records[hash])
	}
	return out
}

// Get returns a copy of the record for hash
func (s *Store) Get(hash string) (Record, bool) {
	rec, ok := s.records[hash]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Current returns copies of the records present in the latest log, ordered by
// sequence. For a log read oldest first this is log order for every commit
// first seen in the same reconciliation, and it does not shift when commits
// come and go.
func (s *Store) Current() []Record {
	out := []Record{}
	for _, hash := range s.order {
		if rec := s.records[hash]; rec.Current {
			out = append(out, *rec)
		}
	}
	sortBySequence(out)
	return out
}

// Selected returns the current records that are selected, ordered by sequence
func (s *Store) Selected() []Record {
	out := []Record{}
	for _, rec := range s.Current() {
		if rec.Selected {
			out = append(out, rec)
		}
	}
	return out
}

func sortBySequence(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Sequence != records[j].Sequence {
			return records[i].Sequence < records[j].Sequence
		}
		return records[i].AbbrevHash < records[j].AbbrevHash
	})
}

// SetSelected updates the selection flag and saves immediately.
// Unknown hashes are ignored.
func (s *Store) SetSelected(hash string, selected bool) error {
	rec, ok := s.records[hash]
	if !ok {
		s.log.Debug("SetSelected: unknown commit %s", hash)
		return nil
	}
	if rec.Selected != selected {
		rec.Selected = selected
		s.dirty = true
	}
	if !s.dirty {
		return nil
	}
	return s.Save()
}

// SetNote updates the note in memory only; call SavePendingChanges to persist.
// Unknown hashes are ignored.
func (s *Store) SetNote(hash, note string) {
	rec, ok := s.records[hash]
	if !ok {
		s.log.Debug("SetNote: unknown commit %s", hash)
		return
	}
	note = normalizeText(note)
	if rec.Note == note {
		return
	}
	rec.Note = note
	s.dirty = true
}

// SavePendingChanges saves the store if it has unsaved changes
func (s *Store) SavePendingChanges() error {
	if !s.dirty {
		return nil
	}
	return s.Save()
}
