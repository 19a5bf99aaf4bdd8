package commits

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	ramblerrors "gitramble.dev/gitramble/internal/errors"
)

// Column names of the persisted file, in write order
const (
	colAbbrevHash = "abbrev_hash"
	colAuthorDate = "author_date"
	colSubject    = "subject"
	colCurrent    = "current"
	colSequence   = "sequence"
	colSelected   = "selected"
	colNote       = "note"
)

// Columns is the fixed header of the persisted file
var Columns = []string{colAbbrevHash, colAuthorDate, colSubject, colCurrent, colSequence, colSelected, colNote}

// encodeRecords writes records as CSV. Strings are always quoted and booleans
// and integers never are, so the output depends only on the records.
func encodeRecords(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(Columns, ",") + "\n"); err != nil {
		return err
	}

	for _, r := range records {
		fields := []string{
			quote(r.AbbrevHash),
			quote(r.AuthorDate),
			quote(r.Subject),
			strconv.FormatBool(r.Current),
			strconv.Itoa(r.Sequence),
			strconv.FormatBool(r.Selected),
			quote(r.Note),
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// decodeRecords parses CSV written by encodeRecords. Columns are looked up by
// header name; unknown columns are ignored and missing optional columns take
// zero values. Any malformed row fails the whole decode.
func decodeRecords(path string, r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, corruptFromCSV(path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[colAbbrevHash]; !ok {
		return nil, ramblerrors.NewCorruptStoreError(path, 1, "header has no "+colAbbrevHash+" column")
	}

	records := []Record{}
	seen := make(map[string]int)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, corruptFromCSV(path, err)
		}
		line, _ := cr.FieldPos(0)

		rec, reason := parseRow(row, index)
		if reason != "" {
			return nil, ramblerrors.NewCorruptStoreError(path, line, reason)
		}
		if prev, dup := seen[rec.AbbrevHash]; dup {
			return nil, ramblerrors.NewCorruptStoreError(path, line,
				fmt.Sprintf("duplicate %s %q (first on line %d)", colAbbrevHash, rec.AbbrevHash, prev))
		}
		seen[rec.AbbrevHash] = line
		records = append(records, rec)
	}

	return records, nil
}

// parseRow converts one CSV row, returning a non-empty reason when it is invalid
func parseRow(row []string, index map[string]int) (Record, string) {
	get := func(col string) (string, bool) {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	var rec Record

	hash, _ := get(colAbbrevHash)
	rec.AbbrevHash = strings.TrimSpace(hash)
	if rec.AbbrevHash == "" {
		return rec, "missing " + colAbbrevHash
	}

	rec.AuthorDate, _ = get(colAuthorDate)
	rec.Subject, _ = get(colSubject)
	rec.Note, _ = get(colNote)

	var reason string
	if rec.Current, reason = parseBool(get(colCurrent)); reason != "" {
		return rec, colCurrent + ": " + reason
	}
	if rec.Selected, reason = parseBool(get(colSelected)); reason != "" {
		return rec, colSelected + ": " + reason
	}

	if raw, ok := get(colSequence); ok && strings.TrimSpace(raw) != "" {
		seq, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return rec, fmt.Sprintf("%s: invalid integer %q", colSequence, raw)
		}
		if seq <= 0 {
			return rec, fmt.Sprintf("%s: must be positive, got %d", colSequence, seq)
		}
		rec.Sequence = seq
	}

	return rec, ""
}

func parseBool(raw string, ok bool) (bool, string) {
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return false, ""
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Sprintf("invalid boolean %q", raw)
	}
	return v, ""
}

func corruptFromCSV(path string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return ramblerrors.NewCorruptStoreError(path, parseErr.Line, parseErr.Err.Error())
	}
	return fmt.Errorf("failed to read commit store %s: %w", path, err)
}
