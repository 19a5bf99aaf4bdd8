package git

import (
	"context"
	"errors"
	"strings"

	ramblerrors "gitramble.dev/gitramble/internal/errors"
)

// fieldSeparator separates fields of one log line. Subjects cannot contain it.
const fieldSeparator = "\x1f"

// logFormat is the --pretty format read by ParseLogOutput:
// full hash, abbreviated hash, strict ISO author date, subject.
const logFormat = "%H%x1f%h%x1f%ad%x1f%s"

// LogEntry is one commit of the current branch as reported by a LogSource
type LogEntry struct {
	CommitHash string
	AbbrevHash string
	AuthorDate string // ISO-8601
	Subject    string
}

// LogSource produces the history of the current branch, oldest first
type LogSource interface {
	Log(ctx context.Context) ([]LogEntry, error)
}

// CLILogSource reads history with `git log`
type CLILogSource struct {
	runner *CommandRunner
}

// NewCLILogSource creates a LogSource backed by the git binary
func NewCLILogSource(runner *CommandRunner) *CLILogSource {
	return &CLILogSource{runner: runner}
}

// LogArgs returns the git arguments used to read the history
func LogArgs() []string {
	return []string{
		"log",
		"--topo-order",
		"--reverse",
		"--date=iso-strict",
		"--pretty=format:" + logFormat,
	}
}

// Log returns the commits reachable from HEAD in topological order, oldest first.
// A repository without commits yields an empty slice.
func (s *CLILogSource) Log(ctx context.Context) ([]LogEntry, error) {
	output, err := s.runner.RunRaw(ctx, LogArgs()...)
	if err != nil {
		if isEmptyHistory(err) {
			return []LogEntry{}, nil
		}
		return nil, err
	}
	return ParseLogOutput(output), nil
}

// ParseLogOutput parses output produced with logFormat.
// Lines that do not have all four fields are skipped.
func ParseLogOutput(output string) []LogEntry {
	entries := []LogEntry{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		fields := strings.SplitN(line, fieldSeparator, 4)
		if len(fields) != 4 || fields[0] == "" || fields[1] == "" {
			continue
		}
		entries = append(entries, LogEntry{
			CommitHash: fields[0],
			AbbrevHash: fields[1],
			AuthorDate: fields[2],
			Subject:    fields[3],
		})
	}
	return entries
}

func isEmptyHistory(err error) bool {
	var gitErr *ramblerrors.GitCommandError
	if !errors.As(err, &gitErr) {
		return false
	}
	return strings.Contains(gitErr.Stderr, "does not have any commits yet") ||
		strings.Contains(gitErr.Stderr, "bad default revision 'HEAD'")
}
