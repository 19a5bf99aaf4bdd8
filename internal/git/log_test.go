package git

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gitramble.dev/gitramble/testhelpers"
)

func TestParseLogOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		output   string
		expected []LogEntry
	}{
		{
			name:     "empty output",
			output:   "",
			expected: []LogEntry{},
		},
		{
			name:   "single entry",
			output: "abc123full\x1fabc123\x1f2024-05-01T12:00:00+00:00\x1fInitial commit",
			expected: []LogEntry{
				{CommitHash: "abc123full", AbbrevHash: "abc123", AuthorDate: "2024-05-01T12:00:00+00:00", Subject: "Initial commit"},
			},
		},
		{
			name: "multiple entries with separators and windows line endings",
			output: "h1\x1fa1\x1fd1\x1fone | two\r\n" +
				"h2\x1fa2\x1fd2\x1f\n",
			expected: []LogEntry{
				{CommitHash: "h1", AbbrevHash: "a1", AuthorDate: "d1", Subject: "one | two"},
				{CommitHash: "h2", AbbrevHash: "a2", AuthorDate: "d2", Subject: ""},
			},
		},
		{
			name:   "skips malformed lines",
			output: "garbage\n\x1f\x1f\x1f\nh3\x1fa3\x1fd3\x1fok",
			expected: []LogEntry{
				{CommitHash: "h3", AbbrevHash: "a3", AuthorDate: "d3", Subject: "ok"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, ParseLogOutput(tt.output))
		})
	}
}

func TestLogArgs(t *testing.T) {
	t.Parallel()
	args := LogArgs()
	require.Equal(t, "log", args[0])
	require.Contains(t, args, "--reverse")
	require.Contains(t, args, "--topo-order")
	require.Contains(t, args, "--date=iso-strict")
}

func TestSubjectLine(t *testing.T) {
	t.Parallel()
	require.Equal(t, "subject", subjectLine("subject\n\nbody"))
	require.Equal(t, "subject", subjectLine("\nsubject  \n"))
	require.Equal(t, "", subjectLine(""))
}

func TestLogSources(t *testing.T) {
	t.Parallel()

	t.Run("empty repository", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)

		entries, err := NewCLILogSource(NewCommandRunner(scene.Dir)).Log(context.Background())
		require.NoError(t, err)
		require.Empty(t, entries)

		repo, err := OpenRepository(scene.Dir)
		require.NoError(t, err)
		entries, err = NewNativeLogSource(repo).Log(context.Background())
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("cli and native agree on linear history", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.HistorySceneSetup("first", "second", "third"))

		cliEntries, err := NewCLILogSource(NewCommandRunner(scene.Dir)).Log(context.Background())
		require.NoError(t, err)
		require.Len(t, cliEntries, 3)

		repo, err := OpenRepository(scene.Dir)
		require.NoError(t, err)
		nativeEntries, err := NewNativeLogSource(repo).Log(context.Background())
		require.NoError(t, err)
		require.Len(t, nativeEntries, 3)

		head, err := scene.Repo.GetRevision("HEAD")
		require.NoError(t, err)

		for i, subject := range []string{"first", "second", "third"} {
			cli, native := cliEntries[i], nativeEntries[i]
			require.Equal(t, subject, cli.Subject)
			require.Equal(t, cli.CommitHash, native.CommitHash)
			require.Equal(t, cli.Subject, native.Subject)
			require.Equal(t, "2024-05-01T12:00:00+00:00", cli.AuthorDate)
			require.Equal(t, cli.AuthorDate, native.AuthorDate)
			require.True(t, strings.HasPrefix(cli.CommitHash, cli.AbbrevHash))
			require.Len(t, native.AbbrevHash, DefaultAbbrevLength)
		}
		require.Equal(t, head, cliEntries[2].CommitHash)
	})

	t.Run("history on another branch is left out", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.RunGitCommand("checkout", "-b", "side"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("side work", "side"))
		require.NoError(t, scene.Repo.CheckoutBranch("main"))

		entries, err := NewRealRunner(scene.Dir).Log(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "1", entries[0].Subject)
	})
}
