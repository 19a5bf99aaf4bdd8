package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogConsole(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	splog, err := NewSplogWithOptions(&buf, false, "")
	require.NoError(t, err)

	splog.Info("refreshed %d commits", 3)
	splog.Debug("hidden")
	splog.Warn("careful")
	splog.Error("broken: %s", "disk")
	splog.Tip("try --watch")

	require.Equal(t, "refreshed 3 commits\n⚠️  careful\n❌ broken: disk\n💡 try --watch\n", buf.String())
}

func TestSplogDebugAndQuiet(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	splog, err := NewSplogWithOptions(&buf, true, "")
	require.NoError(t, err)

	splog.Debug("visible %s", "now")
	splog.SetQuiet(true)
	require.True(t, splog.IsQuiet())
	splog.Info("suppressed")
	splog.SetQuiet(false)
	splog.Info("100%")

	require.Equal(t, "visible now\n100%\n", buf.String())
}

func TestSplogFile(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "gitramble.log")

	splog, err := NewSplogWithOptions(&buf, false, logPath)
	require.NoError(t, err)
	splog.SetQuiet(true)
	splog.Debug("only in file")
	splog.Info("also in file")
	require.NoError(t, splog.Close())

	require.Empty(t, buf.String())
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "only in file")
	require.Contains(t, string(data), "level=INFO")
}

func TestLumberjackRotationSettings(t *testing.T) {
	logger := createLumberjackLogger("gitramble.log")
	require.Equal(t, 1, logger.MaxSize)
	require.Equal(t, 2, logger.MaxBackups)
	require.Equal(t, 30, logger.MaxAge)

	t.Setenv("GITRAMBLE_LOG_MAX_SIZE", "5")
	t.Setenv("GITRAMBLE_LOG_MAX_AGE", "0")
	logger = createLumberjackLogger("gitramble.log")
	require.Equal(t, 5, logger.MaxSize)
	require.Equal(t, 30, logger.MaxAge, "non-positive ages are ignored")
}
