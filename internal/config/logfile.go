package config

import (
	"os"
	"path/filepath"
)

// LogFilePath returns the path to the log file.
// If GITRAMBLE_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.gitramble/logs/gitramble.log
func LogFilePath() string {
	if customPath := os.Getenv("GITRAMBLE_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gitramble.log"
	}

	return filepath.Join(homeDir, DataDirName, "logs", "gitramble.log")
}
