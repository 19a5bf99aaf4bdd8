package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DataDirName is the hidden per-repository directory holding gitramble state
	DataDirName = ".gitramble"

	// CommitsFileName is the commit store file inside the data directory
	CommitsFileName = "commits.csv"

	// SettingsFileName is the settings file inside the data directory
	SettingsFileName = "settings.json"

	dataDirGitignore = "# Automatically created by gitramble.\n*\n"
)

// DataDir returns the data directory for a repository root
func DataDir(repoRoot string) string {
	return filepath.Join(repoRoot, DataDirName)
}

// CommitsPath returns the path of the commit store file
func CommitsPath(repoRoot string) string {
	return filepath.Join(DataDir(repoRoot), CommitsFileName)
}

// SettingsPath returns the path of the settings file
func SettingsPath(repoRoot string) string {
	return filepath.Join(DataDir(repoRoot), SettingsFileName)
}

// EnsureDataDir creates the data directory if it does not exist yet.
// A fresh directory gets a .gitignore that ignores everything in it, so the
// store never shows up as an untracked change.
func EnsureDataDir(repoRoot string) (string, error) {
	dir := DataDir(repoRoot)

	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return "", fmt.Errorf("%s exists and is not a directory", dir)
		}
		return dir, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat data directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(dataDirGitignore), 0600); err != nil {
		return "", fmt.Errorf("failed to write data directory .gitignore: %w", err)
	}

	return dir, nil
}
