package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings represents the persisted per-repository settings
type Settings struct {
	RepoURL string `json:"repo_url,omitempty"`
}

// LoadSettings reads the settings file. A missing file yields empty settings.
func LoadSettings(repoRoot string) (*Settings, error) {
	data, err := os.ReadFile(SettingsPath(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &settings, nil
}

// SaveSettings writes the settings file, creating the data directory if needed
func SaveSettings(repoRoot string, settings *Settings) error {
	if _, err := EnsureDataDir(repoRoot); err != nil {
		return err
	}

	settingsJSON, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return os.WriteFile(filepath.Join(DataDir(repoRoot), SettingsFileName), settingsJSON, 0600)
}

// ResolveRepoURL returns the repository URL to use for this run.
// A URL provided by the caller always wins and is persisted for later runs;
// otherwise the stored value is returned.
func ResolveRepoURL(repoRoot string, provided string) (string, error) {
	provided = NormalizeRepoURL(provided)

	settings, err := LoadSettings(repoRoot)
	if err != nil {
		if provided == "" {
			return "", err
		}
		settings = &Settings{}
	}

	if provided == "" {
		return settings.RepoURL, nil
	}

	if settings.RepoURL != provided {
		settings.RepoURL = provided
		if err := SaveSettings(repoRoot, settings); err != nil {
			return provided, fmt.Errorf("failed to save repo_url: %w", err)
		}
	}

	return provided, nil
}

// SetRepoURL stores a repository URL, replacing any previous value
func SetRepoURL(repoRoot string, url string) error {
	settings, err := LoadSettings(repoRoot)
	if err != nil {
		settings = &Settings{}
	}
	settings.RepoURL = NormalizeRepoURL(url)
	return SaveSettings(repoRoot, settings)
}

// NormalizeRepoURL trims whitespace, trailing slashes and a .git suffix
func NormalizeRepoURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimRight(url, "/")
	return strings.TrimSuffix(url, ".git")
}
