package actions

import (
	"fmt"

	"gitramble.dev/gitramble/internal/config"
)

// ConfigKeyRepoURL is the settings key for the hosting site URL
const ConfigKeyRepoURL = "repo-url"

// ConfigGetAction returns the value of a settings key
func ConfigGetAction(repoRoot, key string) (string, error) {
	switch key {
	case ConfigKeyRepoURL:
		settings, err := config.LoadSettings(repoRoot)
		if err != nil {
			return "", err
		}
		return settings.RepoURL, nil
	default:
		return "", fmt.Errorf("unknown config key %q", key)
	}
}

// ConfigSetAction stores the value of a settings key
func ConfigSetAction(repoRoot, key, value string) error {
	switch key {
	case ConfigKeyRepoURL:
		return config.SetRepoURL(repoRoot, value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
}
