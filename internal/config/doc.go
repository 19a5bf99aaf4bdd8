// Package config manages gitramble configuration and on-disk locations.
//
// It handles:
//   - The per-repository data directory (.gitramble) and its files
//   - The persisted settings file (repo_url)
//   - Log file location and environment overrides
package config
