// Package runtime provides the execution context for gitramble commands.
//
// It bundles the shared dependencies every action needs: the commit store,
// the git runner, the logger, the repository root and the repository URL.
package runtime
