// Package common provides shared helper functions for CLI commands.
package common

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"gitramble.dev/gitramble/internal/config"
	"gitramble.dev/gitramble/internal/output"
	"gitramble.dev/gitramble/internal/runtime"
)

// Globals holds the values of the persistent root flags
type Globals struct {
	Dir       string
	RepoURL   string
	Backend   string
	Debug     bool
	NoLogFile bool
	Watch     bool

	splog *output.Splog
}

type globalsKey struct{}

// WithGlobals returns a context carrying g
func WithGlobals(ctx context.Context, g *Globals) context.Context {
	return context.WithValue(ctx, globalsKey{}, g)
}

// GlobalsFrom returns the globals stored in ctx, or zero values
func GlobalsFrom(ctx context.Context) *Globals {
	if ctx != nil {
		if g, ok := ctx.Value(globalsKey{}).(*Globals); ok {
			return g
		}
	}
	return &Globals{}
}

// Splog returns the logger for this invocation, creating it on first use.
// Console output goes to the command's output writer.
func (g *Globals) Splog(cmd *cobra.Command) *output.Splog {
	if g.splog != nil {
		return g.splog
	}

	debug := g.Debug || os.Getenv("GITRAMBLE_DEBUG") != ""
	logFile := ""
	if !g.NoLogFile {
		logFile = config.LogFilePath()
	}

	splog, err := output.NewSplogWithOptions(cmd.OutOrStdout(), debug, logFile)
	if err != nil {
		splog, _ = output.NewSplogWithOptions(cmd.OutOrStdout(), debug, "")
		splog.Warn("Logging to the console only: %v", err)
	}
	g.splog = splog
	return splog
}

// Close flushes and closes the log file, if any
func (g *Globals) Close() error {
	if g.splog == nil {
		return nil
	}
	return g.splog.Close()
}

// OpenContext opens the runtime context for the repository containing dir,
// or the directory from --cwd when dir is empty
func OpenContext(cmd *cobra.Command, dir string) (*runtime.Context, error) {
	g := GlobalsFrom(cmd.Context())
	if dir == "" {
		dir = g.Dir
	}
	return runtime.Open(runtime.Options{
		Dir:     dir,
		RepoURL: g.RepoURL,
		Backend: g.Backend,
		Splog:   g.Splog(cmd),
	})
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := OpenContext(cmd, "")
	if err != nil {
		return err
	}
	return fn(ctx)
}
