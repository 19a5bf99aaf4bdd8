// Package cli implements the gitramble command tree.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gitramble.dev/gitramble/internal/actions"
	"gitramble.dev/gitramble/internal/cli/branch"
	"gitramble.dev/gitramble/internal/cli/common"
	"gitramble.dev/gitramble/internal/runtime"
	"gitramble.dev/gitramble/internal/tui"
	"gitramble.dev/gitramble/internal/utils"
)

// isTerminalOutput decides between the browser and plain log output
var isTerminalOutput = utils.IsTerminalOutput

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	g := &common.Globals{}

	rootCmd := &cobra.Command{
		Use:   "gitramble [dir]",
		Short: "Annotate the commits of your current branch and turn any of them into a branch",
		Long: `gitramble keeps a numbered list of the commits on your current branch.

Each commit can carry a selection mark and a free-form note, and any commit
can be turned into a branch named after its number. Notes and marks survive
rebases as long as the commit keeps its hash, and come back when a commit
returns to the branch.

Run without a subcommand to browse the commits interactively. When output is
not a terminal the commit log is printed instead.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			ctx, err := common.OpenContext(cmd, dir)
			if err != nil {
				return err
			}
			if !isTerminalOutput() {
				return actions.LogAction(ctx, actions.LogOptions{})
			}
			return browse(ctx, g.Watch)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.Dir, "cwd", "C", "", "Run as if gitramble was started in this directory")
	rootCmd.PersistentFlags().StringVarP(&g.RepoURL, "repo-url", "u", "", "Web URL of the repository, used to open commits (saved for later runs)")
	rootCmd.PersistentFlags().StringVar(&g.Backend, "backend", runtime.BackendCLI, "How to read the commit log: cli or native")
	rootCmd.PersistentFlags().BoolVar(&g.Debug, "debug", false, "Write debug output to the console")
	rootCmd.PersistentFlags().BoolVar(&g.NoLogFile, "no-log-file", false, "Do not write the log file")
	rootCmd.Flags().BoolVarP(&g.Watch, "watch", "w", false, "Refresh the browser when the repository changes")

	rootCmd.SetContext(common.WithGlobals(context.Background(), g))

	// Add subcommands
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newSelectCmd(true))
	rootCmd.AddCommand(newSelectCmd(false))
	rootCmd.AddCommand(newNoteCmd())
	rootCmd.AddCommand(branch.NewBranchCmd())
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the command tree, reports a failure through the logger and
// closes the log file
func Execute(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	g := common.GlobalsFrom(rootCmd.Context())
	if err != nil {
		g.Splog(rootCmd).Error("%v", err)
	}
	_ = g.Close()
	return err
}

func browse(ctx *runtime.Context, watch bool) error {
	session := actions.NewSession(ctx)
	if _, err := session.Refresh(context.Background()); err != nil {
		return err
	}
	return tui.RunBrowse(session, tui.BrowseOptions{
		Title:    "gitramble · " + filepath.Base(ctx.RepoRoot),
		RepoRoot: ctx.RepoRoot,
		Watch:    watch,
		Splog:    ctx.Splog,
	})
}
