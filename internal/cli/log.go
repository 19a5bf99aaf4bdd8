package cli

import (
	"github.com/spf13/cobra"

	"gitramble.dev/gitramble/internal/actions"
	"gitramble.dev/gitramble/internal/cli/common"
	"gitramble.dev/gitramble/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var (
		selected  bool
		all       bool
		noRefresh bool
	)

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"l"},
		Short:   "Print the commits of the current branch in order",
		Long: `Print the commits of the current branch, oldest first.

Each line shows the commit number, hash, date, selection mark, the branch
made from the commit when it exists, and the note or the subject.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.LogAction(ctx, actions.LogOptions{
					Selected:  selected,
					All:       all,
					NoRefresh: noRefresh,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&selected, "selected", "s", false, "Only show selected commits")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include commits that are no longer on the current branch")
	cmd.Flags().BoolVar(&noRefresh, "no-refresh", false, "Show the saved state without reading the git log")

	return cmd
}

// newRefreshCmd creates the refresh command
func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-read the git log and update the saved commits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, actions.RefreshAction)
		},
	}
}
