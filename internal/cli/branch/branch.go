// Package branch provides CLI commands for the branches made from commits.
package branch

import (
	"github.com/spf13/cobra"

	"gitramble.dev/gitramble/internal/actions"
	"gitramble.dev/gitramble/internal/cli/common"
	"gitramble.dev/gitramble/internal/runtime"
)

// NewBranchCmd creates the branch command and its subcommands
func NewBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "branch",
		Aliases: []string{"b"},
		Short:   "Create, list, check out and delete commit branches",
		Long: `Create, list, check out and delete the branches made from commits.

A commit branch is named after the commit number and hash, for example
gitramble-00007-1a2b3c4. Listings show the note or subject of the commit
next to each branch.`,
	}

	cmd.AddCommand(NewCreateCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewCheckoutCmd())
	cmd.AddCommand(NewDeleteCmd())

	return cmd
}

// NewCreateCmd creates the branch create command
func NewCreateCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:               "create <hash>",
		Aliases:           []string{"new", "c"},
		Short:             "Create and check out a branch at a commit",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: common.CompleteHashes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CreateBranchAction(ctx, actions.CreateBranchOptions{
					Hash:  args[0],
					Force: force,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Create the branch even if the working tree has changes")

	return cmd
}

// NewListCmd creates the branch list command
func NewListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List commit branches with their notes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ListBranchesAction(ctx, actions.ListBranchesOptions{All: all})
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include every local branch")

	return cmd
}

// NewCheckoutCmd creates the branch checkout command
func NewCheckoutCmd() *cobra.Command {
	var (
		all   bool
		force bool
	)

	cmd := &cobra.Command{
		Use:     "checkout [branch]",
		Aliases: []string{"co"},
		Short:   "Switch to a branch",
		Long: `Switch to a branch. Without an argument an interactive picker lists the
commit branches, with the current branch marked.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			branchName := ""
			if len(args) > 0 {
				branchName = args[0]
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CheckoutAction(ctx, actions.CheckoutOptions{
					BranchName: branchName,
					All:        all,
					Force:      force,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Offer every local branch in the picker")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Switch even if the working tree has changes")

	return cmd
}

// NewDeleteCmd creates the branch delete command
func NewDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:               "delete [branch]",
		Aliases:           []string{"rm"},
		Short:             "Delete a commit branch",
		Long:              `Delete a branch. The branch that is checked out cannot be deleted.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			branchName := ""
			if len(args) > 0 {
				branchName = args[0]
			}
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DeleteAction(ctx, actions.DeleteOptions{
					BranchName: branchName,
					Yes:        yes,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
