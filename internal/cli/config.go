package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitramble.dev/gitramble/internal/actions"
	"gitramble.dev/gitramble/internal/cli/common"
	"gitramble.dev/gitramble/internal/git"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set repository configuration values.

Examples:
  gitramble config get repo-url
  gitramble config set repo-url https://github.com/owner/repo`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Get a configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{actions.ConfigKeyRepoURL},
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := git.GetRepoRoot(common.GlobalsFrom(cmd.Context()).Dir)
			if err != nil {
				return err
			}
			value, err := actions.ConfigGetAction(repoRoot, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{actions.ConfigKeyRepoURL},
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := git.GetRepoRoot(common.GlobalsFrom(cmd.Context()).Dir)
			if err != nil {
				return err
			}
			if err := actions.ConfigSetAction(repoRoot, args[0], args[1]); err != nil {
				return err
			}
			common.GlobalsFrom(cmd.Context()).Splog(cmd).Info("Set %s.", args[0])
			return nil
		},
	}
}
