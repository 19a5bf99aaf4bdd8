package common

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"gitramble.dev/gitramble/internal/commits"
	"gitramble.dev/gitramble/internal/config"
	"gitramble.dev/gitramble/internal/git"
)

// CompleteBranches is a helper for cobra.ValidArgsFunction that returns the
// gitramble branches of the repository
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	root, err := git.GetRepoRoot(GlobalsFrom(cmd.Context()).Dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := git.NewRealRunner(root).ListBranches(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, branch := range branches {
		if commits.IsGitrambleBranch(branch) {
			names = append(names, branch)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// CompleteHashes returns the abbreviated hashes of the current commits,
// described by their note or subject
func CompleteHashes(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	root, err := git.GetRepoRoot(GlobalsFrom(cmd.Context()).Dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	store, err := commits.Open(config.CommitsPath(root), nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var hashes []string
	for _, rec := range store.Current() {
		if strings.HasPrefix(rec.AbbrevHash, toComplete) {
			hashes = append(hashes, rec.AbbrevHash+"\t"+rec.Label())
		}
	}
	return hashes, cobra.ShellCompDirectiveNoFileComp
}
