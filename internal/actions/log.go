package actions

import (
	"context"
	"slices"

	"gitramble.dev/gitramble/internal/commits"
	"gitramble.dev/gitramble/internal/output"
	"gitramble.dev/gitramble/internal/runtime"
)

// LogOptions specifies options for the log command
type LogOptions struct {
	Selected  bool // only selected commits
	All       bool // include commits that left the current branch
	NoRefresh bool // print the stored state without reading git first
}

// LogAction prints the known commits in sequence order
func LogAction(ctx *runtime.Context, opts LogOptions) error {
	session := NewSession(ctx)
	if !opts.NoRefresh {
		if _, err := session.Refresh(context.Background()); err != nil {
			return err
		}
	}

	records := logRecords(ctx.Store, opts)
	if len(records) == 0 {
		ctx.Splog.Info("No commits to show.")
		return nil
	}

	branches, err := ctx.Git.ListBranches(context.Background())
	if err != nil {
		return err
	}

	for _, rec := range records {
		branch := commits.BranchName(rec)
		if !slices.Contains(branches, branch) {
			branch = ""
		}
		ctx.Splog.Page(output.FormatLogLine(output.LogLine{
			Sequence: rec.Sequence,
			Hash:     rec.AbbrevHash,
			When:     rec.When(),
			Branch:   branch,
			Label:    rec.Label(),
			HasNote:  rec.Note != "",
			Selected: rec.Selected,
			Current:  rec.Current,
		}) + "\n")
	}
	return nil
}

func logRecords(store *commits.Store, opts LogOptions) []commits.Record {
	var records []commits.Record
	if opts.All {
		records = store.All()
		slices.SortStableFunc(records, func(a, b commits.Record) int {
			return a.Sequence - b.Sequence
		})
	} else {
		records = store.Current()
	}

	if !opts.Selected {
		return records
	}
	return slices.DeleteFunc(records, func(r commits.Record) bool {
		return !r.Selected
	})
}

// RefreshAction reconciles the store with the current branch and reports what changed
func RefreshAction(ctx *runtime.Context) error {
	summary, err := NewSession(ctx).Refresh(context.Background())
	if err != nil {
		return err
	}
	ctx.Splog.Info("%d current commits: %d new, %d returned, %d left the branch.",
		summary.Current, summary.Added, summary.Returned, summary.Departed)
	return nil
}
