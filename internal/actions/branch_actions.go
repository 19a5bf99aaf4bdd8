package actions

import (
	"context"
	"fmt"
	"strings"

	"gitramble.dev/gitramble/internal/output"
	"gitramble.dev/gitramble/internal/runtime"
)

// CreateBranchOptions specifies options for the branch create command
type CreateBranchOptions struct {
	Hash  string
	Force bool // skip the clean working tree check
}

// CreateBranchAction creates and checks out the branch for a commit
func CreateBranchAction(ctx *runtime.Context, opts CreateBranchOptions) error {
	name, err := NewSession(ctx).CreateBranch(context.Background(), opts.Hash, opts.Force)
	if err != nil {
		return err
	}
	ctx.Splog.Info("Created and checked out %s.", output.ColorBranchName(name, false))
	return nil
}

// ListBranchesOptions specifies options for the branch list command
type ListBranchesOptions struct {
	All bool // include branches gitramble did not create
}

// ListBranchesAction prints the annotated branch listing
func ListBranchesAction(ctx *runtime.Context, opts ListBranchesOptions) error {
	listing, err := NewSession(ctx).AnnotatedBranches(context.Background(), opts.All)
	if err != nil {
		return err
	}
	if len(listing) == 0 {
		ctx.Splog.Info("No gitramble branches yet.")
		ctx.Splog.Tip("Create one with `gitramble branch create <hash>`.")
		return nil
	}
	ctx.Splog.Page(strings.Join(listing, "\n") + "\n")
	return nil
}

// CheckoutOptions specifies options for the branch checkout command
type CheckoutOptions struct {
	BranchName string // Optional: branch to checkout directly
	All        bool   // offer every local branch in the picker
	Force      bool   // skip the clean working tree check
}

// CheckoutAction checks out a branch, asking which one when none is given
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) error {
	session := NewSession(ctx)
	target := opts.BranchName
	if target == "" {
		var err error
		target, err = pickBranch(session, "Checkout a branch:", opts.All)
		if err != nil {
			return err
		}
	}

	current, err := ctx.Git.CurrentBranch(context.Background())
	if err != nil {
		return err
	}

	name, err := session.CheckoutBranch(context.Background(), target, opts.Force)
	if err != nil {
		return err
	}
	if name == current {
		ctx.Splog.Info("Already on %s.", output.ColorBranchName(name, true))
		return nil
	}
	ctx.Splog.Info("Checked out %s.", output.ColorBranchName(name, false))
	return nil
}

// DeleteOptions specifies options for the branch delete command
type DeleteOptions struct {
	BranchName string // Optional: branch to delete directly
	Yes        bool   // skip the confirmation
}

// DeleteAction deletes a branch after confirmation, asking which one when none is given
func DeleteAction(ctx *runtime.Context, opts DeleteOptions) error {
	session := NewSession(ctx)
	target := opts.BranchName
	if target == "" {
		var err error
		target, err = pickBranch(session, "Delete a branch:", false)
		if err != nil {
			return err
		}
	}

	if !opts.Yes {
		confirmed, err := confirmPrompt(fmt.Sprintf("Delete %s?", target))
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.Splog.Info("Nothing deleted.")
			return nil
		}
	}

	name, err := session.DeleteBranch(context.Background(), target)
	if err != nil {
		return err
	}
	ctx.Splog.Info("Deleted %s.", output.ColorBranchName(name, false))
	return nil
}

// pickBranch shows the annotated listing and returns the chosen entry
func pickBranch(session *Session, message string, all bool) (string, error) {
	listing, err := session.AnnotatedBranches(context.Background(), all)
	if err != nil {
		return "", err
	}
	if len(listing) == 0 {
		return "", fmt.Errorf("no branches to choose from")
	}

	initial := ""
	for _, entry := range listing {
		if strings.HasPrefix(entry, "* ") {
			initial = entry
			break
		}
	}
	return selectPrompt(message, listing, initial)
}

// OpenAction opens a commit on the hosting site
func OpenAction(ctx *runtime.Context, hash string) error {
	url, err := NewSession(ctx).OpenCommit(hash)
	if err != nil {
		return err
	}
	ctx.Splog.Info("Opened %s.", url)
	return nil
}
