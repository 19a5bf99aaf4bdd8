package actions

import (
	"fmt"

	"gitramble.dev/gitramble/internal/output"
	"gitramble.dev/gitramble/internal/runtime"
)

// SelectAction marks or unmarks commits. Every hash is resolved before
// anything changes, so a typo leaves the store untouched.
func SelectAction(ctx *runtime.Context, hashes []string, selected bool) error {
	resolved := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		rec, err := ctx.Store.Resolve(hash)
		if err != nil {
			return err
		}
		resolved = append(resolved, rec.AbbrevHash)
	}

	verb := "Selected"
	if !selected {
		verb = "Unselected"
	}
	for _, hash := range resolved {
		if err := ctx.Store.SetSelected(hash, selected); err != nil {
			return err
		}
		ctx.Splog.Info("%s %s.", verb, output.ColorHash(hash))
	}
	return nil
}

// NoteOptions specifies options for the note command
type NoteOptions struct {
	Hash  string
	Text  string
	Clear bool
}

// NoteAction sets or clears the note of one commit
func NoteAction(ctx *runtime.Context, opts NoteOptions) error {
	rec, err := ctx.Store.Resolve(opts.Hash)
	if err != nil {
		return err
	}

	text := opts.Text
	if opts.Clear {
		text = ""
	} else if text == "" {
		return fmt.Errorf("no note text given: pass it as an argument, pipe it on stdin, or use --clear")
	}

	ctx.Store.SetNote(rec.AbbrevHash, text)
	if err := ctx.Store.SavePendingChanges(); err != nil {
		return err
	}

	if opts.Clear {
		ctx.Splog.Info("Cleared note on %s.", output.ColorHash(rec.AbbrevHash))
	} else {
		ctx.Splog.Info("Saved note on %s.", output.ColorHash(rec.AbbrevHash))
	}
	return nil
}
