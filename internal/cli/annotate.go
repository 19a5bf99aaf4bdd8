package cli

import (
	"github.com/spf13/cobra"

	"gitramble.dev/gitramble/internal/actions"
	"gitramble.dev/gitramble/internal/cli/common"
	"gitramble.dev/gitramble/internal/runtime"
	"gitramble.dev/gitramble/internal/tui"
	"gitramble.dev/gitramble/internal/utils"
)

// newSelectCmd creates the select command, or unselect when selected is false
func newSelectCmd(selected bool) *cobra.Command {
	use, short := "select <hash>...", "Mark commits as selected"
	if !selected {
		use, short = "unselect <hash>...", "Clear the selection mark of commits"
	}

	return &cobra.Command{
		Use:               use,
		Short:             short,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: common.CompleteHashes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SelectAction(ctx, args, selected)
			})
		},
	}
}

// newNoteCmd creates the note command
func newNoteCmd() *cobra.Command {
	var (
		clearNote bool
		edit      bool
	)

	cmd := &cobra.Command{
		Use:   "note <hash> [text]",
		Short: "Set or clear the note of a commit",
		Long: `Set or clear the note of a commit.

The note replaces the subject wherever the commit is shown. When no text is
given it is read from standard input, or written in your editor with --edit.`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: common.CompleteHashes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.NoteOptions{Hash: args[0], Clear: clearNote}
				switch {
				case clearNote:
				case len(args) > 1:
					opts.Text = args[1]
				case edit:
					rec, err := ctx.Store.Resolve(args[0])
					if err != nil {
						return err
					}
					text, err := tui.EditNote(rec.AbbrevHash, rec.Note)
					if err != nil {
						return err
					}
					opts.Text = text
					opts.Clear = text == ""
				default:
					text, err := utils.ReadFromStdin()
					if err != nil {
						return err
					}
					opts.Text = text
				}
				return actions.NoteAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&clearNote, "clear", false, "Remove the note")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Write the note in your editor")
	cmd.MarkFlagsMutuallyExclusive("clear", "edit")

	return cmd
}

// newOpenCmd creates the open command
func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "open <hash>",
		Short:             "Open a commit on the hosting site",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: common.CompleteHashes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				return actions.OpenAction(ctx, args[0])
			})
		},
	}
}
