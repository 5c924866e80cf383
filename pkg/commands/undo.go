package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/history"
)

func addUndo(topLevel *cobra.Command, s *session) {
	topLevel.AddCommand(undoCommand(s, false))
}

func addRedo(topLevel *cobra.Command, s *session) {
	topLevel.AddCommand(undoCommand(s, true))
}

func undoCommand(s *session, redo bool) *cobra.Command {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reverse the last change",
		Example: `
agenda undo
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := s.service(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			format, err := oo.Resolved()
			if err != nil {
				return err
			}

			r := history.Undo{
				Redo:    redo,
				Service: svc,
				Format:  format,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	if redo {
		cmd.Use = "redo"
		cmd.Short = "Replay the last undone change"
		cmd.Example = `
agenda redo
`
	}

	options.AddOutputArg(cmd, oo)
	return cmd
}

func addHistory(topLevel *cobra.Command, s *session) {
	oo := &options.OutputOptions{}
	var forget bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show what undo and redo would do",
		Example: `
agenda history
agenda history --clear
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := s.service(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			format, err := oo.Resolved()
			if err != nil {
				return err
			}

			r := history.History{
				Clear:   forget,
				Service: svc,
				Format:  format,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&forget, "clear", false, "Forget every change so none can be undone or redone.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
