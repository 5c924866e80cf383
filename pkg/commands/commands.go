package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
)

func New() *cobra.Command {
	return newRoot(&session{})
}

func newRoot(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: options.Wrap80("Events, deadlines and floating tasks on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.release()
		},
	}

	cmd.PersistentFlags().StringVar(&s.path, "path", s.path, "Use the store at this path instead of the configured one.")

	AddCommands(cmd, s)
	return cmd
}

func AddCommands(topLevel *cobra.Command, s *session) {
	addAdd(topLevel, s)
	addEdit(topLevel, s)
	addComplete(topLevel, s)
	addDelete(topLevel, s)
	addRestore(topLevel, s)
	addPurge(topLevel, s)
	addClear(topLevel, s)
	addList(topLevel, s)
	addFind(topLevel, s)
	addUndo(topLevel, s)
	addRedo(topLevel, s)
	addHistory(topLevel, s)
	addOverdue(topLevel, s)
	addReport(topLevel, s)
	addCalendar(topLevel, s)
	addExport(topLevel, s)
	addOpen(topLevel, s)
	addSave(topLevel, s)
	addWatch(topLevel, s)
	addInfo(topLevel, s)
	addShell(topLevel, s)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}
