package commands

import (
	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event, deadline or floating task",
		Example: `
agenda add event team sync #work --from="2024-03-05 10:00" --to="2024-03-05 11:00"
agenda add deadline file taxes --by=4/15
agenda add task buy milk -t errands
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEvent(cmd, s)
	addDeadline(cmd, s)
	addTask(cmd, s)

	topLevel.AddCommand(cmd)
}
