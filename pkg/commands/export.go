package commands

import (
	"github.com/spf13/cobra"

	ics "tableflip.dev/agenda/pkg/export"
	"tableflip.dev/agenda/pkg/runner/export"
)

func addExport(topLevel *cobra.Command, s *session) {
	eo := ics.Options{}
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write events and deadlines as an iCalendar feed",
		Example: `
agenda export > agenda.ics
agenda export --file agenda.ics --archived --floating
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := s.service(cmd.Context())
			if err != nil {
				return err
			}

			r := export.Export{
				File:    file,
				Options: eo,
				Service: svc,
			}
			if file == "" {
				r.Out = cmd.OutOrStdout()
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Write to this file instead of stdout.")
	cmd.Flags().BoolVar(&eo.Archived, "archived", false, "Include completed entries.")
	cmd.Flags().BoolVar(&eo.Floating, "floating", false, "Include floating tasks as to-dos without a due time.")
	topLevel.AddCommand(cmd)
}
