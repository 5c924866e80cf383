package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/report"
	"tableflip.dev/agenda/pkg/timeutil"
)

func addReport(topLevel *cobra.Command, s *session) {
	oo := &options.OutputOptions{}
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recently completed entries grouped by kind",
		Long: `Report lists entries completed within the specified time window.

Examples:
  agenda report
  agenda report --last 3d
  agenda report --last 1w2d`,
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

			r := report.Report{
				Window:  last,
				Service: svc,
				Format:  format,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&last, "last", timeutil.DefaultWindow, "time window to include (for example 3d, 1w)")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
