package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/calendar"
)

const layoutMonth = "2006-01"

func addCalendar(topLevel *cobra.Command, s *session) {
	var month string

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month of events and deadlines",
		Example: `
agenda calendar
agenda calendar --month 2024-03
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := s.service(cmd.Context())
			if err != nil {
				return err
			}

			r := calendar.Calendar{Service: svc}
			if month != "" {
				on, err := time.ParseInLocation(layoutMonth, month, time.Local)
				if err != nil {
					return fmt.Errorf("--month: expected %s, got %q", layoutMonth, month)
				}
				r.Month = on
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", `Month to show, example: --month=2024-03.`)
	topLevel.AddCommand(cmd)
}
