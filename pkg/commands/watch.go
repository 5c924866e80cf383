package commands

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command, s *session) {
	ro := &options.RefOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep showing the current listing as other commands change it",
		Example: `
agenda watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			svc, err := s.service(ctx)
			if err != nil {
				return err
			}
			r := watch.Watch{
				ShowID:  ro.ShowID,
				Service: svc,
			}
			return r.Do(ctx)
		},
	}

	options.AddShowIDArgs(cmd, ro)
	topLevel.AddCommand(cmd)
}
