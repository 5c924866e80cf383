package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/clean"
)

func addClear(topLevel *cobra.Command, s *session) {
	oo := &options.OutputOptions{}
	var bin, archive, all bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the bin, or move the archive to the bin",
		Long: options.Wrap80("Clear purges every deleted entry. With --archive it moves every " +
			"completed entry to the bin instead, and --all does both. Active entries are never " +
			"touched and one undo reverses the whole clear."),
		Example: `
agenda clear
agenda clear --bin
agenda clear --archive
agenda clear --all
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

			scope := app.ClearBin
			switch {
			case all:
				scope = app.ClearAll
			case archive:
				scope = app.ClearArchive
			}
			r := clean.Clear{
				Scope:   scope,
				Service: svc,
				Format:  format,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&bin, "bin", "b", false, "Purge deleted entries. This is the default.")
	cmd.Flags().BoolVarP(&archive, "archive", "a", false, "Move completed entries to the bin.")
	cmd.Flags().BoolVar(&all, "all", false, "Move completed entries to the bin, then empty it.")
	cmd.MarkFlagsMutuallyExclusive("bin", "archive", "all")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
