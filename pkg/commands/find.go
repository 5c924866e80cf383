package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/get"
)

func addList(topLevel *cobra.Command, s *session) {
	lo := &options.ListOptions{}
	ro := &options.RefOptions{}
	oo := &options.OutputOptions{}
	var again bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List entries",
		Long: options.Wrap80("List shows active entries by default, or the archive or bin. The " +
			"numbers in front of each entry are what --event, --deadline and --task refer to in " +
			"the next command."),
		Example: `
agenda list
agenda list --archive --upcoming
agenda list --within 3d
agenda list --from 2024-03-01 --to 2024-03-31
agenda list --again
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

			r := get.Get{
				ShowID:  ro.ShowID,
				Service: svc,
				Format:  format,
			}
			if !again {
				q, err := lo.Query(nil, svc.Clock())
				if err != nil {
					return oo.HandleError(err)
				}
				r.Query = &q
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddShowIDArgs(cmd, ro)
	cmd.Flags().BoolVar(&again, "again", false, "Show the last listing again, with current contents.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addFind(topLevel *cobra.Command, s *session) {
	lo := &options.ListOptions{}
	ro := &options.RefOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "find <keywords...>",
		Aliases: []string{"search"},
		Short:   "Find entries by keywords in their names and tags",
		Long: options.Wrap80("Find lists entries whose name or tags contain any keyword. With " +
			"--strict every keyword has to match a whole word of the name or a tag. The result " +
			"becomes the listing that index flags refer to."),
		Example: `
agenda find report
agenda find --strict team sync
agenda find work --archive --from 2024-01-01
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one keyword")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := s.service(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			format, err := oo.Resolved()
			if err != nil {
				return err
			}

			q, err := lo.Query(args, svc.Clock())
			if err != nil {
				return oo.HandleError(err)
			}
			r := get.Get{
				Query:   &q,
				ShowID:  ro.ShowID,
				Service: svc,
				Format:  format,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddStrictArg(cmd, lo)
	options.AddShowIDArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
