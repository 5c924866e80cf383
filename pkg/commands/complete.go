package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command, s *session) {
	ro := &options.RefOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "complete [keywords...]",
		Aliases: []string{"completed", "done"},
		Short:   "Complete an entry by index, id or keywords",
		Long: options.Wrap80("Complete archives an active entry. Without --id or an index flag the " +
			"arguments are keywords: the single active entry whose name words or tags match every " +
			"keyword is completed. When several match they are listed so one can be picked by index."),
		Example: `
agenda complete -d 1
agenda complete --id 3f2a
agenda complete quarterly report
`,
		Args: func(_ *cobra.Command, args []string) error {
			if !ro.Given() && len(args) < 1 {
				return errors.New("requires an entry: keywords, --id or an index flag")
			}
			if ro.Given() && len(args) > 0 {
				return errors.New("keywords can not be combined with --id or an index flag")
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

			r := complete.Complete{
				Service: svc,
				Format:  format,
			}
			if ro.Given() {
				var ref app.Ref
				if ref, err = ro.Ref(nil); err != nil {
					return oo.HandleError(err)
				}
				r.Ref = &ref
			} else {
				r.Keywords = args
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddRefArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
