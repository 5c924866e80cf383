package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, s *session) {
	ro := &options.RefOptions{}
	so := &options.ScheduleOptions{}
	to := &options.TagOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "edit [new name]",
		Short: "Change the name, tags or times of an entry",
		Long: options.Wrap80("Edit rewrites only what is given: remaining arguments become the new " +
			"name, --tag adds tags (or replaces them with --clear-tags), --from/--to move an event " +
			"and --by moves a deadline. The entry is picked by --id or by its index in the last listing."),
		Example: `
agenda edit -e 1 --from="2024-03-05 11:00" --to="2024-03-05 12:00"
agenda edit -f 2 buy oat milk
agenda edit --id 3f2a --clear-tags -t home
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ref, err := ro.Ref(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := s.service(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			format, err := oo.Resolved()
			if err != nil {
				return err
			}

			name, tags := options.SplitName(args)
			r := edit.Edit{
				Ref:       ref,
				Name:      name,
				Tags:      append(tags, to.Tags...),
				ClearTags: to.Clear,
				Service:   svc,
				Format:    format,
			}
			now := svc.Clock()
			parse := func(raw string, endOfDay bool) (*time.Time, error) {
				if raw == "" {
					return nil, nil
				}
				t, err := options.ParseTime(raw, now, endOfDay)
				if err != nil {
					return nil, err
				}
				return &t, nil
			}
			if r.Start, err = parse(so.From, false); err != nil {
				return oo.HandleError(err)
			}
			if r.End, err = parse(so.To, true); err != nil {
				return oo.HandleError(err)
			}
			if r.Due, err = parse(so.By, true); err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddRefArgs(cmd, ro)
	options.AddEventArgs(cmd, so)
	options.AddDeadlineArgs(cmd, so)
	options.AddTagArgs(cmd, to)
	options.AddClearTagsArg(cmd, to)
	registerTagCompletion(cmd, s)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
