package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/entry"
	"tableflip.dev/agenda/pkg/runner/state"
)

// addStateCommand wires a command that moves one entry to another state,
// or purges it.
func addStateCommand(topLevel *cobra.Command, s *session, base *cobra.Command, to entry.State, purge bool) {
	ro := &options.RefOptions{}
	oo := &options.OutputOptions{}

	base.Args = cobra.MaximumNArgs(1)
	base.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ref, err := ro.Ref(args)
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

		r := state.Change{
			Ref:     ref,
			To:      to,
			Purge:   purge,
			Service: svc,
			Format:  format,
		}
		return oo.HandleError(r.Do(cmd.Context()))
	}

	options.AddRefArgs(base, ro)
	options.AddOutputArg(base, oo)

	topLevel.AddCommand(base)
}

func addDelete(topLevel *cobra.Command, s *session) {
	addStateCommand(topLevel, s, &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm", "strike"},
		Short:   "Move an entry to the bin",
		Example: `
agenda delete -e 2
agenda delete 3f2a
`,
	}, entry.Deleted, false)
}

func addRestore(topLevel *cobra.Command, s *session) {
	addStateCommand(topLevel, s, &cobra.Command{
		Use:     "restore [id]",
		Aliases: []string{"reopen"},
		Short:   "Return a completed or deleted entry to the active list",
		Long: options.Wrap80("Restore brings an entry back from the archive or the bin. List them " +
			"first with --archive or --bin so the index flags point into that listing."),
		Example: `
agenda list --bin
agenda restore -f 1
`,
	}, entry.Active, false)
}

func addPurge(topLevel *cobra.Command, s *session) {
	addStateCommand(topLevel, s, &cobra.Command{
		Use:   "purge [id]",
		Short: "Permanently remove an entry that is in the bin",
		Example: `
agenda list --bin
agenda purge -d 1
`,
	}, entry.Deleted, true)
}
