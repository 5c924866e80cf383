package commands

import (
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/get"
	"tableflip.dev/agenda/pkg/runner/save"
)

func addSave(topLevel *cobra.Command, s *session) {
	oo := &options.OutputOptions{}
	var backend string

	cmd := &cobra.Command{
		Use:   "save PATH",
		Short: "Copy every entry and the history to another store",
		Long: options.Wrap80("Save writes the whole agenda, including undo history, to the store at " +
			"PATH. An existing agenda at PATH is replaced. The current store stays in use; " +
			"use open or --path to work with the copy."),
		Example: `
agenda save ~/backup/agenda
agenda save /tmp/agenda --backend sqlite
`,
		Args: cobra.ExactArgs(1),
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
			path, err := homedir.Expand(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			if backend == "" {
				backend = s.settings.Backend()
			}

			r := save.Save{
				Path:    path,
				Backend: backend,
				Service: svc,
				Format:  format,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "Store backend for the copy, diskv or sqlite. Defaults to the configured one.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addOpen(topLevel *cobra.Command, s *session) {
	ro := &options.RefOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "open PATH",
		Short: "Switch to the store at PATH and list it",
		Long: options.Wrap80("Open closes the current store and loads the one at PATH, creating it " +
			"when empty. In the shell every following command uses it; on the command line it " +
			"is the same as --path."),
		Example: `
agenda open ~/backup/agenda
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := s.open(cmd.Context(), args[0])
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
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
