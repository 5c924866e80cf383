package options

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/printers"
)

// OutputOptions selects between the colored listing and a structured
// encoding. --json is kept as a shorthand for --output=json.
type OutputOptions struct {
	base.OutputOptions
	Format string
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	base.AddOutputArg(cmd, &o.OutputOptions)
	cmd.Flags().StringVarP(&o.Format, "output", "o", printers.FormatText,
		"Output format. One of 'text', 'json' or 'yaml'.")
}

// Resolved returns the effective output format.
func (o *OutputOptions) Resolved() (string, error) {
	if o.JSON {
		return printers.FormatJSON, nil
	}
	switch f := strings.ToLower(strings.TrimSpace(o.Format)); f {
	case "", printers.FormatText:
		return printers.FormatText, nil
	case printers.FormatJSON, printers.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", o.Format)
	}
}

// Structured reports whether the command should encode rather than print.
func (o *OutputOptions) Structured() bool {
	f, err := o.Resolved()
	return err == nil && f != printers.FormatText
}

// HandleError reports err in the selected structured format and swallows
// it; text output returns it to cobra unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	f, ferr := o.Resolved()
	if ferr != nil || f == printers.FormatText {
		return err
	}
	if f == printers.FormatJSON {
		o.OutputOptions.JSON = true
		return o.OutputOptions.HandleError(err)
	}
	if eerr := printers.Encode(color.Output, f, map[string]string{"error": err.Error()}); eerr != nil {
		return eerr
	}
	return nil
}
