package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

const prompt = "agenda> "

func addShell(topLevel *cobra.Command, s *session) {
	cmd := &cobra.Command{
		Use:     "shell",
		Aliases: []string{"sh", "repl"},
		Short:   "Run agenda commands one line at a time",
		Long: `Shell reads commands without the leading "agenda", runs them against one
open store and keeps going until "exit", "quit" or end of input.`,
		Example: `
agenda shell
agenda> add task buy milk
agenda> list
agenda> complete -f 1
agenda> undo
agenda> exit
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if s.interactive {
				return errors.New("already in a shell")
			}
			s.interactive = true
			defer func() {
				s.interactive = false
			}()
			if _, err := s.service(cmd.Context()); err != nil {
				return err
			}
			return runShell(cmd, s)
		},
	}

	topLevel.AddCommand(cmd)
}

func runShell(cmd *cobra.Command, s *session) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	showPrompt := false
	if f, ok := in.(*os.File); ok {
		showPrompt = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	scanner := bufio.NewScanner(in)
	for {
		if showPrompt {
			_, _ = color.New(color.Bold).Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch line {
		case "exit", "quit", "q":
			return nil
		}

		args, err := shellwords.Parse(line)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if len(args) > 0 && args[0] == "agenda" {
			args = args[1:]
		}
		runLine(cmd, s, args, out)
	}
	return scanner.Err()
}

// runLine executes one line on a fresh command tree so flags never carry
// over from the previous line.
func runLine(parent *cobra.Command, s *session, args []string, out io.Writer) {
	root := newRoot(s)
	root.SetArgs(args)
	root.SetIn(parent.InOrStdin())
	root.SetOut(out)
	root.SetErr(parent.ErrOrStderr())
	// cobra already printed the error; keep reading.
	_ = root.ExecuteContext(parent.Context())
}
