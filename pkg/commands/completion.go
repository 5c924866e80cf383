package commands

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/entry"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(agenda completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(agenda completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerTagCompletion(cmd *cobra.Command, s *session) {
	flagName := "tag"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tagCompletions(cmd, s, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// tagCompletions offers every tag already in use that starts with toComplete.
func tagCompletions(cmd *cobra.Command, s *session, toComplete string) []string {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := s.service(ctx)
	if err != nil {
		return nil
	}
	defer func() { _ = s.release() }()

	seen := map[string]struct{}{}
	for _, k := range entry.Kinds() {
		for _, e := range svc.Book.List(k).Entries() {
			for _, t := range e.Tags {
				if strings.HasPrefix(strings.ToLower(t), strings.ToLower(toComplete)) {
					seen[t] = struct{}{}
				}
			}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
