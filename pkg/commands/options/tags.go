package options

import (
	"strings"

	"github.com/spf13/cobra"
)

// TagOptions collects --tag flags. Tags are also accepted as "#word" tokens
// in the entry name.
type TagOptions struct {
	Tags  []string
	Clear bool
}

func AddTagArgs(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the entry, repeat or separate with commas.")
}

func AddClearTagsArg(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().BoolVar(&o.Clear, "clear-tags", false,
		"Remove every tag from the entry.")
}

// SplitName separates "#word" tokens from the words of a name.
func SplitName(args []string) (string, []string) {
	var words, tags []string
	for _, arg := range args {
		for _, w := range strings.Fields(arg) {
			if len(w) > 1 && strings.HasPrefix(w, "#") {
				tags = append(tags, w[1:])
				continue
			}
			words = append(words, w)
		}
	}
	return strings.Join(words, " "), tags
}
