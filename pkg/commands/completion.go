package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/northstar/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(northstar completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(northstar completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func entryKeyCompletions(toComplete string) []string {
	p, err := store.Load(nil, nil)
	if err != nil {
		return nil
	}
	entries, err := p.ListAll(context.Background())
	if err != nil {
		return nil
	}
	keys := []string{"latest"}
	for _, e := range entries {
		keys = append(keys, e.CreatedAt)
	}
	out := keys[:0]
	for _, k := range keys {
		if strings.HasPrefix(k, toComplete) {
			out = append(out, k)
		}
	}
	return out
}
