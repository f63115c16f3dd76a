package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/northstar/pkg/commands/options"
	"tableflip.dev/northstar/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	ko := &options.KeyOptions{}
	var pick, markdown bool

	cmd := &cobra.Command{
		Use:   "show [createdAt|latest]",
		Short: "Show every answer of one entry",
		Example: `
northstar show
northstar show --pick --markdown
northstar show 2026-01-02T07:12:44.120Z
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return entryKeyCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				ko.Key = args[0]
			}
			svc, err := loadService(cmd.Context(), nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := show.Show{
				Service:  svc,
				Key:      ko.Key,
				ShowKey:  ko.ShowKey,
				JSON:     oo.JSON,
				Pick:     pick,
				Markdown: markdown,
				In:       cmd.InOrStdin(),
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "Choose the entry from a searchable list.")
	cmd.Flags().BoolVarP(&markdown, "markdown", "m", false, "Render the entry as styled Markdown.")
	options.AddShowKeyArgs(cmd, ko)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
