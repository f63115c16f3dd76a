package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/northstar/pkg/commands/options"
	"tableflip.dev/northstar/pkg/runner/history"
	"tableflip.dev/northstar/pkg/timeutil"
)

func addHistory(topLevel *cobra.Command) {
	to := &options.ThemeOptions{}
	ko := &options.KeyOptions{}
	var last string

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log", "ls"},
		Short:   "List past entries, newest first",
		Example: `
northstar history
northstar history --theme faith
northstar history --last 2w
northstar history -k
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			days, _, err := timeutil.ParseDays(last)
			if err != nil {
				return err
			}
			svc, err := loadService(cmd.Context(), nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := history.History{
				Service: svc,
				Theme:   to.Theme,
				Days:    days,
				ShowKey: ko.ShowKey,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&last, "last", "", `Only list entries from a recent window, example: --last=10d or --last=2w.`)
	options.AddThemeArgs(cmd, to)
	options.AddShowKeyArgs(cmd, ko)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
