package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/northstar/pkg/commands/options"
	"tableflip.dev/northstar/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's date, focus, scripture and streak",
		Example: `
northstar today
northstar today --on 2026-1-13
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			when, err := on.GetOn(time.Now())
			if err != nil {
				return err
			}
			svc, err := loadService(cmd.Context(), when)
			if err != nil {
				return oo.HandleError(err)
			}
			s := today.Today{
				Service: svc,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
