package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/northstar/pkg/commands/options"
	"tableflip.dev/northstar/pkg/printers"
	"tableflip.dev/northstar/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var watch bool

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"report", "summary"},
		Short:   "Show streak, weekly summary and monthly consistency",
		Example: `
northstar stats
northstar stats --watch
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
			s := stats.Stats{
				Service: svc,
				Watch:   watch,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and refresh when new entries are saved.")
	options.AddOnArgs(cmd, on)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addStreak(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Print the number of consecutive days journaled, ending today",
		Args:  cobra.NoArgs,
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
			streak, err := svc.Streak(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			if oo.JSON {
				return printers.JSON(cmd.OutOrStdout(), map[string]int{"streak": streak})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Current Streak: %s\n", printers.Days(streak))
			return err
		},
	}

	options.AddOnArgs(cmd, on)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
