package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/northstar/pkg/commands/options"
	"tableflip.dev/northstar/pkg/runner/themes"
)

func addThemes(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "themes",
		Aliases: []string{"key"},
		Short:   "Show the theme rotation and when each theme comes up next",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			when, err := on.GetOn(now)
			if err != nil {
				return err
			}
			if when != nil {
				now = *when
			}
			s := themes.Themes{On: now, Out: cmd.OutOrStdout()}
			return s.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
