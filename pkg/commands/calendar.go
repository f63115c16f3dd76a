package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/northstar/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "calendar [action item]",
		Short: "Print a link that adds an action item to your calendar",
		Example: `
northstar calendar
northstar calendar call the plumber
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s := calendar.Calendar{
				Action: strings.Join(args, " "),
				Out:    cmd.OutOrStdout(),
			}
			if s.Action == "" {
				svc, err := loadService(cmd.Context(), nil)
				if err != nil {
					return err
				}
				s.Service = svc
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
