package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/northstar/pkg/runner/migrate"
)

func addMigrate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move entries from the legacy flat list into the journal",
		Long: base.Wrap80("Every command already migrates legacy entries before it " +
			"runs; this reports the result explicitly. Running it again is a no-op."),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context(), nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := migrate.Migrate{
				Service: svc,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
