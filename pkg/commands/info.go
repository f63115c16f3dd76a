package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/northstar/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where the journal is stored.",
		Example: `
northstar info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context(), nil)
			if err != nil {
				return err
			}
			s := info.Info{
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
