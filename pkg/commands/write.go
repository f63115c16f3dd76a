package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/northstar/pkg/commands/options"
	"tableflip.dev/northstar/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	wo := &options.WriteOptions{}

	cmd := &cobra.Command{
		Use:     "write",
		Aliases: []string{"add", "new"},
		Short:   "Record today's reflection",
		Long: base.Wrap80("Record today's reflection. Answers can be given as flags; " +
			"with none given on a terminal, an interactive form is opened. " +
			"Entries can not be edited once saved."),
		Example: `
northstar write
northstar write --q1 "ran 5k" --q3 "my family" --action "stretch after work"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context(), nil)
			if err != nil {
				return oo.HandleError(err)
			}
			interactive := wo.Interactive
			if wo.Empty() && isatty.IsTerminal(os.Stdin.Fd()) {
				interactive = true
			}
			s := write.Write{
				Service:     svc,
				Responses:   wo.Responses(),
				ActionItem:  wo.ActionItem,
				Interactive: interactive,
				JSON:        oo.JSON,
				In:          cmd.InOrStdin(),
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddWriteArgs(cmd, wo)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
