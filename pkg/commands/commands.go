package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	ro = &rootOptions{}
)

type rootOptions struct {
	Verbose bool
}

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "northstar",
		Short: base.Wrap80("A daily reflection journal with a rotating focus."),
		Long: base.Wrap80("northstar shows today's focus and scripture, records five " +
			"reflection answers and an action item, and keeps your history, " +
			"streak and summaries on disk."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&ro.Verbose, "verbose", "v", false, "Log debug output to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addWrite(topLevel)
	addHistory(topLevel)
	addShow(topLevel)
	addStats(topLevel)
	addStreak(topLevel)
	addExport(topLevel)
	addCalendar(topLevel)
	addThemes(topLevel)
	addMigrate(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
