package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/northstar/pkg/commands/options"
	"tableflip.dev/northstar/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries as text or CSV files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addExportText(cmd)
	addExportMarkdown(cmd)
	addExportCSV(cmd)
	topLevel.AddCommand(cmd)
}

func addExportText(parent *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:     "txt [createdAt|latest]",
		Aliases: []string{"text"},
		Short:   "Export one entry as a plain text file",
		Example: `
northstar export txt
northstar export txt 2026-01-02T07:12:44.120Z --dir ~/Documents
northstar export txt latest --dir -
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
			svc, err := loadService(cmd.Context(), nil)
			if err != nil {
				return err
			}
			s := export.Text{
				Service: svc,
				Dir:     eo.Dir,
				Out:     cmd.OutOrStdout(),
			}
			if len(args) > 0 {
				s.Key = args[0]
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddExportArgs(cmd, eo)
	parent.AddCommand(cmd)
}

func addExportCSV(parent *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export every entry as one CSV file",
		Example: `
northstar export csv
northstar export csv --dir - > journal.csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(cmd.Context(), nil)
			if err != nil {
				return err
			}
			s := export.CSV{
				Service: svc,
				Dir:     eo.Dir,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddExportArgs(cmd, eo)
	parent.AddCommand(cmd)
}

func addExportMarkdown(parent *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:     "md [createdAt|latest]",
		Aliases: []string{"markdown"},
		Short:   "Export one entry as a Markdown file",
		Example: `
northstar export md
northstar export md latest --dir ~/notes
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
			svc, err := loadService(cmd.Context(), nil)
			if err != nil {
				return err
			}
			s := export.Markdown{
				Service: svc,
				Dir:     eo.Dir,
				Out:     cmd.OutOrStdout(),
			}
			if len(args) > 0 {
				s.Key = args[0]
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddExportArgs(cmd, eo)
	parent.AddCommand(cmd)
}
