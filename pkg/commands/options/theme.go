package options

import (
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/northstar/pkg/theme"
)

// ThemeOptions
type ThemeOptions struct {
	Theme string
}

func AddThemeArgs(cmd *cobra.Command, o *ThemeOptions) {
	cmd.Flags().StringVarP(&o.Theme, "theme", "t", theme.All,
		base.Wrap80("Only show entries for this theme, one of: all, "+strings.Join(theme.Names(), ", ")+"."))
	_ = cmd.RegisterFlagCompletionFunc("theme", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, name := range append([]string{theme.All}, theme.Names()...) {
			slug := theme.Slug(name)
			if strings.HasPrefix(slug, strings.ToLower(toComplete)) {
				out = append(out, slug)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}
