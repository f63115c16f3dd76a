package options

import (
	"github.com/spf13/cobra"
)

// KeyOptions
type KeyOptions struct {
	ShowKey bool
	Key     string
}

func AddShowKeyArgs(cmd *cobra.Command, o *KeyOptions) {
	cmd.Flags().BoolVarP(&o.ShowKey, "show-key", "k", false,
		"Show the createdAt key of each entry.")
}
