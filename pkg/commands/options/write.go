package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/northstar/pkg/entry"
)

// WriteOptions
type WriteOptions struct {
	Answers     [5]string
	ActionItem  string
	Interactive bool
}

func AddWriteArgs(cmd *cobra.Command, o *WriteOptions) {
	for i, q := range entry.Questions {
		cmd.Flags().StringVar(&o.Answers[i], q, "",
			fmt.Sprintf("Answer to %q", entry.Prompts[i]))
	}
	cmd.Flags().StringVarP(&o.ActionItem, "action", "a", "",
		"Action item to carry into tomorrow.")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Fill in the answers with an interactive form.")
}

// Responses maps the answers onto q1..q5.
func (o *WriteOptions) Responses() entry.Responses {
	r := make(entry.Responses, len(entry.Questions))
	for i, q := range entry.Questions {
		r[q] = o.Answers[i]
	}
	return r
}

// Empty reports whether nothing was given on the command line.
func (o *WriteOptions) Empty() bool {
	for _, a := range o.Answers {
		if a != "" {
			return false
		}
	}
	return o.ActionItem == ""
}
