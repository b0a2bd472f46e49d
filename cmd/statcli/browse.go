// cmd/statcli/browse.go
package statcli

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/statcli/cli"
)

// startBrowser is swapped out in tests.
var startBrowser = cli.StartBrowser

// newBrowseCmd returns the 'browse' command, which opens the interactive
// browser on --input (or asks for a path when it is empty).
func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Pick an operation interactively",
		Long:  `The 'browse' command starts a terminal UI that loads --input (or prompts for a file), lets you choose an operation and shows the result next to the values that were read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return startBrowser(cli.Options{
				Input:     s.cfg.Input,
				Lang:      s.lang,
				Precision: s.cfg.Precision,
				Debug:     s.cfg.Debug,
			})
		},
	}
}
