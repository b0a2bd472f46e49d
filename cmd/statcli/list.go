// cmd/statcli/list.go
package statcli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwiater/statcli/report"
	"github.com/mwiater/statcli/stats"
)

// newListCmd returns the 'list' command group, a namespace for subcommands
// that describe what statcli can do.
func newListCmd(opts *rootOptions) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Group commands for listing operations and commands",
		Long:  `The 'list' command groups related subcommands that list information about statcli. It performs no action on its own.`,
	}

	listCmd.AddCommand(
		&cobra.Command{
			Use:   "operations",
			Short: "List the supported statistics",
			Long:  `The 'operations' subcommand prints every value accepted by --operation with a short description, in the configured language.`,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := opts.load(cmd)
				if err != nil {
					return err
				}
				listOperations(cmd.OutOrStdout(), s.lang)
				return nil
			},
		},
		&cobra.Command{
			Use:   "commands",
			Short: "List all commands and subcommands in two columns",
			Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
			Run: func(cmd *cobra.Command, args []string) {
				listAllCommands(cmd.OutOrStdout(), cmd.Root())
			},
		},
	)

	return listCmd
}

// listOperations prints each operation name beside its localised label and
// description.
func listOperations(w io.Writer, lang report.Language) {
	ops := stats.Operations()
	width := 0
	for _, op := range ops {
		if len(op) > width {
			width = len(op)
		}
	}
	for _, op := range ops {
		fmt.Fprintf(w, "  %s%s%s: %s\n",
			op, strings.Repeat(" ", width-len(op)+2),
			report.Label(lang, op), report.Description(lang, op))
	}
}

// listAllCommands recursively traverses the command tree starting from root
// and prints each command path and short description in a padded, two-column layout.
func listAllCommands(w io.Writer, root *cobra.Command) {
	commandData := collectCommandData(root, "", "")

	maxPathLength := 0
	for _, data := range commandData {
		if len(data.path) > maxPathLength {
			maxPathLength = len(data.path)
		}
	}

	fmt.Fprintln(w, "Commands and Subcommands:")
	for _, data := range commandData {
		fmt.Fprintf(w, "  %s%s%s\n", data.path, strings.Repeat(" ", maxPathLength-len(data.path)+2), data.description)
	}
}

type commandInfo struct {
	path        string
	description string
}

// collectCommandData walks the command tree and returns a flattened slice of
// path/description pairs. Cobra's generated help and completion commands are
// skipped.
func collectCommandData(cmd *cobra.Command, currentPath string, indent string) []commandInfo {
	var allData []commandInfo

	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	allData = append(allData, commandInfo{
		path:        indent + fullPath,
		description: cmd.Short,
	})

	for _, subCmd := range cmd.Commands() {
		if !subCmd.IsAvailableCommand() {
			continue
		}
		allData = append(allData, collectCommandData(subCmd, fullPath, indent+"  ")...)
	}

	return allData
}
