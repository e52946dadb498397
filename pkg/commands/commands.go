package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "kokolog",
		Short: base.Wrap80("CBT mood journaling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addFav(topLevel)
	addGraph(topLevel)
	addEmotions(topLevel)
	addClear(topLevel)
	addSeed(topLevel)
	addVersion(topLevel)
}
