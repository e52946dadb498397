package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/commands/options"
	"github.com/d-matsui/kokolog/pkg/runner/graph"
	"github.com/d-matsui/kokolog/pkg/store"
	"github.com/d-matsui/kokolog/pkg/timeutil"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addGraph(topLevel *cobra.Command) {
	gro := &options.GraphOptions{}

	cmd := &cobra.Command{
		Use:     "graph [emotion]",
		Aliases: []string{"chart"},
		Short:   "Chart mood levels before and after reframing",
		Example: `
kokolog graph
kokolog graph 不安
kokolog graph 不安 --window 2w
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				gro.Emotion = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := timeutil.ParseWindow(gro.Window)
			if err != nil {
				return output.HandleError(err)
			}
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := graph.Graph{
				Emotion: gro.Emotion,
				Window:  window,
				Store:   s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddGraphArgs(cmd, gro)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
