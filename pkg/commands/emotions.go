package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/runner/emotions"
	"github.com/d-matsui/kokolog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addEmotions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "emotions",
		Aliases: []string{"moods"},
		Short:   "List the mood vocabulary",
		Example: `
kokolog emotions
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := emotions.Emotions{
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
