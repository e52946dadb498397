package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/notify"
	"github.com/d-matsui/kokolog/pkg/runner/seed"
	"github.com/d-matsui/kokolog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addSeed(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample entries",
		Long: base.Wrap80("Insert a small set of sample entries ahead of whatever is " +
			"already recorded. Useful for trying the other commands on a fresh journal."),
		Example: `
kokolog seed
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := seed.Seed{
				Notifier: notify.Console{},
				Store:    s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
