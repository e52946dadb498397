package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/commands/options"
	"github.com/d-matsui/kokolog/pkg/notify"
	"github.com/d-matsui/kokolog/pkg/runner/clear"
	"github.com/d-matsui/kokolog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry",
		Long: base.Wrap80("Delete every entry in the journal. This cannot be undone, " +
			"so the command refuses to run without --yes."),
		Example: `
kokolog clear --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !co.Yes {
				return errors.New("refusing to delete all entries without --yes")
			}
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := clear.Clear{
				Notifier: notify.Console{},
				Store:    s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
