package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/runner/remove"
	"github.com/d-matsui/kokolog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete an entry",
		Example: `
kokolog remove 1771059413000
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := remove.Remove{
				ID:    strings.TrimSpace(args[0]),
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
