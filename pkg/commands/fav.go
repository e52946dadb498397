package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/runner/fav"
	"github.com/d-matsui/kokolog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addFav(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "fav <id>",
		Aliases: []string{"star"},
		Short:   "Toggle an entry's insight mark",
		Long: base.Wrap80("Toggle whether an entry is marked as a notable insight. " +
			"Marked entries show up under the kizuki view. Toggling does not change " +
			"the entry's date."),
		Example: `
kokolog fav 1771059413000
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := fav.Fav{
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
