package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/commands/options"
	"github.com/d-matsui/kokolog/pkg/runner/get"
	"github.com/d-matsui/kokolog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:     "get [id]",
		Aliases: []string{"list", "ls"},
		Short:   "List entries or show one entry",
		Example: `
kokolog get
kokolog get --kizuki
kokolog get 1771059413000
kokolog get --watch
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				io.ID = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			s, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := get.Get{
				ShowID: io.ShowID,
				Kizuki: vo.Kizuki,
				ID:     io.ID,
				Watch:  vo.Watch,
				Config: cfg,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddViewArgs(cmd, vo)
	base.AddOutputArg(cmd, output)

	addKizuki(cmd, topLevel)

	topLevel.AddCommand(cmd)
}

// addKizuki registers the favorites view as its own top-level command.
func addKizuki(getCmd *cobra.Command, topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "kizuki",
		Aliases: []string{"favorites", "favs"},
		Short:   "List entries marked as insights",
		Example: `
kokolog kizuki
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := get.Get{
				ShowID: io.ShowID,
				Kizuki: true,
				Store:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
