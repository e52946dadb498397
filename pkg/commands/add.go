package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/commands/options"
	"github.com/d-matsui/kokolog/pkg/runner/add"
	"github.com/d-matsui/kokolog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DraftOptions{}

	cmd := &cobra.Command{
		Use:   "add [situation]",
		Short: "Record a new reflection",
		Example: `
kokolog add "上司からのメールで急な会議を要求された" -t "またダメ出しされるんだろう" -b 不安:4,イライラ:3 -a 不安:2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				do.Situation = strings.Join(args, " ")
			}
			if do.Situation == "" {
				return errors.New("requires a situation")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := do.ToDraft()
			if err != nil {
				return output.HandleError(err)
			}
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			r := add.Add{
				Draft: draft,
				Store: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDraftArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
