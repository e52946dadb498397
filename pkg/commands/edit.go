package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/commands/options"
	"github.com/d-matsui/kokolog/pkg/emotion"
	"github.com/d-matsui/kokolog/pkg/runner/edit"
	"github.com/d-matsui/kokolog/pkg/store"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addEdit(topLevel *cobra.Command) {
	do := &options.DraftOptions{}

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Aliases: []string{"update"},
		Short:   "Update an existing entry",
		Long: base.Wrap80("Update an existing entry in place. Only the fields given " +
			"as flags change; everything else keeps its current value. The entry's " +
			"date is refreshed to now."),
		Example: `
kokolog edit 1771059413000 --thought "また失敗するかもしれない"
kokolog edit 1771059413000 --after 不安:2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(nil)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			logs := s.Logs()
			id := strings.TrimSpace(args[0])
			cur, ok := logs.Find(id)
			if !ok {
				return output.HandleError(fmt.Errorf("記録が見つかりません: %s", id))
			}

			if cmd.Flags().Changed("situation") {
				cur.Situation = do.Situation
			}
			if cmd.Flags().Changed("thought") {
				cur.AutoThought = do.AutoThought
			}
			if cmd.Flags().Changed("before") {
				moods, err := emotion.ParseMoods(do.Before)
				if err != nil {
					return output.HandleError(err)
				}
				cur.BeforeMoods = moods
			}
			if cmd.Flags().Changed("after") {
				moods, err := emotion.ParseMoods(do.After)
				if err != nil {
					return output.HandleError(err)
				}
				cur.AfterMoods = moods
			}
			if cmd.Flags().Changed("evidence") {
				cur.Evidence = do.Evidence
			}
			if cmd.Flags().Changed("counter") {
				cur.CounterEvidence = do.CounterEvidence
			}
			if cmd.Flags().Changed("new-thought") {
				cur.NewThought = do.NewThought
			}
			if cmd.Flags().Changed("kizuki") {
				cur.IsFavorite = do.Favorite
			}

			r := edit.Edit{
				Entry: cur,
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
