// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"github.com/d-matsui/kokolog/pkg/emotion"
	"github.com/d-matsui/kokolog/pkg/entry"
)

// DraftOptions captures the seven-column fields entered on the command line.
type DraftOptions struct {
	Situation       string
	AutoThought     string
	Before          string
	After           string
	Evidence        string
	CounterEvidence string
	NewThought      string
	Favorite        bool
}

// AddDraftArgs wires the entry field flags on the provided command.
func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVarP(&o.Situation, "situation", "s", "",
		"状況: what happened.")
	cmd.Flags().StringVarP(&o.AutoThought, "thought", "t", "",
		"自動思考: the automatic thought.")
	cmd.Flags().StringVarP(&o.Before, "before", "b", "",
		"気分(前): moods before reframing, e.g. 不安:4,イライラ:3")
	cmd.Flags().StringVarP(&o.After, "after", "a", "",
		"気分(後): moods after reframing, e.g. 不安:2")
	cmd.Flags().StringVarP(&o.Evidence, "evidence", "e", "",
		"根拠: evidence supporting the thought.")
	cmd.Flags().StringVarP(&o.CounterEvidence, "counter", "c", "",
		"反証: evidence against the thought.")
	cmd.Flags().StringVarP(&o.NewThought, "new-thought", "n", "",
		"適応思考: the balanced thought.")
	cmd.Flags().BoolVar(&o.Favorite, "kizuki", false,
		"Mark the entry as a notable insight.")
}

// ToDraft parses the mood flags and assembles the draft.
func (o *DraftOptions) ToDraft() (entry.Draft, error) {
	before, err := emotion.ParseMoods(o.Before)
	if err != nil {
		return entry.Draft{}, err
	}
	after, err := emotion.ParseMoods(o.After)
	if err != nil {
		return entry.Draft{}, err
	}
	return entry.Draft{
		Situation:       o.Situation,
		AutoThought:     o.AutoThought,
		BeforeMoods:     before,
		AfterMoods:      after,
		Evidence:        o.Evidence,
		CounterEvidence: o.CounterEvidence,
		NewThought:      o.NewThought,
		IsFavorite:      o.Favorite,
	}, nil
}
