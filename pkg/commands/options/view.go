package options

import (
	"github.com/spf13/cobra"
)

// ViewOptions selects the list view and live updates.
type ViewOptions struct {
	Kizuki bool
	Watch  bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.Kizuki, "kizuki", false,
		"Show only entries marked as insights.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and re-render when the journal changes.")
}

// GraphOptions selects the chart emotion and time window.
type GraphOptions struct {
	Emotion string
	Window  string
}

func AddGraphArgs(cmd *cobra.Command, o *GraphOptions) {
	cmd.Flags().StringVarP(&o.Emotion, "emotion", "e", "",
		"Emotion to chart. Defaults to the first recorded one.")
	cmd.Flags().StringVar(&o.Window, "window", "",
		"Only chart entries within this window, e.g. 2w or 10d.")
}

// ConfirmOptions gates destructive commands.
type ConfirmOptions struct {
	Yes bool
}

func AddYesArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}
