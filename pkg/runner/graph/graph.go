// Package graph renders the before/after mood comparison chart for one
// emotion.
package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/d-matsui/kokolog/pkg/collection"
	"github.com/d-matsui/kokolog/pkg/printers"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Graph struct {
	Emotion string
	Window  time.Duration

	Store *store.Store
}

func (n *Graph) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not graph, no store")
	}

	logs := n.Store.Logs()
	available := logs.Emotions()
	if len(available) == 0 {
		fmt.Println("")
		pp := printers.PrettyPrint{}
		pp.Title("気分グラフ")
		fmt.Println(" 記録がありません")
		return nil
	}

	name := n.Emotion
	if name == "" {
		// Default to the first emotion appearing in the journal, like the
		// graph screen's initial selection.
		name = available[0]
	}

	view := logs
	if n.Window > 0 {
		cutoff := time.Now().Add(-n.Window)
		view = make(collection.Collection, 0, len(logs))
		for _, e := range logs {
			if e.Date.After(cutoff) {
				view = append(view, e)
			}
		}
	}

	points := view.EmotionSeries(name)

	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Chart(name, points)
	return nil
}
