// Package fav provides the runner logic for flagging an entry as a kizuki,
// a notable insight.
package fav

import (
	"context"
	"errors"
	"fmt"

	"github.com/d-matsui/kokolog/pkg/printers"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Fav struct {
	ID string

	Store *store.Store
}

func (n *Fav) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not fav, no store")
	}

	if !n.Store.ToggleFavorite(n.ID) {
		return fmt.Errorf("記録が見つかりません: %s", n.ID)
	}

	e, _ := n.Store.Logs().Find(n.ID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	if e.IsFavorite {
		pp.Title("気づきに追加しました")
	} else {
		pp.Title("気づきを外しました")
	}
	pp.Detail(e)
	return nil
}
