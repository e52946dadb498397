package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/d-matsui/kokolog/pkg/emotion"
	"github.com/d-matsui/kokolog/pkg/entry"
	"github.com/d-matsui/kokolog/pkg/printers"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Edit struct {
	Entry entry.Entry

	Store *store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	if err := emotion.ValidateMoods(n.Entry.BeforeMoods); err != nil {
		return err
	}
	if err := emotion.ValidateMoods(n.Entry.AfterMoods); err != nil {
		return err
	}

	if !n.Store.Update(n.Entry) {
		return fmt.Errorf("記録が見つかりません: %s", n.Entry.ID)
	}

	updated, _ := n.Store.Logs().Find(n.Entry.ID)
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("更新しました")
	pp.Detail(updated)
	return nil
}
