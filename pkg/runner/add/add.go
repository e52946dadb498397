package add

import (
	"context"
	"errors"

	"github.com/d-matsui/kokolog/pkg/emotion"
	"github.com/d-matsui/kokolog/pkg/entry"
	"github.com/d-matsui/kokolog/pkg/printers"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Add struct {
	Draft entry.Draft

	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	if err := emotion.ValidateMoods(n.Draft.BeforeMoods); err != nil {
		return err
	}
	if err := emotion.ValidateMoods(n.Draft.AfterMoods); err != nil {
		return err
	}

	e := n.Store.Add(n.Draft)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("記録しました")
	pp.Detail(e)
	return nil
}
