package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/d-matsui/kokolog/pkg/printers"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Remove struct {
	ID string

	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}

	if !n.Store.Delete(n.ID) {
		return fmt.Errorf("記録が見つかりません: %s", n.ID)
	}

	logs := n.Store.Logs()
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("これまでの記録", len(logs))
	pp.List(logs)
	return nil
}
