package clear

import (
	"context"
	"errors"

	"github.com/d-matsui/kokolog/pkg/notify"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Clear struct {
	Notifier notify.Notifier

	Store *store.Store
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no store")
	}
	notifier := n.Notifier
	if notifier == nil {
		notifier = notify.Console{}
	}

	if err := n.Store.ClearAll(); err != nil {
		notifier.Notify("エラー", "データの削除に失敗しました。")
		return err
	}
	notifier.Notify("完了", "すべてのデータを削除しました。")
	return nil
}
