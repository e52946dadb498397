package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/d-matsui/kokolog/pkg/notify"
	seeddata "github.com/d-matsui/kokolog/pkg/seed"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Seed struct {
	Notifier notify.Notifier

	Store *store.Store
}

func (n *Seed) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not seed, no store")
	}
	notifier := n.Notifier
	if notifier == nil {
		notifier = notify.Console{}
	}

	count, err := n.Store.InsertSeeds(seeddata.Drafts())
	if err != nil {
		notifier.Notify("エラー", "テストデータの追加に失敗しました。")
		return err
	}
	notifier.Notify("完了", fmt.Sprintf("%d件のテストデータを追加しました。", count))
	return nil
}
