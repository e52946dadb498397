package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/d-matsui/kokolog/pkg/printers"
	"github.com/d-matsui/kokolog/pkg/store"
)

type Get struct {
	ShowID bool
	Kizuki bool
	ID     string
	Watch  bool
	Config store.Config

	Store *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	fmt.Println("")

	if err := n.render(n.Store); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}
	if n.Config == nil {
		return errors.New("can not watch, no config")
	}

	events, err := store.Watch(ctx, n.Config.BasePath())
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			// Reload from disk so changes made by other processes show up.
			fresh, err := store.Open(n.Config)
			if err != nil {
				return err
			}
			renderErr := n.render(fresh)
			_ = fresh.Close()
			if renderErr != nil {
				return renderErr
			}
		}
	}
}

func (n *Get) render(s *store.Store) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	logs := s.Logs()

	if n.ID != "" {
		e, ok := logs.Find(n.ID)
		if !ok {
			return fmt.Errorf("記録が見つかりません: %s", n.ID)
		}
		pp.Title(e.Title())
		pp.Detail(e)
		return nil
	}

	if n.Kizuki {
		favs := logs.Favorites()
		pp.TitleWithCount("気づきノート", len(favs))
		pp.List(favs)
		return nil
	}

	view := logs.Display()
	pp.TitleWithCount("これまでの記録", len(view))
	pp.List(view)
	return nil
}
