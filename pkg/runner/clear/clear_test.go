package clear

import (
	"context"
	"testing"

	"github.com/d-matsui/kokolog/pkg/entry"
	"github.com/d-matsui/kokolog/pkg/store"
)

type fakeNotifier struct {
	titles   []string
	messages []string
}

func (f *fakeNotifier) Notify(title, message string) {
	f.titles = append(f.titles, title)
	f.messages = append(f.messages, message)
}

func TestClearNotifiesSuccess(t *testing.T) {
	s := store.New(store.NewDiskKV(t.TempDir()))
	t.Cleanup(func() { _ = s.Close() })
	s.Add(entry.Draft{Situation: "S"})

	fn := &fakeNotifier{}
	n := &Clear{Store: s, Notifier: fn}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.Logs()) != 0 {
		t.Fatalf("expected empty collection after clear")
	}
	if len(fn.titles) != 1 || fn.titles[0] != "完了" {
		t.Fatalf("expected success notification, got %v", fn.titles)
	}
}

func TestClearWithoutStore(t *testing.T) {
	n := &Clear{}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected error without store")
	}
}
