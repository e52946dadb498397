package store

import (
	"context"
	"testing"
	"time"

	"github.com/d-matsui/kokolog/pkg/entry"
)

func TestWatchEmitsOnPersist(t *testing.T) {
	base := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, base)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	s := New(NewDiskKV(base))
	<-s.Ready()
	s.Add(entry.Draft{Situation: "hello"})
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatalf("channel closed before event")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	base := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, base)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A buffered event may arrive first; the channel must still
			// close afterwards.
			select {
			case _, ok2 := <-ch:
				if ok2 {
					t.Fatalf("expected channel closed after cancel")
				}
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for close")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for close")
	}
}
