package store

import (
	"fmt"
	"os"
	"sync"
)

// Binding ties one in-memory value to one key in a KV store. The stored
// value is read exactly once when the binding is created; after the load
// completes, every change is persisted in the background by a single
// writer, so writes apply in mutation order. The in-memory value is the
// authority for the process lifetime: persistence failures are recorded
// and logged but never roll back a change.
type Binding[T any] struct {
	kv      KV
	key     string
	initial T
	encode  func(T) ([]byte, error)
	decode  func([]byte) (T, error)

	mu       sync.Mutex
	cond     *sync.Cond
	data     T
	loading  bool
	loadErr  error
	saveErr  error
	dirty    bool
	inflight bool
	closed   bool
	ready    chan struct{}
}

// NewBinding creates the binding and starts the background load followed by
// the persist worker. Ready is closed once the single load attempt
// resolves, success or failure alike.
func NewBinding[T any](kv KV, key string, initial T, encode func(T) ([]byte, error), decode func([]byte) (T, error)) *Binding[T] {
	b := &Binding[T]{
		kv:      kv,
		key:     key,
		initial: initial,
		encode:  encode,
		decode:  decode,
		data:    initial,
		loading: true,
		ready:   make(chan struct{}),
	}
	b.cond = sync.NewCond(&b.mu)
	go func() {
		b.load()
		b.loop()
	}()
	return b
}

// Ready is closed after the initial load attempt completes.
func (b *Binding[T]) Ready() <-chan struct{} {
	return b.ready
}

// IsLoading reports whether the initial load is still pending.
func (b *Binding[T]) IsLoading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// Err returns the most recent persistence failure, or the load failure if
// nothing has failed since.
func (b *Binding[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.saveErr != nil {
		return b.saveErr
	}
	return b.loadErr
}

// Data returns the current in-memory value.
func (b *Binding[T]) Data() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Set replaces the value and schedules a persist.
func (b *Binding[T]) Set(v T) {
	b.Update(func(T) (T, bool) { return v, true })
}

// Update applies fn to the latest in-memory value. The updater runs under
// the binding lock, so rapid successive updates apply cumulatively even
// when earlier persists are still in flight. A persist is scheduled only
// when fn reports a change.
func (b *Binding[T]) Update(fn func(T) (T, bool)) {
	b.mu.Lock()
	next, changed := fn(b.data)
	if changed {
		b.data = next
		if !b.loading {
			b.dirty = true
			b.cond.Broadcast()
		}
	}
	b.mu.Unlock()
}

// Flush blocks until no load or persist is pending and returns the last
// persistence failure, if any.
func (b *Binding[T]) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.loading || b.dirty || b.inflight {
		b.cond.Wait()
	}
	return b.saveErr
}

// Remove waits out pending writes, deletes the key from the store, and
// resets the value to the initial one. Unlike ordinary persists, the store
// error is propagated: the caller owns user-facing reporting.
func (b *Binding[T]) Remove() error {
	// Let queued writes land first so none of them resurrect the key.
	b.waitIdle()

	if err := b.kv.Remove(b.key); err != nil {
		b.mu.Lock()
		b.saveErr = err
		b.mu.Unlock()
		return err
	}

	b.mu.Lock()
	b.data = b.initial
	b.loadErr = nil
	b.saveErr = nil
	b.mu.Unlock()
	return nil
}

// Close drains pending writes and stops the persist worker.
func (b *Binding[T]) Close() error {
	b.mu.Lock()
	b.closed = true
	b.cond.Broadcast()
	b.mu.Unlock()
	return b.Flush()
}

func (b *Binding[T]) waitIdle() {
	b.mu.Lock()
	for b.loading || b.dirty || b.inflight {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

func (b *Binding[T]) load() {
	val, ok, err := b.kv.Get(b.key)

	b.mu.Lock()
	switch {
	case err != nil:
		b.loadErr = err
		fmt.Fprintf(os.Stderr, "store: load %s: %v\n", b.key, err)
	case ok:
		if v, derr := b.decode(val); derr != nil {
			// Malformed payload degrades to the initial value.
			b.loadErr = derr
			fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", b.key, derr)
		} else {
			b.data = v
		}
	}
	b.loading = false
	close(b.ready)
	b.cond.Broadcast()
	b.mu.Unlock()
}

func (b *Binding[T]) loop() {
	for {
		b.mu.Lock()
		for !b.dirty && !b.closed {
			b.cond.Wait()
		}
		if b.closed && !b.dirty {
			b.mu.Unlock()
			return
		}
		b.dirty = false
		b.inflight = true
		snap := b.data
		b.mu.Unlock()

		data, err := b.encode(snap)
		if err == nil {
			err = b.kv.Set(b.key, data)
		}

		b.mu.Lock()
		b.inflight = false
		if err != nil {
			b.saveErr = err
			fmt.Fprintf(os.Stderr, "store: persist %s: %v\n", b.key, err)
		} else {
			b.saveErr = nil
		}
		b.cond.Broadcast()
		b.mu.Unlock()
	}
}
