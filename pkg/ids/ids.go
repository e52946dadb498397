// Package ids generates the stable identifiers assigned to journal entries.
package ids

import (
	"fmt"
	"sync"
	"time"
)

// Generator produces unique entry ids. Injected into the store so tests can
// pin ids.
type Generator interface {
	Next() string
}

// NewGenerator returns the default generator: unix-millisecond timestamp
// plus an in-process counter. Ids stay chronologically sortable and two
// calls within the same millisecond never collide.
func NewGenerator() Generator {
	return &generator{now: time.Now}
}

// NewGeneratorWithClock is NewGenerator with an injected clock, for tests.
func NewGeneratorWithClock(now func() time.Time) Generator {
	return &generator{now: now}
}

type generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
	seq  uint64
}

func (g *generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms == g.last {
		g.seq++
	} else {
		g.last = ms
		g.seq = 0
	}
	if g.seq == 0 {
		return fmt.Sprintf("%d", ms)
	}
	return fmt.Sprintf("%d-%d", ms, g.seq)
}
