package services

import (
	"sync"
	"time"

	"bizhub/internal/pos"
)

// counter is one browser session's order plus whatever the module keeps
// next to it. All access goes through the session mutex.
type counter[T pos.Item] struct {
	mu      sync.Mutex
	order   *pos.Order[T]
	catalog []T
	loaded  bool

	used time.Time // guarded by counters.mu
}

type counters[T pos.Item] struct {
	mu sync.Mutex
	m  map[string]*counter[T]
}

func (c *counters[T]) get(sid string) *counter[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = map[string]*counter[T]{}
	}
	s, ok := c.m[sid]
	if !ok {
		s = &counter[T]{order: pos.NewOrder[T]()}
		c.m[sid] = s
	}
	s.used = time.Now()
	return s
}

// drop ends a session and discards its order.
func (c *counters[T]) drop(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, sid)
}

// expire drops every session not used since cutoff and reports how many went.
func (c *counters[T]) expire(cutoff time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for sid, s := range c.m {
		if s.used.Before(cutoff) {
			delete(c.m, sid)
			n++
		}
	}
	return n
}

func (c *counters[T]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

func (s *counter[T]) find(id int64) (T, bool) {
	for _, it := range s.catalog {
		if it.ItemID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
