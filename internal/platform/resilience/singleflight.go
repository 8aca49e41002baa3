package resilience

import "sync"

// SingleFlight deduplicates concurrent calls for the same key: late callers
// wait for the running call and receive its result.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

type call[T any] struct {
	wg  sync.WaitGroup
	val T
	err error
}

// Do runs fn once per key at a time. shared reports whether the result came
// from another caller's run.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (val T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call[T]{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		c.wg.Done()
	}()

	c.val, c.err = fn()
	return c.val, c.err, false
}

// InFlight reports whether a call for key is currently running.
func (g *SingleFlight[T]) InFlight(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.calls[key]
	return ok
}
