package session

import (
	"context"
	"sync"
)

type listeners struct {
	mu  sync.Mutex
	fns []Listener
}

func (ls *listeners) add(fn Listener) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.fns = append(ls.fns, fn)
}

func (ls *listeners) notify(ctx context.Context, authenticated bool) {
	ls.mu.Lock()
	fns := append([]Listener(nil), ls.fns...)
	ls.mu.Unlock()

	for _, fn := range fns {
		fn(ctx, authenticated)
	}
}
