package roles

import (
	"context"
	"sync"
)

// Registry keeps one Watcher per signed-in user so role lookups triggered by
// auth transitions are visible to guards, including the in-flight window
// between sign-in and the profile read completing.
type Registry struct {
	resolver *Resolver

	mu       sync.Mutex
	watchers map[string]*Watcher
}

func NewRegistry(resolver *Resolver) *Registry {
	return &Registry{resolver: resolver, watchers: make(map[string]*Watcher)}
}

// Bind subscribes the registry to auth-state transitions. A sign-in starts a
// watcher for that user; a logout forces the watcher to lowest privilege and
// drops it.
func (r *Registry) Bind(sig AuthSignal) {
	sig.Subscribe(func(uid string, signedIn bool) {
		if uid == "" {
			return
		}
		if !signedIn {
			r.mu.Lock()
			w, ok := r.watchers[uid]
			delete(r.watchers, uid)
			r.mu.Unlock()
			if ok {
				w.SetUser(context.Background(), "")
			}
			return
		}

		r.mu.Lock()
		w, ok := r.watchers[uid]
		if !ok {
			w = NewWatcher(r.resolver)
			r.watchers[uid] = w
		}
		r.mu.Unlock()
		w.SetUser(context.Background(), uid)
	})
}

// Check reports the watched resolution for uid when a session watcher exists.
// Sessions established before this process started (a still-valid token with
// no sign-in event seen) fall back to a synchronous lookup.
func (r *Registry) Check(ctx context.Context, uid string) Resolution {
	r.mu.Lock()
	w, ok := r.watchers[uid]
	r.mu.Unlock()
	if ok {
		return w.Current()
	}
	return r.resolver.Check(ctx, uid)
}
