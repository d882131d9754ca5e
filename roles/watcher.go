package roles

import (
	"context"
	"log"
	"sync"
)

// Watcher tracks the role resolution for the currently authenticated user.
// It re-runs the lookup whenever the user identity changes and exposes the
// in-flight lookup as StateLoading. A result arriving after the identity has
// changed again is discarded.
type Watcher struct {
	resolver *Resolver

	mu  sync.Mutex
	uid string
	res Resolution
}

func NewWatcher(resolver *Resolver) *Watcher {
	return &Watcher{
		resolver: resolver,
		res:      Resolution{State: StateResolved, Role: RoleUnknown},
	}
}

// SetUser switches the watched identity. An empty uid means unauthenticated
// and forces lowest privilege immediately.
func (w *Watcher) SetUser(ctx context.Context, uid string) {
	w.mu.Lock()
	if uid == w.uid && w.res.State == StateResolved {
		w.mu.Unlock()
		return
	}
	w.uid = uid
	if uid == "" {
		w.res = Resolution{State: StateResolved, Role: RoleUnknown}
		w.mu.Unlock()
		return
	}
	w.res = Resolution{State: StateLoading}
	w.mu.Unlock()

	go func() {
		res, err := w.resolver.Resolve(ctx, uid)
		if err != nil {
			log.Printf("role lookup failed for %s: %v", uid, err)
		}
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.uid != uid {
			// Identity changed while the lookup was in flight.
			return
		}
		w.res = res
	}()
}

// Current returns the latest resolution for the watched identity.
func (w *Watcher) Current() Resolution {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.res
}

// AuthSignal matches the auth broker's subscription surface.
type AuthSignal interface {
	Subscribe(fn func(uid string, signedIn bool))
}
