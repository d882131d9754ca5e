package auth

import "sync"

// Broker fans auth-state transitions out to subscribers (cart store, role
// watcher). Publish is synchronous so a logout is fully observed before the
// next request is served.
type Broker struct {
	mu   sync.Mutex
	subs []func(uid string, signedIn bool)
}

func NewBroker() *Broker {
	return &Broker{}
}

func (b *Broker) Subscribe(fn func(uid string, signedIn bool)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

func (b *Broker) Publish(uid string, signedIn bool) {
	b.mu.Lock()
	subs := make([]func(string, bool), len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(uid, signedIn)
	}
}
