// Package eventbus is the named-topic publish/subscribe bus that decouples
// "show this sheet" intent from the code that mounts and renders sheets.
package eventbus

import (
	"sync"
	"sync/atomic"
)

// Handler receives the payload published on a topic. Payload may be nil.
type Handler func(payload any)

// Subscription is returned by Subscribe. Unsubscribe is idempotent and no
// handler invocation starts after it returns.
type Subscription interface {
	Unsubscribe()
}

// Bus is the publish/subscribe contract consumed by the sheet registry and
// its controllers.
type Bus interface {
	Publish(topic string, payload any)
	Subscribe(topic string, h Handler) Subscription
	HasSubscribers(topic string) bool
}

// Local is an in-process Bus. Publish invokes every current subscriber of the
// topic synchronously, in subscription order, before returning.
type Local struct {
	mu     sync.RWMutex
	topics map[string][]*subscription
}

func NewLocal() *Local {
	return &Local{topics: make(map[string][]*subscription)}
}

type subscription struct {
	bus     *Local
	topic   string
	handler Handler
	active  atomic.Bool
}

func (s *subscription) Unsubscribe() {
	if !s.active.CompareAndSwap(true, false) {
		return
	}
	s.bus.remove(s)
}

func (b *Local) Subscribe(topic string, h Handler) Subscription {
	s := &subscription{bus: b, topic: topic, handler: h}
	if h == nil {
		return s
	}
	s.active.Store(true)
	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], s)
	b.mu.Unlock()
	return s
}

// Publish delivers payload to the subscribers registered when the call
// started. Handlers may subscribe or unsubscribe while being invoked; a
// subscription cancelled mid-delivery is skipped.
func (b *Local) Publish(topic string, payload any) {
	b.mu.RLock()
	subs := make([]*subscription, len(b.topics[topic]))
	copy(subs, b.topics[topic])
	b.mu.RUnlock()

	for _, s := range subs {
		if !s.active.Load() {
			continue
		}
		s.handler(payload)
	}
}

func (b *Local) HasSubscribers(topic string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic]) > 0
}

func (b *Local) remove(target *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.topics[target.topic]
	for i, s := range subs {
		if s != target {
			continue
		}
		next := make([]*subscription, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(b.topics, target.topic)
		} else {
			b.topics[target.topic] = next
		}
		return
	}
}
