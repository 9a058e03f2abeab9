package subscription

import "sync"

// SubscriptionID identifies one subscription for later removal.
type SubscriptionID int

// Bus delivers events synchronously to every subscriber, in
// subscription order.
type Bus struct {
	mu    sync.Mutex
	next  SubscriptionID
	subs  map[SubscriptionID]func(Event)
	order []SubscriptionID
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		next: 1,
		subs: make(map[SubscriptionID]func(Event)),
	}
}

// Subscribe registers fn for every subsequent event.
func (b *Bus) Subscribe(fn func(Event)) SubscriptionID {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs[id] = fn
	b.order = append(b.order, id)
	return id
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (b *Bus) Unsubscribe(id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[id]; !ok {
		return
	}
	delete(b.subs, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish delivers ev to every current subscriber. The subscriber set
// is snapshotted first, so callbacks may subscribe or unsubscribe
// without deadlocking; those changes apply from the next event on.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.order))
	for _, id := range b.order {
		fns = append(fns, b.subs[id])
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
