package favorite

import "sync"

// ChangeEvent describes one completed toggle. Places carries the full list
// after the change so consumers never need a follow-up read.
type ChangeEvent struct {
	UserID int64    `json:"user_id"`
	Place  string   `json:"place"`
	Added  bool     `json:"added"`
	Places []string `json:"places"`
}

// Broker fans out change events to in-process subscribers. Delivery is
// best effort: a subscriber that stops draining its channel loses events
// instead of blocking the writer.
type Broker struct {
	mutex       sync.RWMutex
	subscribers map[chan ChangeEvent]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[chan ChangeEvent]struct{}),
	}
}

func (b *Broker) Subscribe() chan ChangeEvent {
	ch := make(chan ChangeEvent, 16)

	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.subscribers[ch] = struct{}{}

	return ch
}

func (b *Broker) Unsubscribe(ch chan ChangeEvent) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
}

func (b *Broker) Publish(event ChangeEvent) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (b *Broker) SubscriberCount() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	return len(b.subscribers)
}
