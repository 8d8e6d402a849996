package events

import "sync"

// AvatarUpdate announces that a user changed their avatar so every view
// rendering it can refresh.
type AvatarUpdate struct {
	UserID    string
	AvatarURL string
}

// Broadcaster fans AvatarUpdate events out to in-process subscribers.
// Publish never blocks; a subscriber whose buffer is full misses the event.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan AvatarUpdate]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan AvatarUpdate]struct{})}
}

// Subscribe registers a listener. The returned func cancels the subscription
// and closes the channel.
func (b *Broadcaster) Subscribe() (<-chan AvatarUpdate, func()) {
	ch := make(chan AvatarUpdate, 8)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the update to every current subscriber.
func (b *Broadcaster) Publish(update AvatarUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- update:
		default:
		}
	}
}
