package usecase

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-classic/internal/entity"
)

const subscriberBuffer = 8

type subscriber struct {
	ch        chan entity.Session
	closeOnce sync.Once
}

func (that *subscriber) close() {
	that.closeOnce.Do(func() { close(that.ch) })
}

// broker fans session snapshots out to everyone watching a session.
type broker struct {
	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
}

func newBroker() *broker {
	return &broker{subs: make(map[string]map[*subscriber]struct{})}
}

// Subscribe registers a watcher for id. The channel is closed on unsubscribe, when ctx is done,
// when the session is deleted, or when the watcher falls behind.
func (that *broker) Subscribe(ctx context.Context, id string) (<-chan entity.Session, func()) {
	sub := &subscriber{ch: make(chan entity.Session, subscriberBuffer)}

	that.mu.Lock()
	set, ok := that.subs[id]
	if !ok {
		set = make(map[*subscriber]struct{})
		that.subs[id] = set
	}
	set[sub] = struct{}{}
	that.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			that.remove(id, sub)
			sub.close()
		})
	}

	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return sub.ch, unsubscribe
}

// Publish never blocks: a subscriber whose buffer is full is dropped.
func (that *broker) Publish(session entity.Session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for sub := range that.subs[session.ID] {
		select {
		case sub.ch <- session:
		default:
			delete(that.subs[session.ID], sub)
			sub.close()
		}
	}

	if len(that.subs[session.ID]) == 0 {
		delete(that.subs, session.ID)
	}
}

// CloseAll drops every watcher of id.
func (that *broker) CloseAll(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for sub := range that.subs[id] {
		sub.close()
	}

	delete(that.subs, id)
}

func (that *broker) remove(id string, sub *subscriber) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if set, ok := that.subs[id]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(that.subs, id)
		}
	}
}
