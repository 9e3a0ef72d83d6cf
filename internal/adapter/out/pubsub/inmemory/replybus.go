package inmemory

import (
	"context"
	"sync"

	"myforum/internal/model"
)

const DefaultBuffer = 64

// ReplyBus fans reply events out to the subscribers of a post. A subscriber
// whose buffer is full misses the event.
type ReplyBus struct {
	mu sync.RWMutex
	// postID -> subscriber channels
	subs map[int64]map[chan model.ReplyEvent]struct{}
	buf  int
}

func New(buf int) *ReplyBus {
	if buf <= 0 {
		buf = DefaultBuffer
	}
	return &ReplyBus{
		subs: make(map[int64]map[chan model.ReplyEvent]struct{}),
		buf:  buf,
	}
}

// Subscribe registers a channel that is closed once ctx is done.
func (b *ReplyBus) Subscribe(ctx context.Context, postID int64) (<-chan model.ReplyEvent, error) {
	ch := make(chan model.ReplyEvent, b.buf)

	b.mu.Lock()
	if b.subs[postID] == nil {
		b.subs[postID] = make(map[chan model.ReplyEvent]struct{})
	}
	b.subs[postID][ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if set := b.subs[postID]; set != nil {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, postID)
			}
		}
		b.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

func (b *ReplyBus) Publish(_ context.Context, postID int64, ev model.ReplyEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs[postID] {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

func (b *ReplyBus) subscribers(postID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[postID])
}
