package docstore

import "sync"

type delivery struct {
	snapshot Snapshot
	err      error
}

// subscriber decouples snapshot production from consumption: deliveries
// queue under the store lock and a dedicated goroutine drains them to
// the handler in order, so a slow handler never blocks a mutation.
type subscriber struct {
	userID     uint
	collection string
	onSnapshot SnapshotFunc
	onError    ErrorFunc

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []delivery
	closed bool
}

func newSubscriber(userID uint, collection string, onSnapshot SnapshotFunc, onError ErrorFunc) *subscriber {
	sub := &subscriber{
		userID:     userID,
		collection: collection,
		onSnapshot: onSnapshot,
		onError:    onError,
	}
	sub.cond = sync.NewCond(&sub.mu)
	return sub
}

func (sub *subscriber) push(item delivery) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	sub.queue = append(sub.queue, item)
	sub.cond.Signal()
}

func (sub *subscriber) close() {
	sub.mu.Lock()
	sub.closed = true
	sub.queue = nil
	sub.cond.Broadcast()
	sub.mu.Unlock()
}

func (sub *subscriber) run() {
	for {
		sub.mu.Lock()
		for len(sub.queue) == 0 && !sub.closed {
			sub.cond.Wait()
		}
		if sub.closed {
			sub.mu.Unlock()
			return
		}
		item := sub.queue[0]
		sub.queue = sub.queue[1:]
		sub.mu.Unlock()

		if item.err != nil {
			if sub.onError != nil {
				sub.onError(item.err)
			}
			continue
		}
		sub.onSnapshot(item.snapshot)
	}
}
