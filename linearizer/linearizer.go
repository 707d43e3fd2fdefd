// Package linearizer provides a keyed mutual-exclusion primitive: at most one
// holder per key runs its critical section at a time, waiters for the same
// key are admitted in arrival order, and distinct keys never contend.
//
// It exists to serialize check-then-act sequences that race when two
// operations for the same key interleave, such as the resync decision and
// cache write for a single remote user's device list.
package linearizer

import (
	"context"
	"sync"
)

// Linearizer serializes critical sections sharing the same key. The zero
// value is not usable; construct with New.
type Linearizer[K comparable] struct {
	mu sync.Mutex
	// tail of the waiter chain per key. Each acquirer parks on its
	// predecessor's channel and hands its own to the next arrival, giving
	// strict FIFO admission without a queue structure.
	tails map[K]chan struct{}
}

// New creates a Linearizer.
func New[K comparable]() *Linearizer[K] {
	return &Linearizer[K]{tails: make(map[K]chan struct{})}
}

// Acquire blocks until every earlier acquirer of key has released, then
// grants the critical section. The returned release function must be called
// on every exit path; it is safe to call more than once. If ctx expires
// while waiting the slot is forfeited without stalling later waiters and the
// context error is returned.
func (l *Linearizer[K]) Acquire(ctx context.Context, key K) (func(), error) {
	l.mu.Lock()
	prev := l.tails[key]
	baton := make(chan struct{})
	l.tails[key] = baton
	l.mu.Unlock()

	release := func() func() {
		var once sync.Once
		return func() {
			once.Do(func() {
				close(baton)
				l.mu.Lock()
				if l.tails[key] == baton {
					delete(l.tails, key)
				}
				l.mu.Unlock()
			})
		}
	}()

	if prev != nil {
		select {
		case <-prev:
		case <-ctx.Done():
			// Forward the baton once the predecessor finishes so that
			// waiters queued behind this canceled one are not stranded.
			go func() {
				<-prev
				release()
			}()
			return nil, ctx.Err()
		}
	}
	return release, nil
}
