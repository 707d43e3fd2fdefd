// Package events fans device-list stream events out to locally connected
// listeners (sync loops, client session handlers).
package events

import (
	"sync"

	"go.uber.org/zap"

	"github.com/meridian-im/meridian/common/types"
)

// DeviceListChange is emitted every time a stream position is allocated: some
// user's device list changed and clients in the given rooms should refetch.
type DeviceListChange struct {
	Position types.StreamPosition
	Rooms    []types.RoomID
}

// Reporter delivers DeviceListChange events to subscribers. Delivery is
// non-blocking: a subscriber that does not drain its channel misses events
// and is expected to treat its buffer capacity as the staleness bound.
type Reporter struct {
	logger *zap.Logger

	mu   sync.RWMutex
	subs map[chan DeviceListChange]struct{}
}

// NewReporter creates a Reporter.
func NewReporter(logger *zap.Logger) *Reporter {
	return &Reporter{
		logger: logger,
		subs:   map[chan DeviceListChange]struct{}{},
	}
}

// Subscribe registers a new listener with the given channel buffer size.
func (r *Reporter) Subscribe(bufsize int) chan DeviceListChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub := make(chan DeviceListChange, bufsize)
	r.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a listener. Events already buffered stay readable.
func (r *Reporter) Unsubscribe(sub chan DeviceListChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, sub)
}

// OnDeviceListChange publishes the change to every subscriber.
func (r *Reporter) OnDeviceListChange(position types.StreamPosition, rooms []types.RoomID) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event := DeviceListChange{Position: position, Rooms: rooms}
	for sub := range r.subs {
		select {
		case sub <- event:
		default:
			r.logger.Debug("subscriber lagging, device list event dropped",
				zap.Stringer("position", position),
			)
		}
	}
}
