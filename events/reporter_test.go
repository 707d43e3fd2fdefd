package events

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/meridian-im/meridian/common/types"
)

func TestReporterFanOut(t *testing.T) {
	r := NewReporter(zaptest.NewLogger(t))
	first := r.Subscribe(1)
	second := r.Subscribe(1)

	r.OnDeviceListChange(7, []types.RoomID{"!a"})

	for _, sub := range []chan DeviceListChange{first, second} {
		event := <-sub
		require.Equal(t, types.StreamPosition(7), event.Position)
		require.Equal(t, []types.RoomID{"!a"}, event.Rooms)
	}
}

func TestReporterDoesNotBlockOnLaggingSubscriber(t *testing.T) {
	r := NewReporter(zaptest.NewLogger(t))
	lagging := r.Subscribe(1)
	live := r.Subscribe(2)

	r.OnDeviceListChange(1, nil)
	r.OnDeviceListChange(2, nil)

	require.Equal(t, types.StreamPosition(1), (<-lagging).Position)
	require.Empty(t, lagging)

	require.Equal(t, types.StreamPosition(1), (<-live).Position)
	require.Equal(t, types.StreamPosition(2), (<-live).Position)
}

func TestReporterUnsubscribe(t *testing.T) {
	r := NewReporter(zaptest.NewLogger(t))
	sub := r.Subscribe(1)
	r.Unsubscribe(sub)

	r.OnDeviceListChange(1, nil)
	require.Empty(t, sub)
}
