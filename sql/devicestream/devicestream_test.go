package devicestream

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

const alice = types.UserID("@alice:example.org")

func TestPositionsStrictlyIncrease(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()
	ctx := context.Background()

	first, err := AddChange(ctx, db, alice, []types.DeviceID{"A"}, nil)
	require.NoError(t, err)
	second, err := AddChange(ctx, db, alice, []types.DeviceID{"B", "C"}, []string{"remote.org"})
	require.NoError(t, err)
	require.Greater(t, second, first)

	current, err := CurrentPosition(db)
	require.NoError(t, err)
	require.Equal(t, second, current)
}

func TestConcurrentAllocationsAreDistinct(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	const n = 20
	positions := make([]types.StreamPosition, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pos, err := AddChange(context.Background(), db, alice, []types.DeviceID{"D"}, nil)
			require.NoError(t, err)
			positions[i] = pos
		}(i)
	}
	wg.Wait()

	seen := map[types.StreamPosition]struct{}{}
	for _, pos := range positions {
		_, dup := seen[pos]
		require.False(t, dup, "position %d allocated twice", pos)
		seen[pos] = struct{}{}
	}
}

func TestChangedUsers(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()
	ctx := context.Background()

	mark, err := AddChange(ctx, db, alice, []types.DeviceID{"A"}, nil)
	require.NoError(t, err)
	_, err = AddChange(ctx, db, "@bob:example.org", []types.DeviceID{"B"}, nil)
	require.NoError(t, err)
	_, err = AddChange(ctx, db, "@bob:example.org", []types.DeviceID{"B2"}, nil)
	require.NoError(t, err)

	users, err := ChangedUsers(db, mark)
	require.NoError(t, err)
	require.Equal(t, []types.UserID{"@bob:example.org"}, users)

	users, err = ChangedUsers(db, mark+100)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestChangesSince(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()
	ctx := context.Background()

	pos, err := AddChange(ctx, db, alice, []types.DeviceID{"A", "B"}, []string{"remote.org"})
	require.NoError(t, err)

	changes, err := ChangesSince(db, 0)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	for _, change := range changes {
		require.Equal(t, pos, change.Position)
		require.Equal(t, alice, change.UserID)
		require.Equal(t, []string{"remote.org"}, change.Hosts)
	}
}
