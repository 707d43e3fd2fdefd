package remotedevices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

const bob = types.UserID("@bob:remote.org")

func TestExtremityOfUnknownUser(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	_, err := Extremity(db, bob)
	require.ErrorIs(t, err, sql.ErrNotFound)
}

func TestReplace(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()
	ctx := context.Background()

	require.NoError(t, Replace(ctx, db, bob, []Entry{
		{DeviceID: "OLD", Content: []byte("old")},
	}, "5"))

	require.NoError(t, Replace(ctx, db, bob, []Entry{
		{DeviceID: "A", Content: []byte("a")},
		{DeviceID: "B", Content: []byte("b")},
	}, "9"))

	token, err := Extremity(db, bob)
	require.NoError(t, err)
	require.Equal(t, "9", token)

	entries, err := Entries(db, bob)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{DeviceID: "A", Content: []byte("a")},
		{DeviceID: "B", Content: []byte("b")},
	}, entries)
}

func TestUpdateEntry(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()
	ctx := context.Background()

	require.NoError(t, Replace(ctx, db, bob, []Entry{
		{DeviceID: "A", Content: []byte("a")},
	}, "6"))
	require.NoError(t, UpdateEntry(ctx, db, bob, Entry{DeviceID: "B", Content: []byte("b")}, "7"))

	token, err := Extremity(db, bob)
	require.NoError(t, err)
	require.Equal(t, "7", token)

	entries, err := Entries(db, bob)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// updating an existing device replaces its content only
	require.NoError(t, UpdateEntry(ctx, db, bob, Entry{DeviceID: "B", Content: []byte("b2")}, "8"))
	entries, err = Entries(db, bob)
	require.NoError(t, err)
	require.Equal(t, []byte("b2"), entries[1].Content)
}
