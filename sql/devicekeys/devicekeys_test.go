package devicekeys

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

const bob = types.UserID("@bob:example.org")

func TestSetGetDelete(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	require.NoError(t, Set(db, bob, "LAPTOP", []byte(`{"alg":"one"}`)))
	require.NoError(t, Set(db, bob, "LAPTOP", []byte(`{"alg":"two"}`)))

	blob, err := Get(db, bob, "LAPTOP")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"alg":"two"}`), blob)

	require.NoError(t, DeleteByDevice(db, bob, "LAPTOP"))
	_, err = Get(db, bob, "LAPTOP")
	require.ErrorIs(t, err, sql.ErrNotFound)

	// deleting again is a no-op
	require.NoError(t, DeleteByDevice(db, bob, "LAPTOP"))
}

func TestByUser(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	require.NoError(t, Set(db, bob, "A", []byte("ka")))
	require.NoError(t, Set(db, bob, "B", []byte("kb")))
	require.NoError(t, Set(db, "@carol:example.org", "C", []byte("kc")))

	blobs, err := ByUser(db, bob)
	require.NoError(t, err)
	require.Equal(t, map[types.DeviceID][]byte{"A": []byte("ka"), "B": []byte("kb")}, blobs)
}
