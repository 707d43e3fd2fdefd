package devices

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

const alice = types.UserID("@alice:example.org")

func TestAddIsIdempotent(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	device := &types.Device{
		UserID:      alice,
		DeviceID:    "PHONE",
		DisplayName: "phone",
		CreatedAt:   time.UnixMilli(1000).UTC(),
	}
	created, err := Add(db, device)
	require.NoError(t, err)
	require.True(t, created)

	created, err = Add(db, device)
	require.NoError(t, err)
	require.False(t, created)

	got, err := Get(db, alice, "PHONE")
	require.NoError(t, err)
	require.Equal(t, device, got)
}

func TestGetMissing(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	_, err := Get(db, alice, "NOPE")
	require.ErrorIs(t, err, sql.ErrNotFound)
}

func TestList(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	for _, id := range []types.DeviceID{"B", "A", "C"} {
		_, err := Add(db, &types.Device{UserID: alice, DeviceID: id})
		require.NoError(t, err)
	}
	_, err := Add(db, &types.Device{UserID: "@bob:example.org", DeviceID: "Z"})
	require.NoError(t, err)

	listed, err := List(db, alice)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, types.DeviceID("A"), listed[0].DeviceID)
	require.Equal(t, types.DeviceID("C"), listed[2].DeviceID)
}

func TestSetDisplayName(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	require.ErrorIs(t, SetDisplayName(db, alice, "PHONE", "Phone"), sql.ErrNotFound)

	_, err := Add(db, &types.Device{UserID: alice, DeviceID: "PHONE"})
	require.NoError(t, err)
	require.NoError(t, SetDisplayName(db, alice, "PHONE", "Phone"))

	got, err := Get(db, alice, "PHONE")
	require.NoError(t, err)
	require.Equal(t, "Phone", got.DisplayName)
}

func TestDelete(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	deleted, err := Delete(db, alice, "PHONE")
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = Add(db, &types.Device{UserID: alice, DeviceID: "PHONE"})
	require.NoError(t, err)

	deleted, err = Delete(db, alice, "PHONE")
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = Get(db, alice, "PHONE")
	require.ErrorIs(t, err, sql.ErrNotFound)
}
