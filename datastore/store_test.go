package datastore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/devices"
	"github.com/meridian-im/meridian/sql"
)

func newStore(t *testing.T) *Store {
	store, err := New(sql.InMemory())
	require.NoError(t, err)
	return store
}

func TestStoreDeviceRoundtrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	user := types.UserID("@bob:alpha.example")

	created, err := store.StoreDevice(ctx, &types.Device{
		UserID:      user,
		DeviceID:    "PHONE",
		DisplayName: "my phone",
		CreatedAt:   time.Unix(1000, 0).UTC(),
	})
	require.NoError(t, err)
	require.True(t, created)

	created, err = store.StoreDevice(ctx, &types.Device{UserID: user, DeviceID: "PHONE"})
	require.NoError(t, err)
	require.False(t, created)

	device, err := store.GetDevice(ctx, user, "PHONE")
	require.NoError(t, err)
	require.Equal(t, "my phone", device.DisplayName)

	require.NoError(t, store.UpdateDevice(ctx, user, "PHONE", "renamed"))
	device, err = store.GetDevice(ctx, user, "PHONE")
	require.NoError(t, err)
	require.Equal(t, "renamed", device.DisplayName)

	deleted, err := store.DeleteDevice(ctx, user, "PHONE")
	require.NoError(t, err)
	require.True(t, deleted)
	_, err = store.GetDevice(ctx, user, "PHONE")
	require.ErrorIs(t, err, sql.ErrNotFound)
}

func TestDevicesWithKeysByUser(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	user := types.UserID("@bob:alpha.example")

	_, err := store.StoreDevice(ctx, &types.Device{UserID: user, DeviceID: "PHONE", DisplayName: "my phone"})
	require.NoError(t, err)
	_, err = store.StoreDevice(ctx, &types.Device{UserID: user, DeviceID: "WATCH"})
	require.NoError(t, err)
	require.NoError(t, store.SetDeviceKeys(ctx, user, "PHONE", []byte(`{"ed25519":"abc"}`)))

	_, err = store.AddDeviceChange(ctx, user, []types.DeviceID{"PHONE", "WATCH"}, nil)
	require.NoError(t, err)

	position, infos, err := store.DevicesWithKeysByUser(ctx, user)
	require.NoError(t, err)
	require.Equal(t, types.StreamPosition(1), position)
	require.Len(t, infos, 2)

	var phone struct {
		DeviceID    types.DeviceID  `json:"device_id"`
		DisplayName string          `json:"device_display_name"`
		Keys        json.RawMessage `json:"keys"`
	}
	require.Equal(t, types.DeviceID("PHONE"), infos[0].DeviceID)
	require.NoError(t, json.Unmarshal(infos[0].Content, &phone))
	require.Equal(t, types.DeviceID("PHONE"), phone.DeviceID)
	require.Equal(t, "my phone", phone.DisplayName)
	require.JSONEq(t, `{"ed25519":"abc"}`, string(phone.Keys))

	var watch map[string]any
	require.NoError(t, json.Unmarshal(infos[1].Content, &watch))
	require.NotContains(t, watch, "keys")
	require.NotContains(t, watch, "device_display_name")
}

func TestChangeStream(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	first, err := store.AddDeviceChange(ctx, "@bob:alpha.example", []types.DeviceID{"PHONE"}, []string{"beta.example"})
	require.NoError(t, err)
	second, err := store.AddDeviceChange(ctx, "@carol:beta.example", []types.DeviceID{"TABLET"}, nil)
	require.NoError(t, err)
	require.Greater(t, second, first)

	changed, err := store.UsersWhoseDevicesChanged(ctx, first)
	require.NoError(t, err)
	require.Equal(t, []types.UserID{"@carol:beta.example"}, changed)

	all, err := store.ChangesSince(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, []string{"beta.example"}, all[0].Hosts)
}

func TestRoomMembership(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.AddRoomMember(ctx, "!a", "@bob:alpha.example"))
	require.NoError(t, store.AddRoomMember(ctx, "!a", "@carol:beta.example"))
	require.NoError(t, store.AddRoomMember(ctx, "!a", "@bob:alpha.example"))

	members, err := store.UsersInRoom(ctx, "!a")
	require.NoError(t, err)
	require.ElementsMatch(t, []types.UserID{"@bob:alpha.example", "@carol:beta.example"}, members)

	joined, err := store.RoomsForUser(ctx, "@bob:alpha.example")
	require.NoError(t, err)
	require.Equal(t, []types.RoomID{"!a"}, joined)
}

func TestRemoteCache(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	user := types.UserID("@carol:beta.example")

	_, err := store.RemoteExtremity(ctx, user)
	require.ErrorIs(t, err, sql.ErrNotFound)

	infos := []devices.DeviceInfo{
		{DeviceID: "TABLET", Content: []byte(`{"device_id":"TABLET"}`)},
		{DeviceID: "WATCH", Content: []byte(`{"device_id":"WATCH"}`)},
	}
	require.NoError(t, store.ReplaceRemoteDevices(ctx, user, infos, "9"))

	token, err := store.RemoteExtremity(ctx, user)
	require.NoError(t, err)
	require.Equal(t, "9", token)

	cached, err := store.RemoteDevices(ctx, user)
	require.NoError(t, err)
	require.Equal(t, infos, cached)

	require.NoError(t, store.UpdateRemoteDevice(ctx, user, "WATCH", []byte(`{"device_id":"WATCH","device_display_name":"Watch"}`), "10"))
	token, err = store.RemoteExtremity(ctx, user)
	require.NoError(t, err)
	require.Equal(t, "10", token)

	cached, err = store.RemoteDevices(ctx, user)
	require.NoError(t, err)
	require.Len(t, cached, 2)

	// a replace drops devices missing from the new list
	require.NoError(t, store.ReplaceRemoteDevices(ctx, user, infos[:1], "11"))
	cached, err = store.RemoteDevices(ctx, user)
	require.NoError(t, err)
	require.Equal(t, infos[:1], cached)
}

func TestExtremityCacheReflectsWrites(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	user := types.UserID("@carol:beta.example")

	require.NoError(t, store.ReplaceRemoteDevices(ctx, user, nil, "1"))
	token, err := store.RemoteExtremity(ctx, user)
	require.NoError(t, err)
	require.Equal(t, "1", token)

	// a second store on the same database sees the committed row, not the cache
	other, err := New(store.db)
	require.NoError(t, err)
	token, err = other.RemoteExtremity(ctx, user)
	require.NoError(t, err)
	require.Equal(t, "1", token)
}

func TestAccessTokens(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	user := types.UserID("@bob:alpha.example")

	require.NoError(t, store.AddAccessToken(ctx, "tok-1", user, "PHONE"))
	require.NoError(t, store.AddAccessToken(ctx, "tok-2", user, "PHONE"))
	require.NoError(t, store.DeleteAccessTokens(ctx, user, "PHONE"))
	// revoking again is a no-op
	require.NoError(t, store.DeleteAccessTokens(ctx, user, "PHONE"))
}
