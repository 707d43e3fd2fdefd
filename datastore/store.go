// Package datastore binds the per-table sql packages into the storage surface
// the device-list subsystem consumes, adding a cache for the hot read on the
// federation ingress path.
package datastore

import (
	"context"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/devices"
	"github.com/meridian-im/meridian/sql"
	sqldevices "github.com/meridian-im/meridian/sql/devices"
	"github.com/meridian-im/meridian/sql/devicekeys"
	"github.com/meridian-im/meridian/sql/devicestream"
	"github.com/meridian-im/meridian/sql/remotedevices"
	"github.com/meridian-im/meridian/sql/rooms"
	"github.com/meridian-im/meridian/sql/tokens"
)

// Every inbound device-list update reads the cached extremity of its user
// before anything else, so extremities are kept in memory. The cache is
// write-through: cache writes happen only after the row is committed.
const extremityCacheSize = 10000

// Store wraps the database with the operations of the device-list subsystem.
type Store struct {
	logger      *zap.Logger
	db          *sql.Database
	extremities *lru.Cache[types.UserID, string]
}

// Opt configures a Store.
type Opt func(*Store)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store on top of db.
func New(db *sql.Database, opts ...Opt) (*Store, error) {
	extremities, err := lru.New[types.UserID, string](extremityCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create extremity cache: %w", err)
	}
	s := &Store{
		logger:      zap.NewNop(),
		db:          db,
		extremities: extremities,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// StoreDevice inserts the device unless it exists and reports whether a new
// record was created.
func (s *Store) StoreDevice(ctx context.Context, device *types.Device) (bool, error) {
	return sqldevices.Add(s.db, device)
}

// GetDevice returns the device or sql.ErrNotFound.
func (s *Store) GetDevice(ctx context.Context, user types.UserID, id types.DeviceID) (*types.Device, error) {
	return sqldevices.Get(s.db, user, id)
}

// GetDevicesByUser returns all devices of the user ordered by device id.
func (s *Store) GetDevicesByUser(ctx context.Context, user types.UserID) ([]*types.Device, error) {
	return sqldevices.List(s.db, user)
}

// UpdateDevice sets the display name of an existing device. Returns
// sql.ErrNotFound for an unknown device.
func (s *Store) UpdateDevice(ctx context.Context, user types.UserID, id types.DeviceID, displayName string) error {
	return sqldevices.SetDisplayName(s.db, user, id, displayName)
}

// DeleteDevice removes the device record and reports whether it existed.
func (s *Store) DeleteDevice(ctx context.Context, user types.UserID, id types.DeviceID) (bool, error) {
	return sqldevices.Delete(s.db, user, id)
}

// SetDeviceKeys stores the key material announced for a device.
func (s *Store) SetDeviceKeys(ctx context.Context, user types.UserID, id types.DeviceID, keys []byte) error {
	return devicekeys.Set(s.db, user, id, keys)
}

// DeleteKeysByDevice removes the key material of a device, a no-op if none
// was stored.
func (s *Store) DeleteKeysByDevice(ctx context.Context, user types.UserID, id types.DeviceID) error {
	return devicekeys.DeleteByDevice(s.db, user, id)
}

// AddAccessToken binds an access token to a device.
func (s *Store) AddAccessToken(ctx context.Context, token string, user types.UserID, id types.DeviceID) error {
	return tokens.Add(s.db, token, user, id)
}

// DeleteAccessTokens revokes all access tokens bound to a device.
func (s *Store) DeleteAccessTokens(ctx context.Context, user types.UserID, id types.DeviceID) error {
	return tokens.DeleteByDevice(s.db, user, id)
}

// AddDeviceChange allocates the next stream position and records the change
// for the given devices and interested hosts.
func (s *Store) AddDeviceChange(
	ctx context.Context,
	user types.UserID,
	ids []types.DeviceID,
	hosts []string,
) (types.StreamPosition, error) {
	return devicestream.AddChange(ctx, s.db, user, ids, hosts)
}

// UsersWhoseDevicesChanged returns the users with a change recorded after from.
func (s *Store) UsersWhoseDevicesChanged(ctx context.Context, from types.StreamPosition) ([]types.UserID, error) {
	return devicestream.ChangedUsers(s.db, from)
}

// ChangesSince returns the change rows recorded after from in stream order.
func (s *Store) ChangesSince(ctx context.Context, from types.StreamPosition) ([]devicestream.Change, error) {
	return devicestream.ChangesSince(s.db, from)
}

// AddRoomMember records room membership, idempotently.
func (s *Store) AddRoomMember(ctx context.Context, room types.RoomID, user types.UserID) error {
	return rooms.AddMember(s.db, room, user)
}

// RoomsForUser returns the rooms the user is a member of.
func (s *Store) RoomsForUser(ctx context.Context, user types.UserID) ([]types.RoomID, error) {
	return rooms.ForUser(s.db, user)
}

// UsersInRoom returns the members of a room.
func (s *Store) UsersInRoom(ctx context.Context, room types.RoomID) ([]types.UserID, error) {
	return rooms.Members(s.db, room)
}

// deviceWithKeys is the device-info object served for a local device.
type deviceWithKeys struct {
	DeviceID    types.DeviceID  `json:"device_id"`
	DisplayName string          `json:"device_display_name,omitempty"`
	Keys        json.RawMessage `json:"keys,omitempty"`
}

// DevicesWithKeysByUser returns the current stream position together with the
// full device+key listing of a local user, as served to federation queries.
func (s *Store) DevicesWithKeysByUser(
	ctx context.Context,
	user types.UserID,
) (types.StreamPosition, []devices.DeviceInfo, error) {
	position, err := devicestream.CurrentPosition(s.db)
	if err != nil {
		return 0, nil, err
	}
	listed, err := sqldevices.List(s.db, user)
	if err != nil {
		return 0, nil, err
	}
	keys, err := devicekeys.ByUser(s.db, user)
	if err != nil {
		return 0, nil, err
	}
	infos := make([]devices.DeviceInfo, 0, len(listed))
	for _, device := range listed {
		content, err := json.Marshal(deviceWithKeys{
			DeviceID:    device.DeviceID,
			DisplayName: device.DisplayName,
			Keys:        keys[device.DeviceID],
		})
		if err != nil {
			return 0, nil, fmt.Errorf("encode device %s/%s: %w", user, device.DeviceID, err)
		}
		infos = append(infos, devices.DeviceInfo{DeviceID: device.DeviceID, Content: content})
	}
	return position, infos, nil
}

// RemoteExtremity returns the cached stream token of a remote user, or
// sql.ErrNotFound if the user was never cached.
func (s *Store) RemoteExtremity(ctx context.Context, user types.UserID) (string, error) {
	if token, ok := s.extremities.Get(user); ok {
		return token, nil
	}
	token, err := remotedevices.Extremity(s.db, user)
	if err != nil {
		return "", err
	}
	s.extremities.Add(user, token)
	return token, nil
}

// ReplaceRemoteDevices swaps the cached device list of a remote user wholesale
// and sets the extremity to token.
func (s *Store) ReplaceRemoteDevices(
	ctx context.Context,
	user types.UserID,
	infos []devices.DeviceInfo,
	token string,
) error {
	entries := make([]remotedevices.Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, remotedevices.Entry{DeviceID: info.DeviceID, Content: info.Content})
	}
	if err := remotedevices.Replace(ctx, s.db, user, entries, token); err != nil {
		return err
	}
	s.extremities.Add(user, token)
	return nil
}

// UpdateRemoteDevice stores a single remote device's announced content and
// advances the extremity to token.
func (s *Store) UpdateRemoteDevice(
	ctx context.Context,
	user types.UserID,
	id types.DeviceID,
	content []byte,
	token string,
) error {
	entry := remotedevices.Entry{DeviceID: id, Content: content}
	if err := remotedevices.UpdateEntry(ctx, s.db, user, entry, token); err != nil {
		return err
	}
	s.extremities.Add(user, token)
	return nil
}

// RemoteDevices returns the cached device list of a remote user.
func (s *Store) RemoteDevices(ctx context.Context, user types.UserID) ([]devices.DeviceInfo, error) {
	entries, err := remotedevices.Entries(s.db, user)
	if err != nil {
		return nil, err
	}
	infos := make([]devices.DeviceInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, devices.DeviceInfo{DeviceID: entry.DeviceID, Content: entry.Content})
	}
	return infos, nil
}
