package devices

import (
	"context"

	"github.com/meridian-im/meridian/common/types"
)

//go:generate mockgen -typed -package=devices -destination=./mocks.go -source=./interface.go

// deviceStore is the storage surface consumed by the device-list subsystem.
// Reads and writes that miss report sql.ErrNotFound; call sites translate it
// where idempotent semantics apply.
type deviceStore interface {
	// StoreDevice inserts the device unless it exists and reports whether a
	// new record was created.
	StoreDevice(ctx context.Context, device *types.Device) (bool, error)
	GetDevice(ctx context.Context, user types.UserID, id types.DeviceID) (*types.Device, error)
	GetDevicesByUser(ctx context.Context, user types.UserID) ([]*types.Device, error)
	UpdateDevice(ctx context.Context, user types.UserID, id types.DeviceID, displayName string) error
	// DeleteDevice reports whether a record existed.
	DeleteDevice(ctx context.Context, user types.UserID, id types.DeviceID) (bool, error)
	DeleteKeysByDevice(ctx context.Context, user types.UserID, id types.DeviceID) error
	DeleteAccessTokens(ctx context.Context, user types.UserID, id types.DeviceID) error

	// AddDeviceChange allocates the next stream position and records the
	// change for the given devices and interested hosts.
	AddDeviceChange(ctx context.Context, user types.UserID, ids []types.DeviceID, hosts []string) (types.StreamPosition, error)
	UsersWhoseDevicesChanged(ctx context.Context, from types.StreamPosition) ([]types.UserID, error)
	RoomsForUser(ctx context.Context, user types.UserID) ([]types.RoomID, error)
	// DevicesWithKeysByUser returns the current stream position and the full
	// device+key listing of a local user, as served to federation queries.
	DevicesWithKeysByUser(ctx context.Context, user types.UserID) (types.StreamPosition, []DeviceInfo, error)

	// RemoteExtremity returns the cached stream token of a remote user, or
	// sql.ErrNotFound if the user was never cached.
	RemoteExtremity(ctx context.Context, user types.UserID) (string, error)
	// ReplaceRemoteDevices swaps the cached device list wholesale and sets
	// the extremity to token.
	ReplaceRemoteDevices(ctx context.Context, user types.UserID, infos []DeviceInfo, token string) error
	// UpdateRemoteDevice stores a single device's announced content and
	// advances the extremity to token.
	UpdateRemoteDevice(ctx context.Context, user types.UserID, id types.DeviceID, content []byte, token string) error
}

// roomState answers who is currently in a room.
type roomState interface {
	UsersInRoom(ctx context.Context, room types.RoomID) ([]types.UserID, error)
}

// federationClient is the outbound federation surface.
type federationClient interface {
	// QueryUserDevices fetches the complete device list of user from origin.
	QueryUserDevices(ctx context.Context, origin string, user types.UserID) (*UserDevices, error)
	// SendDevicePoke signals host that device messages are waiting, fire and
	// forget. Delivery retries are the transport's concern.
	SendDevicePoke(host string)
}

// notifier fans a device-list change out to locally connected clients.
type notifier interface {
	OnDeviceListChange(position types.StreamPosition, rooms []types.RoomID)
}

// changeNotifier records a device-list change and propagates it; implemented
// by Handler and consumed by Updater so tests can observe propagation alone.
type changeNotifier interface {
	NotifyDeviceUpdate(ctx context.Context, user types.UserID, ids []types.DeviceID) (types.StreamPosition, error)
}
