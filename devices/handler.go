// Package devices implements the device-list synchronization core: local
// device registration, change propagation to interested remote servers, and
// reconciliation of remote users' device lists announced over federation.
package devices

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

var (
	// ErrNotFound is returned when the requested device does not exist.
	ErrNotFound = errors.New("device not found")
	// ErrDeviceIDExhausted is returned when device id generation keeps
	// colliding with registered devices.
	ErrDeviceIDExhausted = errors.New("could not generate a device id")
)

// registration retries a fixed number of generated candidates before giving up.
const maxIDAttempts = 5

// Handler owns the device records of local users and propagates every change:
// a stream position is allocated, local listeners are notified for the rooms
// the user is in, and each remote server sharing a room with the user is
// poked to pull.
type Handler struct {
	logger     *zap.Logger
	serverName string
	clock      clockwork.Clock

	db       deviceStore
	state    roomState
	fed      federationClient
	notifier notifier
}

// NewHandler creates a Handler for the server authoritative over serverName.
func NewHandler(
	serverName string,
	db deviceStore,
	state roomState,
	fed federationClient,
	notifier notifier,
	clock clockwork.Clock,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		logger:     logger,
		serverName: serverName,
		clock:      clock,
		db:         db,
		state:      state,
		fed:        fed,
		notifier:   notifier,
	}
}

// RegisterDevice registers a device for the user and returns its id. With an
// explicit id the call is idempotent: re-registering an existing device is a
// no-op and emits no change notification. With an empty id a random candidate
// is generated, retrying on collision up to a fixed bound before failing with
// ErrDeviceIDExhausted.
func (h *Handler) RegisterDevice(
	ctx context.Context,
	user types.UserID,
	id types.DeviceID,
	displayName string,
) (types.DeviceID, error) {
	if id != "" {
		created, err := h.store(ctx, user, id, displayName)
		if err != nil {
			return "", err
		}
		if created {
			if _, err := h.NotifyDeviceUpdate(ctx, user, []types.DeviceID{id}); err != nil {
				return "", err
			}
		}
		return id, nil
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate := types.RandomDeviceID()
		created, err := h.store(ctx, user, candidate, displayName)
		if err != nil {
			return "", err
		}
		if !created {
			continue
		}
		if _, err := h.NotifyDeviceUpdate(ctx, user, []types.DeviceID{candidate}); err != nil {
			return "", err
		}
		return candidate, nil
	}
	return "", ErrDeviceIDExhausted
}

func (h *Handler) store(ctx context.Context, user types.UserID, id types.DeviceID, displayName string) (bool, error) {
	created, err := h.db.StoreDevice(ctx, &types.Device{
		UserID:      user,
		DeviceID:    id,
		DisplayName: displayName,
		CreatedAt:   h.clock.Now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("store device %s/%s: %w", user, id, err)
	}
	return created, nil
}

// GetDevice returns the device or ErrNotFound.
func (h *Handler) GetDevice(ctx context.Context, user types.UserID, id types.DeviceID) (*types.Device, error) {
	device, err := h.db.GetDevice(ctx, user, id)
	switch {
	case errors.Is(err, sql.ErrNotFound):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("get device %s/%s: %w", user, id, err)
	}
	return device, nil
}

// GetDevicesByUser returns all devices registered by the user.
func (h *Handler) GetDevicesByUser(ctx context.Context, user types.UserID) ([]*types.Device, error) {
	listed, err := h.db.GetDevicesByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("list devices %s: %w", user, err)
	}
	return listed, nil
}

// UpdateDevice changes the display name of an existing device and notifies
// the change. Returns ErrNotFound for an unknown device.
func (h *Handler) UpdateDevice(ctx context.Context, user types.UserID, id types.DeviceID, displayName string) error {
	err := h.db.UpdateDevice(ctx, user, id, displayName)
	switch {
	case errors.Is(err, sql.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("update device %s/%s: %w", user, id, err)
	}
	_, err = h.NotifyDeviceUpdate(ctx, user, []types.DeviceID{id})
	return err
}

// DeleteDevice removes the device, revokes the access tokens bound to it,
// deletes its key material and notifies the change, in that order; an earlier
// failure stops the cascade. Deleting an unknown device succeeds silently
// with no notification.
func (h *Handler) DeleteDevice(ctx context.Context, user types.UserID, id types.DeviceID) error {
	deleted, err := h.db.DeleteDevice(ctx, user, id)
	if err != nil {
		return fmt.Errorf("delete device %s/%s: %w", user, id, err)
	}
	if !deleted {
		return nil
	}
	if err := h.db.DeleteAccessTokens(ctx, user, id); err != nil {
		return fmt.Errorf("revoke tokens %s/%s: %w", user, id, err)
	}
	if err := h.db.DeleteKeysByDevice(ctx, user, id); err != nil {
		return fmt.Errorf("delete keys %s/%s: %w", user, id, err)
	}
	_, err = h.NotifyDeviceUpdate(ctx, user, []types.DeviceID{id})
	return err
}

// NotifyDeviceUpdate records that the user's devices changed. It allocates
// the stream position, notifies local listeners in the user's rooms and pokes
// every remote server sharing a room with the user. Changes of non-local
// users are never re-federated: their host set is empty.
func (h *Handler) NotifyDeviceUpdate(
	ctx context.Context,
	user types.UserID,
	ids []types.DeviceID,
) (types.StreamPosition, error) {
	rooms, err := h.db.RoomsForUser(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("rooms for %s: %w", user, err)
	}

	var hosts []string
	if user.Domain() == h.serverName {
		seen := map[string]struct{}{}
		for _, room := range rooms {
			members, err := h.state.UsersInRoom(ctx, room)
			if err != nil {
				return 0, fmt.Errorf("members of %s: %w", room, err)
			}
			for _, member := range members {
				if domain := member.Domain(); domain != "" && domain != h.serverName {
					seen[domain] = struct{}{}
				}
			}
		}
		hosts = make([]string, 0, len(seen))
		for host := range seen {
			hosts = append(hosts, host)
		}
	}

	position, err := h.db.AddDeviceChange(ctx, user, ids, hosts)
	if err != nil {
		return 0, fmt.Errorf("record change for %s: %w", user, err)
	}

	h.notifier.OnDeviceListChange(position, rooms)

	if len(hosts) > 0 {
		h.logger.Info("sending device list update notification",
			zap.Stringer("user", user),
			zap.Strings("hosts", hosts),
		)
		for _, host := range hosts {
			h.fed.SendDevicePoke(host)
		}
	}
	changesNotified.Inc()
	return position, nil
}

// DeviceListChanges returns the users whose device lists changed after the
// given stream position and who share at least one of the given rooms with
// the caller. Each user is reported once no matter how many rooms overlap.
func (h *Handler) DeviceListChanges(
	ctx context.Context,
	roomIDs []types.RoomID,
	from types.StreamPosition,
) (map[types.UserID]struct{}, error) {
	rooms := make(map[types.RoomID]struct{}, len(roomIDs))
	for _, room := range roomIDs {
		rooms[room] = struct{}{}
	}

	changed, err := h.db.UsersWhoseDevicesChanged(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("changed users since %s: %w", from, err)
	}
	shared := map[types.UserID]struct{}{}
	for _, other := range changed {
		otherRooms, err := h.db.RoomsForUser(ctx, other)
		if err != nil {
			return nil, fmt.Errorf("rooms for %s: %w", other, err)
		}
		for _, room := range otherRooms {
			if _, ok := rooms[room]; ok {
				shared[other] = struct{}{}
				break
			}
		}
	}
	return shared, nil
}
