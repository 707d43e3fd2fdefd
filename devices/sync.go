package devices

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/linearizer"
	"github.com/meridian-im/meridian/sql"
)

// Updater reconciles locally cached device lists of remote users with the
// updates their servers announce. Processing is serialized per user: the
// decision whether an update can be applied incrementally reads the cached
// extremity and then writes the cache, and two interleaved updates for the
// same user would race on that sequence.
type Updater struct {
	logger   *zap.Logger
	db       deviceStore
	fed      federationClient
	notifier changeNotifier
	lin      *linearizer.Linearizer[types.UserID]
}

// NewUpdater creates an Updater.
func NewUpdater(db deviceStore, fed federationClient, notifier changeNotifier, logger *zap.Logger) *Updater {
	return &Updater{
		logger:   logger,
		db:       db,
		fed:      fed,
		notifier: notifier,
		lin:      linearizer.New[types.UserID](),
	}
}

// HandleDeviceListUpdate processes one device-list update EDU from origin.
//
// A server may only announce changes for its own users; an update whose user
// does not belong to origin is dropped with a warning and no error, so a
// misbehaving peer cannot stall the transport dispatcher.
//
// The cache can be updated incrementally only when the update declares
// exactly one predecessor and that predecessor is the cached extremity:
// then the cache is known to be exactly one step behind. In every other case
// (no predecessors, several, a mismatch, or a user never seen before) the
// full list is fetched from origin and the cache replaced wholesale. A failed
// fetch leaves the cache untouched and propagates; the next update for the
// user will see the same stale extremity and resync again.
func (u *Updater) HandleDeviceListUpdate(ctx context.Context, origin string, update DeviceListUpdate) error {
	if update.UserID.Domain() != origin {
		u.logger.Warn("got device list update for user not belonging to origin",
			zap.Stringer("user", update.UserID),
			zap.String("origin", origin),
		)
		updatesDropped.Inc()
		return nil
	}

	release, err := u.lin.Acquire(ctx, update.UserID)
	if err != nil {
		return err
	}
	defer release()

	resync := true
	if len(update.PrevIDs) == 1 {
		extremity, err := u.db.RemoteExtremity(ctx, update.UserID)
		switch {
		case errors.Is(err, sql.ErrNotFound):
			// never cached, resync
		case err != nil:
			return fmt.Errorf("extremity %s: %w", update.UserID, err)
		case extremity == update.PrevIDs[0]:
			resync = false
		}
	}

	if resync {
		return u.resync(ctx, origin, update.UserID)
	}

	content, err := update.contentJSON()
	if err != nil {
		return err
	}
	if err := u.db.UpdateRemoteDevice(ctx, update.UserID, update.DeviceID, content, update.StreamID); err != nil {
		return fmt.Errorf("apply update %s/%s: %w", update.UserID, update.DeviceID, err)
	}
	if _, err := u.notifier.NotifyDeviceUpdate(ctx, update.UserID, []types.DeviceID{update.DeviceID}); err != nil {
		return err
	}
	updatesApplied.Inc()
	return nil
}

func (u *Updater) resync(ctx context.Context, origin string, user types.UserID) error {
	result, err := u.fed.QueryUserDevices(ctx, origin, user)
	if err != nil {
		resyncFailures.Inc()
		return fmt.Errorf("query %s devices of %s: %w", origin, user, err)
	}
	if err := u.db.ReplaceRemoteDevices(ctx, user, result.Devices, result.StreamID); err != nil {
		return fmt.Errorf("replace cache %s: %w", user, err)
	}
	ids := make([]types.DeviceID, 0, len(result.Devices))
	for _, info := range result.Devices {
		ids = append(ids, info.DeviceID)
	}
	// the user is not local, so the notification fans out locally only
	if _, err := u.notifier.NotifyDeviceUpdate(ctx, user, ids); err != nil {
		return err
	}
	resyncs.Inc()
	return nil
}

// QueryUserDevices serves the inbound federation query for a local user's
// devices: the authoritative current stream position and the full device+key
// listing, read-only.
func (u *Updater) QueryUserDevices(ctx context.Context, user types.UserID) (*UserDevices, error) {
	position, infos, err := u.db.DevicesWithKeysByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("devices with keys %s: %w", user, err)
	}
	return &UserDevices{
		UserID:   user,
		StreamID: position.String(),
		Devices:  infos,
	}, nil
}
