// Package devicestream persists the device-list change stream. It is the
// single authority for stream positions: every recorded change allocates the
// next position inside an immediate transaction, so concurrent writers can
// never observe or issue the same position twice.
package devicestream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

// Change is one row of the device-list change stream. Changes recorded by a
// single AddChange call share a position, one row per device.
type Change struct {
	Position types.StreamPosition
	UserID   types.UserID
	DeviceID types.DeviceID
	Hosts    []string
}

// AddChange allocates the next stream position and records one change row per
// device at that position. Hosts is the set of remote servers interested in
// the change; it may be empty.
func AddChange(
	ctx context.Context,
	db *sql.Database,
	user types.UserID,
	deviceIDs []types.DeviceID,
	hosts []string,
) (types.StreamPosition, error) {
	if hosts == nil {
		hosts = []string{}
	}
	encodedHosts, err := json.Marshal(hosts)
	if err != nil {
		return 0, fmt.Errorf("encode hosts: %w", err)
	}
	var position types.StreamPosition
	err = db.WithTxImmediate(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("select coalesce(max(position), 0) + 1 from device_stream;", nil,
			func(stmt *sql.Statement) bool {
				position = types.StreamPosition(stmt.ColumnInt64(0))
				return true
			}); err != nil {
			return fmt.Errorf("allocate position: %w", err)
		}
		for _, id := range deviceIDs {
			if _, err := tx.Exec(`insert into device_stream (position, user_id, device_id, hosts)
			values (?1, ?2, ?3, ?4);`,
				func(stmt *sql.Statement) {
					stmt.BindInt64(1, int64(position))
					stmt.BindText(2, user.String())
					stmt.BindText(3, id.String())
					stmt.BindBytes(4, encodedHosts)
				}, nil); err != nil {
				return fmt.Errorf("record change %s/%s: %w", user, id, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return position, nil
}

// CurrentPosition returns the highest allocated stream position, zero when
// the stream is empty.
func CurrentPosition(db sql.Executor) (types.StreamPosition, error) {
	var position types.StreamPosition
	_, err := db.Exec("select coalesce(max(position), 0) from device_stream;", nil,
		func(stmt *sql.Statement) bool {
			position = types.StreamPosition(stmt.ColumnInt64(0))
			return true
		})
	if err != nil {
		return 0, fmt.Errorf("current position: %w", err)
	}
	return position, nil
}

// ChangedUsers returns the distinct users whose device lists changed strictly
// after the given position.
func ChangedUsers(db sql.Executor, from types.StreamPosition) ([]types.UserID, error) {
	var users []types.UserID
	_, err := db.Exec("select distinct user_id from device_stream where position > ?1;",
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(from))
		}, func(stmt *sql.Statement) bool {
			users = append(users, types.UserID(stmt.ColumnText(0)))
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("changed users since %d: %w", from, err)
	}
	return users, nil
}

// ChangesSince returns all change rows strictly after the given position in
// stream order.
func ChangesSince(db sql.Executor, from types.StreamPosition) ([]Change, error) {
	var (
		changes []Change
		err     error
	)
	_, execErr := db.Exec(`select position, user_id, device_id, hosts from device_stream
	where position > ?1 order by position asc;`,
		func(stmt *sql.Statement) {
			stmt.BindInt64(1, int64(from))
		}, func(stmt *sql.Statement) bool {
			change := Change{
				Position: types.StreamPosition(stmt.ColumnInt64(0)),
				UserID:   types.UserID(stmt.ColumnText(1)),
				DeviceID: types.DeviceID(stmt.ColumnText(2)),
			}
			if err = json.Unmarshal([]byte(stmt.ColumnText(3)), &change.Hosts); err != nil {
				err = fmt.Errorf("decode hosts at %d: %w", change.Position, err)
				return false
			}
			changes = append(changes, change)
			return true
		})
	if execErr != nil {
		return nil, fmt.Errorf("changes since %d: %w", from, execErr)
	}
	if err != nil {
		return nil, err
	}
	return changes, nil
}
