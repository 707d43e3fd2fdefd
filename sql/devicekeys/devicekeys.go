// Package devicekeys stores end-to-end key material per device. Blobs are
// opaque to this subsystem; they are produced and consumed by the key-upload
// and key-query surfaces.
package devicekeys

import (
	"fmt"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

// Set stores or replaces the key blob for a device.
func Set(db sql.Executor, user types.UserID, id types.DeviceID, blob []byte) error {
	_, err := db.Exec(`insert into device_keys (user_id, device_id, key_blob)
	values (?1, ?2, ?3)
	on conflict (user_id, device_id) do update set key_blob = ?3;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, id.String())
			stmt.BindBytes(3, blob)
		}, nil)
	if err != nil {
		return fmt.Errorf("set keys %s/%s: %w", user, id, err)
	}
	return nil
}

// Get returns the key blob for a device or sql.ErrNotFound.
func Get(db sql.Executor, user types.UserID, id types.DeviceID) ([]byte, error) {
	var blob []byte
	rows, err := db.Exec("select key_blob from device_keys where user_id = ?1 and device_id = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, id.String())
		}, func(stmt *sql.Statement) bool {
			blob = make([]byte, stmt.ColumnLen(0))
			stmt.ColumnBytes(0, blob)
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("get keys %s/%s: %w", user, id, err)
	}
	if rows == 0 {
		return nil, sql.ErrNotFound
	}
	return blob, nil
}

// ByUser returns the key blobs of all devices of the user, keyed by device id.
func ByUser(db sql.Executor, user types.UserID) (map[types.DeviceID][]byte, error) {
	blobs := map[types.DeviceID][]byte{}
	_, err := db.Exec("select device_id, key_blob from device_keys where user_id = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
		}, func(stmt *sql.Statement) bool {
			blob := make([]byte, stmt.ColumnLen(1))
			stmt.ColumnBytes(1, blob)
			blobs[types.DeviceID(stmt.ColumnText(0))] = blob
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("keys by user %s: %w", user, err)
	}
	return blobs, nil
}

// DeleteByDevice removes the key blob of a single device. Deleting keys of
// an unknown device is a no-op.
func DeleteByDevice(db sql.Executor, user types.UserID, id types.DeviceID) error {
	_, err := db.Exec("delete from device_keys where user_id = ?1 and device_id = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, id.String())
		}, nil)
	if err != nil {
		return fmt.Errorf("delete keys %s/%s: %w", user, id, err)
	}
	return nil
}
