// Package devices stores the device records of local users.
package devices

import (
	"fmt"
	"time"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

// Add inserts a device record unless one already exists for the same
// (user, device) pair. It reports whether a new record was created, making
// repeated registration of the same device id a detectable no-op.
func Add(db sql.Executor, device *types.Device) (bool, error) {
	rows, err := db.Exec(`insert into devices (user_id, device_id, display_name, created_at)
	values (?1, ?2, ?3, ?4)
	on conflict do nothing returning device_id;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, device.UserID.String())
			stmt.BindText(2, device.DeviceID.String())
			if device.DisplayName == "" {
				stmt.BindNull(3)
			} else {
				stmt.BindText(3, device.DisplayName)
			}
			stmt.BindInt64(4, device.CreatedAt.UnixMilli())
		}, nil,
	)
	if err != nil {
		return false, fmt.Errorf("add device %s/%s: %w", device.UserID, device.DeviceID, err)
	}
	return rows > 0, nil
}

// Get returns the device record or sql.ErrNotFound.
func Get(db sql.Executor, user types.UserID, id types.DeviceID) (*types.Device, error) {
	var device *types.Device
	rows, err := db.Exec("select display_name, created_at from devices where user_id = ?1 and device_id = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, id.String())
		}, func(stmt *sql.Statement) bool {
			device = decode(user, id, stmt)
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("get device %s/%s: %w", user, id, err)
	}
	if rows == 0 {
		return nil, sql.ErrNotFound
	}
	return device, nil
}

// List returns all devices of the user ordered by device id.
func List(db sql.Executor, user types.UserID) ([]*types.Device, error) {
	var devices []*types.Device
	_, err := db.Exec(`select display_name, created_at, device_id from devices
	where user_id = ?1 order by device_id;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
		}, func(stmt *sql.Statement) bool {
			devices = append(devices, decode(user, types.DeviceID(stmt.ColumnText(2)), stmt))
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("list devices %s: %w", user, err)
	}
	return devices, nil
}

// SetDisplayName updates the display name of an existing device and returns
// sql.ErrNotFound if no such device is registered.
func SetDisplayName(db sql.Executor, user types.UserID, id types.DeviceID, name string) error {
	rows, err := db.Exec(`update devices set display_name = ?3
	where user_id = ?1 and device_id = ?2 returning device_id;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, id.String())
			if name == "" {
				stmt.BindNull(3)
			} else {
				stmt.BindText(3, name)
			}
		}, nil)
	if err != nil {
		return fmt.Errorf("update device %s/%s: %w", user, id, err)
	}
	if rows == 0 {
		return sql.ErrNotFound
	}
	return nil
}

// Delete removes the device record and reports whether a record existed.
func Delete(db sql.Executor, user types.UserID, id types.DeviceID) (bool, error) {
	rows, err := db.Exec("delete from devices where user_id = ?1 and device_id = ?2 returning device_id;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, id.String())
		}, nil)
	if err != nil {
		return false, fmt.Errorf("delete device %s/%s: %w", user, id, err)
	}
	return rows > 0, nil
}

func decode(user types.UserID, id types.DeviceID, stmt *sql.Statement) *types.Device {
	device := &types.Device{
		UserID:    user,
		DeviceID:  id,
		CreatedAt: time.UnixMilli(stmt.ColumnInt64(1)).UTC(),
	}
	if !sql.IsNull(stmt, 0) {
		device.DisplayName = stmt.ColumnText(0)
	}
	return device
}
