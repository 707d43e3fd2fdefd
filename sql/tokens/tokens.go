// Package tokens stores access tokens issued to clients. Each token is bound
// to the device the client registered.
package tokens

import (
	"fmt"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

// Add stores a new access token bound to the device.
func Add(db sql.Executor, token string, user types.UserID, id types.DeviceID) error {
	_, err := db.Exec("insert into access_tokens (token, user_id, device_id) values (?1, ?2, ?3);",
		func(stmt *sql.Statement) {
			stmt.BindText(1, token)
			stmt.BindText(2, user.String())
			stmt.BindText(3, id.String())
		}, nil)
	if err != nil {
		return fmt.Errorf("add token for %s/%s: %w", user, id, err)
	}
	return nil
}

// DeleteByDevice revokes every token the user holds for the given device.
func DeleteByDevice(db sql.Executor, user types.UserID, id types.DeviceID) error {
	_, err := db.Exec("delete from access_tokens where user_id = ?1 and device_id = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, id.String())
		}, nil)
	if err != nil {
		return fmt.Errorf("delete tokens for %s/%s: %w", user, id, err)
	}
	return nil
}

// CountByDevice returns the number of live tokens for the device.
func CountByDevice(db sql.Executor, user types.UserID, id types.DeviceID) (int, error) {
	var count int
	_, err := db.Exec("select count(*) from access_tokens where user_id = ?1 and device_id = ?2;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, id.String())
		}, func(stmt *sql.Statement) bool {
			count = stmt.ColumnInt(0)
			return true
		})
	if err != nil {
		return 0, fmt.Errorf("count tokens for %s/%s: %w", user, id, err)
	}
	return count, nil
}
