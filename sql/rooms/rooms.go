// Package rooms stores room membership rows. Membership is written by the
// room-state pipeline; this subsystem only reads it to decide which rooms and
// remote servers care about a device-list change.
package rooms

import (
	"fmt"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

// AddMember records that the user is joined to the room.
func AddMember(db sql.Executor, room types.RoomID, user types.UserID) error {
	_, err := db.Exec(`insert into room_memberships (room_id, user_id)
	values (?1, ?2) on conflict do nothing;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, room.String())
			stmt.BindText(2, user.String())
		}, nil)
	if err != nil {
		return fmt.Errorf("add member %s to %s: %w", user, room, err)
	}
	return nil
}

// ForUser returns the rooms the user is joined to.
func ForUser(db sql.Executor, user types.UserID) ([]types.RoomID, error) {
	var ids []types.RoomID
	_, err := db.Exec("select room_id from room_memberships where user_id = ?1 order by room_id;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
		}, func(stmt *sql.Statement) bool {
			ids = append(ids, types.RoomID(stmt.ColumnText(0)))
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("rooms for %s: %w", user, err)
	}
	return ids, nil
}

// Members returns the users joined to the room.
func Members(db sql.Executor, room types.RoomID) ([]types.UserID, error) {
	var ids []types.UserID
	_, err := db.Exec("select user_id from room_memberships where room_id = ?1 order by user_id;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, room.String())
		}, func(stmt *sql.Statement) bool {
			ids = append(ids, types.UserID(stmt.ColumnText(0)))
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("members of %s: %w", room, err)
	}
	return ids, nil
}
