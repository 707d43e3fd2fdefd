// Package remotedevices caches the last-known device lists of remote users.
// Each cached user carries a stream extremity: the remote server's own stream
// token of the last update this server fully incorporated. Extremity tokens
// come from foreign sequences and are stored and compared as opaque strings.
package remotedevices

import (
	"context"
	"fmt"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

// Entry is one cached device of a remote user. Content is the device-info
// blob announced by the owning server, opaque to this subsystem.
type Entry struct {
	DeviceID types.DeviceID
	Content  []byte
}

// Extremity returns the cached stream token for the user, or sql.ErrNotFound
// if the user has never been cached.
func Extremity(db sql.Executor, user types.UserID) (string, error) {
	var token string
	rows, err := db.Exec("select stream_token from remote_extremities where user_id = ?1;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
		}, func(stmt *sql.Statement) bool {
			token = stmt.ColumnText(0)
			return true
		})
	if err != nil {
		return "", fmt.Errorf("extremity %s: %w", user, err)
	}
	if rows == 0 {
		return "", sql.ErrNotFound
	}
	return token, nil
}

// Replace swaps the cached device list wholesale: all previous entries are
// dropped, the given entries stored, and the extremity set to token. The swap
// is atomic; a failure leaves the previous cache intact.
func Replace(ctx context.Context, db *sql.Database, user types.UserID, entries []Entry, token string) error {
	return db.WithTxImmediate(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("delete from remote_devices where user_id = ?1;",
			func(stmt *sql.Statement) {
				stmt.BindText(1, user.String())
			}, nil); err != nil {
			return fmt.Errorf("clear cache %s: %w", user, err)
		}
		for _, entry := range entries {
			if err := upsertEntry(tx, user, entry); err != nil {
				return err
			}
		}
		return setExtremity(tx, user, token)
	})
}

// UpdateEntry applies a single incremental update: the one device's content
// is stored and the extremity advanced to token, atomically.
func UpdateEntry(ctx context.Context, db *sql.Database, user types.UserID, entry Entry, token string) error {
	return db.WithTxImmediate(ctx, func(tx *sql.Tx) error {
		if err := upsertEntry(tx, user, entry); err != nil {
			return err
		}
		return setExtremity(tx, user, token)
	})
}

// Entries returns the cached device list of the user ordered by device id.
func Entries(db sql.Executor, user types.UserID) ([]Entry, error) {
	var entries []Entry
	_, err := db.Exec("select device_id, content from remote_devices where user_id = ?1 order by device_id;",
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
		}, func(stmt *sql.Statement) bool {
			content := make([]byte, stmt.ColumnLen(1))
			stmt.ColumnBytes(1, content)
			entries = append(entries, Entry{
				DeviceID: types.DeviceID(stmt.ColumnText(0)),
				Content:  content,
			})
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("entries %s: %w", user, err)
	}
	return entries, nil
}

func upsertEntry(db sql.Executor, user types.UserID, entry Entry) error {
	_, err := db.Exec(`insert into remote_devices (user_id, device_id, content)
	values (?1, ?2, ?3)
	on conflict (user_id, device_id) do update set content = ?3;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, entry.DeviceID.String())
			stmt.BindBytes(3, entry.Content)
		}, nil)
	if err != nil {
		return fmt.Errorf("upsert entry %s/%s: %w", user, entry.DeviceID, err)
	}
	return nil
}

func setExtremity(db sql.Executor, user types.UserID, token string) error {
	_, err := db.Exec(`insert into remote_extremities (user_id, stream_token)
	values (?1, ?2)
	on conflict (user_id) do update set stream_token = ?2;`,
		func(stmt *sql.Statement) {
			stmt.BindText(1, user.String())
			stmt.BindText(2, token)
		}, nil)
	if err != nil {
		return fmt.Errorf("set extremity %s: %w", user, err)
	}
	return nil
}
