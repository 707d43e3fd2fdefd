package sql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseMigratesOnOpen(t *testing.T) {
	db := InMemory()
	defer db.Close()

	var version int
	_, err := db.Exec("PRAGMA user_version;", nil, func(stmt *Statement) bool {
		version = stmt.ColumnInt(0)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 1, version)

	rows, err := db.Exec("select count(*) from devices;", nil, func(stmt *Statement) bool {
		require.Equal(t, 0, stmt.ColumnInt(0))
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 1, rows)
}

func TestTransactionIsolation(t *testing.T) {
	db := InMemory()
	defer db.Close()

	insert := func(ex Executor) (int, error) {
		return ex.Exec("insert into devices (user_id, device_id, created_at) values (?1, ?2, 0);",
			func(stmt *Statement) {
				stmt.BindText(1, "@alice:example.org")
				stmt.BindText(2, "FIRST")
			}, nil)
	}

	tx, err := db.Tx(context.Background())
	require.NoError(t, err)
	_, err = insert(tx)
	require.NoError(t, err)
	require.NoError(t, tx.Release()) // rollback

	rows, err := db.Exec("select 1 from devices;", nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, rows)

	require.NoError(t, db.WithTx(context.Background(), func(tx *Tx) error {
		_, err := insert(tx)
		return err
	}))
	rows, err = db.Exec("select 1 from devices;", nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rows)
}

func TestUniqueConstraintMapsToObjectExists(t *testing.T) {
	db := InMemory()
	defer db.Close()

	insert := func() (int, error) {
		return db.Exec("insert into access_tokens (token, user_id, device_id) values ('t', '@a:b', 'D');", nil, nil)
	}
	_, err := insert()
	require.NoError(t, err)
	_, err = insert()
	require.ErrorIs(t, err, ErrObjectExists)
}
