package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

func TestDeleteByDevice(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	alice := types.UserID("@alice:example.org")
	require.NoError(t, Add(db, "tok1", alice, "PHONE"))
	require.NoError(t, Add(db, "tok2", alice, "PHONE"))
	require.NoError(t, Add(db, "tok3", alice, "LAPTOP"))

	require.NoError(t, DeleteByDevice(db, alice, "PHONE"))

	count, err := CountByDevice(db, alice, "PHONE")
	require.NoError(t, err)
	require.Zero(t, count)

	count, err = CountByDevice(db, alice, "LAPTOP")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAddDuplicateToken(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	alice := types.UserID("@alice:example.org")
	require.NoError(t, Add(db, "tok", alice, "PHONE"))
	require.ErrorIs(t, Add(db, "tok", alice, "PHONE"), sql.ErrObjectExists)
}
