package rooms

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/sql"
)

func TestMembership(t *testing.T) {
	db := sql.InMemory()
	defer db.Close()

	require.NoError(t, AddMember(db, "!lobby:example.org", "@alice:example.org"))
	require.NoError(t, AddMember(db, "!lobby:example.org", "@bob:remote.org"))
	require.NoError(t, AddMember(db, "!dev:example.org", "@alice:example.org"))
	// joining twice is fine
	require.NoError(t, AddMember(db, "!dev:example.org", "@alice:example.org"))

	joined, err := ForUser(db, "@alice:example.org")
	require.NoError(t, err)
	require.Equal(t, []types.RoomID{"!dev:example.org", "!lobby:example.org"}, joined)

	members, err := Members(db, "!lobby:example.org")
	require.NoError(t, err)
	require.Equal(t, []types.UserID{"@alice:example.org", "@bob:remote.org"}, members)

	members, err = Members(db, "!nowhere:example.org")
	require.NoError(t, err)
	require.Empty(t, members)
}
