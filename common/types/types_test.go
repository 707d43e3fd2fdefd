package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserIDDomain(t *testing.T) {
	require.Equal(t, "example.org", UserID("@alice:example.org").Domain())
	require.Equal(t, "", UserID("alice").Domain())
	require.Equal(t, "b:c", UserID("@a:b:c").Domain())
}

func TestUserIDValid(t *testing.T) {
	require.True(t, UserID("@alice:example.org").Valid())
	require.False(t, UserID("alice:example.org").Valid())
	require.False(t, UserID("@alice").Valid())
}

func TestRandomDeviceID(t *testing.T) {
	seen := map[DeviceID]struct{}{}
	for i := 0; i < 100; i++ {
		id := RandomDeviceID()
		require.Len(t, id, 10)
		for _, c := range id {
			require.True(t, c >= 'A' && c <= 'Z', "unexpected character %q", c)
		}
		seen[id] = struct{}{}
	}
	require.Greater(t, len(seen), 90, "ids are not close to unique")
}
