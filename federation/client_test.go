package federation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/devices"
)

// hostOf strips the scheme from an httptest server URL.
func hostOf(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	host := strings.TrimPrefix(srv.URL, "http://")
	require.NotEqual(t, srv.URL, host)
	return host
}

func TestClientQueryUserDevices(t *testing.T) {
	user := types.UserID("@bob:alpha.example")

	t.Run("roundtrip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		queries := NewMockdeviceQuerier(ctrl)
		queries.EXPECT().QueryUserDevices(gomock.Any(), user).Return(&devices.UserDevices{
			UserID:   user,
			StreamID: "12",
			Devices: []devices.DeviceInfo{
				{DeviceID: "PHONE", Content: []byte(`{"device_id":"PHONE","keys":{"ed25519":"abc"}}`)},
			},
		}, nil)
		srv := httptest.NewServer(NewServer(NewMockupdateHandler(ctrl), queries).Router())
		defer srv.Close()

		client := NewClient("beta.example",
			WithScheme("http"),
			WithClientLogger(zaptest.NewLogger(t)),
		)
		result, err := client.QueryUserDevices(context.Background(), hostOf(t, srv), user)
		require.NoError(t, err)
		require.Equal(t, user, result.UserID)
		require.Equal(t, "12", result.StreamID)
		require.Len(t, result.Devices, 1)
		require.Equal(t, types.DeviceID("PHONE"), result.Devices[0].DeviceID)
		require.JSONEq(t, `{"device_id":"PHONE","keys":{"ed25519":"abc"}}`, string(result.Devices[0].Content))
	})

	t.Run("error status propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unknown user", http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewClient("beta.example", WithScheme("http"))
		_, err := client.QueryUserDevices(context.Background(), hostOf(t, srv), user)
		require.ErrorContains(t, err, "404")
	})

	t.Run("identifies itself", func(t *testing.T) {
		var origin string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin = r.Header.Get(originHeader)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"user_id":"@bob:alpha.example","stream_id":"1","devices":[]}`))
		}))
		defer srv.Close()

		client := NewClient("beta.example", WithScheme("http"))
		_, err := client.QueryUserDevices(context.Background(), hostOf(t, srv), user)
		require.NoError(t, err)
		require.Equal(t, "beta.example", origin)
	})
}

func TestClientSendDevicePoke(t *testing.T) {
	ctrl := gomock.NewController(t)
	pokes := make(chan string, 1)
	srv := httptest.NewServer(NewServer(
		NewMockupdateHandler(ctrl),
		NewMockdeviceQuerier(ctrl),
		WithPokeHook(func(origin string) { pokes <- origin }),
	).Router())
	defer srv.Close()

	client := NewClient("beta.example",
		WithScheme("http"),
		WithClientLogger(zaptest.NewLogger(t)),
	)
	client.SendDevicePoke(hostOf(t, srv))

	select {
	case origin := <-pokes:
		require.Equal(t, "beta.example", origin)
	case <-time.After(5 * time.Second):
		t.Fatal("poke never arrived")
	}
}
