package federation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/devices"
)

type testServer struct {
	*Server
	updates *MockupdateHandler
	queries *MockdeviceQuerier
	pokes   chan string
	srv     *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	ts := &testServer{
		updates: NewMockupdateHandler(ctrl),
		queries: NewMockdeviceQuerier(ctrl),
		pokes:   make(chan string, 1),
	}
	ts.Server = NewServer(ts.updates, ts.queries,
		WithServerLogger(zaptest.NewLogger(t)),
		WithPokeHook(func(origin string) { ts.pokes <- origin }),
	)
	ts.srv = httptest.NewServer(ts.Router())
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) put(t *testing.T, path, origin string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, ts.srv.URL+path, bytes.NewReader(data))
	require.NoError(t, err)
	if origin != "" {
		req.Header.Set(originHeader, origin)
	}
	res, err := ts.srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestServerUpdateIngress(t *testing.T) {
	payload := map[string]any{
		"user_id":             "@carol:beta.example",
		"device_id":           "TABLET",
		"stream_id":           "7",
		"prev_id":             []string{"6"},
		"device_display_name": "Tablet",
	}

	t.Run("decodes envelope and content", func(t *testing.T) {
		ts := newTestServer(t)
		ts.updates.EXPECT().HandleDeviceListUpdate(gomock.Any(), "beta.example", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, update devices.DeviceListUpdate) error {
				require.Equal(t, types.UserID("@carol:beta.example"), update.UserID)
				require.Equal(t, types.DeviceID("TABLET"), update.DeviceID)
				require.Equal(t, "7", update.StreamID)
				require.Equal(t, []string{"6"}, update.PrevIDs)
				require.JSONEq(t, `"Tablet"`, string(update.Content["device_display_name"]))
				return nil
			})

		res := ts.put(t, "/federation/v1/updates", "beta.example", payload)
		require.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("missing origin", func(t *testing.T) {
		ts := newTestServer(t)
		res := ts.put(t, "/federation/v1/updates", "", payload)
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("handler failure", func(t *testing.T) {
		ts := newTestServer(t)
		ts.updates.EXPECT().HandleDeviceListUpdate(gomock.Any(), "beta.example", gomock.Any()).
			Return(errors.New("resync failed"))

		res := ts.put(t, "/federation/v1/updates", "beta.example", payload)
		require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})
}

func TestServerDevicesQuery(t *testing.T) {
	t.Run("serves listing", func(t *testing.T) {
		ts := newTestServer(t)
		user := types.UserID("@bob:alpha.example")
		ts.queries.EXPECT().QueryUserDevices(gomock.Any(), user).Return(&devices.UserDevices{
			UserID:   user,
			StreamID: "12",
			Devices: []devices.DeviceInfo{
				{DeviceID: "PHONE", Content: []byte(`{"device_id":"PHONE"}`)},
			},
		}, nil)

		res, err := ts.srv.Client().Get(ts.srv.URL + "/federation/v1/users/@bob:alpha.example/devices")
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var result devices.UserDevices
		require.NoError(t, json.NewDecoder(res.Body).Decode(&result))
		require.Equal(t, user, result.UserID)
		require.Equal(t, "12", result.StreamID)
		require.Len(t, result.Devices, 1)
		require.Equal(t, types.DeviceID("PHONE"), result.Devices[0].DeviceID)
	})

	t.Run("malformed user id", func(t *testing.T) {
		ts := newTestServer(t)
		res, err := ts.srv.Client().Get(ts.srv.URL + "/federation/v1/users/not-a-user/devices")
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestServerPokeIngress(t *testing.T) {
	ts := newTestServer(t)
	body, err := json.Marshal(pokeRequest{Origin: "beta.example"})
	require.NoError(t, err)

	res, err := ts.srv.Client().Post(ts.srv.URL+"/federation/v1/poke", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "beta.example", <-ts.pokes)
}
