package devices

import (
	"encoding/json"
	"fmt"

	"github.com/meridian-im/meridian/common/types"
)

// envelope keys of a device-list update EDU. Everything else in the payload
// is device info and travels verbatim into the remote cache.
const (
	fieldUserID   = "user_id"
	fieldDeviceID = "device_id"
	fieldStreamID = "stream_id"
	fieldPrevID   = "prev_id"
)

// DeviceListUpdate is the push notification a server sends when one of its
// users' devices changes. StreamID and PrevIDs are positions in the origin
// server's own stream and are treated as opaque tokens here.
type DeviceListUpdate struct {
	UserID   types.UserID
	DeviceID types.DeviceID
	StreamID string
	PrevIDs  []string
	// Content carries every non-envelope field of the payload.
	Content map[string]json.RawMessage
}

// UnmarshalJSON splits the payload into the envelope fields and the verbatim
// device-info remainder.
func (u *DeviceListUpdate) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	envelope := []struct {
		key  string
		into any
	}{
		{fieldUserID, &u.UserID},
		{fieldDeviceID, &u.DeviceID},
		{fieldStreamID, &u.StreamID},
		{fieldPrevID, &u.PrevIDs},
	}
	for _, f := range envelope {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, f.into); err != nil {
			return fmt.Errorf("decode %s: %w", f.key, err)
		}
		delete(fields, f.key)
	}
	u.Content = fields
	return nil
}

// MarshalJSON re-merges the envelope with the device-info fields.
func (u DeviceListUpdate) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(u.Content)+4)
	for k, v := range u.Content {
		fields[k] = v
	}
	fields[fieldUserID] = u.UserID
	fields[fieldDeviceID] = u.DeviceID
	fields[fieldStreamID] = u.StreamID
	if len(u.PrevIDs) > 0 {
		fields[fieldPrevID] = u.PrevIDs
	}
	return json.Marshal(fields)
}

// contentJSON returns the payload minus the envelope, the blob cached on the
// incremental path.
func (u DeviceListUpdate) contentJSON() ([]byte, error) {
	content := u.Content
	if content == nil {
		content = map[string]json.RawMessage{}
	}
	data, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode update content: %w", err)
	}
	return data, nil
}

// DeviceInfo is one device in a user-devices federation response: its id plus
// the full announced info object (which itself contains the id).
type DeviceInfo struct {
	DeviceID types.DeviceID
	Content  json.RawMessage
}

// MarshalJSON emits the info object verbatim.
func (d DeviceInfo) MarshalJSON() ([]byte, error) {
	return d.Content, nil
}

// UnmarshalJSON keeps the object verbatim and lifts out its device_id.
func (d *DeviceInfo) UnmarshalJSON(data []byte) error {
	var idOnly struct {
		DeviceID types.DeviceID `json:"device_id"`
	}
	if err := json.Unmarshal(data, &idOnly); err != nil {
		return err
	}
	if idOnly.DeviceID == "" {
		return fmt.Errorf("device info without device_id")
	}
	d.DeviceID = idOnly.DeviceID
	d.Content = append(json.RawMessage(nil), data...)
	return nil
}

// UserDevices is the response to a user-devices federation query: the full
// device list of one user together with the owning server's stream position
// for it.
type UserDevices struct {
	UserID   types.UserID `json:"user_id"`
	StreamID string       `json:"stream_id"`
	Devices  []DeviceInfo `json:"devices"`
}
