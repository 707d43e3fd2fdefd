// Package types defines the identifier types shared across the device-list
// subsystem: user, device and room identifiers plus stream positions.
package types

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// UserID is a fully qualified user identifier of the form @localpart:domain.
type UserID string

// String implements fmt.Stringer.
func (u UserID) String() string {
	return string(u)
}

// Domain returns the server name component of the user id, or an empty
// string if the id is malformed. Comparing Domain() against a federation
// origin is how inbound updates are authenticated to their announcing server.
func (u UserID) Domain() string {
	i := strings.IndexByte(string(u), ':')
	if i < 0 {
		return ""
	}
	return string(u[i+1:])
}

// Valid reports whether the user id has the @localpart:domain shape.
func (u UserID) Valid() bool {
	return strings.HasPrefix(string(u), "@") && u.Domain() != ""
}

// DeviceID identifies a device within the scope of a single user.
type DeviceID string

// String implements fmt.Stringer.
func (d DeviceID) String() string {
	return string(d)
}

// RoomID identifies a room.
type RoomID string

// String implements fmt.Stringer.
func (r RoomID) String() string {
	return string(r)
}

// StreamPosition is a position in the local device-list change stream.
// Positions form a single strictly increasing sequence; "changed since P"
// is answered by comparing against it. Positions issued by remote servers
// are opaque tokens and are never represented by this type.
type StreamPosition int64

// String implements fmt.Stringer.
func (p StreamPosition) String() string {
	return fmt.Sprintf("%d", int64(p))
}

const deviceIDLength = 10

// RandomDeviceID generates a candidate device id: a short random uppercase
// token. Collisions with existing devices are possible and handled by the
// caller's bounded retry.
func RandomDeviceID() DeviceID {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	buf := make([]byte, deviceIDLength)
	if _, err := rand.Read(buf); err != nil {
		panic("system random source failed: " + err.Error())
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return DeviceID(buf)
}

// Device is a client device registered by a local user.
type Device struct {
	UserID      UserID
	DeviceID    DeviceID
	DisplayName string
	CreatedAt   time.Time
}
