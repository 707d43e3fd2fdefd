package federation

import (
	"context"

	"github.com/meridian-im/meridian/common/types"
	"github.com/meridian-im/meridian/devices"
)

//go:generate mockgen -typed -package=federation -destination=./mocks.go -source=./interface.go

// updateHandler processes inbound device-list update EDUs.
type updateHandler interface {
	HandleDeviceListUpdate(ctx context.Context, origin string, update devices.DeviceListUpdate) error
}

// deviceQuerier serves the device listing of a local user.
type deviceQuerier interface {
	QueryUserDevices(ctx context.Context, user types.UserID) (*devices.UserDevices, error)
}
