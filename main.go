// meridian is a homeserver synchronizing device lists across a federation.
package main

import (
	"os"

	"github.com/meridian-im/meridian/node"
)

func main() {
	if err := node.GetCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
