// Package network implements the "network" command: print the access URLs
// the portal would be reachable on, without starting anything.
package network

import (
	"fmt"

	"github.com/ly061/AiPortalDemo/internal/banner"
	"github.com/ly061/AiPortalDemo/internal/cmdregistry"
	"github.com/ly061/AiPortalDemo/internal/netutil"
)

// Register adds the network command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("network", handle)
}

func handle(ctx *cmdregistry.Context) error {
	lan, ok := netutil.LocalAddress()
	if !ok {
		lan = ""
		fmt.Println("No LAN address found; the portal is reachable from this machine only.")
	}
	for _, line := range banner.Access(ctx.Cfg.Port, lan) {
		fmt.Println(line)
	}
	return nil
}
