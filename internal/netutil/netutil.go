package netutil

import (
	"fmt"
	"net"
	"time"
)

// Interfaces tried by name before falling back to a full enumeration.
// en0 covers macOS hosts, eth0 the common Linux case.
var preferredInterfaces = []string{"en0", "eth0"}

// LocalAddress returns a LAN-reachable IPv4 address of this host, best
// effort. The boolean is false when only loopback addresses exist; that is
// not an error, the caller simply omits the network-access line.
func LocalAddress() (string, bool) {
	for _, name := range preferredInterfaces {
		ifi, err := net.InterfaceByName(name)
		if err != nil {
			continue
		}
		addrs, err := ifi.Addrs()
		if err != nil {
			continue
		}
		if ip, ok := firstUsable(addrs); ok {
			return ip, true
		}
	}
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", false
	}
	return firstUsable(addrs)
}

// firstUsable picks the first LAN-usable IPv4 from the address list,
// excluding loopback and link-local addresses.
func firstUsable(addrs []net.Addr) (string, bool) {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if ip, ok := UsableIP(ipnet.IP); ok {
			return ip, true
		}
	}
	return "", false
}

// UsableIP reports whether ip is a LAN-reachable IPv4 address and returns its
// string form.
func UsableIP(ip net.IP) (string, bool) {
	if ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
		return "", false
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return "", false
	}
	return ip4.String(), true
}

// PortFree reports whether TCP port is free to bind on localhost.
func PortFree(port int) bool {
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return false
	}
	_ = l.Close()
	return true
}

// WaitReady polls until something accepts TCP connections on the port or the
// deadline passes. Best effort; used only to delay the access banner until
// the app is actually serving.
func WaitReady(port int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, time.Second)
		if err == nil {
			_ = conn.Close()
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}
