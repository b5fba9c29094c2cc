// Package banner renders the fixed console banners the launcher prints around
// the application lifecycle. All output is plain literal text.
package banner

import "fmt"

// Access returns the access-URL lines. The network line is present only when
// a LAN address was resolved; the local line always is.
func Access(port int, lanAddr string) []string {
	lines := []string{
		"========================================",
		"  Testing Tools Portal",
		"========================================",
		fmt.Sprintf("  Local URL:   http://localhost:%d", port),
	}
	if lanAddr != "" {
		lines = append(lines, fmt.Sprintf("  Network URL: http://%s:%d", lanAddr, port))
	}
	return append(lines, "========================================")
}

// Startup is the banner printed right before the application process starts.
func Startup(port int, lanAddr string) []string {
	return append(Access(port, lanAddr), "Press Ctrl+C to stop the portal.")
}

// Shutdown returns the line printed after the application process exits,
// whatever its exit status was.
func Shutdown() string {
	return "Portal stopped. Goodbye!"
}
