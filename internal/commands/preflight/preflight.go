package preflight

import (
	"fmt"
	"os"
	"time"

	"github.com/ly061/AiPortalDemo/internal/cmdregistry"
	"github.com/ly061/AiPortalDemo/internal/execx"
	"github.com/ly061/AiPortalDemo/internal/netutil"
	"github.com/ly061/AiPortalDemo/internal/pyenv"
)

// Register adds the preflight command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("preflight", handle)
}

func handle(ctx *cmdregistry.Context) error {
	cfg := ctx.Cfg
	ok := true

	host, err := pyenv.Find(cfg.Python)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[preflight] python not found on PATH")
		ok = false
	} else {
		fmt.Printf("[preflight] python: OK (%s, %s)\n", host.Version, host.Path)
		pipCtx, cancel := execx.WithTimeout(30 * time.Second)
		if pyenv.HasPip(pipCtx, host.Path) {
			fmt.Println("[preflight] pip: OK")
		} else {
			fmt.Fprintln(os.Stderr, "[preflight] pip module not available; dependency install will fail")
			ok = false
		}
		cancel()
	}

	if st, err := os.Stat(cfg.Entrypoint); err == nil && !st.IsDir() {
		fmt.Printf("[preflight] entry point: OK (%s)\n", cfg.Entrypoint)
	} else {
		fmt.Fprintf(os.Stderr, "[preflight] entry point not found: %s\n", cfg.Entrypoint)
		ok = false
	}

	if st, err := os.Stat(cfg.Requirements); err == nil && !st.IsDir() {
		fmt.Printf("[preflight] requirements manifest: OK (%s)\n", cfg.Requirements)
	} else {
		fmt.Fprintf(os.Stderr, "[preflight] requirements manifest not found: %s (only needed for first run)\n", cfg.Requirements)
	}

	venv := pyenv.NewVenv(cfg.VenvDir)
	switch {
	case !venv.Exists():
		fmt.Printf("[preflight] venv: absent (will be created at %s on first up)\n", cfg.VenvDir)
	case venv.Validate() != nil:
		fmt.Fprintf(os.Stderr, "[preflight] venv %s exists but has no interpreter; run `portalctl clean`\n", cfg.VenvDir)
		ok = false
	default:
		fmt.Printf("[preflight] venv: OK (%s)\n", venv.Python())
	}

	if netutil.PortFree(cfg.Port) {
		fmt.Printf("[preflight] port %d: free\n", cfg.Port)
	} else {
		fmt.Fprintf(os.Stderr, "[preflight] port %d already in use\n", cfg.Port)
		ok = false
	}

	if !ok {
		return fmt.Errorf("preflight checks failed")
	}
	return nil
}
