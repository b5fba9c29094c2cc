// Package clean implements the "clean" command: remove the virtual
// environment so the next up recreates it from scratch.
package clean

import (
	"fmt"
	"os"

	"github.com/ly061/AiPortalDemo/internal/cmdregistry"
	"github.com/ly061/AiPortalDemo/internal/pyenv"
)

// Register adds the clean command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("clean", handle)
}

func handle(ctx *cmdregistry.Context) error {
	venv := pyenv.NewVenv(ctx.Cfg.VenvDir)
	if !venv.Exists() {
		fmt.Printf("No virtual environment at %s, nothing to clean.\n", ctx.Cfg.VenvDir)
		return nil
	}
	if ctx.DryRun {
		fmt.Fprintln(os.Stderr, "+ rm -rf "+venv.Dir)
		return nil
	}
	if err := venv.Remove(); err != nil {
		return fmt.Errorf("failed to remove %s: %w", venv.Dir, err)
	}
	fmt.Printf("Removed virtual environment at %s\n", venv.Dir)
	return nil
}
