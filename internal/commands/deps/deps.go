// Package deps implements the "deps" command: run the dependency check and
// install step of the launch sequence on its own.
package deps

import (
	"fmt"
	"os"
	"time"

	"github.com/ly061/AiPortalDemo/internal/cmdregistry"
	"github.com/ly061/AiPortalDemo/internal/commands/up"
	"github.com/ly061/AiPortalDemo/internal/execx"
	"github.com/ly061/AiPortalDemo/internal/pyenv"
)

// Register adds the deps command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("deps", handle)
}

func handle(ctx *cmdregistry.Context) error {
	cfg := ctx.Cfg
	venv := pyenv.NewVenv(cfg.VenvDir)
	if !venv.Exists() {
		return fmt.Errorf("no virtual environment at %s; run `portalctl up` first", cfg.VenvDir)
	}
	if err := venv.Validate(); err != nil {
		return err
	}
	if ctx.DryRun {
		fmt.Fprintln(os.Stderr, "+ "+venv.Python()+" -m pip install -r "+cfg.Requirements)
		return nil
	}
	installCtx, cancel := execx.WithTimeout(10 * time.Minute)
	defer cancel()
	installed, err := up.EnsureStreamlit(installCtx, venv.Python(), venv.Env(), cfg.Requirements)
	if err != nil {
		return err
	}
	if !installed {
		fmt.Println("Dependencies already satisfied.")
	}
	return nil
}
