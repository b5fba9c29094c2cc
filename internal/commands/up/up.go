package up

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ly061/AiPortalDemo/internal/banner"
	"github.com/ly061/AiPortalDemo/internal/cmdregistry"
	"github.com/ly061/AiPortalDemo/internal/netutil"
	"github.com/ly061/AiPortalDemo/internal/pyenv"
	"github.com/ly061/AiPortalDemo/internal/runner"
)

// MissingInterpreterMsg is the fixed guidance printed when no Python is found.
const MissingInterpreterMsg = "Python is not detected. Please install Python 3 and make sure it is on your PATH."

const setupTimeout = 10 * time.Minute

// Register adds the up command to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("up", handle)
}

// handle runs the full launch sequence. It terminates the process itself:
// exit 1 when the interpreter is missing, otherwise the application's own
// exit code after the shutdown banner.
func handle(ctx *cmdregistry.Context) error {
	cfg := ctx.Cfg

	host, err := pyenv.Find(cfg.Python)
	if err != nil {
		fmt.Fprintln(os.Stderr, MissingInterpreterMsg)
		os.Exit(1)
	}
	fmt.Printf("Detected %s (%s)\n", host.Version, host.Path)

	venv := pyenv.NewVenv(cfg.VenvDir)
	setupCtx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()
	if venv.Exists() {
		fmt.Printf("Virtual environment found at %s\n", cfg.VenvDir)
		if err := venv.Validate(); err != nil {
			return err
		}
	} else {
		fmt.Printf("Creating virtual environment at %s ...\n", cfg.VenvDir)
		if ctx.DryRun {
			fmt.Fprintln(os.Stderr, "+ "+host.Path+" -m venv "+cfg.VenvDir)
		} else if _, err := venv.Ensure(setupCtx, host); err != nil {
			return err
		}
	}

	env := venv.Env()
	for k, v := range cfg.Env {
		env[k] = v
	}
	python := venv.Python()
	log.WithFields(log.Fields{"python": python, "venv": env["VIRTUAL_ENV"]}).Debug("activated environment")
	fmt.Printf("Using interpreter %s\n", python)

	if ctx.DryRun {
		fmt.Fprintln(os.Stderr, "+ "+python+" -m pip install -r "+cfg.Requirements)
	} else {
		installed, err := EnsureStreamlit(setupCtx, python, env, cfg.Requirements)
		if err != nil {
			return err
		}
		if installed {
			log.Info("dependencies installed")
		} else {
			log.Debug("streamlit already importable, skipping install")
		}
	}

	if _, err := os.Stat(cfg.Entrypoint); err != nil && !ctx.DryRun {
		return fmt.Errorf("entry point not found: %s", cfg.Entrypoint)
	}
	if !ctx.DryRun && !netutil.PortFree(cfg.Port) {
		log.Warnf("port %d appears to be in use; the portal may fail to bind", cfg.Port)
	}

	lan, ok := netutil.LocalAddress()
	if !ok {
		lan = ""
		log.Debug("no LAN address found, printing localhost access only")
	}
	for _, line := range banner.Startup(cfg.Port, lan) {
		fmt.Println(line)
	}

	if !ctx.DryRun {
		go func() {
			if netutil.WaitReady(cfg.Port, 60*time.Second) {
				log.Infof("portal is serving on port %d", cfg.Port)
			}
		}()
	}
	code := runner.App(ctx.DryRun, env, python, runner.StreamlitArgs(cfg.Entrypoint, cfg.Port, cfg.Headless)...)
	fmt.Println(banner.Shutdown())
	os.Exit(code)
	return nil
}

// EnsureStreamlit makes streamlit importable: a no-op when the import probe
// succeeds, otherwise a single manifest install followed by a re-probe.
// Returns whether an install was performed.
func EnsureStreamlit(ctx context.Context, python string, env map[string]string, manifest string) (bool, error) {
	if pyenv.HasModule(ctx, python, env, "streamlit") {
		return false, nil
	}
	fmt.Printf("Installing dependencies from %s ...\n", manifest)
	if err := pyenv.InstallRequirements(ctx, python, env, manifest); err != nil {
		return true, err
	}
	if !pyenv.HasModule(ctx, python, env, "streamlit") {
		return true, fmt.Errorf("streamlit still not importable after installing %s", manifest)
	}
	return true, nil
}
