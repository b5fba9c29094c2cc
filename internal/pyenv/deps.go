package pyenv

import (
	"context"
	"fmt"
	"os"

	"github.com/ly061/AiPortalDemo/internal/execx"
)

// HasModule reports whether the named module is importable by python under
// the given environment overrides.
func HasModule(ctx context.Context, python string, env map[string]string, module string) bool {
	_, res := execx.CaptureEnv(ctx, env, python, "-c", "import "+module)
	return res.Code == 0
}

// InstallRequirements installs the dependency manifest into the environment
// python resolves to. The child's exit status is surfaced, not swallowed.
func InstallRequirements(ctx context.Context, python string, env map[string]string, manifest string) error {
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("dependency manifest not found: %s", manifest)
	}
	res := execx.RunEnv(ctx, env, python, "-m", "pip", "install", "-r", manifest)
	if res.Code != 0 {
		return fmt.Errorf("pip install -r %s failed (exit %d)", manifest, res.Code)
	}
	return nil
}
