package pyenv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ly061/AiPortalDemo/internal/execx"
)

// Venv is a project-local virtual environment. The zero value is not usable;
// construct one with NewVenv.
type Venv struct {
	Dir string
}

func NewVenv(dir string) Venv {
	return Venv{Dir: filepath.Clean(dir)}
}

// Python returns the path of the interpreter inside the venv.
func (v Venv) Python() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.Dir, "Scripts", "python.exe")
	}
	return filepath.Join(v.Dir, "bin", "python")
}

func (v Venv) binDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(v.Dir, "Scripts")
	}
	return filepath.Join(v.Dir, "bin")
}

// Exists reports whether the venv directory is present. Mere presence does
// not imply validity; see Validate.
func (v Venv) Exists() bool {
	st, err := os.Stat(v.Dir)
	return err == nil && st.IsDir()
}

// Validate checks that an existing venv actually contains an interpreter.
// A directory that exists but has no interpreter is reported as an error
// rather than silently trusted or auto-repaired.
func (v Venv) Validate() error {
	if _, err := os.Stat(v.Python()); err != nil {
		return fmt.Errorf("venv %s exists but has no interpreter at %s (run `portalctl clean` and retry)", v.Dir, v.Python())
	}
	return nil
}

// Ensure creates the venv with the host interpreter when absent. Returns
// whether a new environment was created. Creation failure surfaces the
// child's exit status instead of being swallowed.
func (v Venv) Ensure(ctx context.Context, host Interpreter) (bool, error) {
	if v.Exists() {
		return false, v.Validate()
	}
	res := execx.RunCtx(ctx, host.Path, "-m", "venv", v.Dir)
	if res.Code != 0 {
		return false, fmt.Errorf("venv creation failed (exit %d): %s -m venv %s", res.Code, host.Path, v.Dir)
	}
	return true, v.Validate()
}

// Env returns the environment overrides that scope activation to a single
// child process: the venv bin directory is prepended to PATH, VIRTUAL_ENV is
// set, and user site-packages are excluded. The parent env is untouched.
func (v Venv) Env() map[string]string {
	abs, err := filepath.Abs(v.Dir)
	if err != nil {
		abs = v.Dir
	}
	bin := v.binDir()
	if absBin, err := filepath.Abs(bin); err == nil {
		bin = absBin
	}
	return map[string]string{
		"VIRTUAL_ENV":      abs,
		"PATH":             bin + string(os.PathListSeparator) + os.Getenv("PATH"),
		"PYTHONNOUSERSITE": "1",
	}
}

// Remove deletes the venv directory.
func (v Venv) Remove() error {
	return os.RemoveAll(v.Dir)
}
