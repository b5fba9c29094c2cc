package pyenv

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/ly061/AiPortalDemo/internal/execx"
)

// ErrInterpreterNotFound means no Python interpreter is resolvable on PATH.
// This is the launcher's only fatal precondition.
var ErrInterpreterNotFound = errors.New("python interpreter not found on PATH")

// Interpreter is a resolved host Python.
type Interpreter struct {
	Path    string
	Version string
}

// Candidates returns interpreter names probed in order. An explicit preferred
// name or path (from portal.yaml) is tried first.
func Candidates(preferred string) []string {
	names := []string{"python3", "python"}
	if p := strings.TrimSpace(preferred); p != "" {
		return append([]string{p}, names...)
	}
	return names
}

// Find resolves the first usable interpreter and captures its version banner.
func Find(preferred string) (Interpreter, error) {
	for _, name := range Candidates(preferred) {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		return Interpreter{Path: path, Version: version(path)}, nil
	}
	return Interpreter{}, ErrInterpreterNotFound
}

func version(path string) string {
	ctx, cancel := execx.WithTimeout(10 * time.Second)
	defer cancel()
	out, res := execx.CaptureCombined(ctx, path, "--version")
	if res.Code != 0 {
		return "unknown"
	}
	return strings.TrimSpace(out)
}

// HasPip reports whether the pip module is importable by the interpreter.
func HasPip(ctx context.Context, python string) bool {
	_, res := execx.Capture(ctx, python, "-m", "pip", "--version")
	return res.Code == 0
}
