package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

type Result struct {
	Code int
	Err  error
}

func RunCtx(ctx context.Context, name string, args ...string) Result {
	debugEcho(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return resultOf(ctx, cmd.Run())
}

// RunEnv runs a command with extra environment variables applied on top of the
// parent environment. The parent process env is never mutated; this is how the
// launcher scopes venv activation to individual child invocations.
func RunEnv(ctx context.Context, env map[string]string, name string, args ...string) Result {
	debugEcho(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = mergedEnv(env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return resultOf(ctx, cmd.Run())
}

// Capture runs a command and returns stdout as string and exit code.
func Capture(ctx context.Context, name string, args ...string) (string, Result) {
	debugEcho(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	return string(out), resultOf(ctx, err)
}

// CaptureEnv mirrors Capture with extra environment variables for the child.
func CaptureEnv(ctx context.Context, env map[string]string, name string, args ...string) (string, Result) {
	debugEcho(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = mergedEnv(env)
	out, err := cmd.Output()
	return string(out), resultOf(ctx, err)
}

// CaptureCombined runs a command and returns combined stdout/stderr.
func CaptureCombined(ctx context.Context, name string, args ...string) (string, Result) {
	debugEcho(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	return string(out), resultOf(ctx, err)
}

func WithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func mergedEnv(extra map[string]string) []string {
	env := os.Environ()
	for k, v := range extra {
		env = append(env, k+"="+v)
	}
	return env
}

func debugEcho(name string, args []string) {
	if os.Getenv("PORTAL_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
}

func resultOf(ctx context.Context, err error) Result {
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else if ctx.Err() == context.DeadlineExceeded {
			code = 124
		} else {
			code = 1
		}
	}
	return Result{Code: code, Err: err}
}
