package runner

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/ly061/AiPortalDemo/internal/execx"
)

// StreamlitArgs builds the argv passed to the venv python to serve the app:
// `-m streamlit run <entrypoint> --server.port <port> [--server.headless=true]`.
func StreamlitArgs(entrypoint string, port int, headless bool) []string {
	args := []string{"-m", "streamlit", "run", entrypoint, "--server.port", strconv.Itoa(port)}
	if headless {
		args = append(args, "--server.headless", "true")
	}
	return args
}

// App runs the application process in the foreground with no timeout and the
// given environment overrides, returning its exit code. The process holds the
// terminal until it is interrupted or exits on its own. When dry is true the
// command is only printed to stderr.
func App(dry bool, env map[string]string, name string, args ...string) int {
	if dry {
		fmt.Fprintln(os.Stderr, "+ "+name+" "+strings.Join(args, " "))
		return 0
	}
	// Ctrl+C must stop the app, not the launcher: the shutdown banner still
	// has to print after the child exits.
	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)
	res := execx.RunEnv(context.Background(), env, name, args...)
	return res.Code
}
