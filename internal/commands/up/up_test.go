package up

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeStub creates a fake python that logs every invocation to callsFile.
// Import probes (-c ...) fail until markerFile exists; the pip install call
// (-m ...) creates it. That mirrors a host where streamlit becomes importable
// only after the manifest install.
func writeStub(t *testing.T, dir, callsFile, markerFile string) string {
	t.Helper()
	stub := filepath.Join(dir, "python")
	script := "#!/bin/sh\n" +
		"echo \"$@\" >> '" + callsFile + "'\n" +
		"case \"$1\" in\n" +
		"-c) [ -f '" + markerFile + "' ] && exit 0 || exit 1 ;;\n" +
		"-m) touch '" + markerFile + "'; exit 0 ;;\n" +
		"esac\n" +
		"exit 0\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return stub
}

func TestEnsureStreamlitSkipsWhenImportable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub")
	}
	dir := t.TempDir()
	calls := filepath.Join(dir, "calls.log")
	marker := filepath.Join(dir, "installed")
	// marker pre-exists: import probe succeeds immediately
	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	stub := writeStub(t, dir, calls, marker)

	installed, err := EnsureStreamlit(context.Background(), stub, nil, filepath.Join(dir, "requirements.txt"))
	if err != nil {
		t.Fatalf("EnsureStreamlit error: %v", err)
	}
	if installed {
		t.Fatalf("install ran despite importable module")
	}
	data, _ := os.ReadFile(calls)
	if strings.Contains(string(data), "pip install") {
		t.Fatalf("pip invoked:\n%s", data)
	}
}

func TestEnsureStreamlitInstallsOnce(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub")
	}
	dir := t.TempDir()
	calls := filepath.Join(dir, "calls.log")
	marker := filepath.Join(dir, "installed")
	stub := writeStub(t, dir, calls, marker)
	manifest := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(manifest, []byte("streamlit\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	installed, err := EnsureStreamlit(context.Background(), stub, nil, manifest)
	if err != nil {
		t.Fatalf("EnsureStreamlit error: %v", err)
	}
	if !installed {
		t.Fatalf("install did not run")
	}
	data, _ := os.ReadFile(calls)
	installs := strings.Count(string(data), "pip install")
	if installs != 1 {
		t.Fatalf("pip install ran %d times:\n%s", installs, data)
	}
}

func TestEnsureStreamlitMissingManifest(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub")
	}
	dir := t.TempDir()
	calls := filepath.Join(dir, "calls.log")
	stub := writeStub(t, dir, calls, filepath.Join(dir, "never"))

	_, err := EnsureStreamlit(context.Background(), stub, nil, filepath.Join(dir, "requirements.txt"))
	if err == nil {
		t.Fatalf("expected error for missing manifest")
	}
}
