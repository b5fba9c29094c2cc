package pyenv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCandidatesOrder(t *testing.T) {
	got := Candidates("")
	if len(got) != 2 || got[0] != "python3" || got[1] != "python" {
		t.Fatalf("candidates=%v", got)
	}
	got = Candidates("/opt/python3.12/bin/python")
	if len(got) != 3 || got[0] != "/opt/python3.12/bin/python" {
		t.Fatalf("preferred not first: %v", got)
	}
}

func TestFindNoInterpreter(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	_, err := Find("")
	if !errors.Is(err, ErrInterpreterNotFound) {
		t.Fatalf("expected ErrInterpreterNotFound, got %v", err)
	}
}

func TestFindStubInterpreter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "python3")
	script := "#!/bin/sh\necho 'Python 3.11.9'\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
	py, err := Find("")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if py.Path != stub {
		t.Fatalf("path=%q, want %q", py.Path, stub)
	}
	if py.Version != "Python 3.11.9" {
		t.Fatalf("version=%q", py.Version)
	}
}

func TestHasModule(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub")
	}
	dir := t.TempDir()
	okStub := filepath.Join(dir, "python-ok")
	failStub := filepath.Join(dir, "python-fail")
	if err := os.WriteFile(okStub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(failStub, []byte("#!/bin/sh\nexit 1\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if !HasModule(context.Background(), okStub, nil, "streamlit") {
		t.Fatalf("probe should succeed")
	}
	if HasModule(context.Background(), failStub, nil, "streamlit") {
		t.Fatalf("probe should fail")
	}
}

func TestInstallRequirementsMissingManifest(t *testing.T) {
	err := InstallRequirements(context.Background(), "python3", nil, filepath.Join(t.TempDir(), "requirements.txt"))
	if err == nil {
		t.Fatalf("expected error for missing manifest")
	}
}
