package banner

import (
	"strings"
	"testing"
)

func TestStartupAlwaysHasLocalURL(t *testing.T) {
	lines := strings.Join(Startup(8501, ""), "\n")
	if !strings.Contains(lines, "http://localhost:8501") {
		t.Fatalf("missing local URL:\n%s", lines)
	}
	if !strings.Contains(lines, "8501") {
		t.Fatalf("port literal missing:\n%s", lines)
	}
	if strings.Contains(lines, "Network URL") {
		t.Fatalf("network line present without LAN address:\n%s", lines)
	}
}

func TestStartupWithLANAddress(t *testing.T) {
	lines := strings.Join(Startup(8501, "192.168.1.20"), "\n")
	if !strings.Contains(lines, "http://192.168.1.20:8501") {
		t.Fatalf("missing network URL:\n%s", lines)
	}
	if !strings.Contains(lines, "http://localhost:8501") {
		t.Fatalf("local URL must still be present:\n%s", lines)
	}
}

func TestStartupCustomPort(t *testing.T) {
	lines := strings.Join(Startup(9001, ""), "\n")
	if !strings.Contains(lines, "http://localhost:9001") {
		t.Fatalf("custom port not rendered:\n%s", lines)
	}
}

func TestShutdownNotEmpty(t *testing.T) {
	if Shutdown() == "" {
		t.Fatalf("shutdown banner is empty")
	}
}
