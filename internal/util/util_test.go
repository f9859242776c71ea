package util

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	LogError("quiet", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing logged for nil error, got %q", buf.String())
	}
	LogError("cancel reminder 3-1", errors.New("locked"))
	if !strings.Contains(buf.String(), "cancel reminder 3-1: locked") {
		t.Fatalf("unexpected log line %q", buf.String())
	}
}

func TestLogToFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	dir := filepath.Join(t.TempDir(), "logs")
	f, err := LogToFile(dir, "sprout.log")
	if err != nil {
		t.Fatalf("LogToFile failed: %v", err)
	}
	LogError("poll", errors.New("boom"))
	if err := f.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "sprout.log"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "poll: boom") {
		t.Fatalf("expected log line in file, got %q", data)
	}
}

func TestDataDirUsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got := DataDir("sprout"); got != filepath.Join(base, "sprout") {
		t.Fatalf("unexpected data dir %s", got)
	}
	t.Setenv("XDG_DATA_HOME", "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := DataDir("sprout"); got != filepath.Join(home, ".local", "share", "sprout") {
		t.Fatalf("unexpected fallback data dir %s", got)
	}
}

func TestReportsDir(t *testing.T) {
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	if got := ReportsDir("sprout"); got != filepath.Join(docs, "SPROUT") {
		t.Fatalf("unexpected reports dir %s", got)
	}
}

func TestDocumentsDirFromUserDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	cfg := filepath.Join(home, ".config")
	if err := os.MkdirAll(cfg, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	content := "# generated\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if err := os.WriteFile(filepath.Join(cfg, "user-dirs.dirs"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if got := DocumentsDir(); got != filepath.Join(home, "Docs") {
		t.Fatalf("unexpected documents dir %s", got)
	}
}

func TestHelpers(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp high = %d", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp low = %d", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp mid = %d", got)
	}
	if p := Ptr("x"); p == nil || *p != "x" {
		t.Fatalf("Ptr returned %v", p)
	}
}
