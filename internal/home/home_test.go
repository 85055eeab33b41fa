package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		d, err := New("/tmp/doctriage-test")
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if d.Path() != "/tmp/doctriage-test" {
			t.Errorf("Path() = %s, want /tmp/doctriage-test", d.Path())
		}
	})

	t.Run("empty path defaults to home", func(t *testing.T) {
		d, err := New("")
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if filepath.Base(d.Path()) != DefaultDirName {
			t.Errorf("default path %s does not end in %s", d.Path(), DefaultDirName)
		}
	})
}

func TestDirPaths(t *testing.T) {
	d, err := New("/data/dt")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := d.ResultsPath(); got != filepath.Join("/data/dt", ResultsDirName) {
		t.Errorf("ResultsPath() = %s", got)
	}
	if got := d.InboxPath(); got != filepath.Join("/data/dt", InboxDirName) {
		t.Errorf("InboxPath() = %s", got)
	}
	if got := d.ConfigPath(); got != "/data/dt/config.yaml" {
		t.Errorf("ConfigPath() = %s", got)
	}
	if got := d.ResultPath("abc"); got != filepath.Join("/data/dt", ResultsDirName, "abc.json") {
		t.Errorf("ResultPath() = %s", got)
	}
	if got := d.InboxFilePath("abc"); got != filepath.Join("/data/dt", InboxDirName, "abc.pdf") {
		t.Errorf("InboxFilePath() = %s", got)
	}
}

func TestEnsureExists(t *testing.T) {
	tmpDir := t.TempDir()
	d, err := New(filepath.Join(tmpDir, ".doctriage"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if d.Exists() {
		t.Fatal("home must not exist yet")
	}
	if err := d.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	if !d.Exists() {
		t.Error("home directory was not created")
	}

	for _, p := range []string{d.ResultsPath(), d.InboxPath()} {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			t.Errorf("%s was not created as a directory: %v", p, err)
		}
	}

	// Idempotent
	if err := d.EnsureExists(); err != nil {
		t.Errorf("second EnsureExists failed: %v", err)
	}
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	d, err := New(tmpDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if d.ConfigExists() {
		t.Fatal("config must not exist yet")
	}
	if err := os.WriteFile(d.ConfigPath(), []byte("log:\n  level: info\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if !d.ConfigExists() {
		t.Error("ConfigExists() = false after writing config")
	}
}
