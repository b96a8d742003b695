package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/referlab/refnet/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refnet.toml")
	data := `
[simulation]
referrers = 50
capacity = 5
seed = 42

[bonus]
max = 5000
increment = 25
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	c.configPath = path

	cfg, err := c.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Simulation.Referrers != 50 || cfg.Simulation.Capacity != 5 || cfg.Simulation.Seed != 42 {
		t.Errorf("simulation config = %+v, want 50/5/42", cfg.Simulation)
	}
	if cfg.Bonus.MaxBonus != 5000 || cfg.Bonus.Increment != 25 {
		t.Errorf("bonus config = %+v, want 5000/25", cfg.Bonus)
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })

	c := New(io.Discard, LogInfo)
	cfg, err := c.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig with no file error: %v", err)
	}
	if cfg.Simulation.Referrers != 0 {
		t.Errorf("expected zero config without a file, got %+v", cfg.Simulation)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.configPath = filepath.Join(t.TempDir(), "absent.toml")

	if _, err := c.loadConfig(); errors.GetCode(err) != errors.ErrCodeFileNotFound {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[simulation\nreferrers = x"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	c.configPath = path

	if _, err := c.loadConfig(); errors.GetCode(err) != errors.ErrCodeInvalidFormat {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
}
