package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"othello/internal/engine"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "othello.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if f.Engine() != engine.DefaultConfig() {
		t.Fatalf("defaults differ: %+v", f.Engine())
	}
}

func TestLoadOverlaysOnlyGivenFields(t *testing.T) {
	path := writeFile(t, `{
		"log_level": "debug",
		"max_depth": 3,
		"hill_climb_time_ms": 250,
		"weights": {"coin_parity": 1, "corner": 10}
	}`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := f.Engine()
	if cfg.Search.MaxDepth != 3 {
		t.Fatalf("max depth %d", cfg.Search.MaxDepth)
	}
	if cfg.HillClimb.TimeBudget != 250*time.Millisecond {
		t.Fatalf("hill climb budget %v", cfg.HillClimb.TimeBudget)
	}
	if cfg.Weights != (engine.Weights{CoinParity: 1, Corner: 10}) {
		t.Fatalf("weights %+v", cfg.Weights)
	}
	def := engine.DefaultConfig()
	if cfg.AlternativeWeights != def.AlternativeWeights || cfg.Genetic != def.Genetic {
		t.Fatalf("fields missing from the file should keep defaults")
	}
	if f.LogLevel != "debug" {
		t.Fatalf("log level %q", f.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("missing file should fail")
	}
	if _, err := Load(writeFile(t, "{not json")); err == nil {
		t.Fatalf("bad json should fail")
	}
	if _, err := Load(writeFile(t, `{"max_depth": -1}`)); err == nil {
		t.Fatalf("negative depth should fail")
	}
	if _, err := Load(writeFile(t, `{"max_request_depth": 0}`)); err == nil {
		t.Fatalf("zero request depth should fail")
	}
}

func TestRequestDepth(t *testing.T) {
	if d := Default().RequestDepth(); d != 0 {
		t.Fatalf("unset request depth should defer to the server, got %d", d)
	}
	f, err := Load(writeFile(t, `{"max_request_depth": 5}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d := f.RequestDepth(); d != 5 {
		t.Fatalf("request depth %d", d)
	}
}
