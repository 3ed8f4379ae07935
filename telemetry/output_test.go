package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/protozoa/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("empty dir should disable output, got error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Nil manager is safe to use.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Errorf("nil manager WriteTelemetry: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil manager Close: %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}
	defer om.Close()

	stats := WindowStats{WindowEndTick: 300, Ticks: 300, EnergyMean: 0.42}
	if err := om.WriteTelemetry(stats); err != nil {
		t.Fatalf("writing telemetry: %v", err)
	}
	if err := om.WriteTelemetry(stats); err != nil {
		t.Fatalf("writing second telemetry row: %v", err)
	}

	if err := om.WriteBookmark(Bookmark{Type: BookmarkRecovery, Tick: 300, Description: "x"}); err != nil {
		t.Fatalf("writing bookmark: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "energy_mean") {
		t.Error("telemetry.csv missing header row")
	}
	// Header appears once despite two writes.
	if strings.Count(content, "energy_mean") != 1 {
		t.Error("header repeated on subsequent writes")
	}
	if strings.Count(strings.TrimSpace(content), "\n") != 2 {
		t.Errorf("expected header plus two rows, got:\n%s", content)
	}
}

func TestOutputManagerWritesConfigSnapshot(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("writing config snapshot: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}
