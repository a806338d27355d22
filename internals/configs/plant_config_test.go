package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlantConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadPlantConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadPlantConfig: %v", err)
	}
	if got := cfg.ScheduledMinutes(); got != 480*3*5 {
		t.Fatalf("expected 7200 scheduled minutes, got %d", got)
	}
	if cfg.DowntimeTarget != 20 || cfg.ScrapTarget != 2.5 {
		t.Fatalf("unexpected targets: %+v", cfg)
	}
	if cfg.Location().String() != "America/Mexico_City" {
		t.Fatalf("expected plant timezone, got %s", cfg.Location())
	}
}

func TestLoadPlantConfigYAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plant.yaml")
	body := []byte("timezone: UTC\nshifts_per_day: 2\nminutes_per_shift: 450\ndays_per_period: 6\nscrap_target_percent: 4\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PLANT_SCRAP_TARGET", "3.5")

	cfg, err := LoadPlantConfig(path)
	if err != nil {
		t.Fatalf("LoadPlantConfig: %v", err)
	}
	if cfg.ScheduledMinutes() != 2*450*6 {
		t.Fatalf("unexpected scheduled minutes %d", cfg.ScheduledMinutes())
	}
	if cfg.ScrapTarget != 3.5 {
		t.Fatalf("env should override yaml, got %v", cfg.ScrapTarget)
	}
	if cfg.DowntimeTarget != 20 {
		t.Fatalf("unset keys keep defaults, got %v", cfg.DowntimeTarget)
	}
}

func TestLoadPlantConfigRejectsBadTimezone(t *testing.T) {
	t.Setenv("PLANT_TIMEZONE", "Mars/Olympus_Mons")
	if _, err := LoadPlantConfig(""); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
