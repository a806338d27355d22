package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// PlantConfig holds the shop-floor constants behind the indicators and the
// weekly rollover schedule.
type PlantConfig struct {
	Timezone         string  `yaml:"timezone"`
	ShiftsPerDay     int     `yaml:"shifts_per_day"`
	MinutesPerShift  int     `yaml:"minutes_per_shift"`
	DaysPerPeriod    int     `yaml:"days_per_period"`
	DowntimeTarget   float64 `yaml:"downtime_target_percent"`
	ScrapTarget      float64 `yaml:"scrap_target_percent"`
	RolloverCron     string  `yaml:"rollover_cron"`
	RolloverDisabled bool    `yaml:"rollover_disabled"`
	UploadDir        string  `yaml:"upload_dir"`
	UploadMaxMB      int     `yaml:"upload_max_mb"`

	location *time.Location
}

func DefaultPlantConfig() PlantConfig {
	return PlantConfig{
		Timezone:        "America/Mexico_City",
		ShiftsPerDay:    3,
		MinutesPerShift: 480,
		DaysPerPeriod:   5,
		DowntimeTarget:  20,
		ScrapTarget:     2.5,
		RolloverCron:    "5 0 * * 1",
		UploadDir:       "uploads",
		UploadMaxMB:     20,
	}
}

// LoadPlantConfig reads path when it exists, then applies env overrides.
// A missing file is not an error.
func LoadPlantConfig(path string) (PlantConfig, error) {
	cfg := DefaultPlantConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
			log.Printf("[INFO] Loaded plant config from %s", path)
		case errors.Is(err, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	}

	envOverride(&cfg.Timezone, "PLANT_TIMEZONE")
	envOverrideInt(&cfg.ShiftsPerDay, "PLANT_SHIFTS_PER_DAY")
	envOverrideInt(&cfg.MinutesPerShift, "PLANT_MINUTES_PER_SHIFT")
	envOverrideInt(&cfg.DaysPerPeriod, "PLANT_DAYS_PER_PERIOD")
	envOverrideFloat(&cfg.DowntimeTarget, "PLANT_DOWNTIME_TARGET")
	envOverrideFloat(&cfg.ScrapTarget, "PLANT_SCRAP_TARGET")
	envOverride(&cfg.RolloverCron, "ROLLOVER_CRON")
	if v := os.Getenv("ROLLOVER_DISABLED"); v != "" {
		cfg.RolloverDisabled = GetEnvBool("ROLLOVER_DISABLED", false)
	}
	envOverride(&cfg.UploadDir, "UPLOAD_FOLDER")
	envOverrideInt(&cfg.UploadMaxMB, "UPLOAD_MAX_MB")

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *PlantConfig) validate() error {
	if c.ShiftsPerDay <= 0 || c.MinutesPerShift <= 0 || c.DaysPerPeriod <= 0 {
		return fmt.Errorf("shifts_per_day, minutes_per_shift and days_per_period must be positive")
	}
	if c.DowntimeTarget < 0 || c.ScrapTarget < 0 {
		return fmt.Errorf("targets must not be negative")
	}
	if c.UploadMaxMB <= 0 {
		c.UploadMaxMB = 20
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	c.location = loc
	return nil
}

// ScheduledMinutes is shifts/day × minutes/shift × days.
func (c PlantConfig) ScheduledMinutes() int {
	return c.ShiftsPerDay * c.MinutesPerShift * c.DaysPerPeriod
}

// Location falls back to UTC for zero-value configs built in tests.
func (c PlantConfig) Location() *time.Location {
	if c.location != nil {
		return c.location
	}
	if c.Timezone != "" {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

func envOverride(field *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*field = v
	}
}

func envOverrideInt(field *int, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*field = n
		} else {
			log.Printf("[WARN] ignoring %s=%q: %v", key, v, err)
		}
	}
}

func envOverrideFloat(field *float64, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*field = f
		} else {
			log.Printf("[WARN] ignoring %s=%q: %v", key, v, err)
		}
	}
}
