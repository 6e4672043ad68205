// Package config resolves runtime settings from defaults, an optional YAML
// file in the data directory and STUDYSYNC_* environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/studysync/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	// DataDirName is created under the user's home directory.
	DataDirName = ".studysync"
	FileName    = "config.yaml"
	dbFileName  = "studysync.db"
)

// Config holds every tunable the CLI reads at startup.
type Config struct {
	DBPath              string  `yaml:"db"`
	Environment         string  `yaml:"environment"`
	LogLevel            string  `yaml:"log_level"`
	LogUseCases         bool    `yaml:"log_use_cases"`
	DefaultEffortHours  float64 `yaml:"default_effort_hours"`
	DueSoonHours        int     `yaml:"due_soon_hours"`
	ReminderHorizonDays int     `yaml:"reminder_horizon_days"`
}

// Default returns the built-in settings. The database lives in dataDir.
func Default(dataDir string) Config {
	return Config{
		DBPath:              filepath.Join(dataDir, dbFileName),
		Environment:         "production",
		LogLevel:            "warn",
		DefaultEffortHours:  domain.DefaultEffortHours,
		DueSoonHours:        24,
		ReminderHorizonDays: 7,
	}
}

// DefaultDataDir returns ~/.studysync.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DataDirName), nil
}

// Load resolves the configuration rooted at dataDir. A missing config file is
// not an error; a malformed one is.
func Load(dataDir string) (Config, error) {
	cfg := Default(dataDir)
	if err := mergeFile(&cfg, filepath.Join(dataDir, FileName)); err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.DBPath = domain.CoalesceStr(file.DBPath, cfg.DBPath)
	cfg.Environment = domain.CoalesceStr(file.Environment, cfg.Environment)
	cfg.LogLevel = domain.CoalesceStr(file.LogLevel, cfg.LogLevel)
	cfg.LogUseCases = cfg.LogUseCases || file.LogUseCases
	if file.DefaultEffortHours > 0 {
		cfg.DefaultEffortHours = file.DefaultEffortHours
	}
	if file.DueSoonHours > 0 {
		cfg.DueSoonHours = file.DueSoonHours
	}
	if file.ReminderHorizonDays > 0 {
		cfg.ReminderHorizonDays = file.ReminderHorizonDays
	}
	return nil
}

// applyEnv overlays environment variables. Unparseable values are ignored.
func applyEnv(cfg *Config) {
	cfg.DBPath = domain.CoalesceStr(os.Getenv("STUDYSYNC_DB"), cfg.DBPath)
	cfg.Environment = domain.CoalesceStr(os.Getenv("STUDYSYNC_ENV"), cfg.Environment)
	cfg.LogLevel = domain.CoalesceStr(os.Getenv("STUDYSYNC_LOG_LEVEL"), cfg.LogLevel)

	if v := os.Getenv("STUDYSYNC_LOG_USECASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("STUDYSYNC_DEFAULT_EFFORT_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.DefaultEffortHours = f
		}
	}
	if v := os.Getenv("STUDYSYNC_DUE_SOON_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DueSoonHours = n
		}
	}
	if v := os.Getenv("STUDYSYNC_REMINDER_HORIZON_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReminderHorizonDays = n
		}
	}
}
