package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const appDir = "td"

type Config struct {
	DataDir        string `yaml:"data_dir"`
	DatabaseFile   string `yaml:"database_file"`
	Strict         bool   `yaml:"strict"`
	LogLevel       string `yaml:"log_level"`
	LogDevelopment bool   `yaml:"log_development"`
}

// Load resolves configuration from defaults, then the optional YAML file
// ($TD_CONFIG or <user config dir>/td/config.yml), then TD_* variables.
func Load() (Config, error) {
	cfg, err := defaults()
	if err != nil {
		return Config{}, err
	}

	if err := loadFile(&cfg, configFilePath()); err != nil {
		return Config{}, err
	}

	cfg.DataDir = getEnv("TD_DATA_DIR", cfg.DataDir)
	cfg.DatabaseFile = getEnv("TD_DATABASE_FILE", cfg.DatabaseFile)
	cfg.LogLevel = getEnv("TD_LOG_LEVEL", cfg.LogLevel)
	if cfg.Strict, err = getEnvAsBool("TD_STRICT", cfg.Strict); err != nil {
		return Config{}, err
	}
	if cfg.LogDevelopment, err = getEnvAsBool("TD_LOG_DEVELOPMENT", cfg.LogDevelopment); err != nil {
		return Config{}, err
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DatabasePath is the SQLite file the store opens.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

func defaults() (Config, error) {
	cfg := Config{
		DatabaseFile: "td.db",
		LogLevel:     "warn",
	}

	// The cache dir is only required when nothing overrides it.
	if dir := os.Getenv("TD_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
		return cfg, nil
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve cache directory: %w", err)
	}
	cfg.DataDir = filepath.Join(cacheDir, appDir)
	return cfg, nil
}

func configFilePath() string {
	if p := os.Getenv("TD_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDir, "config.yml")
}

func loadFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func validate(cfg Config) error {
	if cfg.DataDir == "" {
		return errors.New("TD_DATA_DIR must not be empty")
	}
	if cfg.DatabaseFile == "" {
		return errors.New("TD_DATABASE_FILE must not be empty")
	}
	if cfg.LogLevel == "" {
		return errors.New("TD_LOG_LEVEL must not be empty")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean value for %s", key)
		}
		return b, nil
	}
	return defaultVal, nil
}
