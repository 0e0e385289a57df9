package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	SourceFile   = "file"
	SourceSQLite = "sqlite"

	FileName  = "bikeshare.yaml"
	envPrefix = "BIKESHARE"
)

type Config struct {
	DataDir string            `yaml:"-"`
	Source  string            `yaml:"source"`
	DBPath  string            `yaml:"db_path"`
	Cities  map[string]string `yaml:"cities"`
	Logging LoggingConfig     `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// env holds the BIKESHARE_* overrides; empty values leave the file config untouched.
type env struct {
	DataDir   string `envconfig:"DATA_DIR"`
	Source    string `envconfig:"SOURCE"`
	DBPath    string `envconfig:"DB_PATH"`
	LogLevel  string `envconfig:"LOG_LEVEL"`
	LogFormat string `envconfig:"LOG_FORMAT"`
}

// New layers defaults, <dataDir>/bikeshare.yaml, .env and BIKESHARE_* variables.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var overrides env
	if err := envconfig.Process(envPrefix, &overrides); err != nil {
		return Config{}, fmt.Errorf("load env config: %w", err)
	}
	if overrides.DataDir != "" {
		dataDir = overrides.DataDir
	}

	cfg := Config{
		DataDir: dataDir,
		Source:  SourceFile,
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
	if err := cfg.loadFile(filepath.Join(dataDir, FileName)); err != nil {
		return Config{}, err
	}
	cfg.apply(overrides)
	cfg.Source = strings.ToLower(strings.TrimSpace(cfg.Source))
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dataDir, ".bikeshare", "trips.db")
	}
	cfg.DBPath = cfg.ResolvePath(cfg.DBPath)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) apply(overrides env) {
	if overrides.Source != "" {
		c.Source = overrides.Source
	}
	if overrides.DBPath != "" {
		c.DBPath = overrides.DBPath
	}
	if overrides.LogLevel != "" {
		c.Logging.Level = overrides.LogLevel
	}
	if overrides.LogFormat != "" {
		c.Logging.Format = overrides.LogFormat
	}
}

func (c Config) validate() error {
	if c.Source != SourceFile && c.Source != SourceSQLite {
		return fmt.Errorf("unsupported source %q: want %s or %s", c.Source, SourceFile, SourceSQLite)
	}
	for city, file := range c.Cities {
		if strings.TrimSpace(file) == "" {
			return fmt.Errorf("city %q has an empty file name", city)
		}
	}
	return nil
}

// ResolvePath anchors relative paths at the data dir.
func (c Config) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}

// CityFile returns the configured file for city, or fallback when not overridden.
func (c Config) CityFile(city, fallback string) string {
	if file, ok := c.Cities[city]; ok {
		return c.ResolvePath(file)
	}
	return c.ResolvePath(fallback)
}
