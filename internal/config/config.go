package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
)

// Generator holds all configuration for the loadout generator binaries.
type Generator struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Catalog
	Source      string `yaml:"source"` // yaml or postgres
	CatalogPath string `yaml:"catalog_path"`
	RolesDir    string `yaml:"roles_dir"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Generation
	Seed        uint64 `yaml:"seed"`          // 0 = random per run
	Workers     int    `yaml:"workers"`       // parallel bots per wave
	MaxWaveSize int    `yaml:"max_wave_size"` // bots per wave cap
	MaxModDepth int    `yaml:"max_mod_depth"` // default mod recursion bound
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultGenerator returns Generator config with sensible defaults.
func DefaultGenerator() Generator {
	return Generator{
		LogLevel:    "info",
		Source:      SourceYAML,
		CatalogPath: "data/catalog.yaml",
		RolesDir:    "data/roles",
		Workers:     4,
		MaxWaveSize: 64,
		MaxModDepth: 12,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "botloadout",
			Password: "botloadout",
			DBName:   "botloadout",
			SSLMode:  "disable",
		},
	}
}

// Validate checks value ranges.
func (g Generator) Validate() error {
	switch g.Source {
	case SourceYAML, SourcePostgres:
	default:
		return fmt.Errorf("unknown catalog source %q", g.Source)
	}
	if g.Workers <= 0 {
		return fmt.Errorf("workers must be > 0, got %d", g.Workers)
	}
	if g.MaxWaveSize <= 0 {
		return fmt.Errorf("max_wave_size must be > 0, got %d", g.MaxWaveSize)
	}
	return nil
}

// LoadGenerator loads generator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGenerator(path string) (Generator, error) {
	cfg := DefaultGenerator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
