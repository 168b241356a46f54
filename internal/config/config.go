// Package config provides unified configuration for the fabrica CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects the output shape of a generation run.
type Mode string

const (
	ModeRows    Mode = "rows"
	ModeTuples  Mode = "tuples"
	ModeColumns Mode = "columns"
)

// Config holds the configuration for a generation run.
type Config struct {
	// Seed is the numeric stream seed. SeedString, when set, wins over
	// Seed.
	Seed       uint64 `json:"seed" yaml:"seed"`
	SeedString string `json:"seed_string" yaml:"seed_string"`

	// Locale names the value tables to draw from.
	Locale string `json:"locale" yaml:"locale"`

	// Count is the number of rows to generate.
	Count int `json:"count" yaml:"count"`

	// Mode specifies the output shape: rows, tuples, columns
	Mode Mode `json:"mode" yaml:"mode"`

	// ChunkSize is the generation chunk size; 0 means the default.
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`

	// SchemaFile is the path to the YAML schema document.
	SchemaFile string `json:"schema_file" yaml:"schema_file"`

	// Providers declares custom providers available to the schema.
	Providers []ProviderConfig `json:"providers" yaml:"providers"`

	// Output configures where generated rows go.
	Output OutputConfig `json:"output" yaml:"output"`
}

// ProviderConfig declares one custom provider. Weights are optional; when
// present they must line up with Options.
type ProviderConfig struct {
	// Name is the provider name schemas refer to.
	Name string `json:"name" yaml:"name"`

	// Options is the value pool.
	Options []string `json:"options" yaml:"options"`

	// Weights, when non-empty, makes the provider weighted. One weight
	// per option.
	Weights []uint64 `json:"weights" yaml:"weights"`
}

// OutputConfig holds output sink configuration.
type OutputConfig struct {
	// Type is the sink type: stdout, file, sqlite, s3
	Type string `json:"type" yaml:"type"`

	// Path is the output path (file and sqlite types).
	Path string `json:"path" yaml:"path"`

	// Compress enables snappy compression on JSONL output.
	Compress bool `json:"compress" yaml:"compress"`

	// Table is the destination table name (sqlite type).
	Table string `json:"table" yaml:"table"`

	// SpoolDir is the local spool directory for the s3 type.
	SpoolDir string `json:"spool_dir" yaml:"spool_dir"`

	// S3 configuration (for s3 type)
	S3 S3Config `json:"s3" yaml:"s3"`
}

// S3Config holds S3 sink configuration.
type S3Config struct {
	// Bucket is the S3 bucket name
	Bucket string `json:"bucket" yaml:"bucket"`

	// Region is the AWS region
	Region string `json:"region" yaml:"region"`

	// Endpoint is the S3 endpoint (for S3-compatible storage)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Prefix is the object key prefix for uploaded parts.
	Prefix string `json:"prefix" yaml:"prefix"`

	// Concurrency bounds parallel part uploads.
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// DefaultConfig returns the default configuration for local use.
func DefaultConfig() *Config {
	return &Config{
		Seed:      0,
		Locale:    "en_US",
		Count:     10,
		Mode:      ModeRows,
		ChunkSize: 0,
		Output: OutputConfig{
			Type:  "stdout",
			Table: "records",
			S3: S3Config{
				Region:      "us-east-1",
				Prefix:      "fabrica",
				Concurrency: 4,
			},
		},
	}
}

// Resolve fills in paths that depend on other settings.
func (c *Config) Resolve() {
	if c.Output.Type == "s3" && c.Output.SpoolDir == "" {
		c.Output.SpoolDir = filepath.Join(os.TempDir(), "fabrica-spool")
	}
	if c.Output.Table == "" {
		c.Output.Table = "records"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeRows, ModeTuples, ModeColumns:
		// Valid modes
	default:
		return fmt.Errorf("invalid mode: %s (must be rows, tuples, or columns)", c.Mode)
	}

	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}

	if c.SchemaFile == "" {
		return fmt.Errorf("schema_file is required")
	}

	switch c.Output.Type {
	case "stdout":
	case "file", "sqlite":
		if c.Output.Path == "" {
			return fmt.Errorf("output.path is required when output type is %s", c.Output.Type)
		}
	case "s3":
		if c.Output.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required when output type is s3")
		}
	default:
		return fmt.Errorf("invalid output type: %s (must be stdout, file, sqlite, or s3)", c.Output.Type)
	}

	for _, p := range c.Providers {
		if p.Name == "" {
			return fmt.Errorf("provider name is required")
		}
		if len(p.Options) == 0 {
			return fmt.Errorf("provider %s has no options", p.Name)
		}
		if len(p.Weights) > 0 && len(p.Weights) != len(p.Options) {
			return fmt.Errorf("provider %s has %d weights for %d options",
				p.Name, len(p.Weights), len(p.Options))
		}
	}

	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the FABRICA_ prefix.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("FABRICA_SEED"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Seed)
	}
	if v := os.Getenv("FABRICA_SEED_STRING"); v != "" {
		cfg.SeedString = v
	}
	if v := os.Getenv("FABRICA_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("FABRICA_COUNT"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Count)
	}
	if v := os.Getenv("FABRICA_MODE"); v != "" {
		cfg.Mode = Mode(v)
	}
	if v := os.Getenv("FABRICA_CHUNK_SIZE"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.ChunkSize)
	}
	if v := os.Getenv("FABRICA_SCHEMA_FILE"); v != "" {
		cfg.SchemaFile = v
	}

	// Output configuration
	if v := os.Getenv("FABRICA_OUTPUT_TYPE"); v != "" {
		cfg.Output.Type = v
	}
	if v := os.Getenv("FABRICA_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("FABRICA_OUTPUT_COMPRESS"); v != "" {
		cfg.Output.Compress = v == "true" || v == "1"
	}
	if v := os.Getenv("FABRICA_OUTPUT_TABLE"); v != "" {
		cfg.Output.Table = v
	}
	if v := os.Getenv("FABRICA_S3_BUCKET"); v != "" {
		cfg.Output.S3.Bucket = v
	}
	if v := os.Getenv("FABRICA_S3_REGION"); v != "" {
		cfg.Output.S3.Region = v
	}
	if v := os.Getenv("FABRICA_S3_ENDPOINT"); v != "" {
		cfg.Output.S3.Endpoint = v
	}
	if v := os.Getenv("FABRICA_S3_PREFIX"); v != "" {
		cfg.Output.S3.Prefix = v
	}
	if v := os.Getenv("FABRICA_S3_CONCURRENCY"); v != "" {
		fmt.Sscanf(v, "%d", &cfg.Output.S3.Concurrency)
	}
}

// EnsureDirectories creates all required directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Output.SpoolDir}
	if c.Output.Type == "file" || c.Output.Type == "sqlite" {
		dirs = append(dirs, filepath.Dir(c.Output.Path))
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
